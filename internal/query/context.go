package query

import (
	"fmt"
	"strconv"
	"strings"

	"helix/internal/corpus"
	"helix/internal/models"
	"helix/internal/validation"
)

// Context section names, reported by Assemble in the order they were written.
const (
	SectionOutliers = "outliers"
	SectionModel    = "model"
	SectionDisease  = "disease"
	SectionTargets  = "targets"
	SectionSpatial  = "spatial"
	SectionOverview = "overview"
)

var (
	outlierKeywords = []string{"outlier", "unexpected", "anomal"}
	targetKeywords  = []string{"target", "validation", "therapeutic"}
	spatialKeywords = []string{"spatial", "region", "tissue"}

	// Only the first entry found in the query is used, in declaration order.
	mouseModelTokens = []string{"app/ps1", "c57bl", "balb", "nod-scid", "pdx1", "kras"}
	diseaseTokens    = []string{"alzheimer", "breast cancer", "her2", "pancreatic", "pdac", "myeloma"}
)

const (
	recentFindingsCount   = 5
	highPriorityScore     = 0.8
	overviewSummaryLength = 100
)

// Assembly is an assembled context block and the sections it contains.
type Assembly struct {
	Text     string
	Sections []string
}

// AssembleContext returns the Markdown context block for query.
func AssembleContext(query string, c *corpus.Corpus) string {
	return Assemble(query, c).Text
}

// Assemble runs every keyword category against query and concatenates the
// sections of those that match. When none match, it falls back to a corpus
// overview. The output depends only on query and the corpus.
func Assemble(query string, c *corpus.Corpus) Assembly {
	q := validation.NormalizeQuery(query)
	var b strings.Builder
	var sections []string

	if containsAny(q, outlierKeywords) {
		writeOutliers(&b, c)
		sections = append(sections, SectionOutliers)
	}

	if model, ok := firstContained(q, mouseModelTokens); ok {
		writeModel(&b, c, model)
		sections = append(sections, SectionModel)
	}

	if disease, ok := firstContained(q, diseaseTokens); ok {
		writeDisease(&b, c, disease)
		sections = append(sections, SectionDisease)
	}

	if containsAny(q, targetKeywords) {
		writeAllTargets(&b, c)
		sections = append(sections, SectionTargets)
	}

	if containsAny(q, spatialKeywords) {
		writeSpatial(&b, c)
		sections = append(sections, SectionSpatial)
	}

	if b.Len() == 0 {
		writeOverview(&b, c)
		sections = append(sections, SectionOverview)
	}

	return Assembly{Text: b.String(), Sections: sections}
}

func writeOutliers(b *strings.Builder, c *corpus.Corpus) {
	b.WriteString("## Outlier Records from Spatial Transcriptomics Data:\n\n")
	for _, r := range c.Outliers() {
		fmt.Fprintf(b, "- **%s** in %s (%s, %s)\n", r.Gene, r.MouseModel, r.Tissue, r.SpatialRegion)
		fmt.Fprintf(b, "  - Expression: %s (normalized)\n", formatNumber(r.NormalizedExpression))
		fmt.Fprintf(b, "  - Date: %s\n", r.Date)
		fmt.Fprintf(b, "  - Notes: %s\n\n", r.Notes)
	}

	b.WriteString("\n## Therapeutic Targets with Outlier Findings:\n\n")
	for _, t := range c.OutlierTargets() {
		fmt.Fprintf(b, "- **%s** (%s)\n", t.GeneName, t.Pathway)
		fmt.Fprintf(b, "  - Indication: %s\n", t.DiseaseIndication)
		fmt.Fprintf(b, "  - Validation Score: %s\n", formatNumber(t.ValidationScore))
		fmt.Fprintf(b, "  - Summary: %s\n\n", t.Summary)
	}
}

func writeModel(b *strings.Builder, c *corpus.Corpus, model string) {
	fmt.Fprintf(b, "\n## Data for Mouse Model matching %q:\n\n", model)
	for _, r := range c.Search(model) {
		fmt.Fprintf(b, "- %s: %s in %s (%s)\n", r.Date, r.Gene, r.Tissue, r.SpatialRegion)
		fmt.Fprintf(b, "  - Expression: %s, Status: %s\n", formatNumber(r.NormalizedExpression), r.ValidationStatus)
		fmt.Fprintf(b, "  - Notes: %s\n\n", r.Notes)
	}
}

func writeDisease(b *strings.Builder, c *corpus.Corpus, disease string) {
	fmt.Fprintf(b, "\n## Therapeutic Targets for %s:\n\n", disease)
	for _, t := range c.TargetsByIndication(disease) {
		fmt.Fprintf(b, "- **%s**: %s\n", t.GeneName, t.Summary)
		fmt.Fprintf(b, "  - Validation Score: %s, Confidence: %s\n\n",
			formatNumber(t.ValidationScore), formatNumber(t.ConfidenceLevel))
	}
}

func writeAllTargets(b *strings.Builder, c *corpus.Corpus) {
	b.WriteString("\n## All Therapeutic Targets Summary:\n\n")
	for _, t := range c.Targets() {
		outlier := "No"
		if t.OutlierFlag {
			outlier = "YES"
		}
		fmt.Fprintf(b, "- **%s** (%s)\n", t.GeneName, t.DiseaseIndication)
		fmt.Fprintf(b, "  - Pathway: %s\n", t.Pathway)
		fmt.Fprintf(b, "  - Validation: %s | Confidence: %s\n",
			formatNumber(t.ValidationScore), formatNumber(t.ConfidenceLevel))
		fmt.Fprintf(b, "  - Outlier: %s\n", outlier)
		fmt.Fprintf(b, "  - %s\n\n", t.Summary)
	}
}

func writeSpatial(b *strings.Builder, c *corpus.Corpus) {
	b.WriteString("\n## Spatial Distribution Summary:\n\n")
	for _, g := range groupByTissue(c.Records()) {
		fmt.Fprintf(b, "### %s:\n", g.tissue)
		for _, r := range g.records {
			fmt.Fprintf(b, "- %s @ %s: %s (%s)\n",
				r.Gene, r.SpatialRegion, formatNumber(r.NormalizedExpression), r.ValidationStatus)
		}
		b.WriteString("\n")
	}
}

func writeOverview(b *strings.Builder, c *corpus.Corpus) {
	b.WriteString("## Research Data Overview (Last 6 Months):\n\n")
	fmt.Fprintf(b, "Total experiments: %d\n", c.RecordCount())
	fmt.Fprintf(b, "Active therapeutic targets: %d\n", c.TargetCount())
	fmt.Fprintf(b, "Outlier findings: %d\n\n", len(c.Outliers()))

	b.WriteString("### Recent Findings:\n")
	records := c.Records()
	if len(records) > recentFindingsCount {
		records = records[len(records)-recentFindingsCount:]
	}
	for _, r := range records {
		fmt.Fprintf(b, "- %s: %s in %s - %s\n", r.Date, r.Gene, r.MouseModel, r.Notes)
	}

	// Targets carry no relevance tier, so the score threshold alone decides.
	b.WriteString("\n### High-Priority Targets:\n")
	for _, t := range c.FilterTargets(func(t models.TargetSummary) bool {
		return t.ValidationScore > highPriorityScore
	}) {
		fmt.Fprintf(b, "- %s: %s...\n", t.GeneName, truncate(t.Summary, overviewSummaryLength))
	}
}

type tissueGroup struct {
	tissue  string
	records []models.ObservationRecord
}

// groupByTissue groups records by exact tissue string, keeping groups in the
// order their tissue first appears.
func groupByTissue(records []models.ObservationRecord) []tissueGroup {
	index := make(map[string]int)
	var groups []tissueGroup
	for _, r := range records {
		i, ok := index[r.Tissue]
		if !ok {
			i = len(groups)
			index[r.Tissue] = i
			groups = append(groups, tissueGroup{tissue: r.Tissue})
		}
		groups[i].records = append(groups[i].records, r)
	}
	return groups
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func firstContained(s string, tokens []string) (string, bool) {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return t, true
		}
	}
	return "", false
}

// formatNumber renders a float in its shortest form: 3.2, 0.91, 2847.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// truncate returns at most n characters of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
