package query

import (
	"strings"
	"testing"

	"helix/internal/corpus"
)

const overviewHeader = "## Research Data Overview (Last 6 Months):"

func TestAssembleSections(t *testing.T) {
	c := corpus.Default()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"outlier keyword", "Show me the OUTLIERS", []string{SectionOutliers}},
		{"anomaly stem", "any anomalies lately?", []string{SectionOutliers}},
		{"mouse model", "findings from the APP/PS1 model", []string{SectionModel}},
		{"disease", "myeloma results", []string{SectionDisease}},
		{"targets", "list therapeutic options", []string{SectionTargets}},
		{"spatial", "which tissue?", []string{SectionSpatial}},
		{"combined in fixed order", "spatial outlier targets in HER2 BALB/c", []string{
			SectionOutliers, SectionModel, SectionDisease, SectionTargets, SectionSpatial,
		}},
		{"no category", "zzzznotmatchinganything", []string{SectionOverview}},
		{"gene symbol alone", "TREM2", []string{SectionOverview}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assemble(tt.query, c).Sections
			if !equalStrings(got, tt.want) {
				t.Errorf("Assemble(%q).Sections = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestAssembleOutliersIncludesEveryOutlierAndNoOthers(t *testing.T) {
	c := corpus.Default()
	text := AssembleContext("What are the outliers?", c)

	for _, r := range c.Records() {
		line := "- **" + r.Gene + "** in " + r.MouseModel
		if r.IsOutlier() != strings.Contains(text, line) {
			t.Errorf("record %s (%s): outlier=%v, listed=%v", r.ID, r.Gene, r.IsOutlier(), !r.IsOutlier())
		}
	}
	for _, tg := range c.Targets() {
		line := "- **" + tg.GeneName + "** (" + tg.Pathway + ")"
		if tg.OutlierFlag != strings.Contains(text, line) {
			t.Errorf("target %s: outlier=%v, listed=%v", tg.GeneName, tg.OutlierFlag, !tg.OutlierFlag)
		}
	}
	if n := strings.Count(text, "  - Notes: "); n != len(c.Outliers()) {
		t.Errorf("got %d record entries, want %d", n, len(c.Outliers()))
	}
}

func TestAssembleOutlierRecordFormat(t *testing.T) {
	text := AssembleContext("outlier", corpus.Default())

	want := "- **MET** in Pdx1-Cre-LSL-KrasG12D (Liver, Metastatic Foci)\n" +
		"  - Expression: 8.9 (normalized)\n"
	if !strings.Contains(text, want) {
		t.Errorf("missing MET entry, got:\n%s", text)
	}
	if !strings.HasPrefix(text, "## Outlier Records from Spatial Transcriptomics Data:\n\n") {
		t.Errorf("unexpected header: %q", text[:60])
	}
	if !strings.Contains(text, "\n## Therapeutic Targets with Outlier Findings:\n\n") {
		t.Error("missing outlier targets header")
	}
}

func TestAssembleModelUsesFirstListedToken(t *testing.T) {
	c := corpus.Default()

	// kras appears first in the query but app/ps1 is declared first.
	text := AssembleContext("kras versus app/ps1", c)
	if !strings.Contains(text, `## Data for Mouse Model matching "app/ps1":`) {
		t.Fatalf("expected app/ps1 section, got:\n%s", text)
	}
	if strings.Contains(text, `matching "kras"`) {
		t.Error("only the first declared token should produce a section")
	}
	if strings.Count(text, "## Data for Mouse Model") != 1 {
		t.Error("expected exactly one model section")
	}
}

func TestAssembleDiseaseUsesFirstListedToken(t *testing.T) {
	text := AssembleContext("her2 breast cancer", corpus.Default())

	if !strings.Contains(text, "## Therapeutic Targets for breast cancer:") {
		t.Fatalf("expected breast cancer section, got:\n%s", text)
	}
	for _, gene := range []string{"CDK4", "PIK3CA", "PD-L1"} {
		if !strings.Contains(text, "- **"+gene+"**: ") {
			t.Errorf("missing %s", gene)
		}
	}
	if strings.Contains(text, "- **TREM2**: ") {
		t.Error("TREM2 is not a breast cancer target")
	}
}

func TestAssembleDiseaseWithNoTargetsKeepsHeader(t *testing.T) {
	text := AssembleContext("myeloma", corpus.Default())
	if text != "\n## Therapeutic Targets for myeloma:\n\n" {
		t.Errorf("got %q", text)
	}
}

func TestAssembleAllTargets(t *testing.T) {
	c := corpus.Default()
	text := AssembleContext("target", c)

	if strings.Count(text, "  - Outlier: ") != c.TargetCount() {
		t.Errorf("expected every target listed, got:\n%s", text)
	}
	if !strings.Contains(text, "- **TREM2** (Alzheimers Disease)\n") {
		t.Error("missing TREM2 entry")
	}
	if !strings.Contains(text, "  - Outlier: No\n") || !strings.Contains(text, "  - Outlier: YES\n") {
		t.Error("outlier flags not rendered")
	}
}

func TestAssembleSpatialGroupsByFirstOccurrence(t *testing.T) {
	text := AssembleContext("spatial", corpus.Default())

	order := []string{
		"### Hippocampus:",
		"### Mammary Tumor:",
		"### Spleen:",
		"### Cortex:",
		"### Pancreas:",
		"### Bone Marrow:",
		"### Liver:",
		"### Lymph Node:",
	}
	last := -1
	for _, h := range order {
		i := strings.Index(text, h)
		if i < 0 {
			t.Fatalf("missing group %q", h)
		}
		if i <= last {
			t.Errorf("group %q out of order", h)
		}
		last = i
	}
	if strings.Count(text, "### ") != len(order) {
		t.Errorf("expected %d groups", len(order))
	}

	hippocampus := text[strings.Index(text, "### Hippocampus:"):strings.Index(text, "### Mammary Tumor:")]
	for _, gene := range []string{"TREM2 @ CA1", "APOE @ Dentate Gyrus", "BACE1 @ CA3"} {
		if !strings.Contains(hippocampus, gene) {
			t.Errorf("hippocampus group missing %q", gene)
		}
	}
}

func TestAssembleOverview(t *testing.T) {
	c := corpus.Default()
	text := AssembleContext("zzzznotmatchinganything", c)

	if !strings.HasPrefix(text, overviewHeader) {
		t.Fatalf("expected overview, got:\n%s", text)
	}
	for _, want := range []string{
		"Total experiments: 14\n",
		"Active therapeutic targets: 6\n",
		"Outlier findings: 5\n",
		"### Recent Findings:\n",
		"### High-Priority Targets:\n",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q", want)
		}
	}

	recent := text[strings.Index(text, "### Recent Findings:"):strings.Index(text, "### High-Priority Targets:")]
	if n := strings.Count(recent, "\n- "); n != 5 {
		t.Errorf("expected 5 recent findings, got %d", n)
	}
	for _, gene := range []string{"BCMA", "MET", "CLU", "PD-L1"} {
		if !strings.Contains(recent, ": "+gene+" in ") {
			t.Errorf("recent findings missing %s", gene)
		}
	}

	priority := text[strings.Index(text, "### High-Priority Targets:"):]
	for _, gene := range []string{"TREM2", "PIK3CA", "MET"} {
		if !strings.Contains(priority, "- "+gene+": ") {
			t.Errorf("high-priority targets missing %s", gene)
		}
	}
	for _, gene := range []string{"CDK4", "PD-L1", "MAPT"} {
		if strings.Contains(priority, "- "+gene+": ") {
			t.Errorf("%s should not be high priority", gene)
		}
	}
}

func TestAssembleOverviewOnlyWhenNothingMatches(t *testing.T) {
	c := corpus.Default()
	queries := []string{"outlier", "balb", "pdac", "validation", "region", "unexpected tissue"}
	for _, q := range queries {
		if strings.Contains(AssembleContext(q, c), overviewHeader) {
			t.Errorf("query %q should not reach the overview", q)
		}
	}
}

func TestAssembleIsIdempotent(t *testing.T) {
	c := corpus.Default()
	queries := []string{
		"What are the outliers in therapeutic target validation?",
		"spatial distribution in kras pancreatic tissue",
		"zzzznotmatchinganything",
	}
	for _, q := range queries {
		first := AssembleContext(q, c)
		second := AssembleContext(q, c)
		if first != second {
			t.Errorf("AssembleContext(%q) is not stable", q)
		}
	}
}

func TestAssembleEmptyCorpus(t *testing.T) {
	text := AssembleContext("anything", corpus.New(nil, nil))
	if !strings.Contains(text, "Total experiments: 0\n") {
		t.Errorf("got %q", text)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3.2, "3.2"},
		{0.91, "0.91"},
		{2847, "2847"},
		{0.3, "0.3"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 3); got != "abc" {
		t.Errorf("got %q", got)
	}
	if got := truncate("abc", 10); got != "abc" {
		t.Errorf("got %q", got)
	}
	if got := truncate("αβγδ", 2); got != "αβ" {
		t.Errorf("got %q", got)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
