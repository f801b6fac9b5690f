package query

import (
	"fmt"
	"strings"

	"helix/internal/corpus"
	"helix/internal/validation"
)

const overviewContextExcerpt = 300

// cannedAnswer is a fixed answer returned when any of its keywords appears in
// the lowercased query.
type cannedAnswer struct {
	name     string
	keywords []string
	render   func(c *corpus.Corpus) string
}

// cannedAnswers are checked in priority order; the first match wins.
var cannedAnswers = []cannedAnswer{
	{name: "outliers", keywords: []string{"outlier", "validation"}, render: outlierAnswer},
	{name: "alzheimer", keywords: []string{"alzheimer", "app/ps1", "trem2"}, render: staticAnswer(alzheimerAnswer)},
	{name: "her2", keywords: []string{"her2", "breast", "balb"}, render: staticAnswer(her2Answer)},
	{name: "pdac", keywords: []string{"kras", "pancrea", "pdac"}, render: staticAnswer(pdacAnswer)},
	{name: "ranking", keywords: []string{"score", "highest", "best"}, render: staticAnswer(rankingAnswer)},
}

// LocalAnswer picks the canned answer for query, falling back to an overview
// built from live corpus counts and the head of the assembled context.
func LocalAnswer(query, assembled string, c *corpus.Corpus) string {
	q := validation.NormalizeQuery(query)
	for _, a := range cannedAnswers {
		if containsAny(q, a.keywords) {
			return a.render(c)
		}
	}
	return overviewAnswer(assembled, c)
}

// localTemplateName reports which canned answer LocalAnswer would use.
func localTemplateName(query string) string {
	q := validation.NormalizeQuery(query)
	for _, a := range cannedAnswers {
		if containsAny(q, a.keywords) {
			return a.name
		}
	}
	return "overview"
}

func staticAnswer(text string) func(*corpus.Corpus) string {
	return func(*corpus.Corpus) string { return text }
}

func outlierAnswer(c *corpus.Corpus) string {
	return fmt.Sprintf(outlierAnswerTemplate, len(c.OutlierTargets()))
}

func overviewAnswer(assembled string, c *corpus.Corpus) string {
	var b strings.Builder
	b.WriteString("Based on analysis of our spatial transcriptomics data from the last six months:\n\n")
	b.WriteString("**Data Summary:**\n")
	fmt.Fprintf(&b, "- Total experiments analyzed: %d\n", c.RecordCount())
	names := c.MouseModels()
	fmt.Fprintf(&b, "- Mouse models covered: %d (%s)\n", len(names), strings.Join(names, ", "))
	fmt.Fprintf(&b, "- Therapeutic targets tracked: %d\n", c.TargetCount())
	fmt.Fprintf(&b, "- Outlier findings: %d\n\n", len(c.Outliers()))

	if excerpt := strings.TrimSpace(truncate(assembled, overviewContextExcerpt)); excerpt != "" {
		b.WriteString("**Context Excerpt:**\n")
		b.WriteString(excerpt)
		b.WriteString("...\n\n")
	}

	b.WriteString("**Recommendation:**\n")
	b.WriteString("For more specific insights, try queries like:\n")
	b.WriteString("- \"What are the outliers in therapeutic target validation?\"\n")
	b.WriteString("- \"Show me findings from the APP/PS1 Alzheimer's model\"\n")
	b.WriteString("- \"Which targets have the highest validation scores?\"")
	return b.String()
}

const outlierAnswerTemplate = `Based on the spatial transcriptomics data from the last six months, I've identified **%d significant outliers** in therapeutic target validation:

**Critical Findings:**

1. **MET Amplification in PDAC Metastases** (Validation Score: 0.91)
   - Dramatic elevation in liver metastases vs primary pancreatic tumor
   - This represents an immediately actionable target for MET inhibitor therapy
   - Confidence Level: 93%%

2. **PIK3CA Spatial Gradient** (Validation Score: 0.85)
   - Unexpected expression gradient at invasive tumor front in HER2+ breast cancer
   - Potential driver of treatment resistance and metastasis
   - Supports investigation of PI3K inhibitor combinations

3. **CDK4 Peripheral Enrichment** (Validation Score: 0.78)
   - Novel finding: CDK4 shows unexpected spatial enrichment at tumor periphery
   - Suggests potential combination therapy with CDK4/6 inhibitors in HER2+ setting

4. **PD-L1 "Cold" Phenotype** (Validation Score: 0.45)
   - Unexpectedly LOW PD-L1 despite high tumor burden
   - Indicates immune-cold phenotype - checkpoint inhibitors unlikely to benefit this subgroup
   - Critical for patient stratification

**Recommendation:** The MET amplification finding in PDAC liver metastases warrants immediate follow-up given its high validation score and clear therapeutic implications.`

const alzheimerAnswer = `**Alzheimer's Disease Model (APP/PS1) Analysis:**

Based on our spatial transcriptomics data, key findings from the C57BL/6-APP/PS1 model include:

**Validated Targets:**
- **TREM2** (CA1 hippocampus): Normalized expression 3.2 - Elevated microglial activation consistent with AD pathology. Validation Score: 0.92
- **APOE** (Dentate Gyrus): Normalized expression 4.8 - Strong correlation with amyloid deposition regions
- **BACE1** (CA3): Normalized expression 3.9 - Beta-secretase levels consistent with AD pathology

**Outlier Finding:**
- **MAPT** (Cortex Layer V): Expression 0.8 (UNEXPECTEDLY LOW)
  - Tau expression significantly below expected levels
  - Requires sample verification or may indicate model-specific limitation
  - Validation Score: 0.34

**Therapeutic Implications:**
TREM2 agonism shows consistent therapeutic potential across our AD studies with strong spatial correlation to amyloid plaques (Confidence: 95%). This aligns with ongoing clinical programs.`

const her2Answer = `**HER2+ Breast Cancer Model (BALB/c-HER2) Analysis:**

**Spatial Transcriptomics Findings:**

1. **ERBB2 (Tumor Core)**: Expression 7.1 - Expected overexpression confirmed
   - Status: Validated

2. **CDK4 (Tumor Periphery)**: Expression 5.9 - OUTLIER
   - Unexpected spatial enrichment at tumor boundary
   - Potential novel therapeutic angle for CDK4/6 inhibitor combinations

3. **PIK3CA (Invasive Front)**: Expression 7.8 - OUTLIER
   - Gradient pattern suggests role in invasion/metastasis
   - Potential resistance mechanism to HER2-targeted therapy

4. **PD-L1 (Lymph Node)**: Expression 2.8 - NEGATIVE OUTLIER
   - Surprisingly low despite tumor burden
   - Suggests "immune cold" phenotype
   - Checkpoint inhibitors may not benefit this subgroup

**Recommendation:** The CDK4 and PIK3CA spatial patterns suggest combination strategies beyond standard HER2-targeted therapy may be needed for optimal efficacy.`

const pdacAnswer = `**Pancreatic Cancer Model (Pdx1-Cre-LSL-KrasG12D) Analysis:**

**Key Findings:**

1. **KRAS (Ductal Epithelium)**: Expression 6.7
   - Expected oncogenic activation confirmed
   - Status: Validated

2. **TP53 (Acinar Cells)**: Expression 0.3
   - Expected loss of function pattern
   - Status: Validated

3. **MET (Liver Metastatic Foci)**: Expression 8.9 - CRITICAL OUTLIER
   - Dramatic amplification in liver metastases
   - Significantly higher than primary tumor levels
   - **Immediately actionable target for MET inhibitor therapy**
   - Validation Score: 0.91 | Confidence: 93%

**Therapeutic Implications:**
The MET amplification finding represents a critical discovery. Patients with PDAC liver metastases may benefit from MET inhibitor therapy, warranting immediate clinical investigation.`

const rankingAnswer = `**Therapeutic Targets Ranked by Validation Score:**

| Rank | Target | Indication | Score | Confidence | Outlier |
|------|--------|-----------|-------|------------|---------|
| 1 | TREM2 | Alzheimer's | 0.92 | 95% | No |
| 2 | MET | PDAC Metastasis | 0.91 | 93% | Yes |
| 3 | PIK3CA | HER2+ Breast | 0.85 | 88% | Yes |
| 4 | CDK4 | HER2+ Breast | 0.78 | 82% | Yes |
| 5 | PD-L1 | HER2+ Breast | 0.45 | 72% | Yes |
| 6 | MAPT | Alzheimer's | 0.34 | 65% | Yes |

**Analysis:**
- **TREM2** leads with the highest validation score (0.92) and confidence (95%) for Alzheimer's disease
- **MET** shows exceptional validation (0.91) as an outlier finding in pancreatic cancer metastases
- Four of the top six targets are flagged as outliers, indicating novel therapeutic opportunities
- Lower-scoring targets (PD-L1, MAPT) provide important negative signals for patient stratification`
