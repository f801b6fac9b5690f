package query

import (
	"strings"
	"testing"

	"helix/internal/corpus"
)

func TestLocalAnswerTemplateSelection(t *testing.T) {
	c := corpus.Default()

	tests := []struct {
		name     string
		query    string
		template string
		contains string
	}{
		{"outliers", "What are the outliers in therapeutic target validation?", "outliers", "MET Amplification in PDAC Metastases"},
		{"validation alone", "Which targets have the highest validation scores?", "outliers", "**Critical Findings:**"},
		{"alzheimer", "Show me findings from the APP/PS1 Alzheimer's model", "alzheimer", "**Alzheimer's Disease Model (APP/PS1) Analysis:**"},
		{"trem2", "tell me about TREM2", "alzheimer", "TREM2 agonism"},
		{"her2", "HER2 positive tumors", "her2", "**HER2+ Breast Cancer Model (BALB/c-HER2) Analysis:**"},
		{"breast", "breast cancer", "her2", "CDK4 (Tumor Periphery)"},
		{"pancreatic", "pancreatic metastasis", "pdac", "**Pancreatic Cancer Model (Pdx1-Cre-LSL-KrasG12D) Analysis:**"},
		{"kras", "KRAS", "pdac", "Validation Score: 0.91 | Confidence: 93%"},
		{"ranking", "rank by highest score", "ranking", "| 1 | TREM2 | Alzheimer's | 0.92 | 95% | No |"},
		{"alzheimer beats her2", "alzheimer and her2", "alzheimer", "APP/PS1"},
		{"default", "zzzznotmatchinganything", "overview", "**Data Summary:**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := localTemplateName(tt.query); got != tt.template {
				t.Errorf("localTemplateName(%q) = %q, want %q", tt.query, got, tt.template)
			}
			answer := LocalAnswer(tt.query, AssembleContext(tt.query, c), c)
			if !strings.Contains(answer, tt.contains) {
				t.Errorf("answer for %q missing %q:\n%s", tt.query, tt.contains, answer)
			}
		})
	}
}

func TestLocalAnswerOutlierTemplate(t *testing.T) {
	c := corpus.Default()
	q := "What are the outliers in therapeutic target validation?"
	answer := LocalAnswer(q, AssembleContext(q, c), c)

	for _, want := range []string{
		"**5 significant outliers**",
		"1. **MET Amplification in PDAC Metastases** (Validation Score: 0.91)",
		"Confidence Level: 93%\n",
		`4. **PD-L1 "Cold" Phenotype** (Validation Score: 0.45)`,
	} {
		if !strings.Contains(answer, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestLocalAnswerOverviewUsesLiveCounts(t *testing.T) {
	c := corpus.Default()
	q := "zzzznotmatchinganything"
	answer := LocalAnswer(q, AssembleContext(q, c), c)

	for _, want := range []string{
		"- Total experiments analyzed: 14\n",
		"- Mouse models covered: 4 (C57BL/6-APP/PS1, BALB/c-HER2, NOD-SCID-IL2Rg, Pdx1-Cre-LSL-KrasG12D)\n",
		"- Therapeutic targets tracked: 6\n",
		"- Outlier findings: 5\n",
		"**Context Excerpt:**\n## Research Data Overview",
		"- \"Which targets have the highest validation scores?\"",
	} {
		if !strings.Contains(answer, want) {
			t.Errorf("missing %q in:\n%s", want, answer)
		}
	}

	small := corpus.New(c.Records()[:2], nil)
	answer = LocalAnswer(q, AssembleContext(q, small), small)
	if !strings.Contains(answer, "- Total experiments analyzed: 2\n") {
		t.Errorf("expected live record count, got:\n%s", answer)
	}
	if !strings.Contains(answer, "- Mouse models covered: 1 (C57BL/6-APP/PS1)\n") {
		t.Errorf("expected live model list, got:\n%s", answer)
	}
}
