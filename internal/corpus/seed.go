package corpus

import (
	"time"

	"helix/internal/models"
)

// Default returns the built-in corpus: six months of simulated in vivo
// spatial transcriptomics results and the aggregated target summaries.
func Default() *Corpus {
	return New(seedRecords(), seedTargets())
}

func seedRecords() []models.ObservationRecord {
	return []models.ObservationRecord{
		{
			ID:                   "ST-001",
			Date:                 models.NewDate(2025, time.July, 15),
			MouseModel:           "C57BL/6-APP/PS1",
			Tissue:               "Hippocampus",
			Gene:                 "TREM2",
			ExpressionLevel:      2847,
			NormalizedExpression: 3.2,
			SpatialRegion:        "CA1",
			ExperimentID:         "EXP-2025-0142",
			Researcher:           "Dr. Chen",
			ValidationStatus:     models.StatusValidated,
			Notes:                "Elevated microglial activation consistent with AD model",
			TherapeuticRelevance: models.RelevanceHigh,
		},
		{
			ID:                   "ST-002",
			Date:                 models.NewDate(2025, time.July, 22),
			MouseModel:           "C57BL/6-APP/PS1",
			Tissue:               "Hippocampus",
			Gene:                 "APOE",
			ExpressionLevel:      4521,
			NormalizedExpression: 4.8,
			SpatialRegion:        "Dentate Gyrus",
			ExperimentID:         "EXP-2025-0143",
			Researcher:           "Dr. Chen",
			ValidationStatus:     models.StatusValidated,
			Notes:                "Strong correlation with amyloid deposition regions",
			TherapeuticRelevance: models.RelevanceHigh,
		},
		{
			ID:                   "ST-003",
			Date:                 models.NewDate(2025, time.August, 5),
			MouseModel:           "BALB/c-HER2",
			Tissue:               "Mammary Tumor",
			Gene:                 "ERBB2",
			ExpressionLevel:      8932,
			NormalizedExpression: 7.1,
			SpatialRegion:        "Tumor Core",
			ExperimentID:         "EXP-2025-0156",
			Researcher:           "Dr. Patel",
			ValidationStatus:     models.StatusValidated,
			Notes:                "Expected overexpression in HER2+ model",
			TherapeuticRelevance: models.RelevanceHigh,
		},
		{
			ID:                   "ST-004",
			Date:                 models.NewDate(2025, time.August, 12),
			MouseModel:           "BALB/c-HER2",
			Tissue:               "Mammary Tumor",
			Gene:                 "CDK4",
			ExpressionLevel:      6234,
			NormalizedExpression: 5.9,
			SpatialRegion:        "Tumor Periphery",
			ExperimentID:         "EXP-2025-0157",
			Researcher:           "Dr. Patel",
			ValidationStatus:     models.StatusOutlier,
			Notes:                "OUTLIER: Unexpectedly high expression at tumor boundary - potential novel therapeutic angle",
			TherapeuticRelevance: models.RelevanceHigh,
		},
		{
			ID:                   "ST-005",
			Date:                 models.NewDate(2025, time.September, 3),
			MouseModel:           "NOD-SCID-IL2Rg",
			Tissue:               "Spleen",
			Gene:                 "CD19",
			ExpressionLevel:      12450,
			NormalizedExpression: 8.4,
			SpatialRegion:        "White Pulp",
			ExperimentID:         "EXP-2025-0189",
			Researcher:           "Dr. Kim",
			ValidationStatus:     models.StatusValidated,
			Notes:                "CAR-T target validation study",
			TherapeuticRelevance: models.RelevanceHigh,
		},
		{
			ID:                   "ST-006",
			Date:                 models.NewDate(2025, time.September, 18),
			MouseModel:           "C57BL/6-APP/PS1",
			Tissue:               "Cortex",
			Gene:                 "MAPT",
			ExpressionLevel:      567,
			NormalizedExpression: 0.8,
			SpatialRegion:        "Layer V",
			ExperimentID:         "EXP-2025-0201",
			Researcher:           "Dr. Chen",
			ValidationStatus:     models.StatusOutlier,
			Notes:                "OUTLIER: Unexpectedly LOW tau expression in AD model - verify sample integrity",
			TherapeuticRelevance: models.RelevanceMedium,
		},
		{
			ID:                   "ST-007",
			Date:                 models.NewDate(2025, time.October, 2),
			MouseModel:           "Pdx1-Cre-LSL-KrasG12D",
			Tissue:               "Pancreas",
			Gene:                 "KRAS",
			ExpressionLevel:      7823,
			NormalizedExpression: 6.7,
			SpatialRegion:        "Ductal Epithelium",
			ExperimentID:         "EXP-2025-0215",
			Researcher:           "Dr. Martinez",
			ValidationStatus:     models.StatusValidated,
			Notes:                "PDAC model showing expected oncogenic KRAS activation",
			TherapeuticRelevance: models.RelevanceHigh,
		},
		{
			ID:                   "ST-008",
			Date:                 models.NewDate(2025, time.October, 15),
			MouseModel:           "Pdx1-Cre-LSL-KrasG12D",
			Tissue:               "Pancreas",
			Gene:                 "TP53",
			ExpressionLevel:      234,
			NormalizedExpression: 0.3,
			SpatialRegion:        "Acinar Cells",
			ExperimentID:         "EXP-2025-0216",
			Researcher:           "Dr. Martinez",
			ValidationStatus:     models.StatusValidated,
			Notes:                "Expected p53 loss of function",
			TherapeuticRelevance: models.RelevanceMedium,
		},
		{
			ID:                   "ST-009",
			Date:                 models.NewDate(2025, time.November, 8),
			MouseModel:           "BALB/c-HER2",
			Tissue:               "Mammary Tumor",
			Gene:                 "PIK3CA",
			ExpressionLevel:      9876,
			NormalizedExpression: 7.8,
			SpatialRegion:        "Invasive Front",
			ExperimentID:         "EXP-2025-0234",
			Researcher:           "Dr. Patel",
			ValidationStatus:     models.StatusOutlier,
			Notes:                "OUTLIER: PIK3CA shows unexpected spatial gradient - potential resistance mechanism",
			TherapeuticRelevance: models.RelevanceHigh,
		},
		{
			ID:                   "ST-010",
			Date:                 models.NewDate(2025, time.November, 22),
			MouseModel:           "C57BL/6-APP/PS1",
			Tissue:               "Hippocampus",
			Gene:                 "BACE1",
			ExpressionLevel:      3456,
			NormalizedExpression: 3.9,
			SpatialRegion:        "CA3",
			ExperimentID:         "EXP-2025-0245",
			Researcher:           "Dr. Chen",
			ValidationStatus:     models.StatusValidated,
			Notes:                "Beta-secretase levels consistent with AD pathology",
			TherapeuticRelevance: models.RelevanceHigh,
		},
		{
			ID:                   "ST-011",
			Date:                 models.NewDate(2025, time.December, 5),
			MouseModel:           "NOD-SCID-IL2Rg",
			Tissue:               "Bone Marrow",
			Gene:                 "BCMA",
			ExpressionLevel:      5678,
			NormalizedExpression: 5.2,
			SpatialRegion:        "Plasma Cell Niche",
			ExperimentID:         "EXP-2025-0267",
			Researcher:           "Dr. Kim",
			ValidationStatus:     models.StatusValidated,
			Notes:                "Multiple myeloma target validation",
			TherapeuticRelevance: models.RelevanceHigh,
		},
		{
			ID:                   "ST-012",
			Date:                 models.NewDate(2025, time.December, 18),
			MouseModel:           "Pdx1-Cre-LSL-KrasG12D",
			Tissue:               "Liver",
			Gene:                 "MET",
			ExpressionLevel:      11234,
			NormalizedExpression: 8.9,
			SpatialRegion:        "Metastatic Foci",
			ExperimentID:         "EXP-2025-0278",
			Researcher:           "Dr. Martinez",
			ValidationStatus:     models.StatusOutlier,
			Notes:                "OUTLIER: Dramatic MET amplification in liver metastases - actionable target",
			TherapeuticRelevance: models.RelevanceHigh,
		},
		{
			ID:                   "ST-013",
			Date:                 models.NewDate(2026, time.January, 8),
			MouseModel:           "C57BL/6-APP/PS1",
			Tissue:               "Cortex",
			Gene:                 "CLU",
			ExpressionLevel:      4123,
			NormalizedExpression: 4.5,
			SpatialRegion:        "Layer II/III",
			ExperimentID:         "EXP-2026-0012",
			Researcher:           "Dr. Chen",
			ValidationStatus:     models.StatusUnderReview,
			Notes:                "Clusterin elevation needs cross-validation",
			TherapeuticRelevance: models.RelevanceMedium,
		},
		{
			ID:                   "ST-014",
			Date:                 models.NewDate(2026, time.January, 15),
			MouseModel:           "BALB/c-HER2",
			Tissue:               "Lymph Node",
			Gene:                 "PD-L1",
			ExpressionLevel:      2345,
			NormalizedExpression: 2.8,
			SpatialRegion:        "Germinal Center",
			ExperimentID:         "EXP-2026-0023",
			Researcher:           "Dr. Patel",
			ValidationStatus:     models.StatusOutlier,
			Notes:                "OUTLIER: Low PD-L1 despite tumor burden - immune cold phenotype?",
			TherapeuticRelevance: models.RelevanceHigh,
		},
	}
}

func seedTargets() []models.TargetSummary {
	return []models.TargetSummary{
		{
			TargetID:              "TGT-001",
			GeneName:              "TREM2",
			Pathway:               "Microglial Activation / Neuroinflammation",
			DiseaseIndication:     "Alzheimers Disease",
			ValidationScore:       0.92,
			OutlierFlag:           false,
			ConfidenceLevel:       0.95,
			SupportingExperiments: 8,
			LastUpdated:           models.NewDate(2026, time.January, 20),
			Summary:               "TREM2 agonism shows consistent therapeutic potential across multiple AD models with strong spatial correlation to amyloid plaques.",
		},
		{
			TargetID:              "TGT-002",
			GeneName:              "CDK4",
			Pathway:               "Cell Cycle Regulation",
			DiseaseIndication:     "HER2+ Breast Cancer",
			ValidationScore:       0.78,
			OutlierFlag:           true,
			ConfidenceLevel:       0.82,
			SupportingExperiments: 4,
			LastUpdated:           models.NewDate(2026, time.January, 18),
			Summary:               "OUTLIER FINDING: CDK4 shows unexpected spatial enrichment at tumor periphery, suggesting potential combination therapy with CDK4/6 inhibitors in HER2+ setting.",
		},
		{
			TargetID:              "TGT-003",
			GeneName:              "PIK3CA",
			Pathway:               "PI3K/AKT/mTOR Signaling",
			DiseaseIndication:     "HER2+ Breast Cancer",
			ValidationScore:       0.85,
			OutlierFlag:           true,
			ConfidenceLevel:       0.88,
			SupportingExperiments: 6,
			LastUpdated:           models.NewDate(2026, time.January, 22),
			Summary:               "OUTLIER FINDING: Spatial transcriptomics reveals PIK3CA gradient at invasive tumor front - potential driver of treatment resistance and metastasis.",
		},
		{
			TargetID:              "TGT-004",
			GeneName:              "MET",
			Pathway:               "Receptor Tyrosine Kinase",
			DiseaseIndication:     "Pancreatic Cancer Metastasis",
			ValidationScore:       0.91,
			OutlierFlag:           true,
			ConfidenceLevel:       0.93,
			SupportingExperiments: 3,
			LastUpdated:           models.NewDate(2026, time.January, 25),
			Summary:               "CRITICAL OUTLIER: MET amplification dramatically elevated in PDAC liver metastases vs primary tumor - immediate actionable target for MET inhibitor therapy.",
		},
		{
			TargetID:              "TGT-005",
			GeneName:              "PD-L1",
			Pathway:               "Immune Checkpoint",
			DiseaseIndication:     "HER2+ Breast Cancer",
			ValidationScore:       0.45,
			OutlierFlag:           true,
			ConfidenceLevel:       0.72,
			SupportingExperiments: 5,
			LastUpdated:           models.NewDate(2026, time.January, 28),
			Summary:               "NEGATIVE OUTLIER: Unexpectedly low PD-L1 despite high tumor burden suggests immune-cold phenotype - checkpoint inhibitors unlikely to benefit this subgroup.",
		},
		{
			TargetID:              "TGT-006",
			GeneName:              "MAPT",
			Pathway:               "Tau Protein / Neurodegeneration",
			DiseaseIndication:     "Alzheimers Disease",
			ValidationScore:       0.34,
			OutlierFlag:           true,
			ConfidenceLevel:       0.65,
			SupportingExperiments: 2,
			LastUpdated:           models.NewDate(2026, time.January, 15),
			Summary:               "OUTLIER: Unexpectedly low tau expression in APP/PS1 model cortex - requires sample verification or may indicate model-specific limitation.",
		},
	}
}
