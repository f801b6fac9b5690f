// Package corpus holds the read-only research corpus the query router runs
// against. A Corpus is built once at startup and never mutated; accessors
// return copies.
package corpus

import (
	"strings"

	"helix/internal/models"
)

// Corpus is an immutable collection of observation records and target
// summaries.
type Corpus struct {
	records []models.ObservationRecord
	targets []models.TargetSummary
}

// New builds a corpus from the given records and targets. The slices are
// copied so later changes by the caller are not observed.
func New(records []models.ObservationRecord, targets []models.TargetSummary) *Corpus {
	c := &Corpus{
		records: make([]models.ObservationRecord, len(records)),
		targets: make([]models.TargetSummary, len(targets)),
	}
	copy(c.records, records)
	copy(c.targets, targets)
	return c
}

// Records returns all observation records in corpus order.
func (c *Corpus) Records() []models.ObservationRecord {
	out := make([]models.ObservationRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Targets returns all target summaries in corpus order.
func (c *Corpus) Targets() []models.TargetSummary {
	out := make([]models.TargetSummary, len(c.targets))
	copy(out, c.targets)
	return out
}

// RecordCount returns the number of observation records.
func (c *Corpus) RecordCount() int {
	return len(c.records)
}

// TargetCount returns the number of target summaries.
func (c *Corpus) TargetCount() int {
	return len(c.targets)
}

// Empty returns true if the corpus holds no data at all.
func (c *Corpus) Empty() bool {
	return len(c.records) == 0 && len(c.targets) == 0
}

// Outliers returns the records whose validation status is outlier.
func (c *Corpus) Outliers() []models.ObservationRecord {
	return c.FilterRecords(func(r models.ObservationRecord) bool {
		return r.IsOutlier()
	})
}

// OutlierTargets returns the targets carrying the outlier flag.
func (c *Corpus) OutlierTargets() []models.TargetSummary {
	return c.FilterTargets(func(t models.TargetSummary) bool {
		return t.OutlierFlag
	})
}

// RecordsByStatus returns the records with the given validation status.
func (c *Corpus) RecordsByStatus(status string) []models.ObservationRecord {
	return c.FilterRecords(func(r models.ObservationRecord) bool {
		return r.ValidationStatus == status
	})
}

// Search returns the records whose gene, mouse model, tissue, notes or
// spatial region contain term, ignoring case.
func (c *Corpus) Search(term string) []models.ObservationRecord {
	term = strings.ToLower(term)
	return c.FilterRecords(func(r models.ObservationRecord) bool {
		return strings.Contains(strings.ToLower(r.Gene), term) ||
			strings.Contains(strings.ToLower(r.MouseModel), term) ||
			strings.Contains(strings.ToLower(r.Tissue), term) ||
			strings.Contains(strings.ToLower(r.Notes), term) ||
			strings.Contains(strings.ToLower(r.SpatialRegion), term)
	})
}

// TargetsByIndication returns the targets whose disease indication contains
// indication, ignoring case.
func (c *Corpus) TargetsByIndication(indication string) []models.TargetSummary {
	indication = strings.ToLower(indication)
	return c.FilterTargets(func(t models.TargetSummary) bool {
		return strings.Contains(strings.ToLower(t.DiseaseIndication), indication)
	})
}

// MouseModels returns the distinct mouse models in first-occurrence order.
func (c *Corpus) MouseModels() []string {
	seen := make(map[string]bool)
	var names []string
	for i := range c.records {
		m := c.records[i].MouseModel
		if !seen[m] {
			seen[m] = true
			names = append(names, m)
		}
	}
	return names
}

// FilterRecords returns the records for which keep returns true, in corpus
// order.
func (c *Corpus) FilterRecords(keep func(models.ObservationRecord) bool) []models.ObservationRecord {
	var out []models.ObservationRecord
	for i := range c.records {
		if keep(c.records[i]) {
			out = append(out, c.records[i])
		}
	}
	return out
}

// FilterTargets returns the targets for which keep returns true, in corpus
// order.
func (c *Corpus) FilterTargets(keep func(models.TargetSummary) bool) []models.TargetSummary {
	var out []models.TargetSummary
	for i := range c.targets {
		if keep(c.targets[i]) {
			out = append(out, c.targets[i])
		}
	}
	return out
}
