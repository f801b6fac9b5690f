package db

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"helix/internal/corpus"
	"helix/internal/models"
)

// LoadCorpus reads both corpus tables in position order and returns them as
// an immutable corpus. It is called once at startup; nothing writes to these
// tables at runtime.
func (d *DB) LoadCorpus(ctx context.Context) (*corpus.Corpus, error) {
	var (
		records []models.ObservationRecord
		targets []models.TargetSummary
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		records, err = d.GetObservationRecords(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		targets, err = d.GetTargetSummaries(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrEmptyCorpus
	}

	return corpus.New(records, targets), nil
}

// GetObservationRecords returns every observation record in position order.
func (d *DB) GetObservationRecords(ctx context.Context) ([]models.ObservationRecord, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, observed_on, mouse_model, tissue, gene, expression_level,
		       normalized_expression, spatial_region, experiment_id, researcher,
		       validation_status, notes, therapeutic_relevance
		FROM observation_records
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.ObservationRecord
	for rows.Next() {
		var (
			r  models.ObservationRecord
			on time.Time
		)
		if err := rows.Scan(
			&r.ID, &on, &r.MouseModel, &r.Tissue, &r.Gene, &r.ExpressionLevel,
			&r.NormalizedExpression, &r.SpatialRegion, &r.ExperimentID, &r.Researcher,
			&r.ValidationStatus, &r.Notes, &r.TherapeuticRelevance,
		); err != nil {
			return nil, err
		}
		r.Date = models.Date{Time: on.UTC()}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetTargetSummaries returns every target summary in position order.
func (d *DB) GetTargetSummaries(ctx context.Context) ([]models.TargetSummary, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT target_id, gene_name, pathway, disease_indication, validation_score,
		       outlier_flag, confidence_level, supporting_experiments, last_updated, summary
		FROM target_summaries
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var targets []models.TargetSummary
	for rows.Next() {
		var (
			t       models.TargetSummary
			updated time.Time
		)
		if err := rows.Scan(
			&t.TargetID, &t.GeneName, &t.Pathway, &t.DiseaseIndication, &t.ValidationScore,
			&t.OutlierFlag, &t.ConfidenceLevel, &t.SupportingExperiments, &updated, &t.Summary,
		); err != nil {
			return nil, err
		}
		t.LastUpdated = models.Date{Time: updated.UTC()}
		targets = append(targets, t)
	}
	return targets, rows.Err()
}
