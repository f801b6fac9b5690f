package query

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helix/internal/corpus"
	"helix/internal/models"
)

type spyProducer struct {
	mu        sync.Mutex
	calls     int
	assembled []string
	answer    string
	err       error
}

func (p *spyProducer) Mode() string { return "spy" }

func (p *spyProducer) Answer(_ context.Context, _ string, assembled string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.assembled = append(p.assembled, assembled)
	return p.answer, p.err
}

type stubGenerator struct {
	text         string
	err          error
	systemPrompt string
	userQuery    string
}

func (g *stubGenerator) Name() string { return "stub" }

func (g *stubGenerator) Generate(_ context.Context, systemPrompt, userQuery string) (string, error) {
	g.systemPrompt = systemPrompt
	g.userQuery = userQuery
	return g.text, g.err
}

func TestServiceRejectsBlankQueryBeforeProducing(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		spy := &spyProducer{answer: "unused"}
		svc := NewService(corpus.Default(), spy, 5, nil)

		result, err := svc.Handle(context.Background(), q)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidQuery)
		assert.Contains(t, err.Error(), "query is required")
		assert.Nil(t, result)
		assert.Zero(t, spy.calls, "producer must not run for %q", q)
	}
}

func TestServiceRejectsOversizedQuery(t *testing.T) {
	spy := &spyProducer{}
	svc := NewService(corpus.Default(), spy, 5, nil)

	_, err := svc.Handle(context.Background(), strings.Repeat("a", 5000))

	assert.ErrorIs(t, err, ErrInvalidQuery)
	assert.Zero(t, spy.calls)
}

func TestServiceHandleLocal(t *testing.T) {
	c := corpus.Default()
	svc := NewService(c, NewLocalProducer(c, nil), 5, nil)
	q := "What are the outliers in therapeutic target validation?"

	result, err := svc.Handle(context.Background(), q)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, result.ID)
	assert.Equal(t, q, result.Query)
	assert.Equal(t, models.ModeLocal, result.Mode)
	assert.Contains(t, result.Answer, "MET Amplification in PDAC Metastases")
	assert.Contains(t, result.Answer, "Validation Score: 0.91")
	assert.Equal(t, AssembleContext(q, c), result.Context)
	assert.Equal(t, 14, result.TotalRecords)
	assert.Equal(t, 6, result.TotalTargets)
	assert.Len(t, result.Records, 5)
	assert.WithinDuration(t, time.Now(), result.GeneratedAt, time.Minute)
}

func TestServicePassesAssembledContextToProducer(t *testing.T) {
	c := corpus.Default()
	spy := &spyProducer{answer: "ok"}
	svc := NewService(c, spy, 5, nil)

	_, err := svc.Handle(context.Background(), "spatial")
	require.NoError(t, err)

	require.Len(t, spy.assembled, 1)
	assert.Equal(t, AssembleContext("spatial", c), spy.assembled[0])
}

func TestServiceRecomputesEveryCall(t *testing.T) {
	spy := &spyProducer{answer: "ok"}
	svc := NewService(corpus.Default(), spy, 5, nil)

	first, err := svc.Handle(context.Background(), "TREM2")
	require.NoError(t, err)
	second, err := svc.Handle(context.Background(), "TREM2")
	require.NoError(t, err)

	assert.Equal(t, 2, spy.calls)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Context, second.Context)
	require.NotEmpty(t, first.Records)
	assert.Equal(t, "ST-001", first.Records[0].ID)
}

func TestServiceRecordLimit(t *testing.T) {
	svc := NewService(corpus.Default(), &spyProducer{answer: "ok"}, 2, nil)

	result, err := svc.Handle(context.Background(), "outlier")
	require.NoError(t, err)
	assert.Len(t, result.Records, 2)
}

func TestServiceUpstreamFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection refused")}
	svc := NewService(corpus.Default(), NewDelegatedProducer(gen, nil), 5, nil)

	result, err := svc.Handle(context.Background(), "TREM2")

	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestServiceWrapsUnknownProducerErrors(t *testing.T) {
	svc := NewService(corpus.Default(), &spyProducer{err: errors.New("boom")}, 5, nil)

	_, err := svc.Handle(context.Background(), "TREM2")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestDelegatedProducer(t *testing.T) {
	c := corpus.Default()
	q := "Which targets are outliers?"
	assembled := AssembleContext(q, c)

	t.Run("sends system prompt and raw query", func(t *testing.T) {
		gen := &stubGenerator{text: "MET is the strongest outlier."}
		p := NewDelegatedProducer(gen, nil)

		answer, err := p.Answer(context.Background(), q, assembled)
		require.NoError(t, err)

		assert.Equal(t, "MET is the strongest outlier.", answer)
		assert.Equal(t, q, gen.userQuery)
		assert.Contains(t, gen.systemPrompt, "You have access to the following research data context:\n\n"+assembled+"\n\n")
		assert.Contains(t, gen.systemPrompt, "6. If data is insufficient, clearly state limitations")
		assert.True(t, strings.HasSuffix(gen.systemPrompt, "Accuracy and scientific rigor are paramount."))
		assert.Equal(t, models.ModeDelegated, p.Mode())
	})

	t.Run("empty generation uses placeholder", func(t *testing.T) {
		p := NewDelegatedProducer(&stubGenerator{text: "  \n"}, nil)

		answer, err := p.Answer(context.Background(), q, assembled)
		require.NoError(t, err)
		assert.Equal(t, EmptyGenerationAnswer, answer)
	})

	t.Run("errors are wrapped", func(t *testing.T) {
		p := NewDelegatedProducer(&stubGenerator{err: context.DeadlineExceeded}, nil)

		_, err := p.Answer(context.Background(), q, assembled)
		assert.ErrorIs(t, err, ErrUpstream)
	})
}

func TestServiceConcurrentUse(t *testing.T) {
	c := corpus.Default()
	svc := NewService(c, NewLocalProducer(c, nil), 5, nil)
	want := AssembleContext("spatial outlier", c)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := svc.Handle(context.Background(), "spatial outlier")
			if err != nil {
				errs <- err
				return
			}
			if result.Context != want {
				errs <- errors.New("context differs between concurrent calls")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestNewResponse(t *testing.T) {
	id := uuid.New()
	at := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	result := &models.QueryResult{
		ID:           id,
		Answer:       "answer",
		Context:      strings.Repeat("x", 600),
		TotalRecords: 14,
		TotalTargets: 6,
		Mode:         models.ModeLocal,
		GeneratedAt:  at,
	}

	resp := NewResponse(result, 500)

	assert.Equal(t, "answer", resp.Answer)
	assert.Equal(t, strings.Repeat("x", 500)+"...", resp.ContextPreview)
	assert.NotNil(t, resp.MatchedRecords)
	assert.Empty(t, resp.MatchedRecords)
	assert.Equal(t, 14, resp.Counters.TotalRecords)
	assert.Equal(t, 6, resp.Counters.TotalTargets)
	assert.Equal(t, at, resp.Counters.Timestamp)
	assert.Equal(t, id, resp.Counters.QueryID)

	short := NewResponse(&models.QueryResult{Context: "short"}, 0)
	assert.Equal(t, "short...", short.ContextPreview)
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, Fingerprint("TREM2"), Fingerprint("TREM2"))
	assert.NotEqual(t, Fingerprint("TREM2"), Fingerprint("trem2"))
	assert.NotContains(t, Fingerprint("TREM2"), "TREM2")
}
