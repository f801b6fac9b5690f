package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"helix/internal/corpus"
)

var (
	corpusRecordsDesc = prometheus.NewDesc(
		"helix_corpus_records",
		"Number of corpus entries by kind",
		[]string{"kind"},
		nil,
	)

	queriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "helix_queries_total",
		Help: "Total queries handled by answer mode and outcome",
	}, []string{"mode", "outcome"})

	queryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "helix_query_duration_seconds",
		Help:    "Query handling latency by answer mode",
		Buckets: prometheus.DefBuckets,
	}, []string{"mode"})

	contextSections = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "helix_context_sections_total",
		Help: "Context sections written by the assembler",
	}, []string{"section"})

	upstreamDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "helix_upstream_request_duration_seconds",
		Help:    "Text generation request latency by provider and outcome",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"provider", "outcome"})

	promptTokens = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "helix_prompt_tokens",
		Help:    "Prompt size in tokens sent upstream",
		Buckets: prometheus.ExponentialBuckets(64, 2, 8),
	})

	emptyGenerations = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "helix_empty_generations_total",
		Help: "Upstream completions that returned no usable text",
	})
)

// CorpusCollector is a custom Prometheus collector that reports corpus sizes
// on each scrape.
type CorpusCollector struct {
	corpus *corpus.Corpus
}

// Describe sends the metric descriptor to the channel.
func (c *CorpusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- corpusRecordsDesc
}

// Collect emits one gauge per corpus kind.
func (c *CorpusCollector) Collect(ch chan<- prometheus.Metric) {
	counts := map[string]int{
		"records":         c.corpus.RecordCount(),
		"targets":         c.corpus.TargetCount(),
		"outlier_records": len(c.corpus.Outliers()),
		"outlier_targets": len(c.corpus.OutlierTargets()),
	}
	for kind, n := range counts {
		ch <- prometheus.MustNewConstMetric(corpusRecordsDesc, prometheus.GaugeValue, float64(n), kind)
	}
}

var initOnce sync.Once

// Init registers the collectors with the default registry.
// Must be called once at startup.
func Init(c *corpus.Corpus) {
	initOnce.Do(func() {
		prometheus.MustRegister(
			&CorpusCollector{corpus: c},
			queriesTotal,
			queryDuration,
			contextSections,
			upstreamDuration,
			promptTokens,
			emptyGenerations,
		)
	})
}

// RecordQuery counts one handled query and observes its latency.
func RecordQuery(mode, outcome string, elapsed time.Duration) {
	queriesTotal.WithLabelValues(mode, outcome).Inc()
	queryDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
}

// RecordSections counts the context sections written for one query.
func RecordSections(sections []string) {
	for _, s := range sections {
		contextSections.WithLabelValues(s).Inc()
	}
}

// RecordUpstream observes one text generation request.
func RecordUpstream(provider, outcome string, elapsed time.Duration) {
	upstreamDuration.WithLabelValues(provider, outcome).Observe(elapsed.Seconds())
}

// RecordPromptTokens observes the token count of a prompt sent upstream.
func RecordPromptTokens(n int) {
	promptTokens.Observe(float64(n))
}

// RecordEmptyGeneration counts a completion with no usable text.
func RecordEmptyGeneration() {
	emptyGenerations.Inc()
}
