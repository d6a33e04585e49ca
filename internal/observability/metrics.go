package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the ACE
// processing run.
type Metrics struct {
	FilesProcessed  prometheus.Counter
	FixesParsed     prometheus.Counter
	DuplicateFixes  prometheus.Counter
	StormsPublished prometheus.Counter

	EnergyAccumulated *prometheus.CounterVec // label: basin

	FileProcessingDuration prometheus.Histogram
	RunActive              prometheus.Gauge
}

// NewMetrics creates and registers all run metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FilesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bdeck_ace",
			Name:      "files_processed_total",
			Help:      "Total b-deck files processed.",
		}),
		FixesParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bdeck_ace",
			Name:      "fixes_parsed_total",
			Help:      "Total fix records decoded after deduplication.",
		}),
		DuplicateFixes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bdeck_ace",
			Name:      "duplicate_fixes_total",
			Help:      "Total lines dropped for repeating the previous timestamp.",
		}),
		StormsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bdeck_ace",
			Name:      "storms_published_total",
			Help:      "Total storm summaries published to the sink topic.",
		}),
		EnergyAccumulated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bdeck_ace",
			Name:      "energy_accumulated_total",
			Help:      "ACE energy accumulated in integer kt², by basin.",
		}, []string{"basin"}),
		FileProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bdeck_ace",
			Name:      "file_processing_duration_seconds",
			Help:      "Duration of one extract-aggregate cycle for a file.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}),
		RunActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bdeck_ace",
			Name:      "run_active",
			Help:      "1 while a processing run is in progress, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.FilesProcessed,
		m.FixesParsed,
		m.DuplicateFixes,
		m.StormsPublished,
		m.EnergyAccumulated,
		m.FileProcessingDuration,
		m.RunActive,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FilesProcessed:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "bdeck_ace", Name: "files_processed_total"}),
		FixesParsed:            prometheus.NewCounter(prometheus.CounterOpts{Namespace: "bdeck_ace", Name: "fixes_parsed_total"}),
		DuplicateFixes:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "bdeck_ace", Name: "duplicate_fixes_total"}),
		StormsPublished:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "bdeck_ace", Name: "storms_published_total"}),
		EnergyAccumulated:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "bdeck_ace", Name: "energy_accumulated_total"}, []string{"basin"}),
		FileProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "bdeck_ace", Name: "file_processing_duration_seconds"}),
		RunActive:              prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "bdeck_ace", Name: "run_active"}),
	}
}
