// Package metrics provides Prometheus metrics for the playrank leaderboard pipeline.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline stage labels.
const (
	StageReadRoster = "read_roster"
	StageReadPlays  = "read_plays"
	StageDedupe     = "dedupe"
	StageRank       = "rank"
	StageRender     = "render"
)

// Input kind labels.
const (
	InputRoster  = "roster"
	InputPlayLog = "play_log"
)

// Manager manages all Prometheus metrics for a pipeline run.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Input Metrics
	rosterEntriesLoaded prometheus.Counter
	playRecordsRead     prometheus.Counter
	inputErrors         *prometheus.CounterVec

	// Pipeline Metrics
	recordsSuperseded   prometheus.Counter
	unregisteredDropped prometheus.Counter
	distinctPlayers     prometheus.Gauge
	rowsEmitted         prometheus.Counter
	stageDuration       *prometheus.HistogramVec

	// Run Metrics
	runsTotal       *prometheus.CounterVec
	lastRunUnixTime prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// Init replaces the global manager with one built from opts on a fresh registry.
// Counters restart from zero.
func Init(opts ...Option) {
	customRegistry = prometheus.NewRegistry()
	opts = append(opts, WithPrometheusRegistry(customRegistry))
	globalManager = NewManager(opts...)
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "playrank",
		subsystem:        "pipeline",
		histogramBuckets: []float64{0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000, 5000},
		constLabels:      make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.rosterEntriesLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "roster_entries_loaded_total",
		Help:        "Total number of registered players loaded from the roster",
		ConstLabels: m.constLabels,
	})

	m.playRecordsRead = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "play_records_read_total",
		Help:        "Total number of play log rows read",
		ConstLabels: m.constLabels,
	})

	m.inputErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "input_errors_total",
			Help:        "Total number of input failures by input kind",
			ConstLabels: m.constLabels,
		},
		[]string{"input"},
	)

	m.recordsSuperseded = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "records_superseded_total",
		Help:        "Play records collapsed into an existing best score for the same player",
		ConstLabels: m.constLabels,
	})

	m.unregisteredDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "unregistered_dropped_total",
		Help:        "Best scores dropped because the player is not on the roster",
		ConstLabels: m.constLabels,
	})

	m.distinctPlayers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "distinct_players",
		Help:        "Distinct players observed in the play log of the last run",
		ConstLabels: m.constLabels,
	})

	m.rowsEmitted = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "rows_emitted_total",
		Help:        "Total number of ranked rows written to the report",
		ConstLabels: m.constLabels,
	})

	m.stageDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "stage_duration_milliseconds",
			Help:        "Duration of each pipeline stage in milliseconds",
			Buckets:     m.histogramBuckets,
			ConstLabels: m.constLabels,
		},
		[]string{"stage"},
	)

	m.runsTotal = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "runs_total",
			Help:        "Total number of pipeline runs by outcome",
			ConstLabels: m.constLabels,
		},
		[]string{"outcome"},
	)

	m.lastRunUnixTime = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "last_run_timestamp_seconds",
		Help:        "Unix time of the last completed run",
		ConstLabels: m.constLabels,
	})
}

// RecordRosterEntries adds n registered players loaded from the roster.
func RecordRosterEntries(n int) {
	globalManager.rosterEntriesLoaded.Add(float64(n))
}

// RecordPlayRecords adds n read play log rows.
func RecordPlayRecords(n int) {
	globalManager.playRecordsRead.Add(float64(n))
}

// RecordInputError increments the input error counter for the given input kind.
func RecordInputError(input string) {
	globalManager.inputErrors.WithLabelValues(input).Inc()
}

// RecordSuperseded adds n records folded into an existing best score.
func RecordSuperseded(n int) {
	globalManager.recordsSuperseded.Add(float64(n))
}

// RecordUnregisteredDropped adds n dropped unregistered players.
func RecordUnregisteredDropped(n int) {
	globalManager.unregisteredDropped.Add(float64(n))
}

// UpdateDistinctPlayers sets the distinct player gauge.
func UpdateDistinctPlayers(n int) {
	globalManager.distinctPlayers.Set(float64(n))
}

// RecordRowsEmitted adds n emitted report rows.
func RecordRowsEmitted(n int) {
	globalManager.rowsEmitted.Add(float64(n))
}

// RecordStageDuration records a stage duration in milliseconds.
func RecordStageDuration(stage string, ms float64) {
	globalManager.stageDuration.WithLabelValues(stage).Observe(ms)
}

// RecordRun increments the run counter for outcome ("success" or "failure")
// and stamps the last run time.
func RecordRun(outcome string, unixSeconds float64) {
	globalManager.runsTotal.WithLabelValues(outcome).Inc()
	globalManager.lastRunUnixTime.Set(unixSeconds)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// WriteTextfile writes the current registry contents to path in the text
// exposition format, for pickup by a node-exporter textfile collector.
func WriteTextfile(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrExportFailed)
	}
	if err := prometheus.WriteToTextfile(path, GetRegistry()); err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	return nil
}
