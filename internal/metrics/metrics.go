package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)
)

// Upstream Metrics
var (
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameUpstreamRequestsTotal,
			Help:      HelpTextUpstreamRequestsTotal,
		},
		[]string{LabelHost, LabelOutcome},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameUpstreamRequestDuration,
			Help:      HelpTextUpstreamRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelHost},
	)

	ImagesDownloaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameImagesDownloaded,
			Help:      HelpTextImagesDownloaded,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameEventsPublished,
			Help:      HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameEventHandlerErrors,
			Help:      HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Pipeline Metrics
var (
	NewStubs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameNewStubs,
			Help:      HelpTextNewStubs,
		},
		[]string{LabelGame},
	)

	BannersAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameBannersAdded,
			Help:      HelpTextBannersAdded,
		},
		[]string{LabelGame, LabelBucket},
	)

	BannersMerged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameBannersMerged,
			Help:      HelpTextBannersMerged,
		},
		[]string{LabelGame, LabelBucket},
	)

	Duplicates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameDuplicates,
			Help:      HelpTextDuplicates,
		},
		[]string{LabelGame},
	)

	UnknownDrops = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameUnknownDrops,
			Help:      HelpTextUnknownDrops,
		},
		[]string{LabelGame, LabelType},
	)

	NamesUnparsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameNamesUnparsed,
			Help:      HelpTextNamesUnparsed,
		},
		[]string{LabelGame},
	)

	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameRunsTotal,
			Help:      HelpTextRunsTotal,
		},
		[]string{LabelGame, LabelStatus},
	)

	RunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameRunDuration,
			Help:      HelpTextRunDuration,
			Buckets:   RunDurationBuckets,
		},
		[]string{LabelGame},
	)

	LastRunTimestamp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameLastRunUnixTime,
			Help:      HelpTextLastRunUnixTime,
		},
		[]string{LabelGame},
	)
)
