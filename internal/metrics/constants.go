package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric
const Namespace = "bannerparser"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Upstream metric names
const (
	MetricNameUpstreamRequestsTotal   = "upstream_requests_total"
	MetricNameUpstreamRequestDuration = "upstream_request_duration_seconds"
	MetricNameImagesDownloaded        = "images_downloaded_total"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Pipeline metric names
const (
	MetricNameNewStubs        = "new_stubs_total"
	MetricNameBannersAdded    = "banners_added_total"
	MetricNameBannersMerged   = "banners_merged_total"
	MetricNameDuplicates      = "banner_duplicates_total"
	MetricNameUnknownDrops    = "unknown_drops_total"
	MetricNameNamesUnparsed   = "banner_names_unparsed_total"
	MetricNameRunsTotal       = "runs_total"
	MetricNameRunDuration     = "run_duration_seconds"
	MetricNameLastRunUnixTime = "last_run_timestamp_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Upstream metric help text
const (
	HelpTextUpstreamRequestsTotal   = "Total number of upstream fetches by host and outcome"
	HelpTextUpstreamRequestDuration = "Upstream fetch latency in seconds"
	HelpTextImagesDownloaded        = "Total number of banner images written to disk"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Pipeline metric help text
const (
	HelpTextNewStubs        = "Total number of unseen banner stubs found upstream"
	HelpTextBannersAdded    = "Total number of banner records appended to a collection"
	HelpTextBannersMerged   = "Total number of candidates merged into an existing record"
	HelpTextDuplicates      = "Total number of candidates already present in a collection"
	HelpTextUnknownDrops    = "Total number of rate-up items missing from the catalog"
	HelpTextNamesUnparsed   = "Total number of banner titles the name resolver could not parse"
	HelpTextRunsTotal       = "Total number of game runs by status"
	HelpTextRunDuration     = "Game run duration in seconds"
	HelpTextLastRunUnixTime = "Unix time of the last completed game run"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelGame    = "game"
	LabelHost    = "host"
	LabelOutcome = "outcome"
	LabelBucket  = "bucket"
)

// Upstream outcomes
const (
	OutcomeOK          = "ok"
	OutcomeUnavailable = "unavailable"
	OutcomeSchema      = "schema"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// RunDurationBuckets covers runs from half a second to two minutes.
var RunDurationBuckets = []float64{.5, 1, 2.5, 5, 10, 20, 30, 60, 120}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
