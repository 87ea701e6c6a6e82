package bootstrap

// File system permissions
const (
	DirPermission     = 0755
	LogFilePermission = 0666
)

// Logger configuration
const (
	// LogFileTimestampFormat sorts lexically in creation order
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"

	// LogFileRetentionCount is the number of older log files kept alongside the new one
	LogFileRetentionCount = 9
)

// Log messages for startup
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting banner parser"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgNotifierDisabled           = "Discord notifications disabled"
	LogMsgNotifierEnabled            = "Discord notifications enabled"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventAudit                 = "Event published"
	ErrMsgFailedCreateDeadLetterDir  = "failed to create dead-letter directory"
	ErrMsgFailedCreateResilientPub   = "failed to create resilient publisher"
	ErrMsgFailedCreateNotifier       = "failed to create discord notifier"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedResolveGames         = "failed to resolve configured games"
	ErrMsgFailedBuildAdapter         = "failed to build game adapter"
)

// Log messages for shutdown
const (
	LogMsgShuttingDown               = "Shutting down"
	LogMsgServerForcedShutdown       = "Status server forced to shutdown"
	LogMsgSchedulerStopped           = "Scheduler stopped"
	LogMsgWorkerPoolShutdownFailed   = "Worker pool shutdown failed"
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgShutdownComplete           = "Shutdown complete"
)
