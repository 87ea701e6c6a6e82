package worker

import "errors"

// Log messages
const (
	LogMsgWorkerJobFailed    = "Worker job failed"
	LogMsgWorkerJobPanicked  = "Worker job panicked"
	LogMsgPoolShuttingDown   = "Shutting down worker pool"
	LogMsgPoolShutdownDone   = "Worker pool shutdown complete"
	LogMsgPoolShutdownExpire = "Worker pool shutdown timeout, cancelling jobs"
)

// ErrPoolStopped is returned when enqueueing onto a stopped pool
var ErrPoolStopped = errors.New("worker pool stopped")

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
	TestWaitTimeout      = 2000 // milliseconds
)
