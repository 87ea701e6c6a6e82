package bootstrap

import (
	"context"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/event"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/logger"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/scheduler"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/server"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil components are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	Pool               *worker.Pool
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown stops components in order: ticks first, then in-flight
// runs, then the status server, and finally the notification publisher so
// that events from the last run are flushed or dead-lettered.
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)

	if c.Scheduler != nil {
		c.Scheduler.Stop()
		log.Info(LogMsgSchedulerStopped)
	}

	if c.Pool != nil {
		if err := c.Pool.Shutdown(ctx); err != nil {
			log.Error(LogMsgWorkerPoolShutdownFailed, "error", err)
		}
	}

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			log.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.ResilientPublisher != nil {
		log.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			log.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	log.Info(LogMsgShutdownComplete)
}
