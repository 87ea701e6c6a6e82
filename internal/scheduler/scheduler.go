package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/logger"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/worker"
)

// Log messages
const (
	LogMsgJobScheduled = "Job scheduled"
	LogMsgTickDropped  = "Previous run still queued, skipping tick"
)

// Enqueuer accepts jobs without blocking
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	pool     Enqueuer
	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. When immediate is set
// the job is also enqueued once right away. A tick that finds the queue full
// is dropped rather than blocking the ticker.
func (s *Scheduler) Schedule(ctx context.Context, name string, interval time.Duration, immediate bool, job worker.Job) {
	log := logger.FromContext(ctx).With("job", name)
	log.Info(LogMsgJobScheduled, "interval", interval.String(), "immediate", immediate)

	if immediate {
		s.enqueue(log, job)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.enqueue(log, job)
			case <-ctx.Done():
				return
			case <-s.quit:
				return
			}
		}
	}()
}

func (s *Scheduler) enqueue(log *slog.Logger, job worker.Job) {
	if !s.pool.TryEnqueue(job) {
		log.Warn(LogMsgTickDropped)
	}
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
