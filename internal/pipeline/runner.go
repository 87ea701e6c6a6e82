package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/concurrency"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/event"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/logger"
)

// Runner runs the pipelines of every configured game concurrently. A game
// that fails or panics never affects the others. Runner is a worker.Job.
type Runner struct {
	pipelines []*Pipeline
	locks     *concurrency.LockManager

	mu   sync.RWMutex
	last map[domain.Game]RunResult
}

// NewRunner creates a Runner over the given pipelines.
func NewRunner(locks *concurrency.LockManager, pipelines ...*Pipeline) *Runner {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &Runner{
		pipelines: pipelines,
		locks:     locks,
		last:      make(map[domain.Game]RunResult),
	}
}

// Games lists the games in run order.
func (r *Runner) Games() []domain.Game {
	games := make([]domain.Game, len(r.pipelines))
	for i, p := range r.pipelines {
		games[i] = p.Game()
	}
	return games
}

// Run runs every game once and returns the results in configuration order.
// A game whose previous run is still in flight is reported as skipped.
func (r *Runner) Run(ctx context.Context) []RunResult {
	runID := logger.GetRunID(ctx)
	if runID == "" {
		runID = logger.GenerateRunID()
		ctx = logger.WithRunID(ctx, runID)
	}

	results := make([]RunResult, len(r.pipelines))
	var wg sync.WaitGroup
	for i, p := range r.pipelines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = r.runOne(ctx, runID, p)
		}()
	}
	wg.Wait()

	r.mu.Lock()
	for _, res := range results {
		if res.Status != event.RunStatusSkipped {
			r.last[res.Game] = res
		}
	}
	r.mu.Unlock()
	return results
}

func (r *Runner) runOne(ctx context.Context, runID string, p *Pipeline) (res RunResult) {
	g := p.Game()
	defer func() {
		if v := recover(); v != nil {
			err := fmt.Errorf(ErrMsgPanic, v)
			logger.FromContext(logger.WithGame(ctx, string(g))).Error(LogMsgRunPanicked, "error", err)
			res = RunResult{Game: g, RunID: runID, StartedAt: time.Now()}
			res.finish(err)
		}
	}()

	ran, _ := r.locks.TryWithLock(concurrency.Key(LockKindRun, string(g)), func() error {
		res = p.Run(ctx)
		return res.Err
	})
	if !ran {
		logger.FromContext(logger.WithGame(ctx, string(g))).Warn(LogMsgRunBusy)
		res = RunResult{Game: g, RunID: runID, StartedAt: time.Now(), Status: event.RunStatusSkipped}
		res.finish(nil)
		res.Error = domain.ErrRunInProgress.Error()
	}
	return res
}

// Process implements worker.Job. It returns an error when any game failed.
func (r *Runner) Process(ctx context.Context) error {
	return Errors(r.Run(ctx))
}

// Errors joins the errors of failed results, or returns nil.
func Errors(results []RunResult) error {
	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.Game, res.Err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf(ErrMsgGamesFailed+": %w", len(errs), len(results), errors.Join(errs...))
}

// LastResults returns the most recent completed result per game.
func (r *Runner) LastResults() []RunResult {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]RunResult, 0, len(r.last))
	for _, p := range r.pipelines {
		if res, ok := r.last[p.Game()]; ok {
			out = append(out, res)
		}
	}
	return out
}
