package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/bootstrap"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/config"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/logger"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/pipeline"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/scheduler"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/server"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/worker"
)

const (
	pollJobName   = "banner-update"
	pollQueueSize = 1
)

func main() {
	if err := run(); err != nil {
		logger.Error("Banner parser failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}
	if err := bootstrap.RegisterEventHandlers(events.Bus); err != nil {
		return err
	}

	runner, err := bootstrap.BuildRunner(cfg, events.Bus)
	if err != nil {
		return err
	}

	components := bootstrap.ShutdownComponents{ResilientPublisher: events.Publisher}

	serverErrs := make(chan error, 1)
	if cfg.ServerEnabled() {
		srv := server.NewServer(cfg.Server.Addr, cfg.App.Version, runner)
		components.Server = srv
		go func() { serverErrs <- srv.Start() }()
	}

	var runErr error
	if cfg.Polling() {
		pool := worker.NewPool(1, pollQueueSize)
		pool.Start(ctx)
		sched := scheduler.New(pool)
		sched.Schedule(ctx, pollJobName, cfg.Run.PollInterval, true, runner)
		components.Pool = pool
		components.Scheduler = sched

		select {
		case <-ctx.Done():
		case err := <-serverErrs:
			runErr = err
		}
	} else {
		runErr = pipeline.Errors(runner.Run(ctx))
		select {
		case err := <-serverErrs:
			runErr = errors.Join(runErr, err)
		default:
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, components)

	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}
