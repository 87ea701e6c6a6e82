package bootstrap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/config"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/logger"
)

// LoggerConfig starts from the environment's preset and applies the
// explicitly configured level, format and version.
func LoggerConfig(cfg *config.Config) logger.Config {
	lc := logger.ForEnvironment(cfg.App.Environment)
	if cfg.Log.Level != "" {
		lc.Level = cfg.Log.Level
	}
	if cfg.Log.Format != "" {
		lc.Format = cfg.Log.Format
	}
	if cfg.App.Version != "" {
		lc.Version = cfg.App.Version
	}
	return lc
}

// SetupLogger initializes the default logger. When LOG_DIR is set output also
// goes to a timestamped session file and older session files beyond the
// retention count are removed. The returned file is nil without LOG_DIR;
// otherwise the caller must close it.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	return setupLogger(cfg, os.Stdout, time.Now())
}

func setupLogger(cfg *config.Config, stdout io.Writer, now time.Time) (*os.File, error) {
	lc := LoggerConfig(cfg)

	var logFile *os.File
	out := stdout
	if cfg.Log.Dir != "" {
		if err := os.MkdirAll(cfg.Log.Dir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
		}

		cleanupLogs(cfg.Log.Dir, LogFileRetentionCount)

		name := filepath.Join(cfg.Log.Dir, fmt.Sprintf(LogFileNamePattern, now.Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
		}
		logFile = f
		out = io.MultiWriter(stdout, f)
	}

	logger.InitLoggerWithWriter(lc, out)

	logger.Info(LogMsgLoggingInitialized, "level", lc.LogLevel().String(), "format", lc.Format)
	logger.Info(LogMsgStarting,
		"environment", cfg.App.Environment,
		"version", cfg.App.Version,
		"games", strings.Join(cfg.Run.Games, ","))
	logger.Debug(LogMsgConfigurationLoaded,
		"data_dir", cfg.Storage.DataDir,
		"assets_dir", cfg.Storage.AssetsDir,
		"download_images", cfg.Storage.DownloadImages,
		"concurrency", cfg.Upstream.Concurrency,
		"catalog_base_url", cfg.Catalog.BaseURL,
		"poll_interval", cfg.Run.PollInterval.String(),
		"metrics_addr", cfg.Server.Addr,
		"notify", cfg.NotifyEnabled())

	return logFile, nil
}

// cleanupLogs removes the oldest session logs so that at most keep remain.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= keep {
		return
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", LogMsgFailedDeleteOldLog, name, err)
		}
	}
}
