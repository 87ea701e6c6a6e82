package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/config"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/event"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/logger"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/notify"
)

// EventSystem is the main bus plus the optional retrying notification path.
type EventSystem struct {
	Bus       event.Bus
	Publisher *event.ResilientPublisher
}

// InitializeEventSystem creates the event bus. When a Discord webhook is
// configured, banner additions are forwarded to a separate notification bus
// behind a resilient publisher that retries and dead-letters failed posts,
// so retries never replay the other subscribers.
func InitializeEventSystem(cfg *config.Config) (*EventSystem, error) {
	bus := event.NewMemoryBus()
	sys := &EventSystem{Bus: bus}

	if !cfg.NotifyEnabled() {
		logger.Info(LogMsgNotifierDisabled)
		return sys, nil
	}

	notifier, err := notify.New(cfg.Notify.DiscordWebhookURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateNotifier, err)
	}

	deadLetterPath := filepath.Join(cfg.Storage.DataDir, event.DeadLetterFileName)
	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}

	notifyBus := event.NewMemoryBus()
	notifier.Register(notifyBus)

	publisher, err := event.NewResilientPublisher(notifyBus, event.RetryMaxAttempts, event.RetryInitialDelay, deadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateResilientPub, err)
	}
	bus.Subscribe(event.BannerAdded, event.Forward(publisher))
	sys.Publisher = publisher

	logger.Info(LogMsgNotifierEnabled)
	logger.Info(LogMsgEventSystemInitialized,
		"max_retries", event.RetryMaxAttempts,
		"retry_delay", event.RetryInitialDelay.String(),
		"deadletter_path", deadLetterPath)
	return sys, nil
}
