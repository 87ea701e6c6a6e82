package bootstrap

import (
	"context"
	"fmt"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/event"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/logger"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/metrics"
)

// RegisterEventHandlers subscribes the metrics collector and the event audit
// log to every event type.
func RegisterEventHandlers(bus event.Bus) error {
	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	logger.Info(LogMsgMetricsCollectorRegistered)

	for _, t := range event.AllTypes {
		bus.Subscribe(t, auditEvent)
	}
	return nil
}

func auditEvent(ctx context.Context, evt event.Event) error {
	logger.FromContext(ctx).Debug(LogMsgEventAudit,
		"event_type", evt.Type,
		"event_version", evt.Version,
		"event_run_id", evt.GetMetadataValue(event.MetadataRunID))
	return nil
}
