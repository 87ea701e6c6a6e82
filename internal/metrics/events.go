package metrics

import (
	"context"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/event"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all pipeline events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.BannerAdded, event.BannerMerged:
		var p event.BannerPayloadV1
		if p, err = event.DecodePayload[event.BannerPayloadV1](evt.Payload); err == nil {
			counter := BannersAdded
			if evt.Type == event.BannerMerged {
				counter = BannersMerged
			}
			counter.WithLabelValues(string(p.Game), string(p.Bucket)).Inc()
		}

	case event.DropUnknown:
		var p event.DropUnknownPayloadV1
		if p, err = event.DecodePayload[event.DropUnknownPayloadV1](evt.Payload); err == nil {
			UnknownDrops.WithLabelValues(string(p.Game), p.ItemType).Inc()
		}

	case event.BannerNameUnparsed:
		var p event.NameUnparsedPayloadV1
		if p, err = event.DecodePayload[event.NameUnparsedPayloadV1](evt.Payload); err == nil {
			NamesUnparsed.WithLabelValues(string(p.Game)).Inc()
		}

	case event.LedgerUpdated:
		var p event.LedgerUpdatedPayloadV1
		if p, err = event.DecodePayload[event.LedgerUpdatedPayloadV1](evt.Payload); err == nil {
			NewStubs.WithLabelValues(string(p.Game)).Add(float64(p.NewStubs))
		}

	case event.RunCompleted:
		var p event.RunCompletedPayloadV1
		if p, err = event.DecodePayload[event.RunCompletedPayloadV1](evt.Payload); err == nil {
			game := string(p.Game)
			RunsTotal.WithLabelValues(game, p.Status).Inc()
			if p.Status != event.RunStatusSkipped {
				RunDuration.WithLabelValues(game).Observe(p.Duration)
				LastRunTimestamp.WithLabelValues(game).Set(float64(p.Timestamp))
			}
			if p.Duplicates > 0 {
				Duplicates.WithLabelValues(game).Add(float64(p.Duplicates))
			}
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
