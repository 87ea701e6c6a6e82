package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string                 `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type                   `json:"type"`
	Payload  interface{}            `json:"payload"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Pipeline event types
const (
	BannerAdded        Type = "banner.added"
	BannerMerged       Type = "banner.merged"
	DropUnknown        Type = "drop.unknown"
	BannerNameUnparsed Type = "banner.name_unparsed"
	LedgerUpdated      Type = "ledger.updated"
	RunCompleted       Type = "run.completed"
)

// AllTypes lists every event type the pipeline publishes
var AllTypes = []Type{BannerAdded, BannerMerged, DropUnknown, BannerNameUnparsed, LedgerUpdated, RunCompleted}

// Typed event payloads for type safety

// BannerPayloadV1 is the payload for banner added and merged events
type BannerPayloadV1 struct {
	Game     domain.Game         `json:"game"`
	BannerID string              `json:"banner_id"`
	Key      string              `json:"key"`
	Bucket   domain.Bucket       `json:"bucket"`
	Record   domain.BannerRecord `json:"record"`
	ImageURL string              `json:"image_url,omitempty"`
}

// DropUnknownPayloadV1 reports a rate-up item missing from the catalog
type DropUnknownPayloadV1 struct {
	Game     domain.Game `json:"game"`
	BannerID string      `json:"banner_id"`
	ItemName string      `json:"item_name"`
	ItemType string      `json:"item_type"`
	Raw      string      `json:"raw"`
}

// NameUnparsedPayloadV1 reports a title the name resolver could not parse
type NameUnparsedPayloadV1 struct {
	Game     domain.Game `json:"game"`
	BannerID string      `json:"banner_id"`
	Title    string      `json:"title"`
}

// LedgerUpdatedPayloadV1 is the payload for ledger updates
type LedgerUpdatedPayloadV1 struct {
	Game     domain.Game `json:"game"`
	NewStubs int         `json:"new_stubs"`
}

// Run outcomes
const (
	RunStatusOK      = "ok"
	RunStatusPartial = "partial"
	RunStatusNoop    = "noop"
	RunStatusFailed  = "failed"
	RunStatusSkipped = "skipped"
)

// RunCompletedPayloadV1 summarizes one game run
type RunCompletedPayloadV1 struct {
	Game       domain.Game `json:"game"`
	Status     string      `json:"status"`
	NewStubs   int         `json:"new_stubs"`
	Added      int         `json:"added"`
	Merged     int         `json:"merged"`
	Duplicates int         `json:"duplicates"`
	Skipped    int         `json:"skipped"`
	Failed     int         `json:"failed"`
	Unknown    int         `json:"unknown_drops"`
	Duration   float64     `json:"duration_seconds"`
	Error      string      `json:"error,omitempty"`
	Timestamp  int64       `json:"timestamp"`
}

// Type-safe event constructors

func newEvent(t Type, payload interface{}, runID string) Event {
	evt := Event{Version: EventSchemaVersion, Type: t, Payload: payload}
	if runID != "" {
		evt.Metadata = map[string]interface{}{MetadataRunID: runID}
	}
	return evt
}

// NewBannerAddedEvent creates a banner added event
func NewBannerAddedEvent(runID string, payload BannerPayloadV1) Event {
	return newEvent(BannerAdded, payload, runID)
}

// NewBannerMergedEvent creates a banner merged event
func NewBannerMergedEvent(runID string, payload BannerPayloadV1) Event {
	return newEvent(BannerMerged, payload, runID)
}

// NewDropUnknownEvent creates an unknown drop event
func NewDropUnknownEvent(runID string, game domain.Game, bannerID, itemName, itemType, raw string) Event {
	return newEvent(DropUnknown, DropUnknownPayloadV1{
		Game:     game,
		BannerID: bannerID,
		ItemName: itemName,
		ItemType: itemType,
		Raw:      raw,
	}, runID)
}

// NewNameUnparsedEvent creates a name unparsed event
func NewNameUnparsedEvent(runID string, game domain.Game, bannerID, title string) Event {
	return newEvent(BannerNameUnparsed, NameUnparsedPayloadV1{Game: game, BannerID: bannerID, Title: title}, runID)
}

// NewLedgerUpdatedEvent creates a ledger updated event
func NewLedgerUpdatedEvent(runID string, game domain.Game, newStubs int) Event {
	return newEvent(LedgerUpdated, LedgerUpdatedPayloadV1{Game: game, NewStubs: newStubs}, runID)
}

// NewRunCompletedEvent creates a run completed event
func NewRunCompletedEvent(runID string, payload RunCompletedPayloadV1) Event {
	if payload.Timestamp == 0 {
		payload.Timestamp = time.Now().Unix()
	}
	return newEvent(RunCompleted, payload, runID)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously. Every handler
// runs even when an earlier one fails.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Forward returns a handler that republishes events onto another bus.
func Forward(target Bus) Handler {
	return func(ctx context.Context, evt Event) error {
		return target.Publish(ctx, evt)
	}
}
