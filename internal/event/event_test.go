package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	handled := false

	bus.Subscribe(LedgerUpdated, func(ctx context.Context, evt Event) error {
		payload, err := DecodePayload[LedgerUpdatedPayloadV1](evt.Payload)
		require.NoError(t, err)
		assert.Equal(t, domain.GameGenshin, payload.Game)
		assert.Equal(t, 2, payload.NewStubs)
		assert.Equal(t, "run-1", evt.GetMetadataValue(MetadataRunID))
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), NewLedgerUpdatedEvent("run-1", domain.GameGenshin, 2))
	require.NoError(t, err)
	assert.True(t, handled)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: RunCompleted}))
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0
	handler := func(ctx context.Context, evt Event) error {
		count++
		return nil
	}

	bus.Subscribe(BannerAdded, handler)
	bus.Subscribe(BannerAdded, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: BannerAdded}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishErrorRunsAllHandlers(t *testing.T) {
	bus := NewMemoryBus()
	second := false

	bus.Subscribe(BannerAdded, func(ctx context.Context, evt Event) error {
		return errors.New("handler error")
	})
	bus.Subscribe(BannerAdded, func(ctx context.Context, evt Event) error {
		second = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: BannerAdded})
	assert.Error(t, err)
	assert.True(t, second)
}

func TestForward(t *testing.T) {
	source := NewMemoryBus()
	target := NewMemoryBus()
	var got Event
	target.Subscribe(BannerMerged, func(ctx context.Context, evt Event) error {
		got = evt
		return nil
	})
	source.Subscribe(BannerMerged, Forward(target))

	evt := NewBannerMergedEvent("", BannerPayloadV1{Game: domain.GameStarRail, Key: "11"})
	require.NoError(t, source.Publish(context.Background(), evt))
	assert.Equal(t, evt, got)
	assert.Nil(t, got.Metadata)
}

func TestDecodePayload_FromMap(t *testing.T) {
	payload, err := DecodePayload[NameUnparsedPayloadV1](map[string]interface{}{
		"game":      "zzz",
		"banner_id": "42",
		"title":     "odd",
	})
	require.NoError(t, err)
	assert.Equal(t, NameUnparsedPayloadV1{Game: domain.GameZenless, BannerID: "42", Title: "odd"}, payload)
}

func TestCalculateRetryDelay(t *testing.T) {
	tests := []struct {
		attempt int
		want    int
	}{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {5, 16},
	}
	for _, tt := range tests {
		assert.Equal(t, RetryInitialDelay*time.Duration(tt.want), CalculateRetryDelay(RetryInitialDelay, tt.attempt))
	}
}
