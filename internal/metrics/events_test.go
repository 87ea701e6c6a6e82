package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))
	ctx := context.Background()

	addedBefore := testutil.ToFloat64(BannersAdded.WithLabelValues("hsr", "lightcone"))
	stubsBefore := testutil.ToFloat64(NewStubs.WithLabelValues("hsr"))
	unknownBefore := testutil.ToFloat64(UnknownDrops.WithLabelValues("hsr", "avatar"))
	runsBefore := testutil.ToFloat64(RunsTotal.WithLabelValues("hsr", event.RunStatusOK))
	dupBefore := testutil.ToFloat64(Duplicates.WithLabelValues("hsr"))

	require.NoError(t, bus.Publish(ctx, event.NewBannerAddedEvent("r", event.BannerPayloadV1{
		Game: domain.GameStarRail, Bucket: domain.BucketLightcone,
	})))
	require.NoError(t, bus.Publish(ctx, event.NewLedgerUpdatedEvent("r", domain.GameStarRail, 3)))
	require.NoError(t, bus.Publish(ctx, event.NewDropUnknownEvent("r", domain.GameStarRail, "1", "Nobody", "avatar", "{}")))
	require.NoError(t, bus.Publish(ctx, event.NewRunCompletedEvent("r", event.RunCompletedPayloadV1{
		Game: domain.GameStarRail, Status: event.RunStatusOK, Duplicates: 2, Duration: 1.5,
	})))

	assert.Equal(t, addedBefore+1, testutil.ToFloat64(BannersAdded.WithLabelValues("hsr", "lightcone")))
	assert.Equal(t, stubsBefore+3, testutil.ToFloat64(NewStubs.WithLabelValues("hsr")))
	assert.Equal(t, unknownBefore+1, testutil.ToFloat64(UnknownDrops.WithLabelValues("hsr", "avatar")))
	assert.Equal(t, runsBefore+1, testutil.ToFloat64(RunsTotal.WithLabelValues("hsr", event.RunStatusOK)))
	assert.Equal(t, dupBefore+2, testutil.ToFloat64(Duplicates.WithLabelValues("hsr")))
}

func TestEventMetricsCollector_BadPayload(t *testing.T) {
	before := testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.LedgerUpdated)))

	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{
		Type:    event.LedgerUpdated,
		Payload: make(chan int),
	})
	assert.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.LedgerUpdated))))
}
