package timewindow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
)

func TestResolve_ServerVersusRegion(t *testing.T) {
	r := NewResolver()

	server, err := r.Resolve("2024-01-01T12:00:00", true, domain.GameStarRail)
	require.NoError(t, err)
	region, err := r.Resolve("2024-01-01T12:00:00", false, domain.GameStarRail)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01 12:00:00+01:00", Format(server))
	assert.Equal(t, "2024-01-01 12:00:00+08:00", Format(region))
	assert.Equal(t, 7*time.Hour, server.Sub(region))
}

func TestResolve_InvalidInput(t *testing.T) {
	r := NewResolver()

	_, err := r.Resolve("", true, domain.GameGenshin)
	assert.Error(t, err)

	_, err = r.Resolve("yesterday", true, domain.GameGenshin)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "yesterday")
}

func TestWindow(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name      string
		game      domain.Game
		begin     string
		end       string
		wantStart domain.TimeWindow
		wantEnd   domain.TimeWindow
	}{
		{
			name:      "genshin version update start and server end",
			game:      domain.GameGenshin,
			begin:     "2024-01-01 18:00:00",
			end:       "2024-01-22 14:59:59",
			wantStart: domain.TimeWindow{Time: "2024-01-01 18:00:00+01:00", IsServerTime: true},
			wantEnd:   domain.TimeWindow{Time: "2024-01-22 14:59:59+01:00", IsServerTime: true},
		},
		{
			name:      "genshin mid-patch start is region time",
			game:      domain.GameGenshin,
			begin:     "2024-01-22 06:00:00",
			end:       "2024-02-12 17:59:00",
			wantStart: domain.TimeWindow{Time: "2024-01-22 06:00:00+08:00", IsServerTime: false},
			wantEnd:   domain.TimeWindow{Time: "2024-02-12 17:59:00+01:00", IsServerTime: true},
		},
		{
			name:      "genshin unknown end clock is region time",
			game:      domain.GameGenshin,
			begin:     "2024-01-22 06:00:00",
			end:       "2024-02-12 15:00:00",
			wantStart: domain.TimeWindow{Time: "2024-01-22 06:00:00+08:00", IsServerTime: false},
			wantEnd:   domain.TimeWindow{Time: "2024-02-12 15:00:00+08:00", IsServerTime: false},
		},
		{
			name:      "star rail bad start literal is corrected",
			game:      domain.GameStarRail,
			begin:     "2024-01-17 06:30:00",
			end:       "2024-02-06 14:59:00",
			wantStart: domain.TimeWindow{Time: "2024-01-17 03:00:00+08:00", IsServerTime: false},
			wantEnd:   domain.TimeWindow{Time: "2024-02-06 14:59:00+01:00", IsServerTime: true},
		},
		{
			name:      "zenless bad start literal is corrected",
			game:      domain.GameZenless,
			begin:     "2024-07-24 06:00:00",
			end:       "2024-08-14 11:59:00",
			wantStart: domain.TimeWindow{Time: "2024-07-24 02:00:00+08:00", IsServerTime: false},
			wantEnd:   domain.TimeWindow{Time: "2024-08-14 11:59:00+01:00", IsServerTime: true},
		},
		{
			name:      "zenless server start is untouched",
			game:      domain.GameZenless,
			begin:     "2024-08-14 12:00:00",
			end:       "2024-09-04 14:59:00",
			wantStart: domain.TimeWindow{Time: "2024-08-14 12:00:00+01:00", IsServerTime: true},
			wantEnd:   domain.TimeWindow{Time: "2024-09-04 14:59:00+01:00", IsServerTime: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := r.Window(tt.game, tt.begin, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestCorrect_OnlyExactLiteral(t *testing.T) {
	r := NewResolver()
	zone := time.FixedZone("UTC+8", 8*3600)

	near := time.Date(2024, 1, 17, 6, 30, 1, 0, zone)
	assert.Equal(t, near, r.Correct(domain.GameStarRail, near))

	other := time.Date(2024, 1, 17, 6, 30, 0, 0, zone)
	assert.Equal(t, other, r.Correct(domain.GameGenshin, other), "genshin has no corrections")
}

func TestWindow_CustomTables(t *testing.T) {
	r := NewResolverWithTables(map[domain.Game]GameRules{
		domain.GameGenshin: {Start: ServerTimeRule{Always: true}},
	}, nil)

	start, end, err := r.Window(domain.GameGenshin, "2024-01-01 10:00:00", "2024-01-02 10:00:00")
	require.NoError(t, err)
	assert.True(t, start.IsServerTime)
	assert.False(t, end.IsServerTime)
}
