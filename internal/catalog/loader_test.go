package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchJSON(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func TestLoader_RosterURLs(t *testing.T) {
	l := NewLoader(nil, "https://example.test/", 0, 0)

	tests := []struct {
		game       domain.Game
		wantChars  string
		wantWeapon string
	}{
		{domain.GameGenshin, "https://example.test/gi/data/character.json", "https://example.test/gi/data/weapon.json"},
		{domain.GameStarRail, "https://example.test/hsr/data/character.json", "https://example.test/hsr/data/lightcone.json"},
		{domain.GameZenless, "https://example.test/zzz/data/character.json", "https://example.test/zzz/data/weapon.json"},
	}

	for _, tt := range tests {
		t.Run(string(tt.game), func(t *testing.T) {
			chars, weapons := l.RosterURLs(tt.game)
			assert.Equal(t, tt.wantChars, chars)
			assert.Equal(t, tt.wantWeapon, weapons)
		})
	}
}

func TestLoader_LoadCachesRosters(t *testing.T) {
	ctx := context.Background()
	fetcher := new(MockFetcher)
	l := NewLoader(fetcher, "https://example.test", 4, time.Hour)
	chars, weapons := l.RosterURLs(domain.GameGenshin)

	fetcher.On("FetchJSON", mock.Anything, chars).Return([]byte(genshinCharacters), nil).Once()
	fetcher.On("FetchJSON", mock.Anything, weapons).Return([]byte(`{"11509": {"EN": "Mistsplitter Reforged", "rank": 5}}`), nil).Once()

	first, err := l.Load(ctx, domain.GameGenshin)
	require.NoError(t, err)
	second, err := l.Load(ctx, domain.GameGenshin)
	require.NoError(t, err)

	assert.Same(t, first.Characters, second.Characters)
	assert.Equal(t, 1, first.Weapons.Len())
	fetcher.AssertExpectations(t)

	t.Run("invalidating another game keeps the cache", func(t *testing.T) {
		l.Invalidate(ctx, domain.GameStarRail)
		again, err := l.Load(ctx, domain.GameGenshin)
		require.NoError(t, err)
		assert.Same(t, first.Characters, again.Characters)
		fetcher.AssertExpectations(t)
	})

	t.Run("invalidate forces a refetch", func(t *testing.T) {
		l.Invalidate(ctx, domain.GameGenshin)
		fetcher.On("FetchJSON", mock.Anything, chars).Return([]byte(genshinCharacters), nil).Once()
		fetcher.On("FetchJSON", mock.Anything, weapons).Return([]byte(`{}`), nil).Once()

		_, err := l.Load(ctx, domain.GameGenshin)
		require.NoError(t, err)
		fetcher.AssertExpectations(t)
	})
}

func TestLoader_LoadFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("fetch error", func(t *testing.T) {
		fetcher := new(MockFetcher)
		l := NewLoader(fetcher, "", 0, time.Minute)
		fetcher.On("FetchJSON", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

		_, err := l.Load(ctx, domain.GameZenless)
		assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("malformed roster is not cached", func(t *testing.T) {
		fetcher := new(MockFetcher)
		l := NewLoader(fetcher, "", 0, time.Minute)
		chars, _ := l.RosterURLs(domain.GameStarRail)
		fetcher.On("FetchJSON", mock.Anything, chars).Return([]byte(`[]`), nil).Twice()

		_, err := l.Load(ctx, domain.GameStarRail)
		assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
		_, err = l.Load(ctx, domain.GameStarRail)
		assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
		fetcher.AssertExpectations(t)
	})
}

func TestRosterCache_ReportsAge(t *testing.T) {
	c := newRosterCache(2, time.Hour)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return start }

	roster := &Roster{}
	c.Set("https://example.test/a.json", roster)
	c.now = func() time.Time { return start.Add(90 * time.Second) }

	got, age, ok := c.Get("https://example.test/a.json")
	require.True(t, ok)
	assert.Same(t, roster, got)
	assert.Equal(t, 90*time.Second, age)

	assert.Equal(t, 1, c.Remove("https://example.test/a.json", "https://example.test/b.json"))
	_, _, ok = c.Get("https://example.test/a.json")
	assert.False(t, ok)
}
