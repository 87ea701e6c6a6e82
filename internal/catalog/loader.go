package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/logger"
)

// Fetcher retrieves a JSON document.
type Fetcher interface {
	FetchJSON(ctx context.Context, url string) ([]byte, error)
}

// Loader fetches and caches the rosters for each game.
type Loader struct {
	fetcher Fetcher
	baseURL string
	cache   *rosterCache
}

// NewLoader creates a Loader. A zero ttl disables expiry.
func NewLoader(fetcher Fetcher, baseURL string, cacheSize int, ttl time.Duration) *Loader {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Loader{
		fetcher: fetcher,
		baseURL: strings.TrimRight(baseURL, "/"),
		cache:   newRosterCache(cacheSize, ttl),
	}
}

// LayoutsFor returns the character and weapon roster encodings for a game.
func LayoutsFor(game domain.Game) (Layout, Layout) {
	switch game {
	case domain.GameStarRail:
		return StarRailCharacters, StarRailLightcones
	case domain.GameZenless:
		return ZenlessCharacters, ZenlessWeapons
	default:
		return GenshinCharacters, GenshinWeapons
	}
}

// RosterURLs returns the character and weapon roster URLs for a game.
func (l *Loader) RosterURLs(game domain.Game) (string, string) {
	weaponFile := FileWeapons
	if game == domain.GameStarRail {
		weaponFile = FileLightcones
	}
	return fmt.Sprintf(URLPatternRoster, l.baseURL, game.Short(), FileCharacters),
		fmt.Sprintf(URLPatternRoster, l.baseURL, game.Short(), weaponFile)
}

// Load returns both rosters for a game. Any failure is ErrCatalogUnavailable.
func (l *Loader) Load(ctx context.Context, game domain.Game) (Rosters, error) {
	charURL, weaponURL := l.RosterURLs(game)
	charLayout, weaponLayout := LayoutsFor(game)

	characters, err := l.load(ctx, charURL, charLayout)
	if err != nil {
		return Rosters{}, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	weapons, err := l.load(ctx, weaponURL, weaponLayout)
	if err != nil {
		return Rosters{}, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	return Rosters{Characters: characters, Weapons: weapons}, nil
}

// Invalidate drops the cached rosters of a game so the next Load refetches
// them.
func (l *Loader) Invalidate(ctx context.Context, game domain.Game) {
	charURL, weaponURL := l.RosterURLs(game)
	if n := l.cache.Remove(charURL, weaponURL); n > 0 {
		logger.FromContext(ctx).Debug(LogMsgRosterInvalidated, "game", game, "entries", n)
	}
}

func (l *Loader) load(ctx context.Context, url string, layout Layout) (*Roster, error) {
	log := logger.FromContext(ctx)
	if roster, age, ok := l.cache.Get(url); ok {
		log.Debug(LogMsgRosterCacheHit, "url", url, "age", age)
		return roster, nil
	}

	payload, err := l.fetcher.FetchJSON(ctx, url)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRosterFetch+": %w", url, err)
	}
	roster, err := ParseRoster(payload, layout)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRosterParse+": %w", url, err)
	}

	if n := roster.Unranked(); n > 0 {
		log.Warn(LogMsgRosterUnranked, "url", url, "count", n)
	}
	l.cache.Set(url, roster)
	log.Debug(LogMsgRosterLoaded, "url", url, "entries", roster.Len())
	return roster, nil
}
