package game

import (
	"fmt"

	"github.com/tidwall/gjson"
	"gopkg.in/guregu/null.v3"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/catalog"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/naming"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/timewindow"
)

// Classification is where a stub is filed, or that it is excluded entirely.
type Classification struct {
	Skip   bool
	Code   int
	Key    string
	Bucket domain.Bucket
}

// Adapter is the per-game capability set. One implementation exists per
// game and is selected once, at construction.
type Adapter interface {
	Game() domain.Game
	ListURL() string
	DetailURL(bannerID string) string

	// Classify files a stub, using the detail title when its code is unknown
	Classify(stub domain.RawBannerStub, title string) Classification
	// ParseDrop resolves one upstream drop against the rosters
	ParseDrop(drop gjson.Result, rosters catalog.Rosters) (domain.ItemRef, bool)
	// Window resolves the stub's start and end
	Window(begin, end string) (domain.TimeWindow, domain.TimeWindow, error)
	// ResolveName extracts the display name from a detail title
	ResolveName(title string) null.String
	// IdentityRule is how candidates merge into the collection
	IdentityRule() domain.IdentityRule
	// DropFields are the detail keys holding the 5-star and 4-star rate-ups
	DropFields() (string, string)
}

// Endpoints overrides the upstream URLs. Empty fields keep the defaults.
type Endpoints struct {
	ListURL   string
	DetailURL string
}

type base struct {
	game      domain.Game
	endpoints Endpoints
	names     naming.Resolver
	times     *timewindow.Resolver
	rule      domain.IdentityRule
	up5, up4  string
}

func (b *base) Game() domain.Game { return b.game }

func (b *base) ListURL() string { return b.endpoints.ListURL }

func (b *base) DetailURL(bannerID string) string {
	return fmt.Sprintf(b.endpoints.DetailURL, bannerID)
}

func (b *base) Window(begin, end string) (domain.TimeWindow, domain.TimeWindow, error) {
	return b.times.Window(b.game, begin, end)
}

func (b *base) ResolveName(title string) null.String {
	name, ok := b.names.ResolveBannerName(title)
	return null.NewString(name, ok)
}

func (b *base) IdentityRule() domain.IdentityRule { return b.rule }

func (b *base) DropFields() (string, string) { return b.up5, b.up4 }

// New builds the adapter for a game.
func New(game domain.Game, times *timewindow.Resolver, endpoints Endpoints) (Adapter, error) {
	if times == nil {
		times = timewindow.NewResolver()
	}
	switch game {
	case domain.GameGenshin:
		return newGenshin(times, withDefaults(endpoints, ListURLGenshin, DetailURLGenshin)), nil
	case domain.GameStarRail:
		return newStarRail(times, withDefaults(endpoints, ListURLStarRail, DetailURLStarRail)), nil
	case domain.GameZenless:
		return newZenless(times, withDefaults(endpoints, ListURLZenless, DetailURLZenless)), nil
	}
	return nil, fmt.Errorf("%w: "+ErrMsgUnknownGame, domain.ErrUnknownGame, game)
}

func withDefaults(e Endpoints, list, detail string) Endpoints {
	if e.ListURL == "" {
		e.ListURL = list
	}
	if e.DetailURL == "" {
		e.DetailURL = detail
	}
	return e
}
