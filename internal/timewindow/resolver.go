package timewindow

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
)

var (
	serverZone = time.FixedZone(ZoneNameServer, int(ServerOffset.Seconds()))
	regionZone = time.FixedZone(ZoneNameRegion, int(RegionOffset.Seconds()))
)

// Resolver converts upstream naive timestamps into timezone-qualified windows.
type Resolver struct {
	rules       map[domain.Game]GameRules
	corrections []Correction
}

// NewResolver creates a resolver with the default rule and correction tables.
func NewResolver() *Resolver {
	return NewResolverWithTables(DefaultRules(), DefaultCorrections())
}

// NewResolverWithTables creates a resolver with explicit tables.
func NewResolverWithTables(rules map[domain.Game]GameRules, corrections []Correction) *Resolver {
	return &Resolver{rules: rules, corrections: corrections}
}

// Resolve anchors a naive timestamp at the server or region offset.
// The game does not change the anchors; it is accepted so callers resolve
// through one entry point per game.
func (r *Resolver) Resolve(raw string, isServerTime bool, _ domain.Game) (time.Time, error) {
	zone := regionZone
	if isServerTime {
		zone = serverZone
	}
	return parseNaive(raw, zone)
}

// IsServerStart applies the game's start heuristic to a raw timestamp.
func (r *Resolver) IsServerStart(game domain.Game, raw string) bool {
	return r.rules[game].Start.Matches(clockOf(raw))
}

// IsServerEnd applies the game's end heuristic to a raw timestamp.
func (r *Resolver) IsServerEnd(game domain.Game, raw string) bool {
	return r.rules[game].End.Matches(clockOf(raw))
}

// Correct applies the first correction whose clock literal matches t exactly.
func (r *Resolver) Correct(game domain.Game, t time.Time) time.Time {
	clock := t.Format(LayoutClock)
	for _, c := range r.corrections {
		if c.Game == game && c.Clock == clock {
			return t.Add(c.Shift)
		}
	}
	return t
}

// Window resolves both edges of a banner. Corrections apply to the start only.
func (r *Resolver) Window(game domain.Game, begin, end string) (domain.TimeWindow, domain.TimeWindow, error) {
	startServer := r.IsServerStart(game, begin)
	start, err := r.Resolve(begin, startServer, game)
	if err != nil {
		return domain.TimeWindow{}, domain.TimeWindow{}, fmt.Errorf("begin_time: %w", err)
	}
	start = r.Correct(game, start)

	endServer := r.IsServerEnd(game, end)
	finish, err := r.Resolve(end, endServer, game)
	if err != nil {
		return domain.TimeWindow{}, domain.TimeWindow{}, fmt.Errorf("end_time: %w", err)
	}

	return domain.TimeWindow{Time: Format(start), IsServerTime: startServer},
		domain.TimeWindow{Time: Format(finish), IsServerTime: endServer},
		nil
}

// Format is the canonical serialization used for equality elsewhere.
func Format(t time.Time) string {
	return t.Format(Layout)
}

func parseNaive(raw string, zone *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New(ErrMsgEmptyTimestamp)
	}
	for _, layout := range []string{LayoutNaiveSpace, LayoutNaiveT} {
		if t, err := time.ParseInLocation(layout, raw, zone); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf(ErrMsgInvalidTimestamp, raw)
}

// clockOf extracts HH:MM:SS from either naive layout.
func clockOf(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, " T"); i >= 0 {
		return raw[i+1:]
	}
	return raw
}
