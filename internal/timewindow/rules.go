package timewindow

import (
	"slices"
	"time"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
)

// ServerTimeRule decides from the raw clock literal whether an upstream
// timestamp is in server time.
type ServerTimeRule struct {
	Always bool
	Clocks []string
}

// Matches reports whether the clock literal selects server time.
func (r ServerTimeRule) Matches(clock string) bool {
	return r.Always || slices.Contains(r.Clocks, clock)
}

// GameRules are the start and end heuristics for one game.
type GameRules struct {
	Start ServerTimeRule
	End   ServerTimeRule
}

// Correction shifts a resolved start time that lands on a known bad clock literal.
type Correction struct {
	Game  domain.Game
	Clock string
	Shift time.Duration
}

// DefaultRules returns the observed upstream conventions per game.
func DefaultRules() map[domain.Game]GameRules {
	return map[domain.Game]GameRules{
		domain.GameGenshin: {
			Start: ServerTimeRule{Clocks: []string{"18:00:00"}},
			End:   ServerTimeRule{Clocks: []string{"14:59:59", "17:59:00"}},
		},
		domain.GameStarRail: {
			Start: ServerTimeRule{Clocks: []string{"12:00:00"}},
			End:   ServerTimeRule{Always: true},
		},
		domain.GameZenless: {
			Start: ServerTimeRule{Clocks: []string{"12:00:00"}},
			End:   ServerTimeRule{Always: true},
		},
	}
}

// DefaultCorrections returns the known upstream data-entry quirks.
func DefaultCorrections() []Correction {
	return []Correction{
		{Game: domain.GameStarRail, Clock: "06:30:00", Shift: -(3*time.Hour + 30*time.Minute)},
		{Game: domain.GameZenless, Clock: "06:00:00", Shift: -4 * time.Hour},
	}
}
