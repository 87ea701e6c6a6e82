package domain

import (
	"fmt"
	"strings"
)

// Game identifies one of the supported titles.
type Game string

const (
	GameGenshin  Game = "genshin"
	GameStarRail Game = "hsr"
	GameZenless  Game = "zzz"
)

// AllGames returns every supported game in run order.
func AllGames() []Game {
	return []Game{GameGenshin, GameStarRail, GameZenless}
}

// Short returns the catalog slug used by the community item database.
func (g Game) Short() string {
	switch g {
	case GameGenshin:
		return "gi"
	case GameStarRail:
		return "hsr"
	case GameZenless:
		return "zzz"
	default:
		return string(g)
	}
}

// Valid reports whether g is a supported game.
func (g Game) Valid() bool {
	switch g {
	case GameGenshin, GameStarRail, GameZenless:
		return true
	}
	return false
}

// ParseGame converts a configured game name into a Game.
func ParseGame(s string) (Game, error) {
	g := Game(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownGame, s)
	}
	return g, nil
}

// ParseGames converts a list of configured game names, dropping duplicates.
func ParseGames(names []string) ([]Game, error) {
	seen := make(map[Game]bool, len(names))
	games := make([]Game, 0, len(names))
	for _, name := range names {
		g, err := ParseGame(name)
		if err != nil {
			return nil, err
		}
		if seen[g] {
			continue
		}
		seen[g] = true
		games = append(games, g)
	}
	return games, nil
}
