package catalog

import (
	"errors"
	"strconv"

	"github.com/tidwall/gjson"
	"golang.org/x/text/unicode/norm"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
)

// Layout describes how to read one roster file.
type Layout struct {
	// NameField is the localized display name key
	NameField string
	// Ranks maps symbolic rank values to tiers. Nil means ranks are numeric.
	Ranks map[string]int
	// DropRanked rosters carry no rank; the drop supplies it.
	DropRanked bool
}

// Known roster encodings
var (
	GenshinCharacters = Layout{
		NameField: FieldNameUpper,
		Ranks: map[string]int{
			"QUALITY_ORANGE": 5,
			"QUALITY_PURPLE": 4,
		},
	}
	GenshinWeapons = Layout{NameField: FieldNameUpper}

	StarRailCharacters = Layout{
		NameField: FieldNameLower,
		Ranks: map[string]int{
			"CombatPowerAvatarRarityType4": 4,
			"CombatPowerAvatarRarityType5": 5,
		},
	}
	StarRailLightcones = Layout{
		NameField: FieldNameLower,
		Ranks: map[string]int{
			"CombatPowerLightconeRarity3": 3,
			"CombatPowerLightconeRarity4": 4,
			"CombatPowerLightconeRarity5": 5,
		},
	}

	// Zenless ranks come from the drop itself
	ZenlessCharacters = Layout{NameField: FieldNameUpper, DropRanked: true}
	ZenlessWeapons    = Layout{NameField: FieldNameUpper, DropRanked: true}
)

// Entry is one catalog record.
type Entry struct {
	ID   string
	Name string
	Rank domain.Rank
}

// Roster is a parsed per-game catalog in document order.
type Roster struct {
	entries  []Entry
	byName   map[string]int
	unranked int
}

// ParseRoster reads an id -> record object. Records without a display name are skipped.
func ParseRoster(payload []byte, layout Layout) (*Roster, error) {
	if !gjson.ValidBytes(payload) {
		return nil, errors.New(ErrMsgRosterNotObject)
	}
	root := gjson.ParseBytes(payload)
	if !root.IsObject() {
		return nil, errors.New(ErrMsgRosterNotObject)
	}

	r := &Roster{byName: make(map[string]int)}
	root.ForEach(func(key, value gjson.Result) bool {
		name := value.Get(layout.NameField)
		if name.Type != gjson.String || name.Str == "" {
			return true
		}
		entry := Entry{
			ID:   key.String(),
			Name: name.Str,
			Rank: layout.resolveRank(value.Get(FieldRank)),
		}
		if entry.Rank.IsZero() && !layout.DropRanked {
			r.unranked++
		}
		normalized := norm.NFC.String(entry.Name)
		if _, dup := r.byName[normalized]; !dup {
			r.byName[normalized] = len(r.entries)
		}
		r.entries = append(r.entries, entry)
		return true
	})
	return r, nil
}

// resolveRank maps symbolic ranks through the table; unmapped symbols pass through.
func (s Layout) resolveRank(v gjson.Result) domain.Rank {
	switch v.Type {
	case gjson.Number:
		return domain.TierRank(int(v.Int()))
	case gjson.String:
		if tier, ok := s.Ranks[v.Str]; ok {
			return domain.TierRank(tier)
		}
		if n, err := strconv.Atoi(v.Str); err == nil {
			return domain.TierRank(n)
		}
		return domain.SymbolRank(v.Str)
	}
	return domain.Rank{}
}

// Lookup returns the first entry whose display name matches exactly after
// Unicode normalization.
func (r *Roster) Lookup(name string) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	i, ok := r.byName[norm.NFC.String(name)]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Len returns the number of named entries.
func (r *Roster) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Unranked counts entries whose rank was missing or unreadable. Drops
// naming them resolve as catalog misses.
func (r *Roster) Unranked() int {
	if r == nil {
		return 0
	}
	return r.unranked
}

// Rosters groups the two catalogs a game's drops resolve against.
type Rosters struct {
	Characters *Roster
	Weapons    *Roster
}
