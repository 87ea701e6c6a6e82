package game

import (
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/catalog"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
)

// lookupRef resolves a name against a roster. The roster rank is used unless
// override is set; an entry with no usable rank counts as a miss.
func lookupRef(roster *catalog.Roster, name string, itemType domain.ItemType, override *domain.Rank) (domain.ItemRef, bool) {
	entry, ok := roster.Lookup(name)
	if !ok {
		return domain.ItemRef{}, false
	}
	rank := entry.Rank
	if override != nil {
		rank = *override
	}
	if rank.IsZero() {
		return domain.ItemRef{}, false
	}
	return domain.ItemRef{
		ID:       entry.ID,
		Name:     entry.Name,
		Rank:     rank,
		ItemType: itemType,
	}, true
}

// rankFromDrop reads a rarity carried on the drop itself.
func rankFromDrop(v gjson.Result) domain.Rank {
	switch v.Type {
	case gjson.Number:
		return domain.TierRank(int(v.Int()))
	case gjson.String:
		if n, err := strconv.Atoi(v.Str); err == nil {
			return domain.TierRank(n)
		}
		return domain.SymbolRank(v.Str)
	}
	return domain.Rank{}
}

// UnknownDrop describes a drop that could not be resolved.
type UnknownDrop struct {
	ItemName string
	ItemType string
	Raw      string
}

func (u UnknownDrop) String() string {
	return fmt.Sprintf("%s (%s)", u.ItemName, u.ItemType)
}

// ParseDrops resolves a drop list. Unresolved drops are omitted from items and
// reported separately. A null or missing list is empty.
func ParseDrops(a Adapter, list gjson.Result, rosters catalog.Rosters) ([]domain.ItemRef, []UnknownDrop, error) {
	items := []domain.ItemRef{}
	var unknown []UnknownDrop
	if !list.Exists() || list.Type == gjson.Null {
		return items, nil, nil
	}
	if !list.IsArray() {
		return nil, nil, fmt.Errorf("%w: drop list is %s", domain.ErrUpstreamSchema, list.Type)
	}

	for _, drop := range list.Array() {
		item, ok := a.ParseDrop(drop, rosters)
		if !ok {
			unknown = append(unknown, UnknownDrop{
				ItemName: drop.Get(FieldDropItemName).String(),
				ItemType: drop.Get(FieldDropItemType).String(),
				Raw:      drop.Raw,
			})
			continue
		}
		items = append(items, item)
	}
	return items, unknown, nil
}
