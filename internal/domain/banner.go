package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"gopkg.in/guregu/null.v3"
)

// ItemType partitions the catalog namespace
type ItemType string

const (
	ItemTypeCharacter ItemType = "character"
	ItemTypeWeapon    ItemType = "weapon"
	ItemTypeLightcone ItemType = "lightcone"
)

// Bucket is the top-level category a banner is filed under
type Bucket string

const (
	BucketPermanent Bucket = "permanent"
	BucketCharacter Bucket = "character"
	BucketWeapon    Bucket = "weapon"
	BucketLightcone Bucket = "lightcone"
)

// IdentityRule decides when two banner records describe the same banner.
type IdentityRule int

const (
	// IdentityNameStart treats records with the same name and start time as one banner.
	IdentityNameStart IdentityRule = iota
	// IdentityWindow treats records with the same type code and time window as one banner.
	IdentityWindow
)

func (r IdentityRule) String() string {
	switch r {
	case IdentityNameStart:
		return "name+start"
	case IdentityWindow:
		return "type+start+end"
	default:
		return "unknown"
	}
}

// Rank is a rarity tier. Symbolic upstream values that have no known tier are
// kept verbatim in Symbol and serialized as strings.
type Rank struct {
	Tier   int
	Symbol string
}

// TierRank builds a numeric rank.
func TierRank(tier int) Rank {
	return Rank{Tier: tier}
}

// SymbolRank builds a pass-through rank for an unmapped symbolic value.
func SymbolRank(symbol string) Rank {
	return Rank{Symbol: symbol}
}

// IsSymbolic reports whether the rank could not be mapped to a tier.
func (r Rank) IsSymbolic() bool {
	return r.Symbol != ""
}

// IsZero reports whether no usable rank was found.
func (r Rank) IsZero() bool {
	return r.Tier <= 0 && r.Symbol == ""
}

func (r Rank) String() string {
	if r.IsSymbolic() {
		return r.Symbol
	}
	return strconv.Itoa(r.Tier)
}

// MarshalJSON writes the tier as a number, or the symbol as a string.
func (r Rank) MarshalJSON() ([]byte, error) {
	if r.IsSymbolic() {
		return json.Marshal(r.Symbol)
	}
	return []byte(strconv.Itoa(r.Tier)), nil
}

// UnmarshalJSON accepts either a number or a string.
func (r *Rank) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = SymbolRank(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("rank must be a number or string: %w", err)
	}
	*r = TierRank(n)
	return nil
}

// ItemRef is a rate-up item resolved against the catalog.
type ItemRef struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Rank     Rank     `json:"rank"`
	Colour   string   `json:"colour,omitempty"`
	ItemType ItemType `json:"item_type"`
}

// TimeWindow is one edge of a banner's availability window. Time is the
// timezone-qualified serialization and is the equality key.
type TimeWindow struct {
	Time         string `json:"time"`
	IsServerTime bool   `json:"is_server_time"`
}

// BannerRecord is the normalized shape persisted in the formatted collection.
type BannerRecord struct {
	Name       null.String `json:"name"`
	Names      []string    `json:"names,omitempty"`
	BannerType int         `json:"banner_type"`
	Uprate5    []ItemRef   `json:"uprate_5"`
	Uprate4    []ItemRef   `json:"uprate_4"`
	StartTime  TimeWindow  `json:"start_time"`
	EndTime    TimeWindow  `json:"end_time"`
}

// DisplayName returns the banner name or a placeholder for unnamed banners.
func (b BannerRecord) DisplayName() string {
	if b.Name.Valid && b.Name.String != "" {
		return b.Name.String
	}
	return "(unnamed)"
}

// SameNameStart implements the name+start identity.
func (b BannerRecord) SameNameStart(other BannerRecord) bool {
	return b.Name == other.Name && b.StartTime == other.StartTime
}

// SameWindow implements the type+start+end identity.
func (b BannerRecord) SameWindow(other BannerRecord) bool {
	return b.BannerType == other.BannerType &&
		b.StartTime == other.StartTime &&
		b.EndTime == other.EndTime
}

// Matches applies the given identity rule.
func (b BannerRecord) Matches(other BannerRecord, rule IdentityRule) bool {
	if rule == IdentityWindow {
		return b.SameWindow(other)
	}
	return b.SameNameStart(other)
}

// AbsorbWindow merges a candidate that shares this record's window: rate-up
// lists are unioned (existing order first) and the candidate name is added to
// the alias set. It reports whether anything changed.
func (b *BannerRecord) AbsorbWindow(candidate BannerRecord) bool {
	changed := false
	b.Uprate5, changed = unionItems(b.Uprate5, candidate.Uprate5, changed)
	b.Uprate4, changed = unionItems(b.Uprate4, candidate.Uprate4, changed)

	names := slices.Clone(b.Names)
	if len(names) == 0 && b.Name.Valid {
		names = []string{b.Name.String}
	}
	if candidate.Name.Valid {
		names = append(names, candidate.Name.String)
	}
	slices.Sort(names)
	names = slices.Compact(names)
	if len(b.Names) == 0 && len(names) == 1 && b.Name.Valid && names[0] == b.Name.String {
		// A lone alias equal to the name adds nothing.
		return changed
	}
	if !slices.Equal(names, b.Names) {
		b.Names = names
		changed = true
	}
	return changed
}

func unionItems(existing, incoming []ItemRef, changed bool) ([]ItemRef, bool) {
	for _, item := range incoming {
		if !slices.Contains(existing, item) {
			existing = append(existing, item)
			changed = true
		}
	}
	if existing == nil {
		existing = []ItemRef{}
	}
	return existing, changed
}

// Collection maps a collection key (decimal banner type code) to its records.
type Collection map[string][]BannerRecord

// CollectionKey returns the key a banner type code is filed under.
func CollectionKey(bannerType int) string {
	return strconv.Itoa(bannerType)
}

// Count returns the total number of records across all keys.
func (c Collection) Count() int {
	n := 0
	for _, records := range c {
		n += len(records)
	}
	return n
}
