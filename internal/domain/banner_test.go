package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"
)

func TestRank_JSON(t *testing.T) {
	tests := []struct {
		name string
		rank Rank
		want string
	}{
		{"numeric tier", TierRank(5), `5`},
		{"unmapped symbol passes through", SymbolRank("QUALITY_ORANGE_SP"), `"QUALITY_ORANGE_SP"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.rank)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))

			var back Rank
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, tt.rank, back)
		})
	}

	t.Run("rejects objects", func(t *testing.T) {
		var r Rank
		assert.Error(t, json.Unmarshal([]byte(`{}`), &r))
	})
}

func TestRank_IsZero(t *testing.T) {
	assert.True(t, Rank{}.IsZero())
	assert.True(t, TierRank(0).IsZero())
	assert.False(t, TierRank(3).IsZero())
	assert.False(t, SymbolRank("QUALITY_ORANGE_SP").IsZero())
}

func TestBannerRecord_AbsorbWindow(t *testing.T) {
	start := TimeWindow{Time: "2024-01-01 12:00:00+01:00", IsServerTime: true}
	end := TimeWindow{Time: "2024-01-22 14:59:00+01:00", IsServerTime: true}
	kafka := ItemRef{ID: "1005", Name: "Kafka", Rank: TierRank(5), ItemType: ItemTypeCharacter}
	blade := ItemRef{ID: "1205", Name: "Blade", Rank: TierRank(5), ItemType: ItemTypeCharacter}
	arlan := ItemRef{ID: "1008", Name: "Arlan", Rank: TierRank(4), ItemType: ItemTypeCharacter}

	existing := BannerRecord{
		Name: null.StringFrom("Nessun Dorma"), BannerType: 11,
		Uprate5: []ItemRef{kafka}, Uprate4: []ItemRef{arlan},
		StartTime: start, EndTime: end,
	}
	candidate := BannerRecord{
		Name: null.StringFrom("Sharp Blade"), BannerType: 11,
		Uprate5: []ItemRef{blade}, Uprate4: []ItemRef{arlan},
		StartTime: start, EndTime: end,
	}

	require.True(t, existing.Matches(candidate, IdentityWindow))
	assert.False(t, existing.Matches(candidate, IdentityNameStart))

	changed := existing.AbsorbWindow(candidate)
	assert.True(t, changed)
	assert.Equal(t, []ItemRef{kafka, blade}, existing.Uprate5)
	assert.Equal(t, []ItemRef{arlan}, existing.Uprate4)
	assert.Equal(t, []string{"Nessun Dorma", "Sharp Blade"}, existing.Names)
	assert.Equal(t, "Nessun Dorma", existing.Name.String)

	t.Run("absorbing the same candidate twice is a no-op", func(t *testing.T) {
		assert.False(t, existing.AbsorbWindow(candidate))
	})

	t.Run("same name in the same window adds no alias", func(t *testing.T) {
		rec := BannerRecord{Name: null.StringFrom("Solo"), BannerType: 12, StartTime: start, EndTime: end}
		assert.False(t, rec.AbsorbWindow(rec))
		assert.Nil(t, rec.Names)
	})
}

func TestBannerRecord_JSONShape(t *testing.T) {
	rec := BannerRecord{
		Name:       null.String{},
		BannerType: 301,
		Uprate5:    []ItemRef{},
		Uprate4:    []ItemRef{},
	}
	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Nil(t, raw["name"])
	assert.NotContains(t, raw, "names")
	assert.Equal(t, []any{}, raw["uprate_5"])
}

func TestParseGames(t *testing.T) {
	games, err := ParseGames([]string{"genshin", "HSR", "genshin"})
	require.NoError(t, err)
	assert.Equal(t, []Game{GameGenshin, GameStarRail}, games)

	_, err = ParseGames([]string{"wuwa"})
	assert.ErrorIs(t, err, ErrUnknownGame)

	assert.Equal(t, "gi", GameGenshin.Short())
}
