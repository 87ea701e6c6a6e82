package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/catalog"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
)

func mustRosters(t *testing.T, chars, weapons string, charLayout, weaponLayout catalog.Layout) catalog.Rosters {
	t.Helper()
	c, err := catalog.ParseRoster([]byte(chars), charLayout)
	require.NoError(t, err)
	w, err := catalog.ParseRoster([]byte(weapons), weaponLayout)
	require.NoError(t, err)
	return catalog.Rosters{Characters: c, Weapons: w}
}

func genshinRosters(t *testing.T) catalog.Rosters {
	return mustRosters(t,
		`{"10000089": {"EN": "Furina", "rank": "QUALITY_ORANGE"}, "10000025": {"EN": "Xingqiu", "rank": "QUALITY_PURPLE"}}`,
		`{"11513": {"EN": "Splendor of Tranquil Waters", "rank": 5}}`,
		catalog.GenshinCharacters, catalog.GenshinWeapons)
}

func TestParseDrop_PerGame(t *testing.T) {
	gi := mustAdapter(t, domain.GameGenshin)
	hsr := mustAdapter(t, domain.GameStarRail)
	zzz := mustAdapter(t, domain.GameZenless)

	hsrRosters := mustRosters(t,
		`{"1005": {"en": "Kafka", "rank": "CombatPowerAvatarRarityType5"}}`,
		`{"23006": {"en": "Patience Is All You Need", "rank": "CombatPowerLightconeRarity5"}}`,
		catalog.StarRailCharacters, catalog.StarRailLightcones)
	zzzRosters := mustRosters(t,
		`{"1191": {"EN": "Ellen"}}`,
		`{"14119": {"EN": "Deep Sea Visitor"}}`,
		catalog.ZenlessCharacters, catalog.ZenlessWeapons)

	tests := []struct {
		name    string
		adapter Adapter
		rosters catalog.Rosters
		drop    string
		want    domain.ItemRef
		wantOk  bool
	}{
		{
			name: "genshin character carries colour", adapter: gi, rosters: genshinRosters(t),
			drop:   `{"item_type": "Character", "item_name": "Furina", "item_color": "orange"}`,
			want:   domain.ItemRef{ID: "10000089", Name: "Furina", Rank: domain.TierRank(5), Colour: "orange", ItemType: domain.ItemTypeCharacter},
			wantOk: true,
		},
		{
			name: "genshin weapon", adapter: gi, rosters: genshinRosters(t),
			drop:   `{"item_type": "Weapon", "item_name": "Splendor of Tranquil Waters", "item_color": "orange"}`,
			want:   domain.ItemRef{ID: "11513", Name: "Splendor of Tranquil Waters", Rank: domain.TierRank(5), ItemType: domain.ItemTypeWeapon},
			wantOk: true,
		},
		{
			name: "genshin catalog miss", adapter: gi, rosters: genshinRosters(t),
			drop: `{"item_type": "Character", "item_name": "Someone New"}`,
		},
		{
			name: "genshin weapon name looked up in weapon roster only", adapter: gi, rosters: genshinRosters(t),
			drop: `{"item_type": "Weapon", "item_name": "Furina"}`,
		},
		{
			name: "hsr avatar", adapter: hsr, rosters: hsrRosters,
			drop:   `{"item_type": "avatar", "item_name": "Kafka"}`,
			want:   domain.ItemRef{ID: "1005", Name: "Kafka", Rank: domain.TierRank(5), ItemType: domain.ItemTypeCharacter},
			wantOk: true,
		},
		{
			name: "hsr equipment is a lightcone", adapter: hsr, rosters: hsrRosters,
			drop:   `{"item_type": "equipment", "item_name": "Patience Is All You Need"}`,
			want:   domain.ItemRef{ID: "23006", Name: "Patience Is All You Need", Rank: domain.TierRank(5), ItemType: domain.ItemTypeLightcone},
			wantOk: true,
		},
		{
			name: "hsr unknown item type", adapter: hsr, rosters: hsrRosters,
			drop: `{"item_type": "relic", "item_name": "Kafka"}`,
		},
		{
			name: "zzz agent rank from star", adapter: zzz, rosters: zzzRosters,
			drop:   `{"item_type": "3", "item_name": "Ellen", "star": 5}`,
			want:   domain.ItemRef{ID: "1191", Name: "Ellen", Rank: domain.TierRank(5), ItemType: domain.ItemTypeCharacter},
			wantOk: true,
		},
		{
			name: "zzz numeric item type and string star", adapter: zzz, rosters: zzzRosters,
			drop:   `{"item_type": 5, "item_name": "Deep Sea Visitor", "star": "5"}`,
			want:   domain.ItemRef{ID: "14119", Name: "Deep Sea Visitor", Rank: domain.TierRank(5), ItemType: domain.ItemTypeLightcone},
			wantOk: true,
		},
		{
			name: "zzz drop without star is a miss", adapter: zzz, rosters: zzzRosters,
			drop: `{"item_type": "3", "item_name": "Ellen"}`,
		},
		{
			name: "genshin roster entry without rank is a miss", adapter: gi,
			rosters: mustRosters(t,
				`{"10000099": {"EN": "Unranked Hero"}}`,
				`{"11599": {"EN": "Unranked Blade", "rank": null}}`,
				catalog.GenshinCharacters, catalog.GenshinWeapons),
			drop: `{"item_type": "Character", "item_name": "Unranked Hero"}`,
		},
		{
			name: "hsr unmapped symbolic rank passes through", adapter: hsr,
			rosters: mustRosters(t,
				`{"1999": {"en": "Newcomer", "rank": "CombatPowerAvatarRarityType6"}}`,
				`{}`,
				catalog.StarRailCharacters, catalog.StarRailLightcones),
			drop:   `{"item_type": "avatar", "item_name": "Newcomer"}`,
			want:   domain.ItemRef{ID: "1999", Name: "Newcomer", Rank: domain.SymbolRank("CombatPowerAvatarRarityType6"), ItemType: domain.ItemTypeCharacter},
			wantOk: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.adapter.ParseDrop(gjson.Parse(tt.drop), tt.rosters)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Genshin(t *testing.T) {
	a := mustAdapter(t, domain.GameGenshin)
	stub := domain.RawBannerStub{
		domain.StubFieldID:        "abc",
		domain.StubFieldType:      "301",
		domain.StubFieldBeginTime: "2023-11-08 06:00:00",
		domain.StubFieldEndTime:   "2023-11-28 17:59:00",
	}
	detail := `{
		"title": "<color=#FFD780FF>\"Tapestry of Golden Flames\"</color>",
		"banner": "https://example.test/banner.png",
		"r5_up_items": [{"item_type": "Character", "item_name": "Furina", "item_color": "orange"}],
		"r4_up_items": [
			{"item_type": "Character", "item_name": "Xingqiu", "item_color": "purple"},
			{"item_type": "Character", "item_name": "Nobody", "item_color": "purple"}
		]
	}`

	c, err := Normalize(a, stub, []byte(detail), genshinRosters(t))
	require.NoError(t, err)

	assert.False(t, c.Classification.Skip)
	assert.Equal(t, "301", c.Classification.Key)
	assert.Equal(t, "Tapestry of Golden Flames", c.Record.Name.String)
	assert.False(t, c.NameUnparsed)
	assert.Equal(t, 301, c.Record.BannerType)
	require.Len(t, c.Record.Uprate5, 1)
	require.Len(t, c.Record.Uprate4, 1, "unknown drops are omitted, never placeholders")
	assert.Equal(t, "Xingqiu", c.Record.Uprate4[0].Name)
	require.Len(t, c.Unknown, 1)
	assert.Equal(t, "Nobody", c.Unknown[0].ItemName)
	assert.Equal(t, domain.TimeWindow{Time: "2023-11-08 06:00:00+08:00"}, c.Record.StartTime)
	assert.Equal(t, domain.TimeWindow{Time: "2023-11-28 17:59:00+01:00", IsServerTime: true}, c.Record.EndTime)
	assert.Equal(t, "https://example.test/banner.png", c.ImageURL)
}

func TestNormalize_EdgeCases(t *testing.T) {
	a := mustAdapter(t, domain.GameGenshin)
	stub := domain.RawBannerStub{
		domain.StubFieldID:        "abc",
		domain.StubFieldType:      "302",
		domain.StubFieldBeginTime: "2023-11-08 18:00:00",
		domain.StubFieldEndTime:   "2023-11-28 14:59:59",
	}

	t.Run("null drop lists and unusable title", func(t *testing.T) {
		c, err := Normalize(a, stub, []byte(`{"title": "", "r5_up_items": null}`), genshinRosters(t))
		require.NoError(t, err)
		assert.True(t, c.NameUnparsed)
		assert.False(t, c.Record.Name.Valid)
		assert.NotNil(t, c.Record.Uprate5)
		assert.NotNil(t, c.Record.Uprate4)
		assert.Empty(t, c.Record.Uprate5)
	})

	t.Run("skipped stub has no record", func(t *testing.T) {
		skipped := domain.RawBannerStub{domain.StubFieldID: "x", domain.StubFieldType: "200"}
		c, err := Normalize(a, skipped, []byte(`{"title": "Wanderlust Invocation"}`), genshinRosters(t))
		require.NoError(t, err)
		assert.True(t, c.Classification.Skip)
		assert.Zero(t, c.Record.BannerType)
	})

	t.Run("malformed detail", func(t *testing.T) {
		_, err := Normalize(a, stub, []byte(`not json`), genshinRosters(t))
		assert.ErrorIs(t, err, domain.ErrUpstreamSchema)

		_, err = Normalize(a, stub, []byte(`[]`), genshinRosters(t))
		assert.ErrorIs(t, err, domain.ErrUpstreamSchema)
	})

	t.Run("drop list of wrong type", func(t *testing.T) {
		_, err := Normalize(a, stub, []byte(`{"r5_up_items": {}}`), genshinRosters(t))
		assert.ErrorIs(t, err, domain.ErrUpstreamSchema)
	})

	t.Run("bad timestamp", func(t *testing.T) {
		bad := domain.RawBannerStub{domain.StubFieldID: "x", domain.StubFieldType: "301", domain.StubFieldBeginTime: "soon"}
		_, err := Normalize(a, bad, []byte(`{}`), genshinRosters(t))
		assert.ErrorIs(t, err, domain.ErrUpstreamSchema)
	})
}
