package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
)

func stubWithType(t *testing.T, gachaType string) domain.RawBannerStub {
	t.Helper()
	return domain.RawBannerStub{
		domain.StubFieldID:   "id",
		domain.StubFieldType: json.Number(gachaType),
	}
}

func mustAdapter(t *testing.T, game domain.Game) Adapter {
	t.Helper()
	a, err := New(game, nil, Endpoints{})
	require.NoError(t, err)
	return a
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		game       domain.Game
		gachaType  string
		title      string
		wantSkip   bool
		wantCode   int
		wantKey    string
		wantBucket domain.Bucket
	}{
		{"genshin novice skipped", domain.GameGenshin, "100", "", true, 100, "100", ""},
		{"genshin standard skipped", domain.GameGenshin, "200", "", true, 200, "200", ""},
		{"genshin character event", domain.GameGenshin, "301", "", false, 301, "301", domain.BucketCharacter},
		{"genshin character event 2", domain.GameGenshin, "400", "", false, 400, "400", domain.BucketCharacter},
		{"genshin weapon event", domain.GameGenshin, "302", "", false, 302, "302", domain.BucketWeapon},
		{"genshin chronicled", domain.GameGenshin, "500", "", false, 500, "500", domain.BucketCharacter},
		{"genshin unknown code epitome title", domain.GameGenshin, "303", "Epitome Invocation", false, 303, "303", domain.BucketWeapon},
		{"genshin unknown code wanderlust title", domain.GameGenshin, "201", "Wanderlust Invocation", false, 201, "201", domain.BucketPermanent},
		{"hsr standard skipped", domain.GameStarRail, "1", "", true, 1, "1", ""},
		{"hsr beginner skipped", domain.GameStarRail, "2", "", true, 2, "2", ""},
		{"hsr character", domain.GameStarRail, "11", "", false, 11, "11", domain.BucketCharacter},
		{"hsr lightcone", domain.GameStarRail, "12", "", false, 12, "12", domain.BucketLightcone},
		{"hsr collab lightcone", domain.GameStarRail, "22", "", false, 22, "22", domain.BucketLightcone},
		{"hsr unknown code fixation title", domain.GameStarRail, "13", "Brilliant Fixation: x", false, 13, "13", domain.BucketLightcone},
		{"zzz four digit code uses first digit", domain.GameZenless, "2001", "", false, 2, "2", domain.BucketCharacter},
		{"zzz w-engine", domain.GameZenless, "3001", "", false, 3, "3", domain.BucketWeapon},
		{"zzz standard skipped", domain.GameZenless, "1001", "", true, 1, "1", ""},
		{"zzz bangboo skipped", domain.GameZenless, "5001", "", true, 5, "5", ""},
		{"zzz five digit code uses two digits", domain.GameZenless, "21001", "", false, 21, "21", domain.BucketCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustAdapter(t, tt.game)
			got := a.Classify(stubWithType(t, tt.gachaType), tt.title)
			assert.Equal(t, tt.wantSkip, got.Skip)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantKey, got.Key)
			if !tt.wantSkip {
				assert.Equal(t, tt.wantBucket, got.Bucket)
			}
		})
	}
}

func TestZenlessCode(t *testing.T) {
	assert.Equal(t, 2, ZenlessCode("2001"))
	assert.Equal(t, 31, ZenlessCode("31001"))
	assert.Equal(t, 3, ZenlessCode("3"))
	assert.Equal(t, 12, ZenlessCode("12"))
	assert.Equal(t, -1, ZenlessCode(""))
	assert.Equal(t, -1, ZenlessCode("ab01"))
}

func TestNew_UnknownGame(t *testing.T) {
	_, err := New(domain.Game("wuwa"), nil, Endpoints{})
	assert.ErrorIs(t, err, domain.ErrUnknownGame)
}

func TestAdapterEndpoints(t *testing.T) {
	a := mustAdapter(t, domain.GameStarRail)
	assert.Equal(t, ListURLStarRail, a.ListURL())
	assert.Equal(t, "https://operation-webstatic.hoyoverse.com/gacha_info/hkrpg/prod_official_eur/42/en-us.json", a.DetailURL("42"))
	assert.Equal(t, domain.IdentityWindow, a.IdentityRule())

	custom, err := New(domain.GameGenshin, nil, Endpoints{ListURL: "http://x/list", DetailURL: "http://x/%s.json"})
	require.NoError(t, err)
	assert.Equal(t, "http://x/list", custom.ListURL())
	assert.Equal(t, "http://x/abc.json", custom.DetailURL("abc"))
	assert.Equal(t, domain.IdentityNameStart, custom.IdentityRule())
}
