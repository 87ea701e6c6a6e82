package game

import (
	"github.com/tidwall/gjson"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/catalog"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/naming"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/timewindow"
)

type zenless struct {
	base
	codes codeTable
}

func newZenless(times *timewindow.Resolver, endpoints Endpoints) *zenless {
	return &zenless{
		base: base{
			game:      domain.GameZenless,
			endpoints: endpoints,
			names:     naming.NewFirstSegmentResolver(),
			times:     times,
			rule:      domain.IdentityWindow,
			up5:       FieldUp5Star,
			up4:       FieldUp4Star,
		},
		codes: codeTable{
			// standard and bangboo
			skip: map[int]bool{1: true, 5: true},
			buckets: map[int]domain.Bucket{
				2: domain.BucketCharacter,
				3: domain.BucketWeapon,
			},
			fallback: channelTitleBucket,
		},
	}
}

// Classify keys Zenless banners by the leading digits of the type code.
func (z *zenless) Classify(stub domain.RawBannerStub, title string) Classification {
	return z.codes.classify(ZenlessCode(stub.TypeCodeString()), title)
}

// ParseDrop takes the rank from the drop's star field. W-Engines keep the
// "lightcone" item type used by existing history files.
func (z *zenless) ParseDrop(drop gjson.Result, rosters catalog.Rosters) (domain.ItemRef, bool) {
	name := drop.Get(FieldDropItemName).String()
	rank := rankFromDrop(drop.Get(FieldDropStar))
	switch drop.Get(FieldDropItemType).String() {
	case DropTypeZenlessCharacter:
		return lookupRef(rosters.Characters, name, domain.ItemTypeCharacter, &rank)
	case DropTypeZenlessWeapon:
		return lookupRef(rosters.Weapons, name, domain.ItemTypeLightcone, &rank)
	}
	return domain.ItemRef{}, false
}
