package game

import (
	"github.com/tidwall/gjson"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/catalog"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/naming"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/timewindow"
)

type genshin struct {
	base
	codes codeTable
}

func newGenshin(times *timewindow.Resolver, endpoints Endpoints) *genshin {
	return &genshin{
		base: base{
			game:      domain.GameGenshin,
			endpoints: endpoints,
			names:     naming.NewQuotedTitleResolver(),
			times:     times,
			rule:      domain.IdentityNameStart,
			up5:       FieldUp5Genshin,
			up4:       FieldUp4Genshin,
		},
		codes: codeTable{
			// novice and standard
			skip: map[int]bool{100: true, 200: true},
			buckets: map[int]domain.Bucket{
				301: domain.BucketCharacter,
				400: domain.BucketCharacter,
				302: domain.BucketWeapon,
				500: domain.BucketCharacter,
			},
			fallback: wishTitleBucket,
		},
	}
}

func (g *genshin) Classify(stub domain.RawBannerStub, title string) Classification {
	return g.codes.classify(stub.TypeCode(), title)
}

func (g *genshin) ParseDrop(drop gjson.Result, rosters catalog.Rosters) (domain.ItemRef, bool) {
	name := drop.Get(FieldDropItemName).String()
	switch drop.Get(FieldDropItemType).String() {
	case DropTypeGenshinCharacter:
		ref, ok := lookupRef(rosters.Characters, name, domain.ItemTypeCharacter, nil)
		if ok {
			ref.Colour = drop.Get(FieldDropItemColor).String()
		}
		return ref, ok
	case DropTypeGenshinWeapon:
		return lookupRef(rosters.Weapons, name, domain.ItemTypeWeapon, nil)
	}
	return domain.ItemRef{}, false
}
