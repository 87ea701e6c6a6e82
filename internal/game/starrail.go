package game

import (
	"github.com/tidwall/gjson"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/catalog"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/naming"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/timewindow"
)

type starRail struct {
	base
	codes codeTable
}

func newStarRail(times *timewindow.Resolver, endpoints Endpoints) *starRail {
	return &starRail{
		base: base{
			game:      domain.GameStarRail,
			endpoints: endpoints,
			names:     naming.NewFirstSegmentResolver(),
			times:     times,
			rule:      domain.IdentityWindow,
			up5:       FieldUp5Star,
			up4:       FieldUp4Star,
		},
		codes: codeTable{
			// standard and beginner
			skip: map[int]bool{1: true, 2: true},
			buckets: map[int]domain.Bucket{
				11: domain.BucketCharacter,
				12: domain.BucketLightcone,
				21: domain.BucketCharacter,
				22: domain.BucketLightcone,
			},
			fallback: warpTitleBucket,
		},
	}
}

func (s *starRail) Classify(stub domain.RawBannerStub, title string) Classification {
	return s.codes.classify(stub.TypeCode(), title)
}

func (s *starRail) ParseDrop(drop gjson.Result, rosters catalog.Rosters) (domain.ItemRef, bool) {
	name := drop.Get(FieldDropItemName).String()
	switch drop.Get(FieldDropItemType).String() {
	case DropTypeStarRailCharacter:
		return lookupRef(rosters.Characters, name, domain.ItemTypeCharacter, nil)
	case DropTypeStarRailLightcone:
		return lookupRef(rosters.Weapons, name, domain.ItemTypeLightcone, nil)
	}
	return domain.ItemRef{}, false
}
