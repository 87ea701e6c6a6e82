package game

// Upstream list endpoints (retcode envelope, data.list)
const (
	ListURLGenshin  = "https://operation-webstatic.mihoyo.com/gacha_info/hk4e/cn_gf01/gacha/list.json"
	ListURLStarRail = "https://operation-webstatic.mihoyo.com/gacha_info/hkrpg/prod_gf_cn/gacha/list.json"
	ListURLZenless  = "https://operation-webstatic.mihoyo.com/gacha_info/nap/prod_gf_cn/gacha/list.json"
)

// Upstream detail endpoints, %s is the banner id
const (
	DetailURLGenshin  = "https://operation-webstatic.hoyoverse.com/gacha_info/hk4e/os_euro/%s/en-us.json"
	DetailURLStarRail = "https://operation-webstatic.hoyoverse.com/gacha_info/hkrpg/prod_official_eur/%s/en-us.json"
	DetailURLZenless  = "https://operation-webstatic.hoyoverse.com/gacha_info/nap/prod_gf_eu/%s/en-us.json"
)

// Detail payload fields
const (
	FieldTitle         = "title"
	FieldBannerImage   = "banner"
	FieldUp5Genshin    = "r5_up_items"
	FieldUp4Genshin    = "r4_up_items"
	FieldUp5Star       = "items_up_star_5"
	FieldUp4Star       = "items_up_star_4"
	FieldDropItemType  = "item_type"
	FieldDropItemName  = "item_name"
	FieldDropItemColor = "item_color"
	FieldDropStar      = "star"
)

// Drop item_type discriminators
const (
	DropTypeGenshinCharacter  = "Character"
	DropTypeGenshinWeapon     = "Weapon"
	DropTypeStarRailCharacter = "avatar"
	DropTypeStarRailLightcone = "equipment"
	DropTypeZenlessCharacter  = "3"
	DropTypeZenlessWeapon     = "5"
)

// Title fallbacks for codes missing from the tables
const (
	TitleBeginnersWish        = "Beginners' Wish"
	TitleWanderlustInvocation = "Wanderlust Invocation"
	TitleEpitomeInvocation    = "Epitome Invocation"
	TitleBrilliantFixation    = "Brilliant Fixation"
)

// ZenlessWideCodeWidth is the type code width whose first digit alone is the code
const ZenlessWideCodeWidth = 4

// Error messages
const (
	ErrMsgDetailNotObject = "banner detail is not a JSON object"
	ErrMsgUnknownGame     = "no adapter for game %q"
)
