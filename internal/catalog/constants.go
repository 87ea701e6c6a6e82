package catalog

import "time"

// Roster field names
const (
	FieldNameUpper = "EN"
	FieldNameLower = "en"
	FieldRank      = "rank"
)

// Catalog URL layout: {base}/{game short}/data/{file}.json
const (
	DefaultBaseURL   = "https://api.hakush.in"
	URLPatternRoster = "%s/%s/data/%s.json"
	FileCharacters   = "character"
	FileWeapons      = "weapon"
	FileLightcones   = "lightcone"
	DefaultCacheSize = 16
	DefaultCacheTTL  = 6 * time.Hour
)

// Log messages
const (
	LogMsgRosterCacheHit    = "Catalog roster served from cache"
	LogMsgRosterLoaded      = "Catalog roster loaded"
	LogMsgRosterInvalidated = "Catalog rosters invalidated"
	LogMsgRosterUnranked    = "Catalog entries without a rank will not resolve"
)

// Error messages
const (
	ErrMsgRosterNotObject = "roster payload is not a JSON object"
	ErrMsgRosterFetch     = "fetch %s roster"
	ErrMsgRosterParse     = "parse %s roster"
)
