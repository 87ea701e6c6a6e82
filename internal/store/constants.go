package store

// File layout under the data root
const (
	BannersDir           = "banners"
	LedgerFilePattern    = "%s.json"
	FormattedFilePattern = "%s_formatted.json"
	DetailFilePattern    = "%s.json"
)

// Lock kinds
const (
	LockKindLedger    = "ledger"
	LockKindFormatted = "formatted"
	LockKindDetail    = "detail"
)

// Log messages
const (
	LogMsgLedgerUpdated       = "Ledger updated"
	LogMsgDetailCached        = "Banner detail already cached"
	LogMsgDetailSaved         = "Banner detail saved"
	LogMsgFormattedSaved      = "Saved formatted banner data"
	LogMsgPlaceholdersRemoved = "Removed empty placeholder items from history"
	LogMsgFormattedUnchanged  = "Formatted banner data unchanged"
)

// Error messages
const (
	ErrMsgInvalidBannerID = "invalid banner id %q"
	ErrMsgDetailNotJSON   = "banner detail is not valid JSON"
)
