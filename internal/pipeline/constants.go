package pipeline

// Defaults
const (
	DefaultConcurrency = 8
	ImageExtension     = ".png"
)

// Lock kinds
const (
	LockKindRun = "run"
)

// Log messages
const (
	LogMsgRunStarted      = "Starting banner run"
	LogMsgNoNewBanners    = "No new banners found"
	LogMsgFoundNewBanners = "Found new banners"
	LogMsgBannersAdded    = "Added new parsed banners"
	LogMsgBannersMerged   = "Merged banners into existing windows"
	LogMsgBannerSkipped   = "Banner type excluded from collection"
	LogMsgTaskFailed      = "Banner task failed"
	LogMsgUnknownDrop     = "Unknown drop omitted from rate-ups"
	LogMsgNameUnparsed    = "Could not resolve banner name"
	LogMsgRunFailed       = "Banner run failed"
	LogMsgRunCompleted    = "Banner run completed"
	LogMsgRunBusy         = "Previous run still in progress, skipping"
	LogMsgRunPanicked     = "Banner run panicked"
	LogMsgPublishFailed   = "Failed to publish event"
	LogMsgCatalogRefresh  = "Unresolved drops, refreshing catalog"
	LogMsgRefreshFailed   = "Catalog refresh failed, keeping cached rosters"
)

// Error messages
const (
	ErrMsgListFetch   = "fetch banner list: %w"
	ErrMsgLedger      = "ledger: %w"
	ErrMsgCatalog     = "catalog: %w"
	ErrMsgMerge       = "merge: %w"
	ErrMsgPanic       = "panic: %v"
	ErrMsgGamesFailed = "%d of %d games failed"
)
