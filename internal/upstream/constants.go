package upstream

import "time"

// Client defaults
const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "Hoyoverse-Data/1.0 (+https://github.com/FuriaPaladins/Hoyoverse-Data)"

	// MaxResponseBytes bounds a single JSON document
	MaxResponseBytes = 32 << 20
	// MaxImageBytes bounds a single banner image
	MaxImageBytes = 16 << 20
)

// Request headers
const (
	HeaderUserAgent = "User-Agent"
	HeaderAccept    = "Accept"
	AcceptJSON      = "application/json"
)

// List envelope paths
const (
	PathRetcode = "retcode"
	PathMessage = "message"
	PathList    = "data.list"
)

// Log messages
const (
	LogMsgFetching     = "Fetching upstream document"
	LogMsgFetchFailed  = "Upstream fetch failed"
	LogMsgImageSkipped = "Image already present, skipping download"
	LogMsgImageSaved   = "Image saved"
	LogMsgImageFailed  = "Image download failed"
)

// Error messages
const (
	ErrMsgBuildRequest = "failed to build request for %s: %w"
	ErrMsgStatus       = "%s returned status %d"
	ErrMsgInvalidJSON  = "%s returned invalid JSON"
	ErrMsgRetcode      = "%s returned retcode %d: %s"
	ErrMsgMissingList  = "%s has no banner list"
	ErrMsgDecodeList   = "failed to decode banner list from %s: %w"
	ErrMsgTooLarge     = "%s exceeded %d bytes"
)
