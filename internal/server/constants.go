package server

import "time"

// Routes
const (
	PathHealthz    = "/healthz"
	PathStatus     = "/status"
	PathStatusGame = "/status/{game}"
	PathMetrics    = "/metrics"
	URLParamGame   = "game"
)

// HTTP error messages
const (
	ErrMsgTooManyRequests = "Too Many Requests"
	ErrMsgUnknownGame     = "unknown game"
	ErrMsgNoRunYet        = "no completed run for game"
)

// Security alert message
const SecurityAlertHighRate = "SECURITY ALERT: Blocking high request rate"

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Status server starting"
	LogMsgServerStopped    = "Status server stopped"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
)

// HTTP header names
const (
	HeaderAuthorization  = "Authorization"
	HeaderCookie         = "Cookie"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "Content-Type"
	HeaderNoSniff        = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderCacheControl   = "Cache-Control"
)

// Header values
const (
	ContentTypeJSON               = "application/json"
	HeaderValueNoSniff            = "nosniff"
	HeaderValueDeny               = "DENY"
	HeaderValueReferrerNoReferrer = "no-referrer"
	HeaderValueNoStore            = "no-store"
	RedactedValue                 = "[REDACTED]"
	HealthStatusOK                = "ok"
)

// Server limits
const (
	ReadHeaderTimeout = 5 * time.Second
	RateLimitWindow   = 5 * time.Minute
	RateLimitRequests = 600
	RateLimitLogEvery = 100
)
