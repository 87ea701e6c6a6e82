package notify

// Webhook URL layout: https://discord.com/api/webhooks/{id}/{token}
const webhookPathMarker = "webhooks"

// Embed layout
const (
	DefaultUsername   = "Banner Tracker"
	FieldNameUprate5  = "5★ Rate-Up"
	FieldNameUprate4  = "4★ Rate-Up"
	FieldNameStart    = "Starts"
	FieldNameEnd      = "Ends"
	FieldValueNone    = "None"
	FooterPattern     = "%s · %s"
	DescriptionFormat = "New %s banner in %s"
	ServerTimeSuffix  = " (server time)"
	MaxFieldLength    = 1024
)

// Embed colours per game
const (
	ColorGenshin  = 0x4a90d9
	ColorStarRail = 0x8e44ad
	ColorZenless  = 0xf39c12
	ColorDefault  = 0x2ecc71
)

// Log messages
const (
	LogMsgNotificationSent   = "Banner notification sent"
	LogMsgNotificationFailed = "Banner notification failed"
)

// Error messages
const (
	ErrMsgInvalidWebhookURL = "invalid discord webhook url"
)
