package timewindow

import "time"

// Fixed per-game anchors
const (
	ServerOffset = 1 * time.Hour
	RegionOffset = 8 * time.Hour
)

// Layouts
const (
	// Layout is the canonical serialization, e.g. "2024-01-01 12:00:00+01:00"
	Layout = "2006-01-02 15:04:05-07:00"

	LayoutNaiveSpace = "2006-01-02 15:04:05"
	LayoutNaiveT     = "2006-01-02T15:04:05"
	LayoutClock      = "15:04:05"
)

// Zone names
const (
	ZoneNameServer = "UTC+1"
	ZoneNameRegion = "UTC+8"
)

// Error messages
const (
	ErrMsgEmptyTimestamp   = "empty timestamp"
	ErrMsgInvalidTimestamp = "invalid timestamp %q"
)
