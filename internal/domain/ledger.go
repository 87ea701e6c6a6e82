package domain

import (
	"encoding/json"
	"reflect"
	"strconv"
)

// Upstream stub fields read by the pipeline
const (
	StubFieldID        = "gacha_id"
	StubFieldType      = "gacha_type"
	StubFieldBeginTime = "begin_time"
	StubFieldEndTime   = "end_time"
	StubFieldName      = "gacha_name"
)

// RawBannerStub is an upstream list entry kept verbatim, minus its localized
// name. Numbers are held as json.Number so the stub round-trips unchanged.
type RawBannerStub map[string]any

// ID returns the upstream banner id.
func (s RawBannerStub) ID() string {
	return stubString(s[StubFieldID])
}

// TypeCode returns the numeric banner type code, or -1 when absent.
func (s RawBannerStub) TypeCode() int {
	switch v := s[StubFieldType].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return -1
		}
		return int(n)
	case float64:
		return int(v)
	case int:
		return v
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return -1
		}
		return n
	}
	return -1
}

// TypeCodeString returns the type code exactly as upstream wrote it.
func (s RawBannerStub) TypeCodeString() string {
	return stubString(s[StubFieldType])
}

// BeginTime returns the raw begin timestamp.
func (s RawBannerStub) BeginTime() string {
	return stubString(s[StubFieldBeginTime])
}

// EndTime returns the raw end timestamp.
func (s RawBannerStub) EndTime() string {
	return stubString(s[StubFieldEndTime])
}

// Equal is full structural equality; any upstream change to a seen stub
// makes it a new stub. Values are compared by their JSON encoding so a stub
// read back from disk equals the one it was written from.
func (s RawBannerStub) Equal(other RawBannerStub) bool {
	a, okA := s.canonical()
	b, okB := other.canonical()
	if !okA || !okB {
		return reflect.DeepEqual(map[string]any(s), map[string]any(other))
	}
	return a == b
}

func (s RawBannerStub) canonical() (string, bool) {
	data, err := json.Marshal(map[string]any(s))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func stubString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case nil:
		return ""
	}
	return ""
}

// Ledger is the append-only record of every stub seen upstream.
type Ledger struct {
	Banners []RawBannerStub `json:"banners"`
}

// Contains reports whether an equal stub is already recorded.
func (l Ledger) Contains(stub RawBannerStub) bool {
	for _, seen := range l.Banners {
		if seen.Equal(stub) {
			return true
		}
	}
	return false
}

// Diff returns the stubs not yet recorded, in upstream order, without duplicates.
func (l Ledger) Diff(stubs []RawBannerStub) []RawBannerStub {
	seen := make(map[string]struct{}, len(l.Banners)+len(stubs))
	for _, b := range l.Banners {
		if key, ok := b.canonical(); ok {
			seen[key] = struct{}{}
		}
	}

	var fresh []RawBannerStub
	for _, stub := range stubs {
		key, ok := stub.canonical()
		if !ok {
			if !l.Contains(stub) {
				fresh = append(fresh, stub)
			}
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		fresh = append(fresh, stub)
	}
	return fresh
}
