package naming

import (
	"strings"
)

// Resolver extracts a clean banner display name from an upstream title
type Resolver interface {
	// ResolveBannerName returns the clean name, or ok=false when nothing usable remains
	ResolveBannerName(rawTitle string) (name string, ok bool)
}

type quotedTitleResolver struct{}

// NewQuotedTitleResolver handles titles such as
// `<color=#FFD780FF>"Moment of Reckoning"</color>` or "Event Wish: Foo".
func NewQuotedTitleResolver() Resolver {
	return quotedTitleResolver{}
}

func (quotedTitleResolver) ResolveBannerName(rawTitle string) (string, bool) {
	if rawTitle == "" {
		return "", false
	}

	clean := StripMarkup(rawTitle)
	if m := quotedPattern.FindStringSubmatch(clean); m != nil {
		name := strings.TrimSpace(m[1])
		return name, name != ""
	}

	name := strings.TrimSpace(categoryPrefixPattern.ReplaceAllString(clean, ""))
	return name, name != ""
}

type firstSegmentResolver struct{}

// NewFirstSegmentResolver keeps the text before the first colon. Used for
// titles that are already clean apart from a subtitle.
func NewFirstSegmentResolver() Resolver {
	return firstSegmentResolver{}
}

func (firstSegmentResolver) ResolveBannerName(rawTitle string) (string, bool) {
	clean := StripMarkup(rawTitle)
	name, _, _ := strings.Cut(clean, SegmentSeparator)
	name = strings.TrimSpace(name)
	return name, name != ""
}

// StripMarkup removes inline color tags.
func StripMarkup(s string) string {
	return colorTagPattern.ReplaceAllString(s, "")
}
