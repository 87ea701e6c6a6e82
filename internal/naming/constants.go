package naming

import "regexp"

// ============================================================================
// Title Patterns
// ============================================================================

// colorTagPattern matches inline <color=...> and </color> markup
var colorTagPattern = regexp.MustCompile(`</?color[^>]*>`)

// quotedPattern captures the first double-quoted substring
var quotedPattern = regexp.MustCompile(`"(.*?)"`)

// categoryPrefixPattern matches the leading category words upstream puts in
// front of a banner name, with an optional "Wish" and separator
var categoryPrefixPattern = regexp.MustCompile(`(?i)^(?:Event|Chronicled|Beginners'|Wanderlust|Epitome)(?:\s+Wish)?\s*[:\-]?\s*`)

// SegmentSeparator splits a title into name and subtitle
const SegmentSeparator = ":"
