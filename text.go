package pagefeed

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// CollapseWhitespace replaces every run of whitespace in s, newlines
// included, with a single space and trims the ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// xmlEscaper escapes the five characters with predefined XML entities.
// Replacements happen in a single pass, so ampersands introduced by the
// escaping itself are never re-escaped.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeXML escapes s for use as XML element text.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
