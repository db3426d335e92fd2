package pagefeed

import "time"

// canonicalDateLayout is the layout used for every pubDate this package
// emits. Two-digit days and the literal GMT suffix keep the output stable
// under repeated normalization.
const canonicalDateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

// dateLayouts are the accepted input formats, tried in order. Layouts
// without a zone are interpreted as UTC.
var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	"2006-01-02 15:04:05 -07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// NormalizeDate parses value in one of the accepted layouts and formats it
// as an RFC 1123 date in UTC. The special value "now" yields the current
// time. Returns EINVALID if no layout matches.
func NormalizeDate(value string) (string, error) {
	if value == "now" {
		return time.Now().UTC().Format(canonicalDateLayout), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Format(canonicalDateLayout), nil
		}
	}
	return "", Errorf(EINVALID, "unrecognized date %q", value)
}
