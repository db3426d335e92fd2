package feed

import (
	"strings"

	"github.com/fwojciec/pagefeed"
)

// channelClose marks the insertion point for new items.
const channelClose = "</channel>"

// Insert splices fragment into doc immediately before the first closing
// channel tag and returns the combined document. Returns ENOTFOUND if doc
// has no such tag.
func Insert(doc, fragment string) (string, error) {
	idx := strings.Index(doc, channelClose)
	if idx < 0 {
		return "", pagefeed.Errorf(pagefeed.ENOTFOUND, "feed document has no %s marker", channelClose)
	}
	return doc[:idx] + fragment + "\n" + doc[idx:], nil
}
