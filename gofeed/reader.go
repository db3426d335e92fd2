package gofeed

import (
	"github.com/fwojciec/pagefeed"
	"github.com/mmcdole/gofeed"
)

// Ensure Reader implements pagefeed.FeedReader at compile time.
var _ pagefeed.FeedReader = (*Reader)(nil)

// Reader parses feed documents with gofeed.
type Reader struct {
	parser *gofeed.Parser
}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{parser: gofeed.NewParser()}
}

// ReadItems returns the items of the feed document in document order.
func (r *Reader) ReadItems(doc string) ([]*pagefeed.Item, error) {
	feed, err := r.parser.ParseString(doc)
	if err != nil {
		return nil, pagefeed.Errorf(pagefeed.EINVALID, "failed to parse feed: %v", err)
	}

	items := make([]*pagefeed.Item, len(feed.Items))
	for i, it := range feed.Items {
		items[i] = &pagefeed.Item{
			Title:       it.Title,
			Link:        it.Link,
			Description: it.Description,
			PubDate:     it.Published,
			GUID:        it.GUID,
		}
	}
	return items, nil
}
