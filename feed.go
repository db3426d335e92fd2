package pagefeed

import "context"

// FeedStore loads and saves the raw text of an RSS feed document.
type FeedStore interface {
	// Load returns the feed document.
	// Returns ENOTFOUND if the document does not exist.
	Load(ctx context.Context) (string, error)

	// Save writes the feed document back, replacing the previous
	// contents.
	Save(ctx context.Context, doc string) error
}

// FeedReader parses feed documents into items.
type FeedReader interface {
	// ReadItems returns the items of the feed document in document
	// order. Returns EINVALID if the document is not a parseable feed.
	ReadItems(doc string) ([]*Item, error)
}
