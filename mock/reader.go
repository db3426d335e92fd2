package mock

import "github.com/fwojciec/pagefeed"

var _ pagefeed.FeedReader = (*FeedReader)(nil)

// FeedReader is a mock implementation of pagefeed.FeedReader.
type FeedReader struct {
	ReadItemsFn func(doc string) ([]*pagefeed.Item, error)
}

func (r *FeedReader) ReadItems(doc string) ([]*pagefeed.Item, error) {
	return r.ReadItemsFn(doc)
}
