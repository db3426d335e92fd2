package mock

import (
	"context"

	"github.com/fwojciec/pagefeed"
)

var _ pagefeed.FeedStore = (*FeedStore)(nil)

// FeedStore is a mock implementation of pagefeed.FeedStore.
type FeedStore struct {
	LoadFn func(ctx context.Context) (string, error)
	SaveFn func(ctx context.Context, doc string) error
}

func (s *FeedStore) Load(ctx context.Context) (string, error) {
	return s.LoadFn(ctx)
}

func (s *FeedStore) Save(ctx context.Context, doc string) error {
	return s.SaveFn(ctx, doc)
}
