// Package fs provides file-based storage for the feed document.
package fs

import (
	"context"
	"os"

	"github.com/fwojciec/pagefeed"
)

// Ensure FeedFile implements pagefeed.FeedStore at compile time.
var _ pagefeed.FeedStore = (*FeedFile)(nil)

// FeedFile stores the feed document as a single file on disk. Updates
// follow a read-modify-write cycle with one final write; there is no
// locking against concurrent writers.
type FeedFile struct {
	path string
}

// NewFeedFile creates a new FeedFile at the given path.
func NewFeedFile(path string) *FeedFile {
	return &FeedFile{path: path}
}

// Load returns the feed document.
func (f *FeedFile) Load(ctx context.Context) (string, error) {
	b, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return "", pagefeed.Errorf(pagefeed.ENOTFOUND, "feed file %q not found", f.path)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Save writes the feed document back, replacing the previous contents.
func (f *FeedFile) Save(ctx context.Context, doc string) error {
	return os.WriteFile(f.path, []byte(doc), 0644)
}
