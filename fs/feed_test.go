package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/pagefeed"
	"github.com/fwojciec/pagefeed/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedFile(t *testing.T) {
	t.Parallel()

	t.Run("loads what was saved", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "feed.rss")
		store := fs.NewFeedFile(path)
		ctx := context.Background()

		err := store.Save(ctx, "<rss><channel></channel></rss>")
		require.NoError(t, err)

		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "<rss><channel></channel></rss>", got)
	})

	t.Run("save replaces the previous contents", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "feed.rss")
		store := fs.NewFeedFile(path)
		ctx := context.Background()

		require.NoError(t, store.Save(ctx, "first"))
		require.NoError(t, store.Save(ctx, "second"))

		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "second", got)
	})

	t.Run("load reports a missing file as not found", func(t *testing.T) {
		t.Parallel()

		store := fs.NewFeedFile(filepath.Join(t.TempDir(), "absent.rss"))

		_, err := store.Load(context.Background())

		require.Error(t, err)
		assert.Equal(t, pagefeed.ENOTFOUND, pagefeed.ErrorCode(err))
	})

	t.Run("load preserves the file byte for byte", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "feed.rss")
		content := "<rss>\n  <channel>\n    <title>T</title>\n  </channel>\n</rss>\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		got, err := fs.NewFeedFile(path).Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, content, got)
	})
}
