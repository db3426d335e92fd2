package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagefeed"
	"github.com/fwojciec/pagefeed/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements pagefeed.Extractor at compile time.
var _ pagefeed.Extractor = (*goquery.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts inner markup with nested tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<main><p>Hello <b>World</b></p></main>
</body>
</html>`

		e := goquery.NewExtractor()
		got, err := e.Extract(html, "main", 0)

		require.NoError(t, err)
		assert.Equal(t, "<p>Hello <b>World</b></p>", got.Markup)
	})

	t.Run("uses the first element when several match", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="post"><p>first</p></div>
<div class="post"><p>second</p></div>
</body></html>`

		e := goquery.NewExtractor()
		got, err := e.Extract(html, "div.post", 0)

		require.NoError(t, err)
		assert.Equal(t, "<p>first</p>", got.Markup)
	})

	t.Run("returns not found when nothing matches", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		_, err := e.Extract("<html><body><p>hi</p></body></html>", "article", 0)

		require.Error(t, err)
		assert.Equal(t, pagefeed.ENOTFOUND, pagefeed.ErrorCode(err))
	})

	t.Run("rejects a selector that does not compile", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		_, err := e.Extract("<html><body><p>hi</p></body></html>", "[[", 0)

		require.Error(t, err)
		assert.Equal(t, pagefeed.EINVALID, pagefeed.ErrorCode(err))
	})

	t.Run("takes the title from the first h1 with whitespace collapsed", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>
	Hello   <em>World</em>
</h1>
<h1>Second Heading</h1>
<main><p>body</p></main>
</body></html>`

		e := goquery.NewExtractor()
		got, err := e.Extract(html, "main", 0)

		require.NoError(t, err)
		assert.Equal(t, "Hello World", got.Title)
	})

	t.Run("falls back to Untitled without a heading", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		got, err := e.Extract("<html><body><main><p>body</p></main></body></html>", "main", 0)

		require.NoError(t, err)
		assert.Equal(t, pagefeed.DefaultTitle, got.Title)
	})

	t.Run("falls back to Untitled for an empty heading", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		got, err := e.Extract("<html><body><h1>   </h1><main><p>body</p></main></body></html>", "main", 0)

		require.NoError(t, err)
		assert.Equal(t, pagefeed.DefaultTitle, got.Title)
	})

	t.Run("cuts leading lines from the markup", func(t *testing.T) {
		t.Parallel()

		html := "<html><body><main><p>a</p>\n<p>b</p>\n<p>c</p></main></body></html>"

		e := goquery.NewExtractor()
		got, err := e.Extract(html, "main", 1)

		require.NoError(t, err)
		assert.Equal(t, "<p>b</p>\n<p>c</p>", got.Markup)
	})

	t.Run("cutting more lines than the markup has leaves nothing", func(t *testing.T) {
		t.Parallel()

		html := "<html><body><main><p>a</p>\n<p>b</p></main></body></html>"

		e := goquery.NewExtractor()
		got, err := e.Extract(html, "main", 5)

		require.NoError(t, err)
		assert.Empty(t, got.Markup)
	})

	t.Run("keeps void element serialization stable", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main><img src="img/a.png"></main></body></html>`

		e := goquery.NewExtractor()
		got, err := e.Extract(html, "main", 0)

		require.NoError(t, err)
		assert.Equal(t, `<img src="img/a.png"/>`, got.Markup)
	})
}
