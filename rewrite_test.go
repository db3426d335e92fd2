package pagefeed_test

import (
	"testing"

	"github.com/fwojciec/pagefeed"
	"github.com/stretchr/testify/assert"
)

func TestRewriteAttributes(t *testing.T) {
	t.Parallel()

	base := "https://site.example/blog/"

	t.Run("rewrites relative src", func(t *testing.T) {
		t.Parallel()

		got := pagefeed.RewriteAttributes(`<img src="img/a.png">`, base)

		assert.Equal(t, `<img src="https://site.example/blog/img/a.png">`, got)
	})

	t.Run("rewrites relative href", func(t *testing.T) {
		t.Parallel()

		got := pagefeed.RewriteAttributes(`<a href="../about.html">about</a>`, "https://site.example/blog/posts/")

		assert.Equal(t, `<a href="https://site.example/blog/about.html">about</a>`, got)
	})

	t.Run("leaves absolute URLs unchanged", func(t *testing.T) {
		t.Parallel()

		markup := `<img src="https://cdn.example.com/a.png">`

		got := pagefeed.RewriteAttributes(markup, base)

		assert.Equal(t, markup, got)
	})

	t.Run("rewrites every srcset candidate and keeps descriptors", func(t *testing.T) {
		t.Parallel()

		got := pagefeed.RewriteAttributes(`<img srcset="img/a.png 1x, img/b.png 2x">`, base)

		assert.Equal(t, `<img srcset="https://site.example/blog/img/a.png 1x, https://site.example/blog/img/b.png 2x">`, got)
	})

	t.Run("normalizes srcset separators", func(t *testing.T) {
		t.Parallel()

		got := pagefeed.RewriteAttributes(`<img srcset="img/a.png   480w,img/b.png 800w">`, base)

		assert.Equal(t, `<img srcset="https://site.example/blog/img/a.png 480w, https://site.example/blog/img/b.png 800w">`, got)
	})

	t.Run("keeps whitespace around the equals sign", func(t *testing.T) {
		t.Parallel()

		got := pagefeed.RewriteAttributes(`<img src = "img/a.png">`, base)

		assert.Equal(t, `<img src = "https://site.example/blog/img/a.png">`, got)
	})

	t.Run("resolves an empty value to the base directory", func(t *testing.T) {
		t.Parallel()

		got := pagefeed.RewriteAttributes(`<img src="">`, "https://site.example/blog")

		assert.Equal(t, `<img src="https://site.example/blog/">`, got)
	})

	t.Run("leaves an unresolvable value unchanged", func(t *testing.T) {
		t.Parallel()

		markup := `<img src="%zz">`

		got := pagefeed.RewriteAttributes(markup, base)

		assert.Equal(t, markup, got)
	})

	t.Run("ignores single-quoted attributes", func(t *testing.T) {
		t.Parallel()

		markup := `<img src='img/a.png'>`

		got := pagefeed.RewriteAttributes(markup, base)

		assert.Equal(t, markup, got)
	})

	t.Run("matches attribute names case-sensitively", func(t *testing.T) {
		t.Parallel()

		markup := `<img SRC="img/a.png">`

		got := pagefeed.RewriteAttributes(markup, base)

		assert.Equal(t, markup, got)
	})

	t.Run("rewriting twice equals rewriting once", func(t *testing.T) {
		t.Parallel()

		once := pagefeed.RewriteAttributes(`<p><a href="a.html"><img src="img/a.png" srcset="img/a.png 1x"></a></p>`, base)
		twice := pagefeed.RewriteAttributes(once, base)

		assert.Equal(t, once, twice)
	})
}
