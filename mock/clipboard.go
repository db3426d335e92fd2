package mock

import "github.com/fwojciec/pagefeed"

var _ pagefeed.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of pagefeed.Clipboard.
type Clipboard struct {
	CopyFn func(text string) error
}

func (c *Clipboard) Copy(text string) error {
	return c.CopyFn(text)
}
