package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/fwojciec/pagefeed"
)

// Ensure Copier implements pagefeed.Clipboard at compile time.
var _ pagefeed.Clipboard = (*Copier)(nil)

// Copier writes text to the system clipboard.
type Copier struct{}

// NewCopier creates a new Copier.
func NewCopier() *Copier {
	return &Copier{}
}

// Copy places text on the clipboard.
func (c *Copier) Copy(text string) error {
	return clipboard.WriteAll(text)
}
