package mock

import "github.com/fwojciec/pagefeed"

var _ pagefeed.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagefeed.Extractor.
type Extractor struct {
	ExtractFn func(html, selector string, linesToCut int) (*pagefeed.Extraction, error)
}

func (e *Extractor) Extract(html, selector string, linesToCut int) (*pagefeed.Extraction, error) {
	return e.ExtractFn(html, selector, linesToCut)
}
