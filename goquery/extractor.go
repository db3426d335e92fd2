package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/pagefeed"
)

// Ensure Extractor implements pagefeed.Extractor at compile time.
var _ pagefeed.Extractor = (*Extractor)(nil)

// Extractor selects page content with goquery.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the inner markup of the first element matching selector,
// with the leading linesToCut lines removed, along with the page title.
func (e *Extractor) Extract(rawHTML, selector string, linesToCut int) (*pagefeed.Extraction, error) {
	// Find panics on selectors that do not compile, so validate first.
	if _, err := cascadia.Compile(selector); err != nil {
		return nil, pagefeed.Errorf(pagefeed.EINVALID, "invalid selector %q: %v", selector, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagefeed.Errorf(pagefeed.EINVALID, "failed to parse HTML: %v", err)
	}

	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil, pagefeed.Errorf(pagefeed.ENOTFOUND, "no element matches selector %q", selector)
	}

	markup, err := sel.Html()
	if err != nil {
		return nil, pagefeed.Errorf(pagefeed.EINTERNAL, "failed to render markup: %v", err)
	}

	return &pagefeed.Extraction{
		Title:  documentTitle(doc),
		Markup: cutLines(markup, linesToCut),
	}, nil
}

// documentTitle returns the text content of the document's first h1
// heading with whitespace collapsed, or DefaultTitle if there is none.
func documentTitle(doc *goquery.Document) string {
	h1 := doc.Find("h1").First()
	if h1.Length() == 0 {
		return pagefeed.DefaultTitle
	}
	if title := pagefeed.CollapseWhitespace(h1.Text()); title != "" {
		return title
	}
	return pagefeed.DefaultTitle
}

// cutLines removes the first n lines of s. Cutting at least as many lines
// as s contains leaves nothing.
func cutLines(s string, n int) string {
	if n <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if n >= len(lines) {
		return ""
	}
	return strings.Join(lines[n:], "\n")
}
