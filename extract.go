package pagefeed

// Extraction is the result of pulling content out of a page.
type Extraction struct {
	// Title is the page's first h1 heading with whitespace collapsed,
	// or DefaultTitle if the page has none.
	Title string

	// Markup is the inner HTML of the first element matching the
	// selector, preserved verbatim.
	Markup string
}

// Extractor extracts content from HTML pages.
type Extractor interface {
	// Extract returns the inner markup of the first element matching
	// selector, with the first linesToCut lines removed, along with the
	// page title. Returns EINVALID if the selector does not compile and
	// ENOTFOUND if no element matches.
	Extract(html, selector string, linesToCut int) (*Extraction, error)
}
