package pagefeed

// Request carries everything needed to build a feed item from a page.
type Request struct {
	// HTML is the raw page markup.
	HTML string

	// Source is the address the page was loaded from, used as the item
	// link. Relative sources are resolved against BaseURL.
	Source string

	// BaseURL is the address relative URLs in the page are resolved
	// against.
	BaseURL string

	// Selector picks the page element whose contents become the item
	// description.
	Selector string

	// Title overrides the page's own title when non-empty.
	Title string

	// Date is the publication date in any accepted layout, or "now".
	// Empty means "now".
	Date string

	// LinesToCut is the number of leading lines to drop from the
	// extracted markup.
	LinesToCut int
}

// Validate returns an error if the request contains invalid fields.
func (r *Request) Validate() error {
	if r.HTML == "" {
		return Errorf(EINVALID, "request HTML required")
	}
	if r.BaseURL == "" {
		return Errorf(EINVALID, "request base URL required")
	}
	if r.Selector == "" {
		return Errorf(EINVALID, "request selector required")
	}
	if r.LinesToCut < 0 {
		return Errorf(EINVALID, "request lines to cut must not be negative")
	}
	return nil
}
