// Package feed assembles RSS items and splices them into feed documents.
package feed

import "github.com/fwojciec/pagefeed"

// Builder turns requests into complete feed items.
type Builder struct {
	Extractor pagefeed.Extractor
}

// Build runs the item pipeline: extract content from the request's HTML,
// rewrite relative URLs, collapse whitespace and normalize the publication
// date. The item link, shared with its guid, is the request source
// resolved against the base URL's directory.
func (b *Builder) Build(req *pagefeed.Request) (*pagefeed.Item, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	extraction, err := b.Extractor.Extract(req.HTML, req.Selector, req.LinesToCut)
	if err != nil {
		return nil, err
	}

	description := pagefeed.CollapseWhitespace(
		pagefeed.RewriteAttributes(extraction.Markup, req.BaseURL),
	)

	title := req.Title
	if title == "" {
		title = extraction.Title
	}

	dir, err := pagefeed.StripLastSegment(req.BaseURL)
	if err != nil {
		return nil, err
	}
	link, err := pagefeed.Resolve(dir, req.Source)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date == "" {
		date = "now"
	}
	pubDate, err := pagefeed.NormalizeDate(date)
	if err != nil {
		return nil, err
	}

	item := &pagefeed.Item{
		Title:       title,
		Link:        link,
		Description: description,
		PubDate:     pubDate,
		GUID:        link,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}
