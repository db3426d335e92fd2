package main

import (
	"fmt"

	"github.com/fwojciec/pagefeed"
	"github.com/fwojciec/pagefeed/feed"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	html, err := loadSource(deps, c.HTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagefeed.ErrorMessage(err))
		return err
	}

	item, err := deps.Builder.Build(&pagefeed.Request{
		HTML:       html,
		Source:     c.HTML,
		BaseURL:    c.BaseURL,
		Selector:   c.Selector,
		Title:      c.Title,
		Date:       c.Date,
		LinesToCut: c.LinesToCut,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagefeed.ErrorMessage(err))
		return err
	}

	// The item is built and validated before the feed is touched, so a
	// failure anywhere above leaves the file as it was.
	store := deps.OpenFeed(c.RSS)

	doc, err := store.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagefeed.ErrorMessage(err))
		return err
	}

	updated, err := feed.Insert(doc, feed.Render(item))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagefeed.ErrorMessage(err))
		return err
	}

	if err := store.Save(deps.Ctx, updated); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagefeed.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added %q to %s\n", item.Title, c.RSS)

	return nil
}
