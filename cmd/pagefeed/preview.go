package main

import (
	"fmt"

	"github.com/fwojciec/pagefeed"
	"github.com/fwojciec/pagefeed/feed"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
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

	fragment := feed.Render(item)
	if c.Pretty {
		fragment, err = feed.Pretty(fragment)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagefeed.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintln(deps.Stdout, fragment)

	if c.Copy {
		if err := deps.Clipboard.Copy(fragment); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagefeed.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stderr, "Copied to clipboard.")
	}

	return nil
}
