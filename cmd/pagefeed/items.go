package main

import (
	"fmt"

	"github.com/fwojciec/pagefeed"
)

// Run executes the items command.
func (c *ItemsCmd) Run(deps *Dependencies) error {
	doc, err := deps.OpenFeed(c.RSS).Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagefeed.ErrorMessage(err))
		return err
	}

	items, err := deps.Reader.ReadItems(doc)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagefeed.ErrorMessage(err))
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(deps.Stdout, "No items found. Use 'pagefeed add' to create one.")
		return nil
	}

	for _, it := range items {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", it.PubDate, it.Title, it.Link)
	}

	return nil
}
