package main

import (
	"context"
	"io"

	"github.com/fwojciec/pagefeed"
	"github.com/fwojciec/pagefeed/feed"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Builder   *feed.Builder
	Fetcher   pagefeed.Fetcher
	Reader    pagefeed.FeedReader
	Clipboard pagefeed.Clipboard

	// OpenFeed returns the store for the feed file named on the command line.
	OpenFeed func(path string) pagefeed.FeedStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetch and extract calls to stderr"`

	Add     AddCmd     `cmd:"" help:"Build an item from an HTML page and insert it into a feed"`
	Preview PreviewCmd `cmd:"" help:"Build an item from an HTML page and print it"`
	Items   ItemsCmd   `cmd:"" help:"List the items of a feed"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	HTML       string `arg:"" help:"Path or URL of the HTML page"`
	RSS        string `arg:"" help:"Path of the RSS feed file"`
	BaseURL    string `short:"b" required:"" help:"Base URL for resolving relative links"`
	Selector   string `short:"s" default:"${selector_default}" help:"CSS selector of the fragment to extract"`
	Title      string `short:"t" help:"Item title (defaults to the page's first h1)"`
	Date       string `short:"d" default:"now" help:"Publication date"`
	LinesToCut int    `short:"c" help:"Lines to drop from the top of the fragment"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	HTML       string `arg:"" help:"Path or URL of the HTML page"`
	BaseURL    string `short:"b" required:"" help:"Base URL for resolving relative links"`
	Selector   string `short:"s" default:"${selector_default}" help:"CSS selector of the fragment to extract"`
	Title      string `short:"t" help:"Item title (defaults to the page's first h1)"`
	Date       string `short:"d" default:"now" help:"Publication date"`
	LinesToCut int    `short:"c" help:"Lines to drop from the top of the fragment"`
	Pretty     bool   `short:"p" help:"Reindent the item for display"`
	Copy       bool   `help:"Copy the item to the clipboard"`
}

// ItemsCmd is the "items" subcommand.
type ItemsCmd struct {
	RSS string `arg:"" help:"Path of the RSS feed file"`
}
