package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagefeed"
	"github.com/fwojciec/pagefeed/clipboard"
	"github.com/fwojciec/pagefeed/feed"
	"github.com/fwojciec/pagefeed/fs"
	"github.com/fwojciec/pagefeed/gofeed"
	"github.com/fwojciec/pagefeed/goquery"
	pfhttp "github.com/fwojciec/pagefeed/http"
	pfslog "github.com/fwojciec/pagefeed/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Configuration read from the environment. Set before calling Run()
	// to override.
	Config *Config
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if m.Config == nil {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		m.Config = cfg
	}

	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagefeed"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"selector_default": m.Config.Selector},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagefeed --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire the extraction pipeline, decorated with logging when requested
	var extractor pagefeed.Extractor = goquery.NewExtractor()

	fetchOpts := []pfhttp.Option{pfhttp.WithTimeout(m.Config.Timeout)}
	if m.Config.UserAgent != "" {
		fetchOpts = append(fetchOpts, pfhttp.WithUserAgent(m.Config.UserAgent))
	}
	var fetcher pagefeed.Fetcher = pfhttp.NewFetcher(fetchOpts...)

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		extractor = pfslog.NewLoggingExtractor(extractor, logger)
		fetcher = pfslog.NewLoggingFetcher(fetcher, logger)
	}

	deps.Builder = &feed.Builder{Extractor: extractor}
	deps.Fetcher = fetcher
	deps.Reader = gofeed.NewReader()
	deps.Clipboard = clipboard.NewCopier()
	deps.OpenFeed = func(path string) pagefeed.FeedStore {
		return fs.NewFeedFile(path)
	}

	return kongCtx.Run(deps)
}
