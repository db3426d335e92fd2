package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagefeed"
)

// Ensure LoggingExtractor implements pagefeed.Extractor.
var _ pagefeed.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   pagefeed.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagefeed.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html, selector string, linesToCut int) (extraction *pagefeed.Extraction, err error) {
	defer func(begin time.Time) {
		var bytes int
		if extraction != nil {
			bytes = len(extraction.Markup)
		}
		e.logger.Info("extract",
			"selector", selector,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, selector, linesToCut)
}
