// Package slog provides logging decorators for the lookup pipeline
// components.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/avernet/lexique"
)

// Ensure LoggingFetcher implements lexique.Fetcher.
var _ lexique.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging of fetch timing
// and outcomes.
type LoggingFetcher struct {
	next   lexique.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next lexique.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the result.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (*lexique.RawPage, error) {
	begin := time.Now()
	page, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Warn("fetch failed",
			"url", url,
			"code", lexique.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	f.logger.Debug("fetch",
		"url", url,
		"bytes", len(page.Body),
		"duration", time.Since(begin),
	)
	return page, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
