package slog

import (
	"log/slog"

	"github.com/avernet/lexique"
)

// Ensure LoggingExtractor implements lexique.Extractor.
var _ lexique.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with a diagnostic for empty
// extractions. Absent markers degrade to an empty result by design, so
// a log line is the only trace left for troubleshooting changed remote
// markup.
type LoggingExtractor struct {
	next   lexique.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next lexique.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs empty results.
func (e *LoggingExtractor) Extract(body, listName string) []string {
	tokens := e.next.Extract(body, listName)
	if len(tokens) == 0 {
		e.logger.Debug("extraction empty", "list", listName, "body_bytes", len(body))
	}
	return tokens
}
