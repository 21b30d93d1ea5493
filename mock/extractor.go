package mock

import "github.com/avernet/lexique"

var _ lexique.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of lexique.Extractor.
type Extractor struct {
	ExtractFn func(body, listName string) []string
}

func (e *Extractor) Extract(body, listName string) []string {
	return e.ExtractFn(body, listName)
}
