package mock

import "github.com/avernet/lexique"

var _ lexique.Converter = (*Converter)(nil)

// Converter is a mock implementation of lexique.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
