package mock

import (
	"context"

	"github.com/avernet/lexique"
)

var _ lexique.Checker = (*Checker)(nil)

// Checker is a mock implementation of lexique.Checker.
type Checker struct {
	CheckFn func(ctx context.Context, text string) ([]lexique.Diagnostic, error)
}

func (c *Checker) Check(ctx context.Context, text string) ([]lexique.Diagnostic, error) {
	return c.CheckFn(ctx, text)
}

var _ lexique.Conjugator = (*Conjugator)(nil)

// Conjugator is a mock implementation of lexique.Conjugator.
type Conjugator struct {
	ConjugateFn func(ctx context.Context, verb string) (string, error)
}

func (c *Conjugator) Conjugate(ctx context.Context, verb string) (string, error) {
	return c.ConjugateFn(ctx, verb)
}
