package mock

import (
	"context"

	"github.com/avernet/lexique"
)

var _ lexique.Paginator = (*Paginator)(nil)

// Paginator is a mock implementation of lexique.Paginator.
type Paginator struct {
	FetchAllFn func(ctx context.Context, term string) ([]string, error)
}

func (p *Paginator) FetchAll(ctx context.Context, term string) ([]string, error) {
	return p.FetchAllFn(ctx, term)
}
