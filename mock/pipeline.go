package mock

import (
	"context"

	"github.com/avernet/lexique"
)

var _ lexique.Pipeline = (*Pipeline)(nil)

// Pipeline is a mock implementation of lexique.Pipeline.
type Pipeline struct {
	RunFn func(ctx context.Context, term string) (*lexique.Result, error)
}

func (p *Pipeline) Run(ctx context.Context, term string) (*lexique.Result, error) {
	return p.RunFn(ctx, term)
}
