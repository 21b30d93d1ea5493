package mock

import (
	"context"

	"github.com/avernet/lexique"
)

var _ lexique.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of lexique.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*lexique.RawPage, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*lexique.RawPage, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
