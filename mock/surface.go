package mock

import "github.com/avernet/lexique"

var _ lexique.Surface = (*Surface)(nil)

// Surface is a mock implementation of lexique.Surface.
type Surface struct {
	AliveFn   func() bool
	ReplaceFn func(token string) error
}

func (s *Surface) Alive() bool {
	return s.AliveFn()
}

func (s *Surface) Replace(token string) error {
	return s.ReplaceFn(token)
}
