package lexique

// Surface is a handle to a text surface that spawned a lookup and can
// accept a replacement for the looked-up word. Implementations must
// keep Alive accurate after the underlying surface is closed: the
// replace coordinator asserts liveness before mutating.
type Surface interface {
	// Alive reports whether the surface still exists and is writable.
	Alive() bool

	// Replace substitutes token for the word or active selection at
	// the surface's remembered insertion point.
	Replace(token string) error
}
