package lexique

import "context"

// DiagClass identifies the category of a checker diagnostic.
type DiagClass string

// Diagnostic categories emitted by the external checker. The category
// tokens are part of its wire protocol and must match exactly.
const (
	DiagGrammar  DiagClass = "grammaire"
	DiagSpelling DiagClass = "orthographe"
)

// Diagnostic is a single finding reported by the external grammar
// checker: a category, a 1-based position, and a message.
type Diagnostic struct {
	Class   DiagClass
	Line    int
	Column  int
	Message string
}

// Checker runs the external grammar checker over a text and parses its
// line-oriented diagnostic output.
type Checker interface {
	Check(ctx context.Context, text string) ([]Diagnostic, error)
}

// Conjugator produces a formatted conjugation table for a verb.
// The table layout is owned by the external collaborator; callers
// treat it as opaque text.
type Conjugator interface {
	Conjugate(ctx context.Context, verb string) (string, error)
}
