package main

import (
	"fmt"

	"github.com/avernet/lexique"
	"github.com/google/uuid"
)

// Run executes the conj command.
func (c *ConjCmd) Run(deps *Dependencies) error {
	if deps.Conjugations == nil {
		fmt.Fprintln(deps.Stderr, "error: Grammalecte is not configured. Set LEXIQUE_GRAMMALECTE_DIR to its install directory.")
		return lexique.Errorf(lexique.EINVALID, "Grammalecte not configured")
	}

	sess := &lexique.LookupSession{
		ID:   uuid.NewString(),
		Kind: lexique.KindConjugation,
		Term: c.Verb,
	}

	view, err := openRendered(deps, sess, deps.Conjugations)
	if view == nil || err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, view.Content())
	return nil
}
