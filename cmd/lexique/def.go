package main

import (
	"fmt"

	"github.com/avernet/lexique"
	"github.com/google/uuid"
)

// Run executes the def command.
func (c *DefCmd) Run(deps *Dependencies) error {
	sess := &lexique.LookupSession{
		ID:   uuid.NewString(),
		Kind: lexique.KindDefinition,
		Term: c.Term,
	}

	view, err := openRendered(deps, sess, deps.Definitions)
	if view == nil || err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, view.Content())
	return nil
}
