package main

import (
	"fmt"
	"os"

	"github.com/avernet/lexique"
	"github.com/avernet/lexique/buffer"
	"github.com/avernet/lexique/lookup"
	"github.com/google/uuid"
)

// Run executes the syn command.
func (c *SynCmd) Run(deps *Dependencies) error {
	var origin *buffer.Surface
	if c.ReplaceIn != "" {
		if c.At < 0 {
			fmt.Fprintln(deps.Stderr, "error: --at is required with --replace-in")
			return lexique.Errorf(lexique.EINVALID, "--at is required with --replace-in")
		}
		data, err := os.ReadFile(c.ReplaceIn)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		origin, err = buffer.New(string(data), c.At)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lexique.ErrorMessage(err))
			return err
		}
	}

	sess := &lexique.LookupSession{
		ID:   uuid.NewString(),
		Kind: lexique.KindSynonym,
		Term: c.Term,
	}
	if origin != nil {
		sess.Origin = origin
	}

	view, err := openRendered(deps, sess, deps.Synonyms)
	if view == nil || err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, view.Content())

	if c.Pick < 0 {
		return nil
	}
	if origin == nil {
		fmt.Fprintln(deps.Stderr, "error: --pick requires --replace-in")
		return lexique.Errorf(lexique.EINVALID, "--pick requires --replace-in")
	}

	tokens := view.Tokens()
	if c.Pick >= len(tokens) {
		fmt.Fprintf(deps.Stderr, "error: --pick %d out of range (%d results)\n", c.Pick, len(tokens))
		return lexique.Errorf(lexique.EINVALID, "pick %d out of range", c.Pick)
	}
	token := tokens[c.Pick].Token

	var coordinator lookup.Coordinator
	if err := coordinator.Apply(view, token); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lexique.ErrorMessage(err))
		return err
	}

	if err := os.WriteFile(c.ReplaceIn, []byte(origin.Text()), 0o644); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Replaced %q with %q in %s\n", c.Term, token, c.ReplaceIn)
	return nil
}
