package main

import (
	"fmt"

	"github.com/avernet/lexique"
	"github.com/avernet/lexique/lookup"
)

// openRendered opens a result view for the session and handles the
// Error state uniformly: not-found prints the view's localized message
// and returns (nil, nil) because an absent entry is a normal outcome,
// while any other failure is printed to stderr and returned. A non-nil
// view is always in Rendered state.
func openRendered(deps *Dependencies, sess *lexique.LookupSession, pipeline lexique.Pipeline) (*lookup.View, error) {
	view, err := lookup.Open(deps.Ctx, sess, pipeline)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lexique.ErrorMessage(err))
		return nil, err
	}

	if view.State() == lookup.StateError {
		if lexique.ErrorCode(view.Err()) == lexique.ENOTFOUND {
			fmt.Fprintln(deps.Stdout, view.Message())
			return nil, nil
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", view.Message())
		return nil, view.Err()
	}

	return view, nil
}
