package lookup

import "github.com/avernet/lexique"

// Coordinator applies a token selected in a result view to the surface
// that spawned the lookup.
type Coordinator struct{}

// Apply replaces the word or active selection at the session's origin
// with token and closes the view. If the originating surface is gone
// (never set, or closed since the lookup started) it returns ECONFLICT
// and leaves the view open and unchanged, so the user can still copy
// the token manually. The token itself is never consumed: a successful
// replace leaves it available for further reuse.
func (c *Coordinator) Apply(view *View, token string) error {
	if token == "" {
		return lexique.Errorf(lexique.EINVALID, "token required")
	}

	origin := view.Session().Origin
	if origin == nil || !origin.Alive() {
		return lexique.Errorf(lexique.ECONFLICT, "the originating surface no longer exists")
	}

	if err := origin.Replace(token); err != nil {
		return err
	}

	view.Close()
	return nil
}
