package lookup

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/avernet/lexique"
)

// State is a result view's lifecycle state.
type State string

// View lifecycle states. A view moves Idle → Loading → Rendered or
// Error, and re-enters Loading on every refresh.
const (
	StateIdle     State = "idle"
	StateLoading  State = "loading"
	StateRendered State = "rendered"
	StateError    State = "error"
)

// View is the stateful, refreshable display entity for one lookup
// session. It owns the session exclusively and holds the pipeline
// selected for the session's kind at construction time.
//
// The rendered text and its token span table are the only long-lived
// artifacts of a pipeline run; a refresh replaces both atomically.
type View struct {
	session  *lexique.LookupSession
	pipeline lexique.Pipeline

	// loading guards against overlapping pipeline runs: a refresh
	// triggered while one is already in flight is a no-op.
	loading atomic.Bool

	mu      sync.Mutex
	state   State
	content string
	tokens  []TokenSpan
	message string
	err     error
	closed  bool
}

// Open constructs a view for the session, immediately runs its
// pipeline, and returns the view in Rendered or Error state. Pipeline
// failures are captured in the view rather than returned: a failed
// lookup is still an open, refreshable view. Only an invalid session
// is an error.
func Open(ctx context.Context, session *lexique.LookupSession, pipeline lexique.Pipeline) (*View, error) {
	if err := session.Validate(); err != nil {
		return nil, err
	}
	if pipeline == nil {
		return nil, lexique.Errorf(lexique.EINVALID, "pipeline required")
	}

	v := &View{
		session:  session,
		pipeline: pipeline,
		state:    StateIdle,
	}
	v.Refresh(ctx)
	return v, nil
}

// Refresh re-runs the session's pipeline and replaces the rendered
// content entirely on success. While a run is already in flight the
// call is a no-op, which keeps nested triggers from starting a second
// fetch for the same session. Refreshing a closed view does nothing.
func (v *View) Refresh(ctx context.Context) {
	if !v.loading.CompareAndSwap(false, true) {
		return
	}
	defer v.loading.Store(false)

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.state = StateLoading
	v.mu.Unlock()

	res, err := v.pipeline.Run(ctx, v.session.Term)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state = StateError
		v.message = userMessage(err, v.session.Term)
		v.err = err
		return
	}

	content, tokens := render(res)
	v.state = StateRendered
	v.content = content
	v.tokens = tokens
	v.message = ""
	v.err = nil
}

// SelectTokenAt returns the token whose rendered span contains the
// given rune offset. It reports false when the view is not Rendered or
// the offset falls outside any token span (a heading, a blank line,
// definition prose).
func (v *View) SelectTokenAt(pos int) (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state != StateRendered {
		return "", false
	}
	for _, span := range v.tokens {
		if pos >= span.Start && pos < span.End {
			return span.Token, true
		}
	}
	return "", false
}

// State returns the view's current lifecycle state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Content returns the rendered text. Empty unless the view is
// Rendered.
func (v *View) Content() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.content
}

// Tokens returns the selectable token spans of the rendered content in
// document order.
func (v *View) Tokens() []TokenSpan {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.tokens
}

// Message returns the user-displayable error message. Empty unless the
// view is in Error state.
func (v *View) Message() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.message
}

// Err returns the error behind the current Error state, or nil.
func (v *View) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// Session returns the view's lookup session.
func (v *View) Session() *lexique.LookupSession {
	return v.session
}

// Close marks the view closed. Closing is idempotent; a closed view
// ignores refreshes.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}

// Closed reports whether the view has been closed.
func (v *View) Closed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}

// userMessage converts a pipeline error into the message shown in the
// view. Not-found is a normal outcome and gets the localized no-result
// phrasing rather than an error dump.
func userMessage(err error, term string) string {
	if lexique.ErrorCode(err) == lexique.ENOTFOUND {
		return fmt.Sprintf("%s pour « %s »", noResult, term)
	}
	return lexique.ErrorMessage(err)
}
