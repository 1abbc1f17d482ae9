// Package complete drives autocompletion sessions for the line editor.
package complete

// Provider generates completions for a line.
type Provider interface {
	// BeginSession starts completing line.
	BeginSession(line string) Session
}

// Session cycles through the completions of one line.
type Session interface {
	// Cycle moves to the next (forward) or previous completion and returns
	// the whole line with that completion applied.
	Cycle(forward bool) string
}

// Adapter wraps a Provider and keeps the session across consecutive
// autocomplete actions.
type Adapter struct {
	provider Provider
	active   bool
	session  Session
}

// NewAdapter creates an Adapter. A nil provider disables autocompletion.
func NewAdapter(p Provider) *Adapter {
	return &Adapter{provider: p}
}

// Trigger performs one autocomplete step on line and returns the new line.
// It starts a session if none is active; otherwise line is ignored and the
// active session moves on. It returns false if there is no provider.
func (a *Adapter) Trigger(line string, forward bool) (string, bool) {
	if a.provider == nil {
		return "", false
	}
	if !a.active {
		a.session = a.provider.BeginSession(line)
		a.active = true
	}
	return a.session.Cycle(forward), true
}

// Deactivate ends the active session, keeping whatever text it produced.
func (a *Adapter) Deactivate() {
	a.active = false
	a.session = nil
}

// Active returns whether a session is active.
func (a *Adapter) Active() bool { return a.active }
