// Package guard gates access to admin operations.
//
// It decides whether the stored session is usable by asking the
// backend, never by trusting the token's mere presence. The guard is a
// convenience for the client; the backend remains the authority and
// rejects bad tokens on every call regardless.
package guard

import (
	"context"

	"github.com/princearya108/foodlab-portal/internal/client/session"
)

// State is the guard's verification outcome.
type State int

const (
	// StateUnknown means verification has not completed yet. Callers
	// must not run protected operations in this state.
	StateUnknown State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Verifier checks the current token against the backend.
type Verifier interface {
	Verify(ctx context.Context) error
}

// SessionStore is the slice of the session store the guard needs.
type SessionStore interface {
	Read() (string, *session.User)
	Clear() error
}

// Guard verifies the stored session before admin operations run.
type Guard struct {
	session  SessionStore
	verifier Verifier
	state    State
}

// New returns a Guard in StateUnknown.
func New(store SessionStore, verifier Verifier) *Guard {
	return &Guard{session: store, verifier: verifier, state: StateUnknown}
}

// State returns the result of the last Check, or StateUnknown if
// Check has not run.
func (g *Guard) State() State {
	return g.state
}

// Check resolves the guard's state. A missing token short-circuits to
// unauthenticated without a network call. Any verification failure,
// including a network error, clears the session so a stale token
// cannot linger.
func (g *Guard) Check(ctx context.Context) State {
	token, _ := g.session.Read()
	if token == "" {
		g.state = StateUnauthenticated
		return g.state
	}
	if err := g.verifier.Verify(ctx); err != nil {
		_ = g.session.Clear()
		g.state = StateUnauthenticated
		return g.state
	}
	g.state = StateAuthenticated
	return g.state
}
