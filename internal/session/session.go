// Package session models the operator's login state. A Session is an
// explicit value passed between the auth service and the HTTP layer; there
// is no process-wide "current user".
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// State is the login state of a session.
type State int

const (
	LoggedOut State = iota
	LoggedIn
)

func (s State) String() string {
	switch s {
	case LoggedOut:
		return "logged_out"
	case LoggedIn:
		return "logged_in"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ErrInvalidTransition is returned by LogIn on a logged-in session and by
// LogOut on a logged-out one.
var ErrInvalidTransition = errors.New("invalid session transition")

// Session tracks whether an operator is logged in and as whom.
type Session struct {
	ID        uuid.UUID `json:"id"`
	State     State     `json:"state"`
	Username  string    `json:"username,omitempty"`
	StartedAt time.Time `json:"started_at,omitempty"`
}

// New returns a logged-out session with a fresh ID.
func New() *Session {
	return &Session{ID: uuid.New(), State: LoggedOut}
}

// LoggedIn reports whether the session is in the LoggedIn state.
func (s *Session) LoggedIn() bool {
	return s.State == LoggedIn
}

// LogIn moves a logged-out session to LoggedIn(username).
func (s *Session) LogIn(username string, at time.Time) error {
	if s.State != LoggedOut {
		return fmt.Errorf("%w: log in from %s", ErrInvalidTransition, s.State)
	}
	s.State = LoggedIn
	s.Username = username
	s.StartedAt = at
	return nil
}

// LogOut moves a logged-in session back to LoggedOut.
func (s *Session) LogOut() error {
	if s.State != LoggedIn {
		return fmt.Errorf("%w: log out from %s", ErrInvalidTransition, s.State)
	}
	s.State = LoggedOut
	s.Username = ""
	s.StartedAt = time.Time{}
	return nil
}
