package state

import (
	"context"

	"evosystem/internal/client"
)

// Session tracks the authenticated identity. A failed login leaves the
// session exactly as it was.
type Session struct {
	api      API
	identity client.UserIdentity
	loggedIn bool
}

func NewSession(api API) *Session {
	return &Session{api: api}
}

func (s *Session) Login(ctx context.Context, username, password string) error {
	identity, err := s.api.Login(ctx, username, password)
	if err != nil {
		return err
	}
	s.Establish(identity)
	return nil
}

// Establish installs an identity the API has already authenticated. Callers
// that run the network call on another goroutine apply its result here.
func (s *Session) Establish(identity client.UserIdentity) {
	s.identity = identity
	s.loggedIn = true
}

func (s *Session) Logout() {
	s.identity = client.UserIdentity{}
	s.loggedIn = false
}

func (s *Session) LoggedIn() bool {
	return s.loggedIn
}

func (s *Session) Username() string {
	return s.identity.Username
}

// IsAdmin reports the capability resolved at login time.
func (s *Session) IsAdmin() bool {
	return s.loggedIn && s.identity.Admin
}
