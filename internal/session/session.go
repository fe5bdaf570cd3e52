// Package session holds the authenticated-session state for a client run.
//
// The session is an explicit object handed to the components that need it,
// with its lifecycle bound to the login/logout boundary. It implements
// api.TokenSource so the REST client picks up rotated access tokens.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// TokenRefresher exchanges a refresh token for a new access token.
type TokenRefresher interface {
	RefreshToken(ctx context.Context, refresh string) (string, error)
}

// ErrNotAuthenticated is returned when an operation requires a logged-in
// session.
var ErrNotAuthenticated = errors.New("not authenticated")

// Session is the authenticated user's state: username, token pair and
// superuser flag. Safe for concurrent use; the live view reads the access
// token while the refresh loop rotates it.
type Session struct {
	mu        sync.RWMutex
	username  string
	access    string
	refresh   string
	superuser bool
}

// New creates an empty, unauthenticated session.
func New() *Session {
	return &Session{}
}

// Begin stores a fresh token pair for the named user.
func (s *Session) Begin(username, access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = username
	s.access = access
	s.refresh = refresh
	s.superuser = false
}

// SetSuperuser records the backend's superuser check result.
func (s *Session) SetSuperuser(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.superuser = v
}

// End discards all session state.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = ""
	s.access = ""
	s.refresh = ""
	s.superuser = false
}

// AccessToken implements api.TokenSource. Empty until Begin is called.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

// Username returns the logged-in user's name, empty when unauthenticated.
func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

// IsSuperuser reports whether the session belongs to a superuser.
func (s *Session) IsSuperuser() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.superuser
}

// Authenticated reports whether a token pair is present.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access != ""
}

// Refresh rotates the access token using the stored refresh token.
func (s *Session) Refresh(ctx context.Context, r TokenRefresher) error {
	s.mu.RLock()
	refresh := s.refresh
	s.mu.RUnlock()

	if refresh == "" {
		return ErrNotAuthenticated
	}

	access, err := r.RefreshToken(ctx, refresh)
	if err != nil {
		return fmt.Errorf("refresh session: %w", err)
	}

	s.mu.Lock()
	s.access = access
	s.mu.Unlock()
	return nil
}
