package session

import (
	"context"
	"errors"
	"testing"
)

type fakeRefresher struct {
	access string
	err    error
	gotRef string
}

func (f *fakeRefresher) RefreshToken(_ context.Context, refresh string) (string, error) {
	f.gotRef = refresh
	return f.access, f.err
}

func TestSessionLifecycle(t *testing.T) {
	s := New()

	if s.Authenticated() {
		t.Error("new session reports authenticated")
	}
	if s.AccessToken() != "" {
		t.Errorf("AccessToken = %q, want empty", s.AccessToken())
	}

	s.Begin("anna", "acc1", "ref1")
	if !s.Authenticated() {
		t.Error("session not authenticated after Begin")
	}
	if s.Username() != "anna" {
		t.Errorf("Username = %q, want %q", s.Username(), "anna")
	}
	if s.IsSuperuser() {
		t.Error("IsSuperuser = true before SetSuperuser")
	}

	s.SetSuperuser(true)
	if !s.IsSuperuser() {
		t.Error("IsSuperuser = false after SetSuperuser(true)")
	}

	s.End()
	if s.Authenticated() || s.Username() != "" || s.IsSuperuser() {
		t.Error("session retains state after End")
	}
}

func TestRefresh(t *testing.T) {
	s := New()
	s.Begin("anna", "acc1", "ref1")

	r := &fakeRefresher{access: "acc2"}
	if err := s.Refresh(context.Background(), r); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if r.gotRef != "ref1" {
		t.Errorf("refresh token sent = %q, want %q", r.gotRef, "ref1")
	}
	if s.AccessToken() != "acc2" {
		t.Errorf("AccessToken = %q, want %q after refresh", s.AccessToken(), "acc2")
	}
}

func TestRefreshUnauthenticated(t *testing.T) {
	s := New()
	err := s.Refresh(context.Background(), &fakeRefresher{})
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("Refresh error = %v, want ErrNotAuthenticated", err)
	}
}

func TestRefreshFailureKeepsToken(t *testing.T) {
	s := New()
	s.Begin("anna", "acc1", "ref1")

	r := &fakeRefresher{err: errors.New("server down")}
	if err := s.Refresh(context.Background(), r); err == nil {
		t.Fatal("Refresh succeeded, want error")
	}
	if s.AccessToken() != "acc1" {
		t.Errorf("AccessToken = %q, want unchanged %q", s.AccessToken(), "acc1")
	}
}
