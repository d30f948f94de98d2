package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestHashEmail(t *testing.T) {
	a := HashEmail("alice@example.com")
	b := HashEmail("ALICE@Example.COM")

	if a != b {
		t.Errorf("hash must be case-insensitive")
	}
	if len(a) != 64 {
		t.Errorf("unexpected hash length %v", len(a))
	}
	if a == HashEmail("bob@example.com") {
		t.Errorf("different emails must hash differently")
	}
}

func TestLogin(t *testing.T) {
	s := NewSession(t.TempDir())

	if _, ok := s.Current(); ok {
		t.Fatalf("fresh session must not have a user")
	}

	u, err := s.Login("alice@example.com", "secret")
	if err != nil {
		t.Fatal(err)
	}

	if u.DisplayName != "alice" {
		t.Errorf("unexpected display name %q", u.DisplayName)
	}
	if u.ID != HashEmail("alice@example.com") {
		t.Errorf("unexpected user id")
	}

	current, ok := s.Current()
	if !ok || current.Email != "alice@example.com" {
		t.Errorf("unexpected current user")
	}
}

func TestLoginValidation(t *testing.T) {
	s := NewSession(t.TempDir())

	cases := []struct{ email, password string }{
		{"", "secret"},
		{"alice@example.com", ""},
		{"not-an-email", "secret"},
		{"missing@tld", "secret"},
	}

	for _, c := range cases {
		_, err := s.Login(c.email, c.password)
		if err == nil {
			t.Errorf("expected validation error for %q/%q", c.email, c.password)
		}
	}
}

func TestSessionPersisted(t *testing.T) {
	dir := t.TempDir()

	s := NewSession(dir)
	_, err := s.Login("alice@example.com", "secret")
	if err != nil {
		t.Fatal(err)
	}

	restored := NewSession(dir)
	u, ok := restored.Current()
	if !ok {
		t.Fatalf("session not restored")
	}
	if u.Email != "alice@example.com" {
		t.Errorf("unexpected restored user %q", u.Email)
	}
}

func TestSessionExpiry(t *testing.T) {
	dir := t.TempDir()

	data, err := json.Marshal(sessionFile{
		User:      &User{ID: "x", Email: "alice@example.com"},
		Timestamp: time.Now().UTC().Add(-25 * time.Hour),
	})
	if err != nil {
		t.Fatal(err)
	}
	err = os.WriteFile(filepath.Join(dir, "session.json"), data, 0644)
	if err != nil {
		t.Fatal(err)
	}

	s := NewSession(dir)
	if _, ok := s.Current(); ok {
		t.Errorf("expired session must not be restored")
	}
}

func TestLogout(t *testing.T) {
	dir := t.TempDir()

	s := NewSession(dir)
	_, err := s.Login("alice@example.com", "secret")
	if err != nil {
		t.Fatal(err)
	}

	s.Logout()

	if _, ok := s.Current(); ok {
		t.Errorf("user still present after logout")
	}
	if _, ok := NewSession(dir).Current(); ok {
		t.Errorf("session file still valid after logout")
	}
}
