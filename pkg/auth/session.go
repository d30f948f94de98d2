package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	papertrail "github.com/Tolverne/papertrail2"
	"github.com/Tolverne/papertrail2/internal/fs"
	"github.com/Tolverne/papertrail2/internal/logging"
)

// maxAge is how long a stored session stays valid.
const maxAge = 24 * time.Hour

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User is the authenticated identity.
//
// The ID is a hash of the email address and namespaces the drawing
// store. This is cosmetic bookkeeping, not a security mechanism.
type User struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	LoginTime   time.Time `json:"loginTime"`
}

// HashEmail derives the stable identity for an email address:
// the hex encoded SHA-256 digest of the lowercased address.
func HashEmail(email string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(email)))
	return hex.EncodeToString(sum[:])
}

type sessionFile struct {
	User      *User     `json:"user"`
	Timestamp time.Time `json:"timestamp"`
}

// Session manages the current user identity,
// persisted to a file between runs.
type Session struct {
	path    string
	current *User
}

// NewSession creates a session backed by a file in the given directory.
// An existing, unexpired session is restored.
func NewSession(dir string) *Session {
	s := &Session{path: filepath.Join(dir, "session.json")}
	s.load()
	return s
}

// Login validates the credentials and makes the given email the current
// identity. Any non-empty password is accepted.
func (s *Session) Login(email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, papertrail.NewValidationError("email and password are required")
	}
	if !emailRe.MatchString(email) {
		return nil, papertrail.NewValidationError("invalid email format")
	}

	s.current = &User{
		ID:          HashEmail(email),
		DisplayName: strings.SplitN(email, "@", 2)[0],
		Email:       email,
		LoginTime:   time.Now().UTC(),
	}
	s.save()

	return s.current, nil
}

// Logout forgets the current identity and clears the stored session.
func (s *Session) Logout() {
	s.current = nil
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		logging.Warning("Failed to clear session: %v", err)
	}
}

// Current returns the current user, if logged in.
func (s *Session) Current() (*User, bool) {
	if s.current == nil {
		return nil, false
	}
	return s.current, true
}

func (s *Session) save() {
	data, err := json.Marshal(sessionFile{
		User:      s.current,
		Timestamp: time.Now().UTC(),
	})
	if err == nil {
		err = fs.WriteAtomic(s.path, data)
	}
	if err != nil {
		logging.Warning("Failed to save session: %v", err)
	}
}

func (s *Session) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warning("Failed to load session: %v", err)
		}
		return
	}

	var f sessionFile
	err = json.Unmarshal(data, &f)
	if err != nil {
		logging.Warning("Failed to parse session: %v", err)
		return
	}

	if f.User == nil || time.Since(f.Timestamp) > maxAge {
		return
	}
	s.current = f.User
}
