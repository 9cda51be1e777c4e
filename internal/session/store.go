package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// tokenFile is the fixed name the token persists under, inside the
// application's config directory. The file survives restarts the same
// way the browser client's storage key does.
const tokenFile = "session.token"

// Store persists the bearer token and caches the decoded session.
// All methods are safe for use from the TUI goroutine and command
// goroutines.
type Store struct {
	mu   sync.RWMutex
	dir  string
	tok  string
	sess Session
}

// NewStore creates a Store rooted at dir and loads any persisted token.
// A missing or unreadable token file is not an error: the store simply
// starts unauthenticated.
func NewStore(dir string) *Store {
	s := &Store{dir: dir}

	data, err := os.ReadFile(s.path())
	if err != nil {
		return s
	}
	token := strings.TrimSpace(string(data))
	sess, err := Decode(token)
	if err != nil {
		return s
	}
	s.tok = token
	s.sess = sess
	return s
}

// Set stores a fresh token, decodes it, and persists it to disk.
func (s *Store) Set(token string) error {
	sess, err := Decode(token)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.tok = token
	s.sess = sess
	s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path(), []byte(token), 0o600)
}

// Clear forgets the token in memory and on disk. Used on logout and on a
// 401 from the server.
func (s *Store) Clear() {
	s.mu.Lock()
	s.tok = ""
	s.sess = Session{}
	s.mu.Unlock()

	// Best effort; a stale file decodes to an expired session anyway.
	_ = os.Remove(s.path())
}

// Token returns the raw bearer token, or "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tok
}

// Session returns the decoded session. Check Valid() before trusting it.
func (s *Store) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess
}

// Authenticated reports whether a non-expired session is present.
func (s *Store) Authenticated() bool {
	return s.Session().Valid()
}

func (s *Store) path() string {
	return filepath.Join(s.dir, tokenFile)
}
