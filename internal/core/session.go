package core

// session.go keeps one Record Store per browser session.
//
// Sessions are identified by a random UUID handed to the client in a cookie.
// Each session owns its store and its selected language; nothing is shared
// between sessions. Idle sessions are dropped by the sweeper (see
// scheduler.go), taking their records with them.

import (
	"errors"
	"sync"
	"time"

	"github.com/JonMunkholm/IRM/internal/i18n"
	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// Session is one user's working state: its records and language choice.
type Session struct {
	ID    string
	Store *Store

	mu       sync.Mutex
	lang     i18n.Lang
	lastSeen time.Time
}

// Language returns the session's selected language.
func (s *Session) Language() i18n.Lang {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// SetLanguage changes the session's selected language.
func (s *Session) SetLanguage(lang i18n.Lang) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = lang
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// SessionRegistry tracks the live sessions of the process.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewSessionRegistry creates an empty registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create starts a new session with an empty store.
func (r *SessionRegistry) Create(lang i18n.Lang) *Session {
	sess := &Session{
		ID:       uuid.NewString(),
		Store:    NewStore(),
		lang:     lang,
		lastSeen: r.now(),
	}

	r.mu.Lock()
	r.sessions[sess.ID] = sess
	r.mu.Unlock()

	return sess
}

// Get returns a live session and marks it as used.
func (r *SessionRegistry) Get(id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrSessionNotFound
	}

	// Touch under the registry lock so Sweep cannot evict a session
	// between lookup and use.
	r.mu.RLock()
	defer r.mu.RUnlock()

	sess, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.touch(r.now())
	return sess, nil
}

// Resolve returns the session for id, or creates a new one with lang when id
// is empty, malformed or expired. The second result reports creation.
func (r *SessionRegistry) Resolve(id string, lang i18n.Lang) (*Session, bool) {
	if sess, err := r.Get(id); err == nil {
		return sess, false
	}
	return r.Create(lang), true
}

// Sweep removes sessions idle longer than maxIdle and returns how many were removed.
func (r *SessionRegistry) Sweep(maxIdle time.Duration) int {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, sess := range r.sessions {
		if sess.idleSince(now) > maxIdle {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
