// Package session provides the in-memory cookie-session store. It backs
// authentication state and the language preference of clients that are
// not logged in.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"cropai/internal/infrastructure/i18n"
)

// Record is one client session.
type Record struct {
	ID        string
	UserID    uint // 0 when anonymous
	Language  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store keeps sessions in memory, keyed by opaque ID. All methods are
// safe for concurrent use.
type Store struct {
	ttl time.Duration

	mu      sync.RWMutex
	records map[string]*Record
}

func NewStore(ttl time.Duration) *Store {
	return &Store{ttl: ttl, records: make(map[string]*Record)}
}

// Create issues a fresh session.
func (s *Store) Create() *Record {
	now := time.Now()
	record := &Record{
		ID:        uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.mu.Lock()
	s.records[record.ID] = record
	s.mu.Unlock()
	return record
}

// Get returns a copy of the session. Expired sessions are dropped.
func (s *Store) Get(id string) (Record, bool) {
	s.mu.RLock()
	record, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return Record{}, false
	}
	if time.Now().After(record.ExpiresAt) {
		s.Delete(id)
		return Record{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *record, true
}

// SetUser binds a session to a logged-in user.
func (s *Store) SetUser(id string, userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if record, ok := s.records[id]; ok {
		record.UserID = userID
	}
}

// ClearUser detaches the user from a session (logout) while keeping the
// session and its language preference alive.
func (s *Store) ClearUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if record, ok := s.records[id]; ok {
		record.UserID = 0
	}
}

// SetLanguage records the session's language preference.
func (s *Store) SetLanguage(id, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if record, ok := s.records[id]; ok {
		record.Language = code
	}
}

// Delete removes a session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
}

// Purge drops expired sessions and reports how many were removed.
func (s *Store) Purge() int {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, record := range s.records {
		if now.After(record.ExpiresAt) {
			delete(s.records, id)
			removed++
		}
	}
	return removed
}

// Preferences adapts one session to the resolver's PreferenceStore
// contract.
func (s *Store) Preferences(id string) i18n.PreferenceStore {
	return &preferenceStore{store: s, id: id}
}

type preferenceStore struct {
	store *Store
	id    string
}

func (p *preferenceStore) Load(context.Context) (string, bool) {
	record, ok := p.store.Get(p.id)
	if !ok || record.Language == "" {
		return "", false
	}
	return record.Language, true
}

func (p *preferenceStore) Store(_ context.Context, code string) error {
	p.store.SetLanguage(p.id, code)
	return nil
}
