package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/preston-bernstein/rivalry-service/internal/excuses"
)

const (
	defaultCapacity = 10000
	defaultTTL      = 30 * time.Minute
)

// SessionStore maps visitor session ids to their excuse selector.
// Entries expire after ttl without access and the oldest are evicted past capacity.
type SessionStore struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, *excuses.Selector]
	newID func() string
}

// NewSessionStore constructs a bounded store. onEvict may be nil.
func NewSessionStore(capacity int, ttl time.Duration, onEvict func(id string)) *SessionStore {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	var evict expirable.EvictCallback[string, *excuses.Selector]
	if onEvict != nil {
		evict = func(id string, _ *excuses.Selector) { onEvict(id) }
	}
	return &SessionStore{
		cache: expirable.NewLRU[string, *excuses.Selector](capacity, evict, ttl),
		newID: func() string { return uuid.NewString() },
	}
}

// ValidID reports whether id looks like a session id this store issues.
func ValidID(id string) bool {
	if id == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// Get returns the selector for id and refreshes its expiry.
func (s *SessionStore) Get(id string) (*excuses.Selector, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchLocked(id)
}

// GetOrCreate returns the selector for id, creating one under a fresh id when id is unknown or malformed.
// The returned id is the one the caller should persist.
func (s *SessionStore) GetOrCreate(id string, create func() (*excuses.Selector, error)) (string, *excuses.Selector, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ValidID(id) {
		if sel, ok := s.touchLocked(id); ok {
			return id, sel, nil
		}
	} else {
		id = s.newID()
	}

	sel, err := create()
	if err != nil {
		return "", nil, err
	}
	s.cache.Add(id, sel)
	return id, sel, nil
}

// Remove drops a session.
func (s *SessionStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Remove(id)
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	return s.cache.Len()
}

func (s *SessionStore) touchLocked(id string) (*excuses.Selector, bool) {
	sel, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	s.cache.Add(id, sel)
	return sel, true
}
