// Package excuses holds the excuse generator state for a single page session.
package excuses

import (
	"errors"
	"math/rand"
	"sync"
	"time"
)

// ShareAttribution is appended to every shared excuse.
const ShareAttribution = " - via PackersVsBears.com 🧀🏈"

// ErrNoExcuses is returned when a selector is built over an empty list.
var ErrNoExcuses = errors.New("excuses: list must not be empty")

// Selector tracks the currently displayed excuse over a fixed list.
type Selector struct {
	mu      sync.Mutex
	excuses []string
	current int
	rng     *rand.Rand
}

// New builds a selector whose current excuse is the first in the list.
// A nil rng seeds a fresh non-cryptographic source.
func New(excuses []string, rng *rand.Rand) (*Selector, error) {
	if len(excuses) == 0 {
		return nil, ErrNoExcuses
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	list := make([]string, len(excuses))
	copy(list, excuses)
	return &Selector{excuses: list, rng: rng}, nil
}

// Current returns the selected excuse.
func (s *Selector) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.excuses[s.current]
}

// Next draws a uniformly random excuse, makes it current and returns it.
// The previous excuse may be drawn again.
func (s *Selector) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.rng.Intn(len(s.excuses))
	return s.excuses[s.current]
}

// Len reports how many excuses the selector draws from.
func (s *Selector) Len() int {
	return len(s.excuses)
}

// ShareText quotes the excuse and appends the attribution.
func ShareText(excuse string) string {
	return `"` + excuse + `"` + ShareAttribution
}
