package rivalry

import (
	"errors"

	domainrivalry "github.com/preston-bernstein/rivalry-service/internal/domain/rivalry"
	"github.com/preston-bernstein/rivalry-service/internal/excuses"
	"github.com/preston-bernstein/rivalry-service/internal/loader"
)

// ErrNotReady is returned for record-dependent operations before a successful load.
var ErrNotReady = errors.New("rivalry record not ready")

// StateSource exposes the loader lifecycle.
type StateSource interface {
	State() loader.State
}

// Sessions resolves per-visitor excuse selectors.
type Sessions interface {
	GetOrCreate(id string, create func() (*excuses.Selector, error)) (string, *excuses.Selector, error)
}

// Service coordinates rivalry page operations over the loader state and session store.
type Service struct {
	source   StateSource
	sessions Sessions
}

// NewService constructs a Service.
func NewService(source StateSource, sessions Sessions) *Service {
	return &Service{source: source, sessions: sessions}
}

// Page is the tagged view of the rivalry page for the current load state.
type Page struct {
	Phase   loader.Phase
	Message string
	Record  *domainrivalry.Record
	Summary domainrivalry.Summary
}

// Page renders the current state: loading, error with the static message, or ready with the summary.
func (s *Service) Page() Page {
	switch st := s.state().(type) {
	case loader.Ready:
		return Page{Phase: loader.PhaseReady, Record: st.Record, Summary: domainrivalry.Summarize(st.Record)}
	case loader.Failed:
		return Page{Phase: loader.PhaseFailed, Message: loader.UserMessage}
	default:
		return Page{Phase: loader.PhaseLoading}
	}
}

// Record returns the loaded record or ErrNotReady.
func (s *Service) Record() (*domainrivalry.Record, error) {
	if ready, ok := s.state().(loader.Ready); ok {
		return ready.Record, nil
	}
	return nil, ErrNotReady
}

// Selector returns the visitor's excuse selector, creating one over the record's excuses when needed.
// The returned id is the session id the caller should persist.
func (s *Service) Selector(sessionID string) (string, *excuses.Selector, error) {
	rec, err := s.Record()
	if err != nil {
		return "", nil, err
	}
	if s.sessions == nil {
		sel, err := excuses.New(rec.Excuses, nil)
		return sessionID, sel, err
	}
	return s.sessions.GetOrCreate(sessionID, func() (*excuses.Selector, error) {
		return excuses.New(rec.Excuses, nil)
	})
}

func (s *Service) state() loader.State {
	if s == nil || s.source == nil {
		return loader.Loading{}
	}
	return s.source.State()
}
