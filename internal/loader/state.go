package loader

import "github.com/preston-bernstein/rivalry-service/internal/domain/rivalry"

// Phase names a loader state for rendering and JSON.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseFailed  Phase = "error"
	PhaseReady   Phase = "ready"
)

// State is one of Loading, Failed or Ready.
type State interface {
	Phase() Phase
	isState()
}

// Loading is the initial state before the fetch settles.
type Loading struct{}

// Failed is terminal; Err matches ErrLoadFailure.
type Failed struct {
	Err error
}

// Ready is terminal and carries the shared, read-only record.
type Ready struct {
	Record *rivalry.Record
}

func (Loading) Phase() Phase { return PhaseLoading }
func (Failed) Phase() Phase  { return PhaseFailed }
func (Ready) Phase() Phase   { return PhaseReady }

func (Loading) isState() {}
func (Failed) isState()  {}
func (Ready) isState()   {}
