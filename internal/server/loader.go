package server

import (
	"context"

	"github.com/preston-bernstein/rivalry-service/internal/loader"
)

// RecordLoader defines the minimal loader behavior needed by the server.
type RecordLoader interface {
	Start(ctx context.Context)
	State() loader.State
	Wait(ctx context.Context) (loader.State, error)
}
