package providers

import (
	"context"

	"github.com/preston-bernstein/rivalry-service/internal/domain/rivalry"
)

// RecordProvider fetches the rivalry document from a fixed, well-known location.
// Implementations perform a single read per call and never retry.
type RecordProvider interface {
	FetchRecord(ctx context.Context) (rivalry.Record, error)
}
