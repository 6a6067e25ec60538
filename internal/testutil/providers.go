package testutil

import (
	"context"

	"github.com/preston-bernstein/rivalry-service/internal/domain/rivalry"
	"github.com/preston-bernstein/rivalry-service/internal/providers"
)

// GoodProvider returns the provided record with no error.
type GoodProvider struct {
	Record rivalry.Record
}

func (p GoodProvider) FetchRecord(ctx context.Context) (rivalry.Record, error) {
	_ = ctx
	return p.Record, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchRecord(ctx context.Context) (rivalry.Record, error) {
	_ = ctx
	return rivalry.Record{}, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchRecord(ctx context.Context) (rivalry.Record, error) {
	_ = ctx
	return rivalry.Record{}, providers.ErrProviderUnavailable
}
