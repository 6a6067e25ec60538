package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/rivalry-service/internal/domain/rivalry"
	"github.com/preston-bernstein/rivalry-service/internal/logging"
	"github.com/preston-bernstein/rivalry-service/internal/metrics"
)

// instrumentedProvider wraps a RecordProvider with attempt logging and metrics.
type instrumentedProvider struct {
	inner        RecordProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	now          func() time.Time
}

// NewInstrumentedProvider records latency and outcome of every fetch under providerName.
func NewInstrumentedProvider(inner RecordProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string) RecordProvider {
	if providerName == "" {
		providerName = "provider"
	}
	return &instrumentedProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		now:          time.Now,
	}
}

func (p *instrumentedProvider) FetchRecord(ctx context.Context) (rivalry.Record, error) {
	if p.inner == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, "provider unavailable")
		return rivalry.Record{}, ErrProviderUnavailable
	}
	start := p.now()
	rec, err := p.inner.FetchRecord(ctx)
	elapsed := p.now().Sub(start)
	p.metrics.RecordProviderAttempt(p.providerName, elapsed, err)

	logger := logging.FromContext(ctx, p.logger)
	if err != nil {
		if sErr, ok := AsStatusError(err); ok {
			logWithProvider(ctx, logger, slog.LevelWarn, p.providerName, "rivalry fetch rejected",
				slog.Int(logging.FieldStatusCode, sErr.StatusCode),
				slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			)
			return rivalry.Record{}, err
		}
		logWithProvider(ctx, logger, slog.LevelWarn, p.providerName, "rivalry fetch failed",
			"error", err,
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		)
		return rivalry.Record{}, err
	}
	logWithProvider(ctx, logger, slog.LevelInfo, p.providerName, "rivalry fetched",
		slog.Int(logging.FieldCount, len(rec.Eras)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return rec, nil
}
