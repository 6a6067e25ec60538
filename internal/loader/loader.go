package loader

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/rivalry-service/internal/domain/rivalry"
	"github.com/preston-bernstein/rivalry-service/internal/logging"
	"github.com/preston-bernstein/rivalry-service/internal/metrics"
	"github.com/preston-bernstein/rivalry-service/internal/providers"
)

const defaultTimeout = 10 * time.Second

// Loader fetches the rivalry record exactly once and exposes the outcome.
type Loader struct {
	provider providers.RecordProvider
	logger   *slog.Logger
	metrics  *metrics.Recorder
	timeout  time.Duration
	now      func() time.Time

	startOnce sync.Once
	done      chan struct{}

	mu    sync.RWMutex
	state State
}

// New constructs a Loader in the Loading state.
func New(provider providers.RecordProvider, logger *slog.Logger, recorder *metrics.Recorder, timeout time.Duration) *Loader {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Loader{
		provider: provider,
		logger:   logger,
		metrics:  recorder,
		timeout:  timeout,
		now:      time.Now,
		done:     make(chan struct{}),
		state:    Loading{},
	}
}

// Start launches the fetch in the background. Later calls are no-ops.
func (l *Loader) Start(ctx context.Context) {
	l.startOnce.Do(func() {
		go l.load(ctx)
	})
}

// State returns the current state.
func (l *Loader) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Record returns the loaded record when the loader is Ready.
func (l *Loader) Record() (*rivalry.Record, bool) {
	if ready, ok := l.State().(Ready); ok {
		return ready.Record, true
	}
	return nil, false
}

// Done is closed once the state is terminal.
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

// Wait blocks until the load settles or ctx ends.
func (l *Loader) Wait(ctx context.Context) (State, error) {
	select {
	case <-l.done:
		return l.State(), nil
	case <-ctx.Done():
		return l.State(), ctx.Err()
	}
}

func (l *Loader) load(ctx context.Context) {
	start := l.now()
	fetchCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	var (
		rec rivalry.Record
		err error
	)
	if l.provider == nil {
		err = providers.ErrProviderUnavailable
	} else {
		rec, err = l.provider.FetchRecord(fetchCtx)
	}
	if err == nil {
		err = rec.Check()
	}
	elapsed := l.now().Sub(start)
	l.metrics.RecordLoad(elapsed, err)

	if err != nil {
		loadErr := &LoadError{Cause: err}
		logging.Error(l.logger, "rivalry record load failed", err,
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
		l.settle(Failed{Err: loadErr})
		return
	}

	logging.Info(l.logger, "rivalry record loaded",
		slog.String("updated_through", rec.UpdatedThroughSeason),
		slog.Int(logging.FieldCount, rec.AllTime.TotalGames()),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	l.settle(Ready{Record: &rec})
}

func (l *Loader) settle(s State) {
	l.mu.Lock()
	l.state = s
	l.mu.Unlock()
	close(l.done)
}
