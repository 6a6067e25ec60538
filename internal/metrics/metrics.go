package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures in-memory counters and forwards them to OpenTelemetry when configured.
type Recorder struct {
	mu           sync.Mutex
	stats        map[string]*providerStats
	loads        int
	loadFailures int
	excuseDraws  int
	shareCopies  int
	copyFailures int
	liveSessions int
	otel         *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordLoad tracks the outcome of the one-shot record load.
func (r *Recorder) RecordLoad(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.loads++
	if err != nil {
		r.loadFailures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLoad(duration, err)
	}
}

// RecordExcuseDraw counts a call to the excuse selector's Next.
func (r *Recorder) RecordExcuseDraw(source string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.excuseDraws++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCounter(r.otel.excuseDraws, 1, sourceAttr(source))
	}
}

// RecordShareCopy counts a clipboard copy outcome reported by a page.
func (r *Recorder) RecordShareCopy(source string, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	if err != nil {
		r.copyFailures++
	} else {
		r.shareCopies++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordShareCopy(source, err)
	}
}

// LiveSessionOpened increments the open live session gauge.
func (r *Recorder) LiveSessionOpened() {
	r.addLiveSessions(1)
}

// LiveSessionClosed decrements the open live session gauge.
func (r *Recorder) LiveSessionClosed() {
	r.addLiveSessions(-1)
}

func (r *Recorder) addLiveSessions(delta int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.liveSessions += delta
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.liveSessions.Add(r.otel.ctx, int64(delta))
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// Totals is a copy of the service-wide counters.
type Totals struct {
	Loads        int
	LoadFailures int
	ExcuseDraws  int
	ShareCopies  int
	CopyFailures int
	LiveSessions int
}

// Totals returns the current service-wide counters.
func (r *Recorder) Totals() Totals {
	if r == nil {
		return Totals{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return Totals{
		Loads:        r.loads,
		LoadFailures: r.loadFailures,
		ExcuseDraws:  r.excuseDraws,
		ShareCopies:  r.shareCopies,
		CopyFailures: r.copyFailures,
		LiveSessions: r.liveSessions,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
