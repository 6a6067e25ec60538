package teststubs

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/preston-bernstein/rivalry-service/internal/domain/rivalry"
)

// StubProvider is a test double for providers.RecordProvider.
type StubProvider struct {
	Record rivalry.Record
	Err    error
	// Block makes FetchRecord wait for ctx to end and return its error.
	Block  bool
	Calls  atomic.Int32
	Notify chan struct{}
}

// FetchRecord returns the configured record and error while tracking calls.
func (s *StubProvider) FetchRecord(ctx context.Context) (rivalry.Record, error) {
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	if s.Block {
		<-ctx.Done()
		return rivalry.Record{}, ctx.Err()
	}
	return s.Record, s.Err
}

// StubHTTPServer implements the server's httpServer interface for tests.
type StubHTTPServer struct {
	AddrVal       string
	HandlerVal    http.Handler
	ListenCalls   atomic.Int32
	ShutdownCalls atomic.Int32
	ListenErr     error
	ShutdownErr   error
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.ListenCalls.Add(1)
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.ShutdownCalls.Add(1)
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	return s.HandlerVal
}
