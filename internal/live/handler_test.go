package live

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	apprivalry "github.com/preston-bernstein/rivalry-service/internal/app/rivalry"
	"github.com/preston-bernstein/rivalry-service/internal/excuses"
	"github.com/preston-bernstein/rivalry-service/internal/http/requestutil"
	"github.com/preston-bernstein/rivalry-service/internal/loader"
	"github.com/preston-bernstein/rivalry-service/internal/metrics"
	"github.com/preston-bernstein/rivalry-service/internal/store"
	"github.com/preston-bernstein/rivalry-service/internal/testutil"
)

type stubSource struct {
	state loader.State
}

func (s stubSource) State() loader.State {
	return s.state
}

type fixture struct {
	handler  *Handler
	server   *httptest.Server
	sessions *store.SessionStore
	recorder *metrics.Recorder
}

func newFixture(t *testing.T, state loader.State) *fixture {
	t.Helper()
	sessions := store.NewSessionStore(10, time.Minute, nil)
	rec := metrics.NewRecorder()
	logger, _ := testutil.NewBufferLogger()
	h := NewHandler(apprivalry.NewService(stubSource{state: state}, sessions), logger, rec, Options{
		CountupDuration: 40 * time.Millisecond,
		AckWindow:       60 * time.Millisecond,
	})
	srv := httptest.NewServer(h)
	t.Cleanup(func() {
		h.Close()
		srv.Close()
	})
	return &fixture{handler: h, server: srv, sessions: sessions, recorder: rec}
}

func readyState() loader.State {
	rec := testutil.SampleRecord()
	return loader.Ready{Record: &rec}
}

func (f *fixture) dial(t *testing.T, header http.Header) *websocket.Conn {
	t.Helper()
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(f.server), header)
	if err != nil {
		t.Fatalf("dial: %v (resp %+v)", err, resp)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func send(t *testing.T, conn *websocket.Conn, msg Message) {
	t.Helper()
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write: %v", err)
	}
}

// next returns the next frame that is not a counter tick.
func next(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read: %v", err)
		}
		if msg.Type != MsgTick {
			return msg
		}
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestCountersTickToTargets(t *testing.T) {
	f := newFixture(t, readyState())
	conn := f.dial(t, nil)

	want := map[string]int{CounterPackers: 112, CounterTies: 6, CounterBears: 96}
	last := map[string]int{}
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	reached := func() bool {
		for name, target := range want {
			if v, ok := last[name]; !ok || v != target {
				return false
			}
		}
		return true
	}
	for !reached() {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read: %v (seen %v)", err, last)
		}
		if msg.Type != MsgTick || msg.Value == nil {
			continue
		}
		if prev, ok := last[msg.Counter]; ok && *msg.Value < prev {
			t.Fatalf("counter %s went backwards: %d after %d", msg.Counter, *msg.Value, prev)
		}
		if *msg.Value > want[msg.Counter] {
			t.Fatalf("counter %s overshot: %d", msg.Counter, *msg.Value)
		}
		last[msg.Counter] = *msg.Value
	}
}

func TestNextExcuseUsesSessionSelector(t *testing.T) {
	f := newFixture(t, readyState())
	rec := testutil.SampleRecord()
	id, sel, err := f.sessions.GetOrCreate("", func() (*excuses.Selector, error) {
		return excuses.New(rec.Excuses, nil)
	})
	if err != nil {
		t.Fatalf("session: %v", err)
	}

	header := http.Header{}
	header.Add("Cookie", requestutil.SessionCookieName+"="+id)
	conn := f.dial(t, header)

	send(t, conn, Message{Type: MsgNextExcuse})
	msg := next(t, conn)
	if msg.Type != MsgExcuse {
		t.Fatalf("expected excuse, got %+v", msg)
	}
	if msg.Text != sel.Current() {
		t.Fatalf("expected session selector to advance, got %q want %q", msg.Text, sel.Current())
	}
	if got := f.recorder.Totals().ExcuseDraws; got != 1 {
		t.Fatalf("expected one draw recorded, got %d", got)
	}
}

func TestNewSessionSetsCookie(t *testing.T) {
	f := newFixture(t, readyState())
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(f.server), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	if !strings.Contains(resp.Header.Get("Set-Cookie"), requestutil.SessionCookieName+"=") {
		t.Fatalf("expected session cookie on upgrade, got %q", resp.Header.Get("Set-Cookie"))
	}
}

func TestCopyAcknowledgesThenReverts(t *testing.T) {
	f := newFixture(t, readyState())
	conn := f.dial(t, nil)

	send(t, conn, Message{Type: MsgCopy})
	share := next(t, conn)
	if share.Type != MsgShare || share.Text != `"The wind off the lake changed direction." - via PackersVsBears.com 🧀🏈` {
		t.Fatalf("unexpected share frame %+v", share)
	}
	on := next(t, conn)
	if on.Type != MsgCopied || on.Copied == nil || !*on.Copied {
		t.Fatalf("expected copied=true, got %+v", on)
	}
	off := next(t, conn)
	if off.Type != MsgCopied || off.Copied == nil || *off.Copied {
		t.Fatalf("expected copied=false after window, got %+v", off)
	}
	if got := f.recorder.Totals().ShareCopies; got != 1 {
		t.Fatalf("expected share copy recorded, got %d", got)
	}
}

func TestCopyFailureIsSurfaced(t *testing.T) {
	f := newFixture(t, readyState())
	conn := f.dial(t, nil)

	send(t, conn, Message{Type: MsgCopy})
	_ = next(t, conn) // share
	_ = next(t, conn) // copied=true

	send(t, conn, Message{Type: MsgCopyFailed, Reason: "NotAllowedError"})
	off := next(t, conn)
	if off.Type != MsgCopied || off.Copied == nil || *off.Copied {
		t.Fatalf("expected acknowledgement cleared, got %+v", off)
	}
	if msg := next(t, conn); msg.Type != MsgCopyError {
		t.Fatalf("expected copy_error, got %+v", msg)
	}
	if got := f.recorder.Totals().CopyFailures; got != 1 {
		t.Fatalf("expected copy failure recorded, got %d", got)
	}
}

func TestUnknownMessage(t *testing.T) {
	f := newFixture(t, readyState())
	conn := f.dial(t, nil)

	send(t, conn, Message{Type: "dance"})
	if msg := next(t, conn); msg.Type != MsgError {
		t.Fatalf("expected error frame, got %+v", msg)
	}
}

func TestRejectsBeforeReady(t *testing.T) {
	for _, state := range []loader.State{loader.Loading{}, loader.Failed{Err: &loader.LoadError{}}} {
		f := newFixture(t, state)
		_, resp, err := websocket.DefaultDialer.Dial(wsURL(f.server), nil)
		if err == nil {
			t.Fatalf("expected dial to fail in %s", state.Phase())
		}
		if resp == nil || resp.StatusCode != http.StatusServiceUnavailable {
			t.Fatalf("expected 503 in %s, got %+v", state.Phase(), resp)
		}
	}
}

func TestRejectsCrossOrigin(t *testing.T) {
	f := newFixture(t, readyState())
	header := http.Header{}
	header.Set("Origin", "https://evil.example")
	_, resp, err := websocket.DefaultDialer.Dial(wsURL(f.server), header)
	if err == nil {
		t.Fatalf("expected cross-origin dial to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %+v", resp)
	}
}

func TestCloseDisconnectsClients(t *testing.T) {
	f := newFixture(t, readyState())
	conn := f.dial(t, nil)
	waitFor(t, func() bool { return f.handler.Open() == 1 && f.recorder.Totals().LiveSessions == 1 })

	f.handler.Close()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	waitFor(t, func() bool { return f.handler.Open() == 0 && f.recorder.Totals().LiveSessions == 0 })

	if _, _, err := websocket.DefaultDialer.Dial(wsURL(f.server), nil); err == nil {
		t.Fatalf("expected new connections rejected after close")
	}
}

func TestSameOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://rivalry.test/ws", nil)
	if !sameOrigin(req) {
		t.Fatalf("expected missing origin accepted")
	}
	req.Header.Set("Origin", "http://rivalry.test")
	if !sameOrigin(req) {
		t.Fatalf("expected same origin accepted")
	}
	req.Header.Set("Origin", "://bad")
	if sameOrigin(req) {
		t.Fatalf("expected malformed origin rejected")
	}
}
