// Package live drives the interactive parts of the rivalry page over a websocket:
// count-up ticks for the hero counters, excuse draws, and copy acknowledgements.
package live

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	apprivalry "github.com/preston-bernstein/rivalry-service/internal/app/rivalry"
	"github.com/preston-bernstein/rivalry-service/internal/http/requestutil"
	"github.com/preston-bernstein/rivalry-service/internal/logging"
	"github.com/preston-bernstein/rivalry-service/internal/metrics"
)

const (
	defaultCountupDuration = time.Second
	defaultSessionTTL      = 30 * time.Minute
)

// Options tunes the per-connection animations.
type Options struct {
	CountupDuration time.Duration
	AckWindow       time.Duration
	SessionTTL      time.Duration
}

// Handler upgrades page connections and owns every open client.
type Handler struct {
	svc      *apprivalry.Service
	logger   *slog.Logger
	recorder *metrics.Recorder
	opts     Options
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
}

// NewHandler constructs a live Handler.
func NewHandler(svc *apprivalry.Service, logger *slog.Logger, recorder *metrics.Recorder, opts Options) *Handler {
	if opts.CountupDuration <= 0 {
		opts.CountupDuration = defaultCountupDuration
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = defaultSessionTTL
	}
	return &Handler{
		svc:      svc,
		logger:   logger,
		recorder: recorder,
		opts:     opts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     sameOrigin,
		},
		clients: make(map[*client]struct{}),
	}
}

// sameOrigin accepts requests without an Origin header and those whose origin host matches.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == r.Host
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context(), h.logger)
	if logger == nil {
		logger = slog.Default()
	}

	if h.isClosed() {
		http.Error(w, "shutting down", http.StatusServiceUnavailable)
		return
	}

	page := h.svc.Page()
	id, sel, err := h.svc.Selector(requestutil.SessionID(r))
	if err != nil {
		if !errors.Is(err, apprivalry.ErrNotReady) {
			logging.Error(logger, "live selector unavailable", err)
		}
		http.Error(w, "rivalry record not ready", http.StatusServiceUnavailable)
		return
	}

	header := http.Header{}
	if id != requestutil.SessionID(r) {
		header.Add("Set-Cookie", requestutil.SessionCookie(r, id, h.opts.SessionTTL).String())
	}

	conn, err := h.upgrader.Upgrade(w, r, header)
	if err != nil {
		logging.Warn(logger, "live upgrade failed", slog.Any("err", err))
		return
	}

	c := newClient(conn, sel, h.opts.AckWindow, logger.With(slog.String(logging.FieldSessionID, id)), h.recorder)
	if !h.register(c) {
		c.close()
		_ = conn.Close()
		return
	}
	h.recorder.LiveSessionOpened()
	logging.Info(c.logger, "live session opened", slog.String(logging.FieldRemoteAddr, requestutil.ClientIP(r)))
	defer func() {
		h.unregister(c)
		h.recorder.LiveSessionClosed()
		logging.Info(c.logger, "live session closed")
	}()

	go c.writePump()
	c.startCounters(map[string]int{
		CounterPackers: page.Summary.PackersWins,
		CounterTies:    page.Summary.Ties,
		CounterBears:   page.Summary.BearsWins,
	}, h.opts.CountupDuration)
	c.readPump()
}

// Open returns the number of connected clients.
func (h *Handler) Open() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client and rejects new ones. Hijacked connections are not
// covered by http.Server.Shutdown, so the server calls this while draining.
func (h *Handler) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.close()
	}
}

func (h *Handler) isClosed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

func (h *Handler) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Handler) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}
