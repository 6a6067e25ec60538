// Package handlers serves the rivalry page, its JSON API, and the operational endpoints.
package handlers

import (
	"io"
	"log/slog"
	nethttp "net/http"
	"time"

	apprivalry "github.com/preston-bernstein/rivalry-service/internal/app/rivalry"
	"github.com/preston-bernstein/rivalry-service/internal/excuses"
	"github.com/preston-bernstein/rivalry-service/internal/http/requestutil"
	"github.com/preston-bernstein/rivalry-service/internal/loader"
	"github.com/preston-bernstein/rivalry-service/internal/metrics"
)

const (
	defaultTitle      = "Packers vs Bears | The Ultimate Rivalry Stats"
	defaultSessionTTL = 30 * time.Minute
	loadingRefresh    = 1
	msgNotReady       = "rivalry record still loading"
)

// Renderer executes a named page template.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// Options carries the presentation settings the handlers need.
type Options struct {
	Version string
	// Live makes the ready page connect to the live channel for counters and excuses.
	Live       bool
	SessionTTL time.Duration
}

// Handler wires HTTP routes to the rivalry service.
type Handler struct {
	svc      *apprivalry.Service
	pages    Renderer
	logger   *slog.Logger
	recorder *metrics.Recorder
	opts     Options
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *apprivalry.Service, pages Renderer, logger *slog.Logger, recorder *metrics.Recorder, opts Options) *Handler {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = defaultSessionTTL
	}
	return &Handler{
		svc:      svc,
		pages:    pages,
		logger:   logger,
		recorder: recorder,
		opts:     opts,
	}
}

// selector resolves the visitor's excuse selector and refreshes the session cookie.
func (h *Handler) selector(w nethttp.ResponseWriter, r *nethttp.Request) (*excuses.Selector, error) {
	id, sel, err := h.svc.Selector(requestutil.SessionID(r))
	if err != nil {
		return nil, err
	}
	requestutil.SetSessionCookie(w, r, id, h.opts.SessionTTL)
	return sel, nil
}

// writeNotReady answers record-dependent requests made before a successful load.
func (h *Handler) writeNotReady(w nethttp.ResponseWriter, r *nethttp.Request) {
	msg := msgNotReady
	if h.svc.Page().Phase == loader.PhaseFailed {
		msg = loader.UserMessage
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}
