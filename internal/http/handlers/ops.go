package handlers

import (
	"io"
	nethttp "net/http"

	"github.com/preston-bernstein/rivalry-service/internal/loader"
)

const robotsTxt = "User-agent: *\nDisallow: /api/\nDisallow: /ws\n"

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic: only once the record loaded successfully.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.svc.Page().Phase == loader.PhaseReady {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	h.writeNotReady(w, r)
}

// Version reports the build version.
func (h *Handler) Version(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, map[string]string{"version": h.opts.Version}, h.logger)
}

func (h *Handler) Robots(w nethttp.ResponseWriter, r *nethttp.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, robotsTxt)
}

func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}
