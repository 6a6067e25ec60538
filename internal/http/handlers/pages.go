package handlers

import (
	"bytes"
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/rivalry-service/internal/loader"
	"github.com/preston-bernstein/rivalry-service/internal/logging"
	"github.com/preston-bernstein/rivalry-service/internal/web"
)

const panicMessage = "An error has occurred. Please try again."

// Page renders the rivalry page for the current load state.
// Loading reloads itself, a failed load shows the single static message with 503.
func (h *Handler) Page(w nethttp.ResponseWriter, r *nethttp.Request) {
	page := h.svc.Page()
	data := web.PageData{Title: defaultTitle, Version: h.opts.Version}

	switch page.Phase {
	case loader.PhaseLoading:
		data.Refresh = loadingRefresh
		h.render(w, r, nethttp.StatusOK, web.PageLoading, data)
	case loader.PhaseFailed:
		data.Message = page.Message
		h.render(w, r, nethttp.StatusServiceUnavailable, web.PageError, data)
	default:
		sel, err := h.selector(w, r)
		if err != nil {
			logging.Error(loggerFromContext(r, h.logger), "excuse selector unavailable", err)
			data.Message = loader.UserMessage
			h.render(w, r, nethttp.StatusServiceUnavailable, web.PageError, data)
			return
		}
		data.Live = h.opts.Live
		data.Excuse = sel.Current()
		data.Summary = page.Summary
		data.Cards = web.StatCards(page.Summary)
		h.render(w, r, nethttp.StatusOK, web.PageReady, data)
	}
}

// Panic renders a static error page for handlers that panicked.
func (h *Handler) Panic(w nethttp.ResponseWriter, r *nethttp.Request, v any) {
	logging.Error(loggerFromContext(r, h.logger), "handler panic", nil,
		slog.Any("panic", v),
		slog.String(logging.FieldPath, r.URL.Path),
	)
	data := web.PageData{Title: "Server Error", Version: h.opts.Version, Message: panicMessage}
	h.render(w, r, nethttp.StatusInternalServerError, web.PageError, data)
}

// render buffers the template so a failed execution still yields a clean 500.
func (h *Handler) render(w nethttp.ResponseWriter, r *nethttp.Request, status int, name string, data web.PageData) {
	noStore(w)
	if h.pages == nil {
		writeError(w, r, nethttp.StatusInternalServerError, "templates not configured", h.logger)
		return
	}
	var buf bytes.Buffer
	if err := h.pages.Render(&buf, name, data); err != nil {
		logging.Error(loggerFromContext(r, h.logger), "page render failed", err, slog.String("page", name))
		nethttp.Error(w, panicMessage, nethttp.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
