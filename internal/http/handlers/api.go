package handlers

import (
	"log/slog"
	nethttp "net/http"

	"github.com/skip2/go-qrcode"

	domainrivalry "github.com/preston-bernstein/rivalry-service/internal/domain/rivalry"
	"github.com/preston-bernstein/rivalry-service/internal/excuses"
	"github.com/preston-bernstein/rivalry-service/internal/logging"
	"github.com/preston-bernstein/rivalry-service/internal/metrics"
)

const qrSize = 320

// RivalryResponse pairs the raw record with its display aggregates.
type RivalryResponse struct {
	Record  *domainrivalry.Record `json:"record"`
	Summary domainrivalry.Summary `json:"summary"`
}

// ExcuseResponse carries the current excuse and its share text.
type ExcuseResponse struct {
	Excuse string `json:"excuse"`
	Share  string `json:"share"`
}

// Data serves the loaded record document as-is.
func (h *Handler) Data(w nethttp.ResponseWriter, r *nethttp.Request) {
	rec, err := h.svc.Record()
	if err != nil {
		h.writeNotReady(w, r)
		return
	}
	writeJSON(w, nethttp.StatusOK, rec, h.logger)
}

// Rivalry returns the record together with the computed summary.
func (h *Handler) Rivalry(w nethttp.ResponseWriter, r *nethttp.Request) {
	rec, err := h.svc.Record()
	if err != nil {
		h.writeNotReady(w, r)
		return
	}
	writeJSON(w, nethttp.StatusOK, RivalryResponse{Record: rec, Summary: domainrivalry.Summarize(rec)}, h.logger)
}

// CurrentExcuse returns the visitor's current excuse.
func (h *Handler) CurrentExcuse(w nethttp.ResponseWriter, r *nethttp.Request) {
	sel, err := h.selector(w, r)
	if err != nil {
		h.writeNotReady(w, r)
		return
	}
	noStore(w)
	writeJSON(w, nethttp.StatusOK, excuseResponse(sel.Current()), h.logger)
}

// NextExcuse draws a new excuse. With ?redirect=1 it sends the browser back to the page.
func (h *Handler) NextExcuse(w nethttp.ResponseWriter, r *nethttp.Request) {
	sel, err := h.selector(w, r)
	if err != nil {
		h.writeNotReady(w, r)
		return
	}
	excuse := sel.Next()
	h.recorder.RecordExcuseDraw(metrics.SourceHTTP)
	logging.Info(loggerFromContext(r, h.logger), "excuse drawn", slog.String("source", metrics.SourceHTTP))

	if r.URL.Query().Get("redirect") == "1" {
		nethttp.Redirect(w, r, "/#excuses", nethttp.StatusSeeOther)
		return
	}
	noStore(w)
	writeJSON(w, nethttp.StatusOK, excuseResponse(excuse), h.logger)
}

// Share returns the share text for the current excuse, ready for the clipboard.
func (h *Handler) Share(w nethttp.ResponseWriter, r *nethttp.Request) {
	sel, err := h.selector(w, r)
	if err != nil {
		h.writeNotReady(w, r)
		return
	}
	h.recorder.RecordShareCopy(metrics.SourceHTTP, nil)
	noStore(w)
	writeJSON(w, nethttp.StatusOK, map[string]string{"text": excuses.ShareText(sel.Current())}, h.logger)
}

// ShareQR encodes the share text of the current excuse as a PNG QR code.
func (h *Handler) ShareQR(w nethttp.ResponseWriter, r *nethttp.Request) {
	sel, err := h.selector(w, r)
	if err != nil {
		h.writeNotReady(w, r)
		return
	}
	png, err := qrcode.Encode(excuses.ShareText(sel.Current()), qrcode.Medium, qrSize)
	if err != nil {
		logging.Error(loggerFromContext(r, h.logger), "qr generation failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "qr generation failed", h.logger)
		return
	}
	noStore(w)
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func excuseResponse(excuse string) ExcuseResponse {
	return ExcuseResponse{Excuse: excuse, Share: excuses.ShareText(excuse)}
}
