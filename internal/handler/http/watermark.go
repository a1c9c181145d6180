package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/internal/utils"
	"github.com/MKhiriev/go-exam-watermark/internal/watermark"
	"github.com/MKhiriev/go-exam-watermark/models"
)

func (h *Handler) mark(w http.ResponseWriter, r *http.Request) {
	var req models.MarkRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	session, err := watermark.NewSession(watermark.Token(req.Token), req.Observer)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TextResponse{Text: session.Mark(req.Text)}, http.StatusOK)
}

func (h *Handler) clean(w http.ResponseWriter, r *http.Request) {
	var req models.TextRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	utils.WriteJSON(w, models.TextResponse{Text: watermark.Clean(req.Text)}, http.StatusOK)
}

func (h *Handler) scan(w http.ResponseWriter, r *http.Request) {
	var req models.TextRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	found := watermark.FindWatermarks(req.Text)
	if found == nil {
		found = []string{}
	}
	utils.WriteJSON(w, models.ScanResponse{Watermarks: found}, http.StatusOK)
}

func (h *Handler) pattern(w http.ResponseWriter, r *http.Request) {
	svg, err := h.services.ExamService.Pattern(r.URL.Query().Get("token"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(svg)); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing pattern")
	}
}
