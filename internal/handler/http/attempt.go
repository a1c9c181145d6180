package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-exam-watermark/internal/utils"
	"github.com/MKhiriev/go-exam-watermark/models"
)

func (h *Handler) startAttempt(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.StartAttemptRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	attempt, err := h.services.AttemptService.Start(r.Context(), req.Attempt(userID))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, attempt, http.StatusCreated)
}

// finishAttempt closes an attempt. An empty body finishes it.
func (h *Handler) finishAttempt(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	attemptID, err := pathID(r, "attemptID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.FinishAttemptRequest
	if err := utils.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	close := h.services.AttemptService.Finish
	if req.Abandoned {
		close = h.services.AttemptService.Abandon
	}
	if err := close(r.Context(), userID, attemptID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteAttempt(w http.ResponseWriter, r *http.Request) {
	attemptID, err := pathID(r, "attemptID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AttemptService.Delete(r.Context(), attemptID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) saveSnapshot(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	attemptID, err := pathID(r, "attemptID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.SnapshotRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	result, err := h.services.AttemptService.SaveSnapshot(r.Context(), userID, attemptID, models.Snapshot{
		Data:      req.Data,
		SessionID: req.SessionID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
