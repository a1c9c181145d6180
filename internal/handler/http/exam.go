package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-exam-watermark/internal/utils"
	"github.com/MKhiriev/go-exam-watermark/models"
)

// session answers GET /api/exams/{examID}/session for the token's user.
// Observer tokens get the observer view.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	examID, err := pathID(r, "examID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	info, err := h.services.ExamService.Session(r.Context(), examID, userID, role == observerRole)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, info, http.StatusOK)
}

func (h *Handler) setExamSettings(w http.ResponseWriter, r *http.Request) {
	examID, err := pathID(r, "examID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.ExamSettingsRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if err := h.services.ExamService.SetEnabled(r.Context(), examID, req.Enabled); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ExamSettings{ExamID: examID, Enabled: req.Enabled}, http.StatusOK)
}

func (h *Handler) getExamSettings(w http.ResponseWriter, r *http.Request) {
	examID, err := pathID(r, "examID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	enabled, err := h.services.ExamService.IsEnabled(r.Context(), examID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ExamSettings{ExamID: examID, Enabled: enabled}, http.StatusOK)
}

func (h *Handler) examReport(w http.ResponseWriter, r *http.Request) {
	examID, err := pathID(r, "examID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	rows, err := h.services.ReportService.ExamReport(r.Context(), examID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if rows == nil {
		rows = []models.AttemptSummary{}
	}

	utils.WriteJSON(w, rows, http.StatusOK)
}

func (h *Handler) attemptReport(w http.ResponseWriter, r *http.Request) {
	examID, err := pathID(r, "examID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	attemptID, err := pathID(r, "attemptID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	report, err := h.services.ReportService.AttemptReport(r.Context(), examID, attemptID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if report.Hits == nil {
		report.Hits = []models.Attribution{}
	}

	utils.WriteJSON(w, report, http.StatusOK)
}
