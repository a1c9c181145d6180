package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/internal/service"
	"github.com/MKhiriev/go-exam-watermark/internal/store"
	"github.com/MKhiriev/go-exam-watermark/internal/watermark"
)

// errorStatuses is checked in order, so an error wrapping several sentinels
// gets the status of the first one listed.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrMissingIdentity, http.StatusUnauthorized},
	{ErrForbiddenRole, http.StatusForbidden},
	{ErrInvalidPathParam, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},

	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrAttemptNotOwned, http.StatusForbidden},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidToken, http.StatusBadRequest},
	{service.ErrWatermarkDisabled, http.StatusNotFound},
	{service.ErrAttemptClosed, http.StatusConflict},
	{service.ErrNoHashKey, http.StatusServiceUnavailable},

	{watermark.ErrEmptyToken, http.StatusBadRequest},
	{watermark.ErrInvalidToken, http.StatusBadRequest},

	{store.ErrAttemptAlreadyExists, http.StatusConflict},
	{store.ErrAttemptNotFound, http.StatusNotFound},
	{store.ErrCorruptSnapshot, http.StatusInternalServerError},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Internal errors
// are reported with the generic status text only.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg("request rejected")
	http.Error(w, err.Error(), status)
}
