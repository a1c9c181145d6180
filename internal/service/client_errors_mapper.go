// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-exam-watermark/internal/adapter"
	"github.com/MKhiriev/go-exam-watermark/internal/app"
	"github.com/MKhiriev/go-exam-watermark/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch {
		case strings.Contains(msg, app.MsgInvalidDataProvided):
			return ErrInvalidDataProvided
		case strings.Contains(msg, app.MsgInvalidToken):
			return ErrInvalidToken
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		if strings.HasSuffix(msg, app.MsgAttemptNotOwned) {
			return ErrAttemptNotOwned
		}

	case errors.Is(err, adapter.ErrNotFound):
		switch {
		case strings.HasSuffix(msg, app.MsgWatermarkDisabled):
			return ErrWatermarkDisabled
		case strings.HasSuffix(msg, app.MsgAttemptNotFound):
			return store.ErrAttemptNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		switch {
		case strings.HasSuffix(msg, app.MsgAttemptAlreadyExists):
			return store.ErrAttemptAlreadyExists
		case strings.HasSuffix(msg, app.MsgAttemptClosed):
			return ErrAttemptClosed
		}

	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)

	case !isStatusError(err):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

func isStatusError(err error) bool {
	for _, target := range []error{
		adapter.ErrBadRequest, adapter.ErrUnauthorized, adapter.ErrForbidden,
		adapter.ErrNotFound, adapter.ErrConflict,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return strings.HasPrefix(err.Error(), "http ")
}
