// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-exam-watermark/internal/service"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, service.ErrServerUnavailable) {
		return "Server is unavailable, answers are kept locally and saved later"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unavailable"
	}

	switch {
	case errors.Is(err, service.ErrAttemptClosed):
		return "The attempt is already closed"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "The server rejected the answers"
	}

	return err.Error()
}
