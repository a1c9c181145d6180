// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the exam client's transport to the watermark server.
//
// Non-2xx responses are mapped to the sentinel errors of errors.go, with the
// response body appended, so callers can match them with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-exam-watermark/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the subset of the server API an exam page uses.
type ServerAdapter interface {
	// GetVersion returns the server build version.
	GetVersion(ctx context.Context) (string, error)

	// GetSession fetches the token, palette and pattern of the token's user
	// in examID.
	GetSession(ctx context.Context, examID int64) (models.SessionInfo, error)

	// StartAttempt registers an attempt and returns it with its new token.
	StartAttempt(ctx context.Context, req models.StartAttemptRequest) (models.Attempt, error)

	// SaveSnapshot stores one autosave or submit of the attempt's answers.
	SaveSnapshot(ctx context.Context, attemptID int64, req models.SnapshotRequest) (models.SnapshotResult, error)

	// FinishAttempt closes the attempt as finished, or abandoned when
	// abandoned is set.
	FinishAttempt(ctx context.Context, attemptID int64, abandoned bool) error
}
