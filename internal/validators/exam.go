// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-exam-watermark/internal/watermark"
	"github.com/MKhiriev/go-exam-watermark/models"
)

// Field names accepted by [ExamValidator.Validate] to restrict validation to
// a subset of fields.
const (
	FieldExamID    = "exam_id"
	FieldAttemptID = "attempt_id"
	FieldUserID    = "user_id"
	FieldUserName  = "user_name"
	FieldToken     = "token"
	FieldState     = "state"
	FieldSessionID = "session_id"
	FieldData      = "data"
)

const (
	maxUserNameLength  = 255
	maxSessionIDLength = 64
)

// ExamValidator validates attempts and snapshots.
type ExamValidator struct{}

// NewExamValidator returns an [ExamValidator] as a [Validator].
func NewExamValidator() Validator {
	return &ExamValidator{}
}

// Validate checks obj, which must be a models.Attempt or models.Snapshot or
// a pointer to one. When fields is empty a default set is checked: the
// identifiers and user name of an attempt, the data of a snapshot.
func (v *ExamValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Attempt:
		return v.validateAttempt(ctx, value, fields...)
	case *models.Attempt:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateAttempt(ctx, *value, fields...)

	case models.Snapshot:
		return v.validateSnapshot(ctx, value, fields...)
	case *models.Snapshot:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSnapshot(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ExamValidator) validateAttempt(_ context.Context, attempt models.Attempt, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldExamID, FieldAttemptID, FieldUserID, FieldUserName}
	}

	for _, f := range fields {
		switch f {
		case FieldExamID:
			if attempt.ExamID <= 0 {
				return ErrInvalidExamID
			}
		case FieldAttemptID:
			if attempt.AttemptID <= 0 {
				return ErrInvalidAttemptID
			}
		case FieldUserID:
			if attempt.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldUserName:
			if utf8.RuneCountInString(attempt.UserName) > maxUserNameLength || !utf8.ValidString(attempt.UserName) {
				return ErrInvalidUserName
			}
		case FieldToken:
			if _, err := watermark.ParseToken(attempt.Token); err != nil {
				return ErrInvalidToken
			}
		case FieldState:
			if !attempt.State.Valid() {
				return ErrInvalidState
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ExamValidator) validateSnapshot(_ context.Context, snapshot models.Snapshot, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldData, FieldSessionID}
	}

	for _, f := range fields {
		switch f {
		case FieldData:
			if snapshot.Data == nil {
				return ErrEmptyData
			}
		case FieldSessionID:
			if len(snapshot.SessionID) > maxSessionIDLength {
				return ErrInvalidSessionID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
