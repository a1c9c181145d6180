// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the message strings shared by the server's sentinel
// errors and the client's error mapper. The server writes these messages
// into 4xx response bodies; the client matches them to restore the
// original error value.
package app

const (
	// MsgInvalidDataProvided is returned when a request fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgWatermarkDisabled is returned when an exam has watermarking
	// switched off.
	MsgWatermarkDisabled = "watermarking is disabled for this exam"

	// MsgAttemptClosed is returned for snapshots sent after an attempt was
	// finished or abandoned.
	MsgAttemptClosed = "attempt does not accept answers anymore"

	MsgInvalidToken            = "invalid watermark token"
	MsgTokenCreationFailed     = "token creation failed"
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"
	MsgNoHashKey               = "no hash key configured for observer tokens"
	MsgVersionIsNotSpecified   = "app version is not specified"

	// MsgAttemptAlreadyExists is returned when an attempt id is registered
	// twice.
	MsgAttemptAlreadyExists = "attempt already exists"

	// MsgAttemptNotFound is returned when no registry entry matches.
	MsgAttemptNotFound = "attempt was not found"

	// MsgAttemptNotOwned is returned when a user closes or saves answers of
	// another user's attempt.
	MsgAttemptNotOwned = "attempt belongs to another user"
)
