// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AttemptState is the lifecycle state of an exam attempt.
type AttemptState string

const (
	// AttemptInProgress marks an attempt that still accepts answers.
	AttemptInProgress AttemptState = "inprogress"
	// AttemptFinished marks a submitted attempt.
	AttemptFinished AttemptState = "finished"
	// AttemptAbandoned marks an attempt that ran out of time unsubmitted.
	AttemptAbandoned AttemptState = "abandoned"
)

// Closed reports whether no more answers will arrive for the attempt, which
// makes its snapshots eligible for compaction.
func (s AttemptState) Closed() bool {
	return s == AttemptFinished || s == AttemptAbandoned
}

// Valid reports whether s is a known state.
func (s AttemptState) Valid() bool {
	switch s {
	case AttemptInProgress, AttemptFinished, AttemptAbandoned:
		return true
	}
	return false
}

// Attempt is one registry entry: the watermark token handed to a user for a
// single exam attempt.
type Attempt struct {
	// ID is the internal row identifier.
	ID int64 `json:"-"`

	// ExamID identifies the exam the attempt belongs to. Registry lookups are
	// always scoped to one exam.
	ExamID int64 `json:"exam_id"`

	// AttemptID is the identifier assigned by the exam platform.
	AttemptID int64 `json:"attempt_id"`

	// UserID and UserName identify the attempt owner.
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`

	// Token is the hex watermark token embedded in the user's answers.
	Token string `json:"token"`

	// State tracks whether the attempt still accepts answers.
	State AttemptState `json:"state"`

	// Compact is set once the attempt's snapshots were merged into a single
	// compressed row.
	Compact bool `json:"compact"`

	CreatedAt time.Time `json:"created_at"`
}

// Identity returns the identity a foreign watermark resolves to when it
// matches this attempt.
func (a Attempt) Identity() Identity {
	return Identity{UserID: a.UserID, AttemptID: a.AttemptID, FullName: a.UserName}
}
