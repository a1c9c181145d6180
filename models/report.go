package models

import "time"

// Identity is the owner of a watermark token as resolved from the registry.
type Identity struct {
	UserID    int64  `json:"user_id"`
	AttemptID int64  `json:"attempt_id"`
	FullName  string `json:"full_name"`
}

// Attribution is one foreign watermark found in an answer.
type Attribution struct {
	// Time is the snapshot time of the answer.
	Time time.Time `json:"time"`

	// Field is the form field the answer was submitted in.
	Field string `json:"field"`

	// Answer is the answer text as submitted, markers included.
	Answer string `json:"answer"`

	// Watermark is the decoded hex token.
	Watermark string `json:"watermark"`

	// Source is the resolved owner, or nil when the token is unknown or
	// matches more than one registry entry.
	Source *Identity `json:"source"`
}

// AttemptReport lists every foreign watermark found in one attempt.
type AttemptReport struct {
	Attempt Attempt       `json:"attempt"`
	Hits    []Attribution `json:"hits"`
}

// AttemptSummary is one row of an exam-wide report: an attempt that
// contains foreign watermarks and whose they are.
type AttemptSummary struct {
	AttemptID int64  `json:"attempt_id"`
	UserName  string `json:"user_name"`

	// Sources lists the distinct resolved owners. Unresolved hits appear
	// once with a zero UserID.
	Sources []Identity `json:"sources"`
}
