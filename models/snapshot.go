package models

import (
	"slices"
	"time"
)

// Snapshot is the answer data of one autosave or submit request.
type Snapshot struct {
	// Time is when the request reached the server.
	Time time.Time `json:"time"`

	// Data maps form field names to submitted values. Only string values
	// can carry watermarks.
	Data map[string]any `json:"data"`

	// SessionID identifies the browser or client session that sent it.
	SessionID string `json:"session_id"`
}

// Answers returns the string values of Data ordered by field name.
func (s Snapshot) Answers() []Answer {
	keys := make([]string, 0, len(s.Data))
	for k, v := range s.Data {
		if _, ok := v.(string); ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	answers := make([]Answer, 0, len(keys))
	for _, k := range keys {
		answers = append(answers, Answer{Field: k, Text: s.Data[k].(string)})
	}
	return answers
}

// Answer is one string field of a snapshot.
type Answer struct {
	Field string
	Text  string
}

// SnapshotResult is returned after a snapshot was processed.
type SnapshotResult struct {
	// Data is the submitted data with every watermark marker removed, ready
	// for grading.
	Data map[string]any `json:"data"`

	// Stored is false when the attempt has no watermark registry entry and
	// the snapshot was not kept.
	Stored bool `json:"stored"`
}
