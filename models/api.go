package models

// MarkRequest asks the server to watermark Text with Token.
type MarkRequest struct {
	Token    string `json:"token"`
	Observer bool   `json:"observer"`
	Text     string `json:"text"`
}

// TextRequest carries a single text, e.g. for cleaning or scanning.
type TextRequest struct {
	Text string `json:"text"`
}

// TextResponse carries a processed text.
type TextResponse struct {
	Text string `json:"text"`
}

// ScanResponse lists the watermarks found in a text.
type ScanResponse struct {
	Watermarks []string `json:"watermarks"`
}

// StartAttemptRequest registers an attempt in the watermark registry. The
// attempt belongs to the user of the bearer token.
type StartAttemptRequest struct {
	ExamID    int64  `json:"exam_id"`
	AttemptID int64  `json:"attempt_id"`
	UserName  string `json:"user_name"`
}

// Attempt converts the request to a registry entry of userID.
func (r StartAttemptRequest) Attempt(userID int64) Attempt {
	return Attempt{ExamID: r.ExamID, AttemptID: r.AttemptID, UserID: userID, UserName: r.UserName}
}

// FinishAttemptRequest closes an attempt. Abandoned is set for attempts
// that ran out of time.
type FinishAttemptRequest struct {
	Abandoned bool `json:"abandoned"`
}

// SnapshotRequest is one autosave or submit of answer data.
type SnapshotRequest struct {
	Data      map[string]any `json:"data"`
	SessionID string         `json:"session_id"`
}

// ExamSettingsRequest switches watermarking of an exam.
type ExamSettingsRequest struct {
	Enabled bool `json:"enabled"`
}
