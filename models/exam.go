package models

// ExamSettings holds the per-exam watermark switch.
type ExamSettings struct {
	ExamID  int64 `json:"exam_id"`
	Enabled bool  `json:"enabled"`
}

// Palette holds the three colors of the background dot pattern, as CSS hex
// colors.
type Palette struct {
	Background string `json:"background"`
	Start      string `json:"start"`
	Bit        string `json:"bit"`
}

// SessionInfo is what an exam page needs to watermark its fields.
type SessionInfo struct {
	ExamID   int64  `json:"exam_id"`
	UserID   int64  `json:"user_id"`
	Token    string `json:"token"`
	Observer bool   `json:"observer"`

	Palette Palette `json:"palette"`

	// PatternDataURI is the dot pattern as a base64 SVG data URI.
	PatternDataURI string `json:"pattern_data_uri"`

	// BackgroundCSS tiles the pattern behind question text.
	BackgroundCSS string `json:"background_css"`
}
