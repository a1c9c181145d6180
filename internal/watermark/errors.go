package watermark

import "errors"

var (
	// ErrEmptyToken is returned when a token has no digits.
	ErrEmptyToken = errors.New("empty watermark token")
	// ErrInvalidToken is returned when a token contains non-hex characters.
	ErrInvalidToken = errors.New("invalid watermark token")
)
