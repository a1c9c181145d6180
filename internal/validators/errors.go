package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidExamID    = errors.New("invalid exam ID")
	ErrInvalidAttemptID = errors.New("invalid attempt ID")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidUserName  = errors.New("invalid user name")
	ErrInvalidToken     = errors.New("invalid watermark token")
	ErrInvalidState     = errors.New("invalid attempt state")
	ErrInvalidSessionID = errors.New("invalid session ID")
	ErrEmptyData        = errors.New("data is required")
)
