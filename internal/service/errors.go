package service

import (
	"errors"

	"github.com/MKhiriev/go-exam-watermark/internal/app"
)

var (
	ErrInvalidDataProvided = errors.New(app.MsgInvalidDataProvided)

	ErrWatermarkDisabled = errors.New(app.MsgWatermarkDisabled)
	ErrAttemptClosed     = errors.New(app.MsgAttemptClosed)
	ErrAttemptNotOwned   = errors.New(app.MsgAttemptNotOwned)
	ErrInvalidToken      = errors.New(app.MsgInvalidToken)

	ErrTokenCreationFailed     = errors.New(app.MsgTokenCreationFailed)
	ErrTokenIsExpiredOrInvalid = errors.New(app.MsgTokenIsExpiredOrInvalid)
	ErrNoHashKey               = errors.New(app.MsgNoHashKey)
	ErrVersionIsNotSpecified   = errors.New(app.MsgVersionIsNotSpecified)
)

// ErrServerUnavailable is returned by client services when the server cannot
// be reached or fails with a 5xx status.
var ErrServerUnavailable = errors.New("watermark server is unavailable")
