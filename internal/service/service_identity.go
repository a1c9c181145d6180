package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-exam-watermark/internal/config"
	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/internal/store"
	"github.com/MKhiriev/go-exam-watermark/internal/utils"
	"github.com/MKhiriev/go-exam-watermark/internal/watermark"
)

// observerTokenBytes is the digest size of observer tokens, giving the
// same 16 hex digits as random tokens.
const observerTokenBytes = watermark.DefaultTokenLength / 2

type identityService struct {
	attemptRepository store.AttemptRepository
	hashKey           string
	logger            *logger.Logger
}

// NewIdentityService builds an [IdentityService]. Observer tokens are keyed
// by cfg.HashKey, so they are stable across restarts but unknown to
// students.
func NewIdentityService(attemptRepository store.AttemptRepository, cfg config.App, logger *logger.Logger) IdentityService {
	return &identityService{
		attemptRepository: attemptRepository,
		hashKey:           cfg.HashKey,
		logger:            logger,
	}
}

func (s *identityService) GetOrCreateToken(ctx context.Context, observer bool, examID, userID int64) (watermark.Token, error) {
	log := logger.FromContext(ctx)

	if observer {
		if s.hashKey == "" {
			return "", ErrNoHashKey
		}
		digest, err := utils.HashString(strconv.FormatInt(userID, 10), s.hashKey, observerTokenBytes)
		if err != nil {
			return "", fmt.Errorf("error deriving observer token: %w", err)
		}
		return watermark.Token(digest), nil
	}

	latest, err := s.attemptRepository.FindLatestToken(ctx, examID, userID)
	switch {
	case err == nil:
		token, err := watermark.ParseToken(latest)
		if err == nil {
			return token, nil
		}
		log.Warn().Err(err).Int64("exam_id", examID).Int64("user_id", userID).Msg("stored token is invalid, issuing a new one")
	case !errors.Is(err, store.ErrAttemptNotFound):
		return "", fmt.Errorf("error looking up latest token: %w", err)
	}

	return watermark.NewRandomToken()
}
