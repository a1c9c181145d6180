package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-exam-watermark/internal/config"
	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/internal/store"
	"github.com/MKhiriev/go-exam-watermark/internal/watermark"
	"github.com/MKhiriev/go-exam-watermark/models"
)

// QuestionSelector is the CSS selector the pattern is tiled behind.
const QuestionSelector = ".formulation"

type examService struct {
	examRepository  store.ExamRepository
	identityService IdentityService
	palette         models.Palette
	logger          *logger.Logger
}

// NewExamService constructs an [ExamService] rendering patterns in the
// configured palette.
func NewExamService(examRepository store.ExamRepository, identityService IdentityService, cfg config.Watermark, logger *logger.Logger) ExamService {
	return &examService{
		examRepository:  examRepository,
		identityService: identityService,
		palette:         PaletteFromConfig(cfg),
		logger:          logger,
	}
}

func (s *examService) SetEnabled(ctx context.Context, examID int64, enabled bool) error {
	if examID <= 0 {
		return ErrInvalidDataProvided
	}
	if err := s.examRepository.SetEnabled(ctx, examID, enabled); err != nil {
		return fmt.Errorf("error storing exam settings: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("exam_id", examID).Bool("enabled", enabled).Msg("exam settings changed")
	return nil
}

func (s *examService) IsEnabled(ctx context.Context, examID int64) (bool, error) {
	enabled, err := s.examRepository.IsEnabled(ctx, examID)
	if err != nil {
		return false, fmt.Errorf("error reading exam settings: %w", err)
	}
	return enabled, nil
}

// Session returns everything an exam page needs to watermark its fields.
// Observers always get a session so they can preview the exam; students
// only when the exam is watermarked.
func (s *examService) Session(ctx context.Context, examID, userID int64, observer bool) (models.SessionInfo, error) {
	if examID <= 0 || userID <= 0 {
		return models.SessionInfo{}, ErrInvalidDataProvided
	}

	if !observer {
		enabled, err := s.IsEnabled(ctx, examID)
		if err != nil {
			return models.SessionInfo{}, err
		}
		if !enabled {
			return models.SessionInfo{}, ErrWatermarkDisabled
		}
	}

	token, err := s.identityService.GetOrCreateToken(ctx, observer, examID, userID)
	if err != nil {
		return models.SessionInfo{}, fmt.Errorf("error getting watermark token: %w", err)
	}

	matrix := watermark.RenderDotMatrix(token)
	return models.SessionInfo{
		ExamID:         examID,
		UserID:         userID,
		Token:          token.String(),
		Observer:       observer,
		Palette:        s.palette,
		PatternDataURI: matrix.DataURI(s.palette),
		BackgroundCSS:  matrix.BackgroundCSS(QuestionSelector, s.palette),
	}, nil
}

// Pattern renders the SVG tile of token.
func (s *examService) Pattern(token string) (string, error) {
	t, err := watermark.ParseToken(token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return watermark.RenderDotMatrix(t).SVG(s.palette), nil
}

// PaletteFromConfig fills unset colors from [watermark.DefaultPalette].
func PaletteFromConfig(cfg config.Watermark) models.Palette {
	p := watermark.DefaultPalette
	if cfg.Background != "" {
		p.Background = cfg.Background
	}
	if cfg.Start != "" {
		p.Start = cfg.Start
	}
	if cfg.Bit != "" {
		p.Bit = cfg.Bit
	}
	return p
}
