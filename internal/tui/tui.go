package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-exam-watermark/internal/config"
	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/internal/service"
	"github.com/MKhiriev/go-exam-watermark/internal/watermark"
	"github.com/MKhiriev/go-exam-watermark/models"
)

var ErrUserQuit = errors.New("user quit the exam")

// Result tells how an exam screen ended.
type Result struct {
	Submitted bool
	Abandoned bool
}

type TUI struct {
	services  *service.ClientServices
	exam      config.Exam
	palette   models.Palette
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New returns a TUI for the attempt described by cfg.
func New(services *service.ClientServices, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}

	return &TUI{
		services:  services,
		exam:      cfg.Exam,
		palette:   paletteOrDefault(models.Palette(cfg.Watermark)),
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the exam screen for info until the user submits, quits or the
// time runs out. ErrUserQuit is returned when the user left without
// submitting.
func (t *TUI) Run(ctx context.Context, info models.SessionInfo) (Result, error) {
	session, err := sessionFor(info)
	if err != nil {
		return Result{}, err
	}
	if session == nil {
		t.logger.Info().Msg("exam is not watermarked, fields stay plain")
	}

	palette := t.palette
	if info.Palette.Background != "" {
		palette = info.Palette
	}

	model := newExamModel(ctx, t.services, session, t.exam, palette, t.buildInfo)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return Result{}, runErr
	}

	result, ok := finalModel.(examModel)
	if !ok {
		return Result{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return Result{}, ErrUserQuit
	}

	return Result{Submitted: result.submitted, Abandoned: result.abandoned}, nil
}

// sessionFor returns nil when the server handed out no token.
func sessionFor(info models.SessionInfo) (*watermark.Session, error) {
	if info.Token == "" {
		return nil, nil
	}

	token, err := watermark.ParseToken(info.Token)
	if err != nil {
		return nil, fmt.Errorf("error parsing session token: %w", err)
	}
	return watermark.NewSession(token, info.Observer)
}

func paletteOrDefault(p models.Palette) models.Palette {
	if p.Background == "" {
		p.Background = watermark.DefaultPalette.Background
	}
	if p.Start == "" {
		p.Start = watermark.DefaultPalette.Start
	}
	if p.Bit == "" {
		p.Bit = watermark.DefaultPalette.Bit
	}
	return p
}
