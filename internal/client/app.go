// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-exam-watermark/internal/config"
	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/internal/service"
	"github.com/MKhiriev/go-exam-watermark/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       UI
	cfg      *config.ClientConfig
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil || cfg == nil {
		return nil, errors.New("client app requires services, ui and config")
	}
	return &App{services: services, ui: ui, cfg: cfg, logger: logger}, nil
}

// Run blocks until the exam screen closes or the process is signalled.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	info, err := a.services.ExamService.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin exam: %w", err)
	}
	a.logger.Info().
		Int64("exam_id", info.ExamID).
		Bool("watermarked", info.Token != "").
		Msg("exam session ready")

	a.services.AutosaveJob.Start(ctx, 0)

	result, err := a.ui.Run(ctx, info)
	a.services.AutosaveJob.Stop()

	if result.Submitted || result.Abandoned {
		return err
	}

	// Quit without submitting: keep what was typed for the next run.
	if flushErr := a.services.AutosaveJob.Flush(context.WithoutCancel(ctx)); flushErr != nil {
		a.logger.Warn().Err(flushErr).Msg("final autosave failed")
	}

	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}
