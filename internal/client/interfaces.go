// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-exam-watermark/internal/tui"
	"github.com/MKhiriev/go-exam-watermark/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI runs the exam screen for a session.
type UI interface {
	Run(ctx context.Context, info models.SessionInfo) (tui.Result, error)
}

var _ Client = (*App)(nil)
