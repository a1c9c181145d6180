// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"regexp"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validate checks the merged [StructuredConfig]. Zero values are accepted,
// since defaults are filled in before validation and secrets are checked
// by the services that need them.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.CompactInterval < 0 || cfg.Workers.ReportConcurrency < 0 {
		return ErrInvalidWorkerConfigs
	}

	for name, color := range map[string]string{
		"background": cfg.Watermark.Background,
		"start":      cfg.Watermark.Start,
		"bit":        cfg.Watermark.Bit,
	} {
		if color != "" && !hexColor.MatchString(color) {
			return fmt.Errorf("%w: %s color %q", ErrInvalidWatermarkConfigs, name, color)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.Token == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Exam.ExamID == 0 || cfg.Exam.AttemptID == 0 || cfg.Exam.UserID == 0 {
		return ErrInvalidExamConfigs
	}

	return nil
}
