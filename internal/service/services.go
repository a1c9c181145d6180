package service

import (
	"github.com/MKhiriev/go-exam-watermark/internal/config"
	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/internal/store"
)

// Services aggregates the server-side services.
type Services struct {
	AuthService       AuthService
	AppInfoService    AppInfoService
	IdentityService   IdentityService
	AttemptService    AttemptService
	ExamService       ExamService
	ReportService     ReportService
	CompactionService CompactionService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	identityService := NewIdentityService(storages.AttemptRepository, cfg.App, logger)

	return &Services{
		AuthService:       NewAuthService(cfg.App, logger),
		AppInfoService:    appInfoService,
		IdentityService:   identityService,
		AttemptService:    NewAttemptService(storages, logger),
		ExamService:       NewExamService(storages.ExamRepository, identityService, cfg.Watermark, logger),
		ReportService:     NewReportService(storages, cfg.Workers, logger),
		CompactionService: NewCompactionService(storages, logger),
	}, nil
}
