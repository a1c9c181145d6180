package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-exam-watermark/internal/config"
	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/internal/utils"
	"github.com/MKhiriev/go-exam-watermark/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter returns a REST implementation of [ServerAdapter] for
// the server at adapterCfg.HTTPAddress. A missing scheme defaults to http.
// Every request carries adapterCfg.Token as a bearer token.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	if adapterCfg.Token != "" {
		client.SetAuthToken(adapterCfg.Token)
	}

	return &httpServerAdapter{
		client: client,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) GetSession(ctx context.Context, examID int64) (models.SessionInfo, error) {
	var info models.SessionInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("examID", strconv.FormatInt(examID, 10)).
		SetResult(&info).
		Get("/api/exams/{examID}/session")
	if err != nil {
		return models.SessionInfo{}, fmt.Errorf("session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionInfo{}, err
	}

	return info, nil
}

func (h *httpServerAdapter) StartAttempt(ctx context.Context, req models.StartAttemptRequest) (models.Attempt, error) {
	var attempt models.Attempt

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&attempt).
		Post("/api/attempts")
	if err != nil {
		return models.Attempt{}, fmt.Errorf("start attempt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Attempt{}, err
	}

	return attempt, nil
}

func (h *httpServerAdapter) SaveSnapshot(ctx context.Context, attemptID int64, req models.SnapshotRequest) (models.SnapshotResult, error) {
	var result models.SnapshotResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("attemptID", strconv.FormatInt(attemptID, 10)).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/attempts/{attemptID}/snapshots")
	if err != nil {
		return models.SnapshotResult{}, fmt.Errorf("save snapshot request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SnapshotResult{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) FinishAttempt(ctx context.Context, attemptID int64, abandoned bool) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("attemptID", strconv.FormatInt(attemptID, 10)).
		SetHeader("Content-Type", "application/json").
		SetBody(models.FinishAttemptRequest{Abandoned: abandoned}).
		Post("/api/attempts/{attemptID}/finish")
	if err != nil {
		return fmt.Errorf("finish attempt request: %w", err)
	}

	return mapHTTPError(resp)
}
