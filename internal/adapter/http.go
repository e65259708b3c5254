package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pagemark/pagemark/internal/config"
	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/internal/utils"
	"github.com/pagemark/pagemark/models"
)

type httpBackendClient struct {
	client *utils.HTTPClient

	internalToken string

	logger *logger.Logger
}

// NewHTTPBackendClient constructs an HTTP/REST implementation of
// [BackendClient]. It normalises and validates the base URL from
// jobsCfg.BackendBaseURL and attaches the internal token to every request.
//
// Per-call deadlines are the caller's business: the job runner passes a
// context with the per-job timeout, so no client-wide timeout is set here.
//
// Returns an error if jobsCfg.BackendBaseURL is empty or cannot be parsed as
// a valid URL.
func NewHTTPBackendClient(jobsCfg config.Jobs, appCfg config.App, logger *logger.Logger) (BackendClient, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(jobsCfg.BackendBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend base url: %w", err)
	}

	client.SetBaseURL(baseURL)

	return &httpBackendClient{
		client:        client,
		internalToken: appCfg.InternalToken,
		logger:        logger,
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

func (h *httpBackendClient) CleanupImages(ctx context.Context, req models.CleanupRequest) (models.CleanupResult, error) {
	var result models.CleanupResult
	if err := h.post(ctx, "/internal/images/cleanup", req, &result); err != nil {
		return models.CleanupResult{}, fmt.Errorf("cleanup images: %w", err)
	}
	return result, nil
}

func (h *httpBackendClient) UploadImage(ctx context.Context, req models.UploadImageRequest) (models.UploadResult, error) {
	var result models.UploadResult
	if err := h.post(ctx, "/internal/images/upload", req, &result); err != nil {
		return models.UploadResult{}, fmt.Errorf("upload image: %w", err)
	}
	return result, nil
}

func (h *httpBackendClient) SavePage(ctx context.Context, req models.SavePageRequest) (models.SaveResult, error) {
	var result models.SaveResult
	if err := h.post(ctx, "/internal/pages/save", req, &result); err != nil {
		return models.SaveResult{}, fmt.Errorf("save page: %w", err)
	}
	return result, nil
}

func (h *httpBackendClient) DispatchReminders(ctx context.Context, req models.ReminderRequest) (models.ReminderResult, error) {
	var result models.ReminderResult
	if err := h.post(ctx, "/internal/reminders/dispatch", req, &result); err != nil {
		return models.ReminderResult{}, fmt.Errorf("dispatch reminders: %w", err)
	}
	return result, nil
}

// post sends one internal-token-authenticated POST and decodes the 2xx body
// into out.
func (h *httpBackendClient) post(ctx context.Context, path string, body, out any) error {
	resp, err := h.internalRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return err
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (h *httpBackendClient) internalRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("X-Internal-Token", h.internalToken)
}
