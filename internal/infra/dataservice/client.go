// Package dataservice is the HTTP adapter for the remote events REST service.
package dataservice

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"event-portal/internal/domain/event"
	"event-portal/internal/domain/registration"
	"event-portal/internal/pkg/config"
	"event-portal/internal/pkg/errs"
	"event-portal/internal/usecase/shared"

	"golang.org/x/net/publicsuffix"
)

const maxErrorBody = 4 << 10

// Client talks to the data service on behalf of one visitor. It owns a cookie jar, so
// the admin cookie set by the login call is replayed on later admin calls.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

var _ shared.DataService = (*Client)(nil)

func NewClient(cfg config.DataServiceConfig, logger *slog.Logger) (*Client, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, errs.Wrap(err, "create cookie jar")
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout: cfg.Timeout,
			Jar:     jar,
		},
		logger: logger,
	}, nil
}

func (c *Client) GetEvents(ctx context.Context) ([]event.Event, error) {
	var out []eventDTO
	if err := c.do(ctx, http.MethodGet, "/events", nil, &out); err != nil {
		return nil, err
	}
	return toEvents(out)
}

func (c *Client) GetAdminRegistrations(ctx context.Context) ([]event.AdminRegistration, error) {
	var out []adminRegistrationDTO
	if err := c.do(ctx, http.MethodGet, "/admin/registrations", nil, &out); err != nil {
		return nil, err
	}
	return toAdminRegistrations(out)
}

func (c *Client) CreateEvent(ctx context.Context, draft event.Draft) (*event.Event, error) {
	body, err := fromDraft(draft)
	if err != nil {
		return nil, err
	}
	var out eventDTO
	if err := c.do(ctx, http.MethodPost, "/admin/events", body, &out); err != nil {
		return nil, err
	}
	return toEvent(out)
}

func (c *Client) UpdateEvent(ctx context.Context, uuid string, draft event.Draft) (*event.Event, error) {
	body, err := fromDraft(draft)
	if err != nil {
		return nil, err
	}
	var out eventDTO
	if err := c.do(ctx, http.MethodPut, "/admin/events/"+url.PathEscape(uuid), body, &out); err != nil {
		return nil, err
	}
	return toEvent(out)
}

func (c *Client) DeleteEvent(ctx context.Context, uuid string) error {
	return c.do(ctx, http.MethodDelete, "/admin/events/"+url.PathEscape(uuid), nil, nil)
}

func (c *Client) RegisterToEvent(ctx context.Context, submission registration.Submission) (string, error) {
	body, err := fromSubmission(submission)
	if err != nil {
		return "", err
	}
	var out messageResponse
	if err := c.do(ctx, http.MethodPost, "/register", body, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) DeleteRegistration(ctx context.Context, uuid string) error {
	return c.do(ctx, http.MethodDelete, "/admin/registrations/"+url.PathEscape(uuid), nil, nil)
}

func (c *Client) LoginAdmin(ctx context.Context, password string) error {
	return c.do(ctx, http.MethodPost, "/admin/login", loginRequest{Password: password}, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errs.Wrapf(err, "encode %s %s", method, path)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "build %s %s", method, path), errs.ErrTransient)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("data service unreachable", "method", method, "path", path, "error", err.Error())
		return errs.Mark(errs.Wrapf(err, "%s %s", method, path), errs.ErrTransient)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(method, path, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Mark(errs.Wrapf(err, "decode %s %s", method, path), errs.ErrTransient)
	}
	return nil
}

// statusError keeps the server's own error text as the innermost message.
func (c *Client) statusError(method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	text := http.StatusText(resp.StatusCode)
	var parsed errorResponse
	if json.Unmarshal(raw, &parsed) == nil && parsed.text() != "" {
		text = parsed.text()
	}

	kind := classify(resp.StatusCode)
	if kind == errs.ErrTransient {
		c.logger.Warn("data service error",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"body", string(raw))
	}

	err := errs.Wrapf(errs.New(text), "%s %s: status %d", method, path, resp.StatusCode)
	return errs.Mark(err, kind)
}

func classify(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return errs.ErrUnauthenticated
	case http.StatusConflict:
		return errs.ErrConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errs.ErrValidation
	default:
		return errs.ErrTransient
	}
}

// Factory hands every session a client with a cookie jar of its own.
type Factory struct {
	cfg    config.DataServiceConfig
	logger *slog.Logger
}

var _ shared.DataServiceFactory = (*Factory)(nil)

func NewFactory(cfg config.Config, logger *slog.Logger) *Factory {
	return &Factory{cfg: cfg.DataService, logger: logger}
}

func (f *Factory) New() (shared.DataService, error) {
	client, err := NewClient(f.cfg, f.logger)
	if err != nil {
		return nil, err
	}
	return client, nil
}
