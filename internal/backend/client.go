// Package backend типизированный клиент REST API столовой.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Renal37/canteen-admin/internal/logger"
	"github.com/Renal37/canteen-admin/internal/session"
)

var (
	ErrUnauthorized = errors.New("backend rejected admin credentials")
	ErrDecode       = errors.New("backend response is malformed")
	ErrTransport    = errors.New("backend is unreachable")
)

// APIError ответ бэкенда с кодом вне диапазона 2xx.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend api %d", e.Status)
	}
	return fmt.Sprintf("backend api %d: %s", e.Status, e.Message)
}

// Is позволяет проверять 401/403 через errors.Is(err, ErrUnauthorized).
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden)
}

type credentials interface {
	Token() (string, error)

	End(reason error) bool
}

// Client клиент бэкенда. Все методы безопасны для конкурентного использования.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    credentials
	validate   *validator.Validate
}

type Option func(*Client)

// WithTimeout задает таймаут одного запроса.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithHTTPClient подменяет http.Client (например, клиент httptest-сервера).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func New(baseURL string, tokens credentials, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		session:    tokens,
		validate:   validator.New(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type errorBody struct {
	Msg     string `json:"msg"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, authorized bool, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	return c.send(ctx, method, path, authorized, "application/json", reader, out)
}

func (c *Client) send(ctx context.Context, method, path string, authorized bool, contentType string, reader io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	if authorized {
		token, err := c.session.Token()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUnauthorized, err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}
	defer res.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(res.Body); err != nil {
		return fmt.Errorf("%w: failed to read response body: %w", ErrTransport, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &APIError{Status: res.StatusCode}

		var parsed errorBody
		if err := json.Unmarshal(buf.Bytes(), &parsed); err == nil {
			apiErr.Message = parsed.Msg
			if apiErr.Message == "" {
				apiErr.Message = parsed.Message
			}
		}

		if authorized && errors.Is(apiErr, ErrUnauthorized) {
			if c.session.End(session.ErrSessionExpired) {
				logger.Log.Warn("admin session rejected by backend",
					zap.String("path", path),
					zap.Int("status", res.StatusCode),
				)
			}
		}

		return apiErr
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(buf.Bytes(), out); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrDecode, method, path, err)
	}

	return nil
}

func (c *Client) check(value any) error {
	if err := c.validate.Struct(value); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}
