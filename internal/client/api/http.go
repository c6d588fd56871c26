package api

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

	"github.com/ARKNravi/Gelatik/internal/logging"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 4 << 20

type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for baseURL. timeout bounds a whole request
// including reading the body; zero means no limit.
func NewHTTPClient(baseURL string, creds Credentials, timeout time.Duration, log logging.Logger) *HTTPClient {
	return newHTTPClient(baseURL, creds, timeout, http.DefaultTransport, log)
}

func newHTTPClient(baseURL string, creds Credentials, timeout time.Duration, base http.RoundTripper, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: &authTransport{base: base, creds: creds, log: log},
		},
		log: log,
	}
}

func (c *HTTPClient) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*UserProfile, error) {
	var out UserProfile
	if err := c.do(ctx, http.MethodGet, "/users/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, req ProfileUpdate) (*UserProfile, error) {
	var out UserProfile
	if err := c.do(ctx, http.MethodPut, "/users/profile", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) VerifyPassword(ctx context.Context, currentPassword string) (*VerifyPasswordResponse, error) {
	var out VerifyPasswordResponse
	req := VerifyPasswordRequest{CurrentPassword: currentPassword}
	if err := c.do(ctx, http.MethodPost, "/users/verify-password", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ChangePassword(ctx context.Context, req ChangePasswordRequest) (*ChangePasswordResponse, error) {
	var out ChangePasswordResponse
	if err := c.do(ctx, http.MethodPost, "/users/change-password", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Translators(ctx context.Context) (*TranslatorList, error) {
	var out TranslatorList
	if err := c.do(ctx, http.MethodGet, "/translations", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) MyOrders(ctx context.Context) (*OrderList, error) {
	var out OrderList
	if err := c.do(ctx, http.MethodGet, "/translations/orders/my-orders", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ForumPosts(ctx context.Context) ([]ForumPost, error) {
	var out []ForumPost
	if err := c.do(ctx, http.MethodGet, "/summaries", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// do sends one request and decodes a 2xx JSON body into out.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Message: errorDetail(data)}
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ErrEmptyBody
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("%w: %v", ErrEmptyBody, err)
	}
	return nil
}

// errorDetail extracts a human readable message from an error body. The
// backend answers {"detail": "..."}, {"detail": [{"msg": "..."}]} for
// validation errors, or {"message": "..."}.
func errorDetail(body []byte) string {
	var envelope struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}

	if len(envelope.Detail) > 0 {
		var s string
		if err := json.Unmarshal(envelope.Detail, &s); err == nil {
			return s
		}
		var items []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(envelope.Detail, &items); err == nil && len(items) > 0 {
			return items[0].Msg
		}
	}
	return envelope.Message
}

// IsTransport reports whether err means the backend could not be reached.
func IsTransport(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
