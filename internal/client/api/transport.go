package api

import (
	"net/http"
	"time"

	"github.com/ARKNravi/Gelatik/internal/logging"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// authTransport decorates every outgoing request with the JSON headers, a
// request id and the bearer token, and drops the stored token when the
// server answers 401.
type authTransport struct {
	base  http.RoundTripper
	creds Credentials
	log   logging.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	r := req.Clone(ctx)
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Accept", "application/json")
	if r.Header.Get(RequestIDHeader) == "" {
		r.Header.Set(RequestIDHeader, uuid.NewString())
	}

	token, err := t.creds.Token(ctx)
	if err != nil {
		t.log.Warn(ctx, "read session token", "err", err)
	}
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := t.base.RoundTrip(r)
	if err != nil {
		t.log.Debug(ctx, "request failed",
			"method", r.Method, "path", r.URL.Path, "request_id", r.Header.Get(RequestIDHeader), "err", err)
		return nil, err
	}

	t.log.Debug(ctx, "request finished",
		"method", r.Method, "path", r.URL.Path, "status", resp.StatusCode,
		"duration", time.Since(started), "request_id", r.Header.Get(RequestIDHeader))

	if resp.StatusCode == http.StatusUnauthorized && token != "" {
		if err := t.creds.ClearToken(ctx); err != nil {
			t.log.Error(ctx, "clear session token after 401", "err", err)
		} else {
			t.log.Info(ctx, "session token rejected by server, cleared", "path", r.URL.Path)
		}
	}
	return resp, nil
}
