// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/glow-up-client/internal/config"
	"github.com/MKhiriev/glow-up-client/internal/logger"
	"github.com/MKhiriev/glow-up-client/internal/utils"
	"github.com/go-resty/resty/v2"
)

const requestIDHeader = "X-Request-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	mu           sync.RWMutex
	credentials  CredentialSource
	unauthorized UnauthorizedHandler

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and bounds every request by
// adapterCfg.RequestTimeout.
//
// Returns an error wrapping [ErrInvalidAddress] if the address is empty or
// cannot be parsed as a URL with a host.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	h := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
	h.client.SetLogger(restyLogger{logger})
	h.client.OnBeforeRequest(h.beforeRequest)
	h.client.OnAfterResponse(h.afterResponse)

	return h, nil
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

// SetCredentialSource implements [ServerAdapter].
func (h *httpServerAdapter) SetCredentialSource(src CredentialSource) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.credentials = src
}

// OnUnauthorized implements [ServerAdapter].
func (h *httpServerAdapter) OnUnauthorized(handler UnauthorizedHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.unauthorized = handler
}

func (h *httpServerAdapter) token() string {
	h.mu.RLock()
	src := h.credentials
	h.mu.RUnlock()

	if src == nil {
		return ""
	}
	return strings.TrimSpace(src.Token())
}

// beforeRequest attaches the current bearer token and a request ID. It only
// reads memory.
func (h *httpServerAdapter) beforeRequest(_ *resty.Client, r *resty.Request) error {
	if token := h.token(); token != "" {
		r.SetAuthToken(token)
	}

	r.SetHeader(requestIDHeader, h.ids.Generate())

	return nil
}

// afterResponse runs the unauthorized handler for every 401 before the
// caller sees the error.
func (h *httpServerAdapter) afterResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("request_id", resp.Request.Header.Get(requestIDHeader)).
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("backend call")

	if resp.StatusCode() != http.StatusUnauthorized {
		return nil
	}

	h.mu.RLock()
	handler := h.unauthorized
	h.mu.RUnlock()

	if handler != nil {
		h.logger.Info().Str("url", resp.Request.URL).Msg("unauthorized response, ending session")
		handler(resp.Request.Context())
	}

	return nil
}

// send performs one request and decodes a 2xx JSON body into out (when out
// is non-nil). op names the call in wrapped errors.
func (h *httpServerAdapter) send(ctx context.Context, op, method, path string, body, out any) error {
	req := h.client.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s request: %w: %w", op, ErrNoResponse, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}

	return nil
}

// restyLogger routes resty's own diagnostics into the client log instead of
// stderr, which the TUI owns.
type restyLogger struct {
	l *logger.Logger
}

func (r restyLogger) Errorf(format string, v ...any) { r.l.Error().Msgf(format, v...) }
func (r restyLogger) Warnf(format string, v ...any)  { r.l.Warn().Msgf(format, v...) }
func (r restyLogger) Debugf(format string, v ...any) { r.l.Debug().Msgf(format, v...) }

func idPath(prefix string, id int64, suffix ...string) string {
	p := fmt.Sprintf("%s/%d", prefix, id)
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}
