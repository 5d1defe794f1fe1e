// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrNoResponse marks a request that was sent but never produced an HTTP
	// response (connection refused, DNS failure, timeout).
	ErrNoResponse = errors.New("no response from server")

	// ErrInvalidAddress is returned by NewHTTPServerAdapter for an unusable
	// base URL.
	ErrInvalidAddress = errors.New("invalid adapter http address")
)

// ResponseError is a non-2xx response from the backend.
type ResponseError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Message is the "error" (or else "message") field of a JSON body, or
	// empty when the body carried neither.
	Message string
	// Body is the raw response body.
	Body []byte
}

func (e *ResponseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap returns the sentinel matching StatusCode, so that
// errors.Is(err, ErrUnauthorized) holds for a 401.
func (e *ResponseError) Unwrap() error {
	return statusSentinel(e.StatusCode)
}

func statusSentinel(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnprocessableEntity:
		return ErrUnprocessable
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return nil
	}
}
