// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/glow-up-client/models"
)

// errEmptyToken is returned when a 2xx auth response carries no token.
var errEmptyToken = errors.New("response carries no access token")

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	if err := h.send(ctx, "login", http.MethodPost, "/auth/login", req, &out); err != nil {
		return models.AuthResponse{}, err
	}
	if out.AccessToken == "" {
		return models.AuthResponse{}, errEmptyToken
	}
	return out, nil
}

// Register implements [ServerAdapter].
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	if err := h.send(ctx, "register", http.MethodPost, "/auth/register", req, &out); err != nil {
		return models.AuthResponse{}, err
	}
	if out.AccessToken == "" {
		return models.AuthResponse{}, errEmptyToken
	}
	return out, nil
}

// CurrentUser implements [ServerAdapter].
func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	var out models.UserResponse
	if err := h.send(ctx, "current user", http.MethodGet, "/auth/me", nil, &out); err != nil {
		return models.User{}, err
	}
	return out.User, nil
}

// RefreshToken implements [ServerAdapter].
func (h *httpServerAdapter) RefreshToken(ctx context.Context) (string, error) {
	var out models.RefreshResponse
	if err := h.send(ctx, "refresh token", http.MethodPost, "/auth/refresh", nil, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", errEmptyToken
	}
	return out.AccessToken, nil
}

// ChangePassword implements [ServerAdapter].
func (h *httpServerAdapter) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	return h.send(ctx, "change password", http.MethodPost, "/auth/change-password", req, nil)
}
