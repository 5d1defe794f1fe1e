// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/glow-up-client/models"
)

// GetProfile implements [ServerAdapter].
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.User, error) {
	var out models.UserResponse
	if err := h.send(ctx, "get profile", http.MethodGet, "/user/profile", nil, &out); err != nil {
		return models.User{}, err
	}
	return out.User, nil
}

// UpdateProfile implements [ServerAdapter].
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, profile models.ProfileUpdate) (models.User, error) {
	var out models.UserResponse
	if err := h.send(ctx, "update profile", http.MethodPut, "/user/profile", profile, &out); err != nil {
		return models.User{}, err
	}
	return out.User, nil
}

// GetStats implements [ServerAdapter].
func (h *httpServerAdapter) GetStats(ctx context.Context) (models.UserStats, error) {
	var out models.UserStatsResponse
	if err := h.send(ctx, "user stats", http.MethodGet, "/user/stats", nil, &out); err != nil {
		return models.UserStats{}, err
	}
	return out.Stats, nil
}

// GetSubscription implements [ServerAdapter].
func (h *httpServerAdapter) GetSubscription(ctx context.Context) (models.Subscription, error) {
	var out models.SubscriptionResponse
	if err := h.send(ctx, "subscription", http.MethodGet, "/user/subscription", nil, &out); err != nil {
		return models.Subscription{}, err
	}
	return out.Subscription, nil
}

// DeleteAccount implements [ServerAdapter].
func (h *httpServerAdapter) DeleteAccount(ctx context.Context) error {
	return h.send(ctx, "delete account", http.MethodDelete, "/user/delete", nil, nil)
}
