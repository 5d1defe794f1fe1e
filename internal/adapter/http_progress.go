// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/glow-up-client/models"
)

const progressPath = "/progress"

// ListProgressEntries implements [ServerAdapter].
func (h *httpServerAdapter) ListProgressEntries(ctx context.Context) ([]models.ProgressEntry, error) {
	var out models.ProgressEntriesResponse
	if err := h.send(ctx, "list progress entries", http.MethodGet, progressPath+"/", nil, &out); err != nil {
		return nil, err
	}
	return out.Entries, nil
}

// CreateProgressEntry implements [ServerAdapter].
func (h *httpServerAdapter) CreateProgressEntry(ctx context.Context, req models.ProgressEntryRequest) (models.ProgressEntry, error) {
	var out models.ProgressEntryResponse
	if err := h.send(ctx, "create progress entry", http.MethodPost, progressPath+"/", req, &out); err != nil {
		return models.ProgressEntry{}, err
	}
	return out.Entry, nil
}

// UpdateProgressEntry implements [ServerAdapter].
func (h *httpServerAdapter) UpdateProgressEntry(ctx context.Context, id int64, req models.ProgressEntryRequest) (models.ProgressEntry, error) {
	var out models.ProgressEntryResponse
	if err := h.send(ctx, "update progress entry", http.MethodPut, idPath(progressPath, id), req, &out); err != nil {
		return models.ProgressEntry{}, err
	}
	return out.Entry, nil
}

// DeleteProgressEntry implements [ServerAdapter].
func (h *httpServerAdapter) DeleteProgressEntry(ctx context.Context, id int64) error {
	return h.send(ctx, "delete progress entry", http.MethodDelete, idPath(progressPath, id), nil, nil)
}

// GetProgressStats implements [ServerAdapter].
func (h *httpServerAdapter) GetProgressStats(ctx context.Context) (models.ProgressStats, error) {
	var out models.ProgressStatsResponse
	if err := h.send(ctx, "progress stats", http.MethodGet, progressPath+"/stats", nil, &out); err != nil {
		return models.ProgressStats{}, err
	}
	return out.Stats, nil
}

// GetProgressAnalytics implements [ServerAdapter].
func (h *httpServerAdapter) GetProgressAnalytics(ctx context.Context) (models.ProgressAnalytics, error) {
	var out models.ProgressAnalyticsResponse
	if err := h.send(ctx, "progress analytics", http.MethodGet, progressPath+"/analytics", nil, &out); err != nil {
		return nil, err
	}
	return out.Analytics, nil
}

// GetProgressGoals implements [ServerAdapter].
func (h *httpServerAdapter) GetProgressGoals(ctx context.Context) (models.ProgressGoals, error) {
	var out models.ProgressGoalsResponse
	if err := h.send(ctx, "progress goals", http.MethodGet, progressPath+"/goals", nil, &out); err != nil {
		return nil, err
	}
	return out.Goals, nil
}
