// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/glow-up-client/models"
)

// GenerateWorkoutPlan implements [ServerAdapter]. The backend stores the
// generated plan and returns it.
func (h *httpServerAdapter) GenerateWorkoutPlan(ctx context.Context, req models.WorkoutGenerationRequest) (models.WorkoutPlan, error) {
	return h.workoutPlan(ctx, "generate workout plan", http.MethodPost, "/ai/generate-workout", req)
}

// GenerateNutritionPlan implements [ServerAdapter].
func (h *httpServerAdapter) GenerateNutritionPlan(ctx context.Context, req models.NutritionGenerationRequest) (models.NutritionPlan, error) {
	return h.nutritionPlan(ctx, "generate nutrition plan", http.MethodPost, "/ai/generate-nutrition", req)
}

// Chat implements [ServerAdapter].
func (h *httpServerAdapter) Chat(ctx context.Context, req models.ChatRequest) (string, error) {
	var out models.ChatResponse
	if err := h.send(ctx, "chat", http.MethodPost, "/ai/chat", req, &out); err != nil {
		return "", err
	}
	return out.Response, nil
}
