// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/glow-up-client/models"
)

const nutritionPath = "/nutrition"

// ListNutritionPlans implements [ServerAdapter].
func (h *httpServerAdapter) ListNutritionPlans(ctx context.Context) ([]models.NutritionPlan, error) {
	var out models.NutritionPlansResponse
	if err := h.send(ctx, "list nutrition plans", http.MethodGet, nutritionPath+"/", nil, &out); err != nil {
		return nil, err
	}
	return out.Plans, nil
}

// GetNutritionPlan implements [ServerAdapter].
func (h *httpServerAdapter) GetNutritionPlan(ctx context.Context, id int64) (models.NutritionPlan, error) {
	return h.nutritionPlan(ctx, "get nutrition plan", http.MethodGet, idPath(nutritionPath, id), nil)
}

// CreateNutritionPlan implements [ServerAdapter].
func (h *httpServerAdapter) CreateNutritionPlan(ctx context.Context, plan models.NutritionPlan) (models.NutritionPlan, error) {
	return h.nutritionPlan(ctx, "create nutrition plan", http.MethodPost, nutritionPath+"/", plan)
}

// UpdateNutritionPlan implements [ServerAdapter].
func (h *httpServerAdapter) UpdateNutritionPlan(ctx context.Context, id int64, plan models.NutritionPlan) (models.NutritionPlan, error) {
	return h.nutritionPlan(ctx, "update nutrition plan", http.MethodPut, idPath(nutritionPath, id), plan)
}

// DeleteNutritionPlan implements [ServerAdapter].
func (h *httpServerAdapter) DeleteNutritionPlan(ctx context.Context, id int64) error {
	return h.send(ctx, "delete nutrition plan", http.MethodDelete, idPath(nutritionPath, id), nil, nil)
}

// CalculateCalories implements [ServerAdapter].
func (h *httpServerAdapter) CalculateCalories(ctx context.Context, req models.CalorieRequest) (models.CalorieResult, error) {
	var out models.CalorieResult
	if err := h.send(ctx, "calculate calories", http.MethodPost, nutritionPath+"/calculate-calories", req, &out); err != nil {
		return models.CalorieResult{}, err
	}
	return out, nil
}

func (h *httpServerAdapter) nutritionPlan(ctx context.Context, op, method, path string, body any) (models.NutritionPlan, error) {
	var out models.NutritionPlanResponse
	if err := h.send(ctx, op, method, path, body, &out); err != nil {
		return models.NutritionPlan{}, err
	}
	return out.Plan, nil
}
