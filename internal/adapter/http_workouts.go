// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/glow-up-client/models"
)

const workoutsPath = "/workouts"

// ListWorkoutPlans implements [ServerAdapter].
func (h *httpServerAdapter) ListWorkoutPlans(ctx context.Context) ([]models.WorkoutPlan, error) {
	var out models.WorkoutPlansResponse
	if err := h.send(ctx, "list workout plans", http.MethodGet, workoutsPath+"/", nil, &out); err != nil {
		return nil, err
	}
	return out.Plans, nil
}

// GetWorkoutPlan implements [ServerAdapter].
func (h *httpServerAdapter) GetWorkoutPlan(ctx context.Context, id int64) (models.WorkoutPlan, error) {
	return h.workoutPlan(ctx, "get workout plan", http.MethodGet, idPath(workoutsPath, id), nil)
}

// CreateWorkoutPlan implements [ServerAdapter].
func (h *httpServerAdapter) CreateWorkoutPlan(ctx context.Context, plan models.WorkoutPlan) (models.WorkoutPlan, error) {
	return h.workoutPlan(ctx, "create workout plan", http.MethodPost, workoutsPath+"/", plan)
}

// UpdateWorkoutPlan implements [ServerAdapter].
func (h *httpServerAdapter) UpdateWorkoutPlan(ctx context.Context, id int64, plan models.WorkoutPlan) (models.WorkoutPlan, error) {
	return h.workoutPlan(ctx, "update workout plan", http.MethodPut, idPath(workoutsPath, id), plan)
}

// DeleteWorkoutPlan implements [ServerAdapter].
func (h *httpServerAdapter) DeleteWorkoutPlan(ctx context.Context, id int64) error {
	return h.send(ctx, "delete workout plan", http.MethodDelete, idPath(workoutsPath, id), nil, nil)
}

// StartWorkoutPlan implements [ServerAdapter].
func (h *httpServerAdapter) StartWorkoutPlan(ctx context.Context, id int64) (models.WorkoutPlan, error) {
	return h.workoutPlan(ctx, "start workout plan", http.MethodPost, idPath(workoutsPath, id, "start"), nil)
}

// CompleteWorkoutPlan implements [ServerAdapter].
func (h *httpServerAdapter) CompleteWorkoutPlan(ctx context.Context, id int64) (models.WorkoutPlan, error) {
	return h.workoutPlan(ctx, "complete workout plan", http.MethodPost, idPath(workoutsPath, id, "complete"), nil)
}

// UpdateWorkoutProgress implements [ServerAdapter].
func (h *httpServerAdapter) UpdateWorkoutProgress(ctx context.Context, id int64, progress int) (models.WorkoutPlan, error) {
	return h.workoutPlan(ctx, "update workout progress", http.MethodPost, idPath(workoutsPath, id, "progress"),
		models.WorkoutProgressRequest{Progress: progress})
}

func (h *httpServerAdapter) workoutPlan(ctx context.Context, op, method, path string, body any) (models.WorkoutPlan, error) {
	var out models.WorkoutPlanResponse
	if err := h.send(ctx, op, method, path, body, &out); err != nil {
		return models.WorkoutPlan{}, err
	}
	return out.Plan, nil
}
