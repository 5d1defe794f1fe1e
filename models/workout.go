// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Workout plan statuses reported by the backend.
const (
	WorkoutStatusInactive  = "inactive"
	WorkoutStatusActive    = "active"
	WorkoutStatusCompleted = "completed"
)

// WorkoutPlan is an AI-generated or user-created training plan.
type WorkoutPlan struct {
	ID            int64           `json:"id,omitempty"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Difficulty    string          `json:"difficulty,omitempty"`
	DurationWeeks int             `json:"duration_weeks,omitempty"`
	Status        string          `json:"status,omitempty"`
	Progress      int             `json:"progress,omitempty"`
	FitnessGoal   string          `json:"fitness_goal,omitempty"`
	ActivityLevel string          `json:"activity_level,omitempty"`
	Schedule      json.RawMessage `json:"schedule,omitempty"`
	CreatedAt     time.Time       `json:"created_at,omitzero"`
}

// WorkoutPlansResponse is the envelope returned by GET /workouts/.
type WorkoutPlansResponse struct {
	Plans []WorkoutPlan `json:"plans"`
}

// WorkoutPlanResponse is the envelope returned by single-plan endpoints.
type WorkoutPlanResponse struct {
	Plan WorkoutPlan `json:"plan"`
}

// WorkoutProgressRequest is the body of POST /workouts/:id/progress.
type WorkoutProgressRequest struct {
	Progress int `json:"progress"`
}
