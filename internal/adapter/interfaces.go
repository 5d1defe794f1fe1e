// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the single point of outbound communication with the
// Glow-Up backend REST API.
//
// The primary abstraction is [ServerAdapter]. Its HTTP implementation
// ([NewHTTPServerAdapter]) attaches the bearer token of a [CredentialSource]
// to every request, and reports every 401 response to the registered
// [UnauthorizedHandler] before the error is returned to the caller.
//
// Non-2xx responses are returned as [*ResponseError], which unwraps to the
// status sentinels defined in errors.go (e.g. [ErrUnauthorized] for 401).
// Requests that never produced a response wrap [ErrNoResponse].
package adapter

import (
	"context"

	"github.com/MKhiriev/glow-up-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// CredentialSource provides the bearer token for outgoing requests. An empty
// token means the request is sent unauthenticated.
type CredentialSource interface {
	Token() string
}

// UnauthorizedHandler is invoked for every 401 response, whichever call
// produced it.
type UnauthorizedHandler func(ctx context.Context)

// ServerAdapter defines communication with the Glow-Up backend. Paths are
// relative to the configured base URL (which carries the /api prefix).
type ServerAdapter interface {
	// SetCredentialSource installs the source consulted before every request.
	SetCredentialSource(src CredentialSource)

	// OnUnauthorized installs the handler run on 401 responses.
	OnUnauthorized(handler UnauthorizedHandler)

	// Login sends POST /auth/login.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	// Register sends POST /auth/register.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	// CurrentUser sends GET /auth/me.
	CurrentUser(ctx context.Context) (models.User, error)
	// RefreshToken sends POST /auth/refresh and returns the new access token.
	RefreshToken(ctx context.Context) (string, error)
	// ChangePassword sends POST /auth/change-password.
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error

	// GetProfile sends GET /user/profile.
	GetProfile(ctx context.Context) (models.User, error)
	// UpdateProfile sends PUT /user/profile with every editable field and
	// returns the stored profile.
	UpdateProfile(ctx context.Context, profile models.ProfileUpdate) (models.User, error)
	// GetStats sends GET /user/stats.
	GetStats(ctx context.Context) (models.UserStats, error)
	// GetSubscription sends GET /user/subscription.
	GetSubscription(ctx context.Context) (models.Subscription, error)
	// DeleteAccount sends DELETE /user/delete.
	DeleteAccount(ctx context.Context) error

	ListWorkoutPlans(ctx context.Context) ([]models.WorkoutPlan, error)
	GetWorkoutPlan(ctx context.Context, id int64) (models.WorkoutPlan, error)
	CreateWorkoutPlan(ctx context.Context, plan models.WorkoutPlan) (models.WorkoutPlan, error)
	UpdateWorkoutPlan(ctx context.Context, id int64, plan models.WorkoutPlan) (models.WorkoutPlan, error)
	DeleteWorkoutPlan(ctx context.Context, id int64) error
	StartWorkoutPlan(ctx context.Context, id int64) (models.WorkoutPlan, error)
	CompleteWorkoutPlan(ctx context.Context, id int64) (models.WorkoutPlan, error)
	UpdateWorkoutProgress(ctx context.Context, id int64, progress int) (models.WorkoutPlan, error)

	ListNutritionPlans(ctx context.Context) ([]models.NutritionPlan, error)
	GetNutritionPlan(ctx context.Context, id int64) (models.NutritionPlan, error)
	CreateNutritionPlan(ctx context.Context, plan models.NutritionPlan) (models.NutritionPlan, error)
	UpdateNutritionPlan(ctx context.Context, id int64, plan models.NutritionPlan) (models.NutritionPlan, error)
	DeleteNutritionPlan(ctx context.Context, id int64) error
	// CalculateCalories sends POST /nutrition/calculate-calories. The
	// arithmetic happens on the backend.
	CalculateCalories(ctx context.Context, req models.CalorieRequest) (models.CalorieResult, error)

	ListProgressEntries(ctx context.Context) ([]models.ProgressEntry, error)
	CreateProgressEntry(ctx context.Context, req models.ProgressEntryRequest) (models.ProgressEntry, error)
	UpdateProgressEntry(ctx context.Context, id int64, req models.ProgressEntryRequest) (models.ProgressEntry, error)
	DeleteProgressEntry(ctx context.Context, id int64) error
	GetProgressStats(ctx context.Context) (models.ProgressStats, error)
	GetProgressAnalytics(ctx context.Context) (models.ProgressAnalytics, error)
	GetProgressGoals(ctx context.Context) (models.ProgressGoals, error)

	// GenerateWorkoutPlan sends POST /ai/generate-workout.
	GenerateWorkoutPlan(ctx context.Context, req models.WorkoutGenerationRequest) (models.WorkoutPlan, error)
	// GenerateNutritionPlan sends POST /ai/generate-nutrition.
	GenerateNutritionPlan(ctx context.Context, req models.NutritionGenerationRequest) (models.NutritionPlan, error)
	// Chat sends POST /ai/chat and returns the assistant's answer.
	Chat(ctx context.Context, req models.ChatRequest) (string, error)
}
