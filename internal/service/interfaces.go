// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client's operations on top of the
// [adapter.ServerAdapter].
//
// The [SessionManager] owns the authenticated identity: it is the only writer
// of the in-memory session, of the persisted token and therefore of the
// credential the adapter attaches to outgoing requests. Every other component
// reads the session through a [SessionReader].
//
// Domain services (profile, workouts, nutrition, progress, AI, dashboard) are
// thin wrappers that validate input, call the adapter and classify failures.
// No operation returns a bare error; each returns an [app.Result].
package service

import (
	"context"

	"github.com/MKhiriev/glow-up-client/internal/app"
	"github.com/MKhiriev/glow-up-client/models"
)

// Navigator moves the views to the login page. The TUI implements it.
// sessionExpired is false when nobody was signed in, e.g. a rejected login.
type Navigator interface {
	NavigateToLogin(sessionExpired bool)
}

// SessionReader gives read-only access to the current session.
type SessionReader interface {
	// Token returns the bearer token held in memory, or "".
	Token() string

	// User returns a copy of the signed-in user.
	User() (models.User, bool)

	// IsAuthenticated reports whether a user is held in memory.
	IsAuthenticated() bool

	// Session returns a snapshot of the whole session.
	Session() models.Session
}

// SessionManager owns the authentication lifecycle.
type SessionManager interface {
	SessionReader

	// Restore runs the startup identity check. When a token is persisted it
	// is loaded and GET /auth/me is tried once; any failure ends in Logout.
	// The returned snapshot is settled (Loading is false).
	Restore(ctx context.Context) models.Session

	// Login authenticates with email and password. On failure the session
	// is left unchanged.
	Login(ctx context.Context, email, password string) app.Result[models.User]

	// Register validates the form locally, creates the account and signs in
	// with the returned token.
	Register(ctx context.Context, form models.RegisterForm) app.Result[models.User]

	// Logout clears the in-memory session and the persisted token. It is
	// safe to call when already logged out.
	Logout(ctx context.Context) app.Result[app.Empty]

	// UpdateUser merges the non-zero fields of partial into the signed-in
	// user and returns the result. Reports false when nobody is signed in.
	UpdateUser(partial models.User) (models.User, bool)

	// ReplaceProfile overwrites the editable fields of the signed-in user,
	// empty values included. Reports false when nobody is signed in.
	ReplaceProfile(profile models.ProfileUpdate) (models.User, bool)

	// RefreshToken exchanges the current token for a new one.
	RefreshToken(ctx context.Context) app.Result[app.Empty]

	// TokenClaims returns the unverified claims of the held token.
	TokenClaims() (models.TokenClaims, bool)

	// SetNavigator installs the navigator used after a 401.
	SetNavigator(n Navigator)
}

// ProfileService manages the signed-in account.
type ProfileService interface {
	Profile(ctx context.Context) app.Result[models.User]
	// UpdateProfile stores the edited profile and replaces the session's
	// editable fields with the backend's answer.
	UpdateProfile(ctx context.Context, profile models.ProfileUpdate) app.Result[models.User]
	ChangePassword(ctx context.Context, form models.ChangePasswordForm) app.Result[app.Empty]
	Stats(ctx context.Context) app.Result[models.UserStats]
	Subscription(ctx context.Context) app.Result[models.Subscription]
	// DeleteAccount removes the account and logs out.
	DeleteAccount(ctx context.Context) app.Result[app.Empty]
}

// WorkoutService manages workout plans.
type WorkoutService interface {
	List(ctx context.Context) app.Result[[]models.WorkoutPlan]
	Get(ctx context.Context, id int64) app.Result[models.WorkoutPlan]
	Create(ctx context.Context, plan models.WorkoutPlan) app.Result[models.WorkoutPlan]
	Update(ctx context.Context, id int64, plan models.WorkoutPlan) app.Result[models.WorkoutPlan]
	Delete(ctx context.Context, id int64) app.Result[app.Empty]
	Start(ctx context.Context, id int64) app.Result[models.WorkoutPlan]
	Complete(ctx context.Context, id int64) app.Result[models.WorkoutPlan]
	UpdateProgress(ctx context.Context, id int64, progress int) app.Result[models.WorkoutPlan]
	// Generate asks the AI backend for a new plan.
	Generate(ctx context.Context, req models.WorkoutGenerationRequest) app.Result[models.WorkoutPlan]
}

// NutritionService manages nutrition plans.
type NutritionService interface {
	List(ctx context.Context) app.Result[[]models.NutritionPlan]
	Get(ctx context.Context, id int64) app.Result[models.NutritionPlan]
	Create(ctx context.Context, plan models.NutritionPlan) app.Result[models.NutritionPlan]
	Update(ctx context.Context, id int64, plan models.NutritionPlan) app.Result[models.NutritionPlan]
	Delete(ctx context.Context, id int64) app.Result[app.Empty]
	CalculateCalories(ctx context.Context, req models.CalorieRequest) app.Result[models.CalorieResult]
	// Generate asks the AI backend for a new plan.
	Generate(ctx context.Context, req models.NutritionGenerationRequest) app.Result[models.NutritionPlan]
}

// ProgressService manages body-measurement entries.
type ProgressService interface {
	List(ctx context.Context) app.Result[[]models.ProgressEntry]
	Create(ctx context.Context, req models.ProgressEntryRequest) app.Result[models.ProgressEntry]
	Update(ctx context.Context, id int64, req models.ProgressEntryRequest) app.Result[models.ProgressEntry]
	Delete(ctx context.Context, id int64) app.Result[app.Empty]
	Stats(ctx context.Context) app.Result[models.ProgressStats]
	Analytics(ctx context.Context) app.Result[models.ProgressAnalytics]
	Goals(ctx context.Context) app.Result[models.ProgressGoals]
}

// AIService talks to the fitness assistant.
type AIService interface {
	Chat(ctx context.Context, message string) app.Result[string]
}

// DashboardService assembles the dashboard page.
type DashboardService interface {
	Load(ctx context.Context) app.Result[models.DashboardData]
}
