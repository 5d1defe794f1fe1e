// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/glow-up-client/internal/app"
	"github.com/MKhiriev/glow-up-client/models"
)

// Page names understood by RootModel.
const (
	PageMenu      = "menu"
	PageLogin     = "login"
	PageRegister  = "register"
	PageDashboard = "dashboard"
	PageWorkouts  = "workouts"
	PageNutrition = "nutrition"
	PageProgress  = "progress"
	PageProfile   = "profile"
	PageChat      = "chat"
)

// NavigateTo switches the active page. When Payload is set it is delivered
// to the new page right after the switch.
type NavigateTo struct {
	Page    string
	Payload any
}

// Notice is a one-line status delivered to a page as a NavigateTo payload.
type Notice struct {
	Text string
}

// LoginResult is produced by the login page once the session manager answers.
type LoginResult struct {
	Result app.Result[models.User]
}

// RegisterResult is produced by the register page once the session manager
// answers.
type RegisterResult struct {
	Result app.Result[models.User]
}

// LoggedOut ends the authenticated part of the UI.
type LoggedOut struct {
	Notice string
}

type dashboardLoadedMsg struct {
	result app.Result[models.DashboardData]
}

type workoutsLoadedMsg struct {
	result app.Result[[]models.WorkoutPlan]
}

type workoutSavedMsg struct {
	result app.Result[models.WorkoutPlan]
	status string
}

type nutritionLoadedMsg struct {
	result app.Result[[]models.NutritionPlan]
}

type nutritionSavedMsg struct {
	result app.Result[models.NutritionPlan]
	status string
}

type caloriesMsg struct {
	result app.Result[models.CalorieResult]
}

type progressLoadedMsg struct {
	entries app.Result[[]models.ProgressEntry]
	stats   app.Result[models.ProgressStats]
}

type progressSavedMsg struct {
	result app.Result[models.ProgressEntry]
	status string
}

type progressInsightsMsg struct {
	analytics app.Result[models.ProgressAnalytics]
	goals     app.Result[models.ProgressGoals]
}

type profileLoadedMsg struct {
	profile      app.Result[models.User]
	stats        app.Result[models.UserStats]
	subscription app.Result[models.Subscription]
}

type profileSavedMsg struct {
	result app.Result[models.User]
}

type chatReplyMsg struct {
	question string
	result   app.Result[string]
}

// doneMsg reports an operation with no payload, such as a delete.
type doneMsg struct {
	result app.Result[app.Empty]
	status string
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
