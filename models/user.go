// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the profile of the account currently signed in to the client.
// Optional profile attributes are zero-valued when the backend has not
// received them yet and are omitted from outgoing JSON in that case.
type User struct {
	// ID is the backend-assigned identifier of the account.
	ID int64 `json:"id,omitempty"`

	// Name is the display name shown across the views.
	Name string `json:"name,omitempty"`

	// Email is the login identifier of the account.
	Email string `json:"email,omitempty"`

	// Age is the user's age in years.
	Age int `json:"age,omitempty"`

	// Gender is a free-form value, usually "male" or "female".
	Gender string `json:"gender,omitempty"`

	// Height is the user's height in centimetres.
	Height float64 `json:"height,omitempty"`

	// Weight is the user's weight in kilograms.
	Weight float64 `json:"weight,omitempty"`

	// FitnessGoal is one of weight_loss, muscle_gain, maintenance, strength,
	// endurance.
	FitnessGoal string `json:"fitness_goal,omitempty"`

	// ActivityLevel is one of sedentary, light, moderate, active, very_active.
	ActivityLevel string `json:"activity_level,omitempty"`

	// DietaryRestrictions is a free-form list of restrictions.
	DietaryRestrictions string `json:"dietary_restrictions,omitempty"`

	// CreatedAt is the account creation time reported by the backend.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// ProfileUpdate is the body of PUT /user/profile. Every editable field is
// always sent so an emptied field clears the stored value.
type ProfileUpdate struct {
	Name                string  `json:"name"`
	Age                 int     `json:"age"`
	Gender              string  `json:"gender"`
	Height              float64 `json:"height"`
	Weight              float64 `json:"weight"`
	FitnessGoal         string  `json:"fitness_goal"`
	ActivityLevel       string  `json:"activity_level"`
	DietaryRestrictions string  `json:"dietary_restrictions"`
}

// ProfileUpdate returns the editable part of u.
func (u User) ProfileUpdate() ProfileUpdate {
	return ProfileUpdate{
		Name:                u.Name,
		Age:                 u.Age,
		Gender:              u.Gender,
		Height:              u.Height,
		Weight:              u.Weight,
		FitnessGoal:         u.FitnessGoal,
		ActivityLevel:       u.ActivityLevel,
		DietaryRestrictions: u.DietaryRestrictions,
	}
}

// ApplyTo overwrites the editable fields of u, zero values included.
func (p ProfileUpdate) ApplyTo(u *User) {
	u.Name = p.Name
	u.Age = p.Age
	u.Gender = p.Gender
	u.Height = p.Height
	u.Weight = p.Weight
	u.FitnessGoal = p.FitnessGoal
	u.ActivityLevel = p.ActivityLevel
	u.DietaryRestrictions = p.DietaryRestrictions
}

// UserResponse is the envelope returned by GET /auth/me, GET /user/profile
// and PUT /user/profile.
type UserResponse struct {
	User User `json:"user"`
}

// UserStats is the aggregate shown on the dashboard.
type UserStats struct {
	TotalWorkoutPlans    int    `json:"total_workout_plans"`
	TotalNutritionPlans  int    `json:"total_nutrition_plans"`
	TotalProgressEntries int    `json:"total_progress_entries"`
	SubscriptionType     string `json:"subscription_type,omitempty"`
}

// UserStatsResponse is the envelope returned by GET /user/stats.
type UserStatsResponse struct {
	Stats UserStats `json:"stats"`
}

// Subscription describes the plan the account is billed on.
type Subscription struct {
	Type      string    `json:"type"`
	Status    string    `json:"status,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// SubscriptionResponse is the envelope returned by GET /user/subscription.
type SubscriptionResponse struct {
	Subscription Subscription `json:"subscription"`
}
