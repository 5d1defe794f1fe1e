// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// WorkoutGenerationRequest is the body of POST /ai/generate-workout.
type WorkoutGenerationRequest struct {
	FitnessGoal   string `json:"fitness_goal"`
	ActivityLevel string `json:"activity_level"`
	DurationWeeks int    `json:"duration_weeks"`
}

// NutritionGenerationRequest is the body of POST /ai/generate-nutrition.
type NutritionGenerationRequest struct {
	Goal                string `json:"goal"`
	DietaryRestrictions string `json:"dietary_restrictions,omitempty"`
	DailyCalories       int    `json:"daily_calories"`
}

// ChatRequest is the body of POST /ai/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is returned by POST /ai/chat.
type ChatResponse struct {
	Response string `json:"response"`
}
