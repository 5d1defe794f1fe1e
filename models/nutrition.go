// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// NutritionPlan is an AI-generated or user-created diet plan.
type NutritionPlan struct {
	ID                  int64           `json:"id,omitempty"`
	Name                string          `json:"name"`
	Description         string          `json:"description,omitempty"`
	Goal                string          `json:"goal,omitempty"`
	DailyCalories       int             `json:"daily_calories,omitempty"`
	ProteinPercentage   float64         `json:"protein_percentage,omitempty"`
	CarbsPercentage     float64         `json:"carbs_percentage,omitempty"`
	FatsPercentage      float64         `json:"fats_percentage,omitempty"`
	DietaryRestrictions string          `json:"dietary_restrictions,omitempty"`
	Meals               json.RawMessage `json:"meals,omitempty"`
	CreatedAt           time.Time       `json:"created_at,omitzero"`
}

// NutritionPlansResponse is the envelope returned by GET /nutrition/.
type NutritionPlansResponse struct {
	Plans []NutritionPlan `json:"plans"`
}

// NutritionPlanResponse is the envelope returned by single-plan endpoints.
type NutritionPlanResponse struct {
	Plan NutritionPlan `json:"plan"`
}

// CalorieRequest is the body of POST /nutrition/calculate-calories.
type CalorieRequest struct {
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
	ActivityLevel string  `json:"activity_level"`
}

// Macros holds daily macronutrient targets in grams.
type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
}

// CalorieResult is returned by POST /nutrition/calculate-calories.
type CalorieResult struct {
	BMR           float64 `json:"bmr"`
	DailyCalories float64 `json:"daily_calories"`
	Macros        Macros  `json:"macros"`
}
