// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DashboardData is what the dashboard view renders after loading.
type DashboardData struct {
	Stats           UserStats
	RecentWorkouts  []WorkoutPlan
	RecentNutrition []NutritionPlan
}
