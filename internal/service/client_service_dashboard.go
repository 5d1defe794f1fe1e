// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/glow-up-client/internal/adapter"
	"github.com/MKhiriev/glow-up-client/internal/app"
	"github.com/MKhiriev/glow-up-client/models"
)

// dashboardRecentLimit is how many plans of each kind the dashboard lists.
const dashboardRecentLimit = 3

type clientDashboardService struct {
	adapter adapter.ServerAdapter
}

func NewClientDashboardService(serverAdapter adapter.ServerAdapter) DashboardService {
	return &clientDashboardService{adapter: serverAdapter}
}

// Load fetches the stats and both plan lists one after the other and stops at
// the first failure.
func (d *clientDashboardService) Load(ctx context.Context) app.Result[models.DashboardData] {
	stats, err := d.adapter.GetStats(ctx)
	if err != nil {
		return app.Fail[models.DashboardData](app.Describe(err, app.MsgLoadDashboardFailed))
	}

	workouts, err := d.adapter.ListWorkoutPlans(ctx)
	if err != nil {
		return app.Fail[models.DashboardData](app.Describe(err, app.MsgLoadDashboardFailed))
	}

	nutrition, err := d.adapter.ListNutritionPlans(ctx)
	if err != nil {
		return app.Fail[models.DashboardData](app.Describe(err, app.MsgLoadDashboardFailed))
	}

	return app.Ok(models.DashboardData{
		Stats:           stats,
		RecentWorkouts:  firstN(workouts, dashboardRecentLimit),
		RecentNutrition: firstN(nutrition, dashboardRecentLimit),
	})
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
