// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/glow-up-client/internal/adapter"
	"github.com/MKhiriev/glow-up-client/internal/logger"
	"github.com/MKhiriev/glow-up-client/internal/store"
	"github.com/MKhiriev/glow-up-client/internal/validators"
)

type ClientServices struct {
	Session   SessionManager
	Profile   ProfileService
	Workouts  WorkoutService
	Nutrition NutritionService
	Progress  ProgressService
	AI        AIService
	Dashboard DashboardService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	validator := validators.NewFormValidator()
	session := NewSessionManager(storages.TokenRepository, serverAdapter, validator, logger)

	return &ClientServices{
		Session:   session,
		Profile:   NewClientProfileService(serverAdapter, session, validator, logger),
		Workouts:  NewClientWorkoutService(serverAdapter, validator),
		Nutrition: NewClientNutritionService(serverAdapter, validator),
		Progress:  NewClientProgressService(serverAdapter, validator),
		AI:        NewClientAIService(serverAdapter, validator),
		Dashboard: NewClientDashboardService(serverAdapter),
	}
}
