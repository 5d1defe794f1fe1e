// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/glow-up-client/internal/utils"
	"github.com/MKhiriev/glow-up-client/models"
)

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[currentUserID(r)]
	if !ok {
		utils.WriteError(w, MsgNotFound, http.StatusNotFound)
		return
	}

	// keys missing from the body keep their stored value, empty ones clear it
	profile := acc.user.ProfileUpdate()
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		utils.WriteError(w, MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	profile.ApplyTo(&acc.user)

	_, _ = utils.WriteJSON(w, models.UserResponse{User: acc.user}, http.StatusOK)
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	id := currentUserID(r)

	s.mu.Lock()
	stats := models.UserStats{
		TotalWorkoutPlans:    s.workouts.count(id),
		TotalNutritionPlans:  s.nutrition.count(id),
		TotalProgressEntries: s.progress.count(id),
		SubscriptionType:     "free",
	}
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, models.UserStatsResponse{Stats: stats}, http.StatusOK)
}

func (s *Server) subscription(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, models.SubscriptionResponse{
		Subscription: models.Subscription{Type: "free", Status: "active"},
	}, http.StatusOK)
}

func (s *Server) deleteAccount(w http.ResponseWriter, r *http.Request) {
	id := currentUserID(r)

	s.mu.Lock()
	delete(s.accounts, id)
	s.workouts.dropOwner(id)
	s.nutrition.dropOwner(id)
	s.progress.dropOwner(id)
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Cuenta eliminada"}, http.StatusOK)
}
