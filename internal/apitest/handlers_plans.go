// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/glow-up-client/internal/utils"
	"github.com/MKhiriev/glow-up-client/models"
	"github.com/go-chi/chi/v5"
)

// WorkoutPlans returns the plans stored for userID, newest first.
func (s *Server) WorkoutPlans(userID int64) []models.WorkoutPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workouts.list(userID)
}

// AddWorkoutPlan stores plan for userID and returns it with its id.
func (s *Server) AddWorkoutPlan(userID int64, plan models.WorkoutPlan) models.WorkoutPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workouts.add(userID, func(id int64) models.WorkoutPlan {
		return newWorkoutPlan(id, plan)
	})
}

// AddNutritionPlan stores plan for userID and returns it with its id.
func (s *Server) AddNutritionPlan(userID int64, plan models.NutritionPlan) models.NutritionPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nutrition.add(userID, func(id int64) models.NutritionPlan {
		return newNutritionPlan(id, plan)
	})
}

func newWorkoutPlan(id int64, plan models.WorkoutPlan) models.WorkoutPlan {
	plan.ID = id
	plan.Status = models.WorkoutStatusInactive
	plan.Progress = 0
	plan.CreatedAt = time.Now().UTC().Truncate(time.Second)
	return plan
}

func newNutritionPlan(id int64, plan models.NutritionPlan) models.NutritionPlan {
	plan.ID = id
	plan.CreatedAt = time.Now().UTC().Truncate(time.Second)
	return plan
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func (s *Server) listWorkouts(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.WorkoutPlansResponse{Plans: s.WorkoutPlans(currentUserID(r))}, http.StatusOK)
}

func (s *Server) createWorkout(w http.ResponseWriter, r *http.Request) {
	var plan models.WorkoutPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		utils.WriteError(w, MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(plan.Name) == "" {
		utils.WriteError(w, MsgMissingFields, http.StatusBadRequest)
		return
	}

	created := s.AddWorkoutPlan(currentUserID(r), plan)
	_, _ = utils.WriteJSON(w, models.WorkoutPlanResponse{Plan: created}, http.StatusCreated)
}

func (s *Server) getWorkout(w http.ResponseWriter, r *http.Request) {
	s.withWorkout(w, r, func(plan *models.WorkoutPlan) bool { return false })
}

func (s *Server) updateWorkout(w http.ResponseWriter, r *http.Request) {
	var patch models.WorkoutPlan
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.WriteError(w, MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	s.withWorkout(w, r, func(plan *models.WorkoutPlan) bool {
		patch.ID, patch.CreatedAt = plan.ID, plan.CreatedAt
		if patch.Status == "" {
			patch.Status = plan.Status
		}
		*plan = patch
		return true
	})
}

func (s *Server) deleteWorkout(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)

	s.mu.Lock()
	removed := ok && s.workouts.remove(currentUserID(r), id)
	s.mu.Unlock()

	if !removed {
		utils.WriteError(w, MsgNotFound, http.StatusNotFound)
		return
	}
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Plan eliminado"}, http.StatusOK)
}

func (s *Server) startWorkout(w http.ResponseWriter, r *http.Request) {
	s.withWorkout(w, r, func(plan *models.WorkoutPlan) bool {
		plan.Status = models.WorkoutStatusActive
		return true
	})
}

func (s *Server) completeWorkout(w http.ResponseWriter, r *http.Request) {
	s.withWorkout(w, r, func(plan *models.WorkoutPlan) bool {
		plan.Status = models.WorkoutStatusCompleted
		plan.Progress = 100
		return true
	})
}

func (s *Server) workoutProgress(w http.ResponseWriter, r *http.Request) {
	var req models.WorkoutProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	s.withWorkout(w, r, func(plan *models.WorkoutPlan) bool {
		plan.Progress = req.Progress
		return true
	})
}

// withWorkout loads the plan named by the path, lets change modify it and
// answers with the result. change reports whether to store the plan.
func (s *Server) withWorkout(w http.ResponseWriter, r *http.Request, change func(*models.WorkoutPlan) bool) {
	id, ok := pathID(r)
	owner := currentUserID(r)

	s.mu.Lock()
	plan, found := s.workouts.get(owner, id)
	if ok && found && change(&plan) {
		s.workouts.put(owner, id, plan)
	}
	s.mu.Unlock()

	if !ok || !found {
		utils.WriteError(w, MsgNotFound, http.StatusNotFound)
		return
	}
	_, _ = utils.WriteJSON(w, models.WorkoutPlanResponse{Plan: plan}, http.StatusOK)
}

func (s *Server) listNutrition(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	plans := s.nutrition.list(currentUserID(r))
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, models.NutritionPlansResponse{Plans: plans}, http.StatusOK)
}

func (s *Server) createNutrition(w http.ResponseWriter, r *http.Request) {
	var plan models.NutritionPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		utils.WriteError(w, MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(plan.Name) == "" {
		utils.WriteError(w, MsgMissingFields, http.StatusBadRequest)
		return
	}

	created := s.AddNutritionPlan(currentUserID(r), plan)
	_, _ = utils.WriteJSON(w, models.NutritionPlanResponse{Plan: created}, http.StatusCreated)
}

func (s *Server) getNutrition(w http.ResponseWriter, r *http.Request) {
	s.withNutrition(w, r, func(*models.NutritionPlan) bool { return false })
}

func (s *Server) updateNutrition(w http.ResponseWriter, r *http.Request) {
	var patch models.NutritionPlan
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.WriteError(w, MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	s.withNutrition(w, r, func(plan *models.NutritionPlan) bool {
		patch.ID, patch.CreatedAt = plan.ID, plan.CreatedAt
		*plan = patch
		return true
	})
}

func (s *Server) deleteNutrition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)

	s.mu.Lock()
	removed := ok && s.nutrition.remove(currentUserID(r), id)
	s.mu.Unlock()

	if !removed {
		utils.WriteError(w, MsgNotFound, http.StatusNotFound)
		return
	}
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Plan eliminado"}, http.StatusOK)
}

func (s *Server) withNutrition(w http.ResponseWriter, r *http.Request, change func(*models.NutritionPlan) bool) {
	id, ok := pathID(r)
	owner := currentUserID(r)

	s.mu.Lock()
	plan, found := s.nutrition.get(owner, id)
	if ok && found && change(&plan) {
		s.nutrition.put(owner, id, plan)
	}
	s.mu.Unlock()

	if !ok || !found {
		utils.WriteError(w, MsgNotFound, http.StatusNotFound)
		return
	}
	_, _ = utils.WriteJSON(w, models.NutritionPlanResponse{Plan: plan}, http.StatusOK)
}

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// calculateCalories uses the Mifflin-St Jeor equation with a 30/40/30 macro
// split.
func (s *Server) calculateCalories(w http.ResponseWriter, r *http.Request) {
	var req models.CalorieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	multiplier, ok := activityMultipliers[req.ActivityLevel]
	if !ok || req.Age <= 0 || req.Height <= 0 || req.Weight <= 0 {
		utils.WriteError(w, MsgMissingFields, http.StatusBadRequest)
		return
	}

	bmr := 10*req.Weight + 6.25*req.Height - 5*float64(req.Age)
	if req.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	daily := math.Round(bmr * multiplier)

	_, _ = utils.WriteJSON(w, models.CalorieResult{
		BMR:           math.Round(bmr),
		DailyCalories: daily,
		Macros: models.Macros{
			Protein: math.Round(daily * 0.30 / 4),
			Carbs:   math.Round(daily * 0.40 / 4),
			Fats:    math.Round(daily * 0.30 / 9),
		},
	}, http.StatusOK)
}
