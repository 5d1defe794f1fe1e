// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/glow-up-client/internal/utils"
	"github.com/MKhiriev/glow-up-client/models"
)

// ChatReplyPrefix starts every answer of the fake assistant.
const ChatReplyPrefix = "Coach: "

func (s *Server) generateWorkout(w http.ResponseWriter, r *http.Request) {
	var req models.WorkoutGenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	schedule, _ := json.Marshal(map[string]any{
		"days": []string{"lunes", "miércoles", "viernes"},
	})
	plan := s.AddWorkoutPlan(currentUserID(r), models.WorkoutPlan{
		Name:          fmt.Sprintf("Plan IA: %s", req.FitnessGoal),
		Description:   fmt.Sprintf("Plan de %d semanas para nivel %s", req.DurationWeeks, req.ActivityLevel),
		Difficulty:    req.ActivityLevel,
		DurationWeeks: req.DurationWeeks,
		FitnessGoal:   req.FitnessGoal,
		ActivityLevel: req.ActivityLevel,
		Schedule:      schedule,
	})

	_, _ = utils.WriteJSON(w, models.WorkoutPlanResponse{Plan: plan}, http.StatusCreated)
}

func (s *Server) generateNutrition(w http.ResponseWriter, r *http.Request) {
	var req models.NutritionGenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	meals, _ := json.Marshal([]string{"desayuno", "almuerzo", "cena"})
	plan := s.AddNutritionPlan(currentUserID(r), models.NutritionPlan{
		Name:                fmt.Sprintf("Nutrición IA: %s", req.Goal),
		Goal:                req.Goal,
		DailyCalories:       req.DailyCalories,
		ProteinPercentage:   30,
		CarbsPercentage:     40,
		FatsPercentage:      30,
		DietaryRestrictions: req.DietaryRestrictions,
		Meals:               meals,
	})

	_, _ = utils.WriteJSON(w, models.NutritionPlanResponse{Plan: plan}, http.StatusCreated)
}

func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		utils.WriteError(w, MsgMissingFields, http.StatusBadRequest)
		return
	}

	_, _ = utils.WriteJSON(w, models.ChatResponse{Response: ChatReplyPrefix + req.Message}, http.StatusOK)
}
