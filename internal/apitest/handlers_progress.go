// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/MKhiriev/glow-up-client/internal/utils"
	"github.com/MKhiriev/glow-up-client/models"
)

func entryFromRequest(id int64, req models.ProgressEntryRequest) models.ProgressEntry {
	return models.ProgressEntry{
		ID:         id,
		Date:       req.Date,
		Weight:     req.Weight,
		BodyFat:    req.BodyFat,
		MuscleMass: req.MuscleMass,
		Measurements: models.Measurements{
			Chest:  req.Chest,
			Waist:  req.Waist,
			Hips:   req.Hips,
			Arms:   req.Arms,
			Thighs: req.Thighs,
		},
		Notes:     req.Notes,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// entriesByDate returns the owner's entries, oldest date first.
func (s *Server) entriesByDate(owner int64) []models.ProgressEntry {
	entries := s.progress.list(owner)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	return entries
}

func (s *Server) listProgress(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	entries := s.progress.list(currentUserID(r))
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, models.ProgressEntriesResponse{Entries: entries}, http.StatusOK)
}

func (s *Server) createProgress(w http.ResponseWriter, r *http.Request) {
	var req models.ProgressEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	if req.Date == "" {
		utils.WriteError(w, MsgMissingFields, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	entry := s.progress.add(currentUserID(r), func(id int64) models.ProgressEntry {
		return entryFromRequest(id, req)
	})
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, models.ProgressEntryResponse{Entry: entry}, http.StatusCreated)
}

func (s *Server) updateProgress(w http.ResponseWriter, r *http.Request) {
	var req models.ProgressEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	id, ok := pathID(r)
	owner := currentUserID(r)

	s.mu.Lock()
	existing, found := s.progress.get(owner, id)
	entry := entryFromRequest(id, req)
	if ok && found {
		entry.CreatedAt = existing.CreatedAt
		s.progress.put(owner, id, entry)
	}
	s.mu.Unlock()

	if !ok || !found {
		utils.WriteError(w, MsgNotFound, http.StatusNotFound)
		return
	}
	_, _ = utils.WriteJSON(w, models.ProgressEntryResponse{Entry: entry}, http.StatusOK)
}

func (s *Server) deleteProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)

	s.mu.Lock()
	removed := ok && s.progress.remove(currentUserID(r), id)
	s.mu.Unlock()

	if !removed {
		utils.WriteError(w, MsgNotFound, http.StatusNotFound)
		return
	}
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Medición eliminada"}, http.StatusOK)
}

func (s *Server) progressStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	entries := s.entriesByDate(currentUserID(r))
	s.mu.Unlock()

	stats := models.ProgressStats{TotalEntries: len(entries)}
	var firstWeight float64
	for _, e := range entries {
		if e.Weight != 0 {
			if firstWeight == 0 {
				firstWeight = e.Weight
			}
			stats.LatestWeight = e.Weight
		}
		if e.BodyFat != 0 {
			stats.LatestBodyFat = e.BodyFat
		}
		if e.MuscleMass != 0 {
			stats.LatestMuscleMass = e.MuscleMass
		}
	}
	if firstWeight != 0 {
		stats.WeightChange = stats.LatestWeight - firstWeight
	}

	_, _ = utils.WriteJSON(w, models.ProgressStatsResponse{Stats: stats}, http.StatusOK)
}

func (s *Server) progressAnalytics(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	entries := s.entriesByDate(currentUserID(r))
	s.mu.Unlock()

	trend := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		if e.Weight != 0 {
			trend = append(trend, map[string]any{"date": e.Date, "weight": e.Weight})
		}
	}

	_, _ = utils.WriteJSON(w, models.ProgressAnalyticsResponse{Analytics: models.ProgressAnalytics{
		"total_entries": len(entries),
		"weight_trend":  trend,
	}}, http.StatusOK)
}

func (s *Server) progressGoals(w http.ResponseWriter, r *http.Request) {
	user, _ := s.User(currentUserID(r))

	_, _ = utils.WriteJSON(w, models.ProgressGoalsResponse{Goals: models.ProgressGoals{
		"fitness_goal":   user.FitnessGoal,
		"current_weight": user.Weight,
	}}, http.StatusOK)
}
