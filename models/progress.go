// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Measurements holds body circumferences in centimetres.
type Measurements struct {
	Chest  float64 `json:"chest,omitempty"`
	Waist  float64 `json:"waist,omitempty"`
	Hips   float64 `json:"hips,omitempty"`
	Arms   float64 `json:"arms,omitempty"`
	Thighs float64 `json:"thighs,omitempty"`
}

// Empty reports whether no circumference was recorded.
func (m Measurements) Empty() bool {
	return m == Measurements{}
}

// ProgressEntry is a single body-measurement record as returned by the
// backend.
type ProgressEntry struct {
	ID           int64        `json:"id,omitempty"`
	Date         string       `json:"date"`
	Weight       float64      `json:"weight,omitempty"`
	BodyFat      float64      `json:"body_fat,omitempty"`
	MuscleMass   float64      `json:"muscle_mass,omitempty"`
	Measurements Measurements `json:"measurements"`
	Notes        string       `json:"notes,omitempty"`
	CreatedAt    time.Time    `json:"created_at,omitzero"`
}

// ProgressEntryRequest is the body of POST /progress/ and PUT /progress/:id.
// The backend expects the circumferences flattened next to the other values.
type ProgressEntryRequest struct {
	Date       string  `json:"date"`
	Weight     float64 `json:"weight,omitempty"`
	BodyFat    float64 `json:"body_fat,omitempty"`
	MuscleMass float64 `json:"muscle_mass,omitempty"`
	Chest      float64 `json:"chest,omitempty"`
	Waist      float64 `json:"waist,omitempty"`
	Hips       float64 `json:"hips,omitempty"`
	Arms       float64 `json:"arms,omitempty"`
	Thighs     float64 `json:"thighs,omitempty"`
	Notes      string  `json:"notes,omitempty"`
}

// HasMeasurement reports whether at least one numeric value is set.
func (r ProgressEntryRequest) HasMeasurement() bool {
	return r.Weight != 0 || r.BodyFat != 0 || r.MuscleMass != 0 ||
		r.Chest != 0 || r.Waist != 0 || r.Hips != 0 || r.Arms != 0 || r.Thighs != 0
}

// ProgressEntriesResponse is the envelope returned by GET /progress/.
type ProgressEntriesResponse struct {
	Entries []ProgressEntry `json:"entries"`
}

// ProgressEntryResponse is the envelope returned by single-entry endpoints.
type ProgressEntryResponse struct {
	Entry ProgressEntry `json:"entry"`
}

// ProgressStats summarises the recorded entries.
type ProgressStats struct {
	LatestWeight     float64 `json:"latest_weight,omitempty"`
	WeightChange     float64 `json:"weight_change,omitempty"`
	LatestBodyFat    float64 `json:"latest_body_fat,omitempty"`
	LatestMuscleMass float64 `json:"latest_muscle_mass,omitempty"`
	TotalEntries     int     `json:"total_entries"`
}

// ProgressStatsResponse is the envelope returned by GET /progress/stats.
type ProgressStatsResponse struct {
	Stats ProgressStats `json:"stats"`
}

// ProgressAnalytics is the opaque analytics document computed by the backend.
type ProgressAnalytics map[string]any

// ProgressAnalyticsResponse is the envelope returned by GET /progress/analytics.
type ProgressAnalyticsResponse struct {
	Analytics ProgressAnalytics `json:"analytics"`
}

// ProgressGoals is the opaque goals document computed by the backend.
type ProgressGoals map[string]any

// ProgressGoalsResponse is the envelope returned by GET /progress/goals.
type ProgressGoalsResponse struct {
	Goals ProgressGoals `json:"goals"`
}
