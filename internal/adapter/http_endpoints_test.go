// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/glow-up-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginReq() models.LoginRequest {
	return models.LoginRequest{Email: "a@b.com", Password: "secret1"}
}

func chatReq() models.ChatRequest {
	return models.ChatRequest{Message: "¿Cuántas proteínas necesito?"}
}

type recordedRequest struct {
	method string
	path   string
	body   map[string]any
}

// newRecordingServer answers every request with response and records what
// was sent.
func newRecordingServer(t *testing.T, status int, response string) (*httptest.Server, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		if len(data) > 0 {
			_ = json.Unmarshal(data, &rec.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

// ── auth ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, `{"access_token":"tok123","user":{"id":1,"name":"Ana"}}`)

	got, err := newTestAdapter(t, srv.URL).Login(context.Background(), loginReq())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/auth/login", rec.path)
	assert.Equal(t, map[string]any{"email": "a@b.com", "password": "secret1"}, rec.body)
	assert.Equal(t, "tok123", got.AccessToken)
	assert.Equal(t, models.User{ID: 1, Name: "Ana"}, got.User)
}

func TestLogin_EmptyTokenIsError(t *testing.T) {
	srv, _ := newRecordingServer(t, http.StatusOK, `{"user":{"id":1}}`)

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), loginReq())
	assert.ErrorIs(t, err, errEmptyToken)
}

func TestRegister_Conflict(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusConflict, `{"error":"El email ya está registrado"}`)

	_, err := newTestAdapter(t, srv.URL).Register(context.Background(),
		models.RegisterRequest{Name: "Ana", Email: "a@b.com", Password: "secret1"})

	assert.Equal(t, "/api/auth/register", rec.path)
	assert.Equal(t, "Ana", rec.body["name"])
	assert.NotContains(t, rec.body, "password_confirmation")

	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "El email ya está registrado", respErr.Message)
}

func TestRefreshToken(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, `{"access_token":"tok456"}`)

	got, err := newTestAdapter(t, srv.URL).RefreshToken(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/auth/refresh", rec.path)
	assert.Equal(t, "tok456", got)
}

func TestChangePassword(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, `{"message":"ok"}`)

	err := newTestAdapter(t, srv.URL).ChangePassword(context.Background(),
		models.ChangePasswordRequest{CurrentPassword: "old", NewPassword: "secret2"})
	require.NoError(t, err)

	assert.Equal(t, "/api/auth/change-password", rec.path)
	assert.Equal(t, map[string]any{"current_password": "old", "new_password": "secret2"}, rec.body)
}

// ── user ────────────────────────────────────────────────────────────────────

func TestUpdateProfile_SendsClearedFields(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, `{"user":{"id":1,"name":"Ana","age":31}}`)

	got, err := newTestAdapter(t, srv.URL).UpdateProfile(context.Background(), models.ProfileUpdate{Name: "Ana", Age: 31})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/api/user/profile", rec.path)
	assert.Equal(t, map[string]any{
		"name":                 "Ana",
		"age":                  float64(31),
		"gender":               "",
		"height":               float64(0),
		"weight":               float64(0),
		"fitness_goal":         "",
		"activity_level":       "",
		"dietary_restrictions": "",
	}, rec.body)
	assert.Equal(t, 31, got.Age)
	assert.Empty(t, got.DietaryRestrictions)
}

func TestUserEndpoints(t *testing.T) {
	t.Run("profile", func(t *testing.T) {
		srv, rec := newRecordingServer(t, http.StatusOK, `{"user":{"id":3,"email":"x@y.z"}}`)
		got, err := newTestAdapter(t, srv.URL).GetProfile(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/api/user/profile", rec.path)
		assert.Equal(t, "x@y.z", got.Email)
	})

	t.Run("stats", func(t *testing.T) {
		srv, rec := newRecordingServer(t, http.StatusOK, `{"stats":{"total_workout_plans":2,"subscription_type":"free"}}`)
		got, err := newTestAdapter(t, srv.URL).GetStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/api/user/stats", rec.path)
		assert.Equal(t, 2, got.TotalWorkoutPlans)
		assert.Equal(t, "free", got.SubscriptionType)
	})

	t.Run("subscription", func(t *testing.T) {
		srv, rec := newRecordingServer(t, http.StatusOK, `{"subscription":{"type":"premium","status":"active"}}`)
		got, err := newTestAdapter(t, srv.URL).GetSubscription(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/api/user/subscription", rec.path)
		assert.Equal(t, "premium", got.Type)
	})

	t.Run("delete", func(t *testing.T) {
		srv, rec := newRecordingServer(t, http.StatusOK, `{"message":"deleted"}`)
		require.NoError(t, newTestAdapter(t, srv.URL).DeleteAccount(context.Background()))
		assert.Equal(t, http.MethodDelete, rec.method)
		assert.Equal(t, "/api/user/delete", rec.path)
	})
}

// ── workouts ────────────────────────────────────────────────────────────────

func TestWorkoutEndpoints(t *testing.T) {
	const planJSON = `{"plan":{"id":7,"name":"Fuerza","status":"active","progress":40}}`

	tests := []struct {
		name       string
		call       func(a *httpServerAdapter) (models.WorkoutPlan, error)
		wantMethod string
		wantPath   string
	}{
		{"get", func(a *httpServerAdapter) (models.WorkoutPlan, error) {
			return a.GetWorkoutPlan(context.Background(), 7)
		}, http.MethodGet, "/api/workouts/7"},
		{"create", func(a *httpServerAdapter) (models.WorkoutPlan, error) {
			return a.CreateWorkoutPlan(context.Background(), models.WorkoutPlan{Name: "Fuerza"})
		}, http.MethodPost, "/api/workouts/"},
		{"update", func(a *httpServerAdapter) (models.WorkoutPlan, error) {
			return a.UpdateWorkoutPlan(context.Background(), 7, models.WorkoutPlan{Name: "Fuerza"})
		}, http.MethodPut, "/api/workouts/7"},
		{"start", func(a *httpServerAdapter) (models.WorkoutPlan, error) {
			return a.StartWorkoutPlan(context.Background(), 7)
		}, http.MethodPost, "/api/workouts/7/start"},
		{"complete", func(a *httpServerAdapter) (models.WorkoutPlan, error) {
			return a.CompleteWorkoutPlan(context.Background(), 7)
		}, http.MethodPost, "/api/workouts/7/complete"},
		{"progress", func(a *httpServerAdapter) (models.WorkoutPlan, error) {
			return a.UpdateWorkoutProgress(context.Background(), 7, 40)
		}, http.MethodPost, "/api/workouts/7/progress"},
		{"generate", func(a *httpServerAdapter) (models.WorkoutPlan, error) {
			return a.GenerateWorkoutPlan(context.Background(), models.WorkoutGenerationRequest{FitnessGoal: "strength", ActivityLevel: "beginner", DurationWeeks: 4})
		}, http.MethodPost, "/api/ai/generate-workout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, rec := newRecordingServer(t, http.StatusOK, planJSON)

			got, err := tt.call(newTestAdapter(t, srv.URL))
			require.NoError(t, err)

			assert.Equal(t, tt.wantMethod, rec.method)
			assert.Equal(t, tt.wantPath, rec.path)
			assert.Equal(t, int64(7), got.ID)
			assert.Equal(t, 40, got.Progress)
		})
	}
}

func TestUpdateWorkoutProgress_Body(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, `{"plan":{"id":7}}`)

	_, err := newTestAdapter(t, srv.URL).UpdateWorkoutProgress(context.Background(), 7, 55)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"progress": float64(55)}, rec.body)
}

func TestListWorkoutPlans(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, `{"plans":[{"id":1,"name":"A"},{"id":2,"name":"B"}]}`)

	plans, err := newTestAdapter(t, srv.URL).ListWorkoutPlans(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/api/workouts/", rec.path)
	require.Len(t, plans, 2)
	assert.Equal(t, "B", plans[1].Name)
}

// ── nutrition ───────────────────────────────────────────────────────────────

func TestNutritionEndpoints(t *testing.T) {
	const planJSON = `{"plan":{"id":5,"name":"Definición","daily_calories":1800}}`

	tests := []struct {
		name       string
		call       func(a *httpServerAdapter) (models.NutritionPlan, error)
		wantMethod string
		wantPath   string
	}{
		{"get", func(a *httpServerAdapter) (models.NutritionPlan, error) {
			return a.GetNutritionPlan(context.Background(), 5)
		}, http.MethodGet, "/api/nutrition/5"},
		{"create", func(a *httpServerAdapter) (models.NutritionPlan, error) {
			return a.CreateNutritionPlan(context.Background(), models.NutritionPlan{Name: "Definición"})
		}, http.MethodPost, "/api/nutrition/"},
		{"update", func(a *httpServerAdapter) (models.NutritionPlan, error) {
			return a.UpdateNutritionPlan(context.Background(), 5, models.NutritionPlan{Name: "Definición"})
		}, http.MethodPut, "/api/nutrition/5"},
		{"generate", func(a *httpServerAdapter) (models.NutritionPlan, error) {
			return a.GenerateNutritionPlan(context.Background(), models.NutritionGenerationRequest{Goal: "cutting", DailyCalories: 1800})
		}, http.MethodPost, "/api/ai/generate-nutrition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, rec := newRecordingServer(t, http.StatusOK, planJSON)

			got, err := tt.call(newTestAdapter(t, srv.URL))
			require.NoError(t, err)

			assert.Equal(t, tt.wantMethod, rec.method)
			assert.Equal(t, tt.wantPath, rec.path)
			assert.Equal(t, 1800, got.DailyCalories)
		})
	}
}

func TestCalculateCalories(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK,
		`{"bmr":1400.5,"daily_calories":2170.8,"macros":{"protein":120,"carbs":250,"fats":70}}`)

	got, err := newTestAdapter(t, srv.URL).CalculateCalories(context.Background(), models.CalorieRequest{
		Age: 30, Gender: "female", Height: 165, Weight: 60, ActivityLevel: "moderate",
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/nutrition/calculate-calories", rec.path)
	assert.Equal(t, "moderate", rec.body["activity_level"])
	assert.InDelta(t, 2170.8, got.DailyCalories, 0.001)
	assert.InDelta(t, 120, got.Macros.Protein, 0.001)
}

func TestDeleteNutritionPlan(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, `{}`)

	require.NoError(t, newTestAdapter(t, srv.URL).DeleteNutritionPlan(context.Background(), 9))
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/api/nutrition/9", rec.path)
}

// ── progress ────────────────────────────────────────────────────────────────

func TestProgressEntries(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		srv, rec := newRecordingServer(t, http.StatusOK,
			`{"entries":[{"id":1,"date":"2024-05-01","weight":70.5,"measurements":{"waist":80}}]}`)
		entries, err := newTestAdapter(t, srv.URL).ListProgressEntries(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/api/progress/", rec.path)
		require.Len(t, entries, 1)
		assert.InDelta(t, 80, entries[0].Measurements.Waist, 0.001)
	})

	t.Run("create sends flat measurements", func(t *testing.T) {
		srv, rec := newRecordingServer(t, http.StatusCreated, `{"entry":{"id":2,"date":"2024-05-02"}}`)
		got, err := newTestAdapter(t, srv.URL).CreateProgressEntry(context.Background(),
			models.ProgressEntryRequest{Date: "2024-05-02", Waist: 79})
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, rec.method)
		assert.Equal(t, map[string]any{"date": "2024-05-02", "waist": float64(79)}, rec.body)
		assert.Equal(t, int64(2), got.ID)
	})

	t.Run("update", func(t *testing.T) {
		srv, rec := newRecordingServer(t, http.StatusOK, `{"entry":{"id":2,"notes":"ok"}}`)
		got, err := newTestAdapter(t, srv.URL).UpdateProgressEntry(context.Background(), 2,
			models.ProgressEntryRequest{Date: "2024-05-02", Weight: 69, Notes: "ok"})
		require.NoError(t, err)
		assert.Equal(t, http.MethodPut, rec.method)
		assert.Equal(t, "/api/progress/2", rec.path)
		assert.Equal(t, "ok", got.Notes)
	})

	t.Run("delete", func(t *testing.T) {
		srv, rec := newRecordingServer(t, http.StatusOK, `{}`)
		require.NoError(t, newTestAdapter(t, srv.URL).DeleteProgressEntry(context.Background(), 2))
		assert.Equal(t, http.MethodDelete, rec.method)
		assert.Equal(t, "/api/progress/2", rec.path)
	})
}

func TestProgressReports(t *testing.T) {
	t.Run("stats", func(t *testing.T) {
		srv, rec := newRecordingServer(t, http.StatusOK, `{"stats":{"latest_weight":70,"weight_change":-2.5,"total_entries":4}}`)
		got, err := newTestAdapter(t, srv.URL).GetProgressStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/api/progress/stats", rec.path)
		assert.InDelta(t, -2.5, got.WeightChange, 0.001)
		assert.Equal(t, 4, got.TotalEntries)
	})

	t.Run("analytics", func(t *testing.T) {
		srv, rec := newRecordingServer(t, http.StatusOK, `{"analytics":{"trend":"down"}}`)
		got, err := newTestAdapter(t, srv.URL).GetProgressAnalytics(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/api/progress/analytics", rec.path)
		assert.Equal(t, "down", got["trend"])
	})

	t.Run("goals", func(t *testing.T) {
		srv, rec := newRecordingServer(t, http.StatusOK, `{"goals":{"target_weight":65}}`)
		got, err := newTestAdapter(t, srv.URL).GetProgressGoals(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/api/progress/goals", rec.path)
		assert.Equal(t, float64(65), got["target_weight"])
	})
}

// ── ai ──────────────────────────────────────────────────────────────────────

func TestChat(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, `{"response":"Unos 1.6 g por kg."}`)

	got, err := newTestAdapter(t, srv.URL).Chat(context.Background(), chatReq())
	require.NoError(t, err)

	assert.Equal(t, "/api/ai/chat", rec.path)
	assert.Equal(t, chatReq().Message, rec.body["message"])
	assert.Equal(t, "Unos 1.6 g por kg.", got)
}
