// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apitest runs an in-process fake of the Glow-Up backend for tests.
//
// The fake keeps accounts, plans and progress entries in memory, issues real
// HS256 bearer tokens and answers with the same JSON envelopes and error
// bodies ({"error": "..."}) as the production API. Tests can force a status
// on any route with [Server.Force] or drop the connection with
// [Server.Drop] to exercise the client's failure handling.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/glow-up-client/internal/logger"
	"github.com/MKhiriev/glow-up-client/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const (
	tokenIssuer          = "glowup-apitest"
	tokenSignKey         = "apitest-sign-key"
	tokenDuration        = time.Hour
	refreshTokenDuration = 2 * time.Hour
	requestIDHeader      = "X-Request-ID"
)

// RecordedRequest is what the fake saw of one incoming request.
type RecordedRequest struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
}

type forcedResponse struct {
	status int
	body   any
	drop   bool
}

type account struct {
	user         models.User
	passwordHash []byte
}

// Server is the fake backend. It is safe for concurrent use.
type Server struct {
	srv    *httptest.Server
	logger *logger.Logger

	mu        sync.Mutex
	accounts  map[int64]*account
	nextUser  int64
	workouts  *collection[models.WorkoutPlan]
	nutrition *collection[models.NutritionPlan]
	progress  *collection[models.ProgressEntry]
	forced    map[string]forcedResponse
	requests  []RecordedRequest
}

// Option customizes a [Server] before it starts.
type Option func(*Server)

// WithLogger replaces the default logger, which writes to the test log.
func WithLogger(l *logger.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// NewServer starts the fake and stops it when the test ends.
func NewServer(t testing.TB, opts ...Option) *Server {
	t.Helper()

	s := &Server{
		logger:    logger.NewLogger("apitest", zerolog.NewTestWriter(t)),
		accounts:  make(map[int64]*account),
		workouts:  newCollection[models.WorkoutPlan](),
		nutrition: newCollection[models.NutritionPlan](),
		progress:  newCollection[models.ProgressEntry](),
		forced:    make(map[string]forcedResponse),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.srv = httptest.NewServer(s.routes())
	t.Cleanup(s.srv.Close)

	return s
}

// BaseURL is the API root, including the /api prefix.
func (s *Server) BaseURL() string {
	return s.srv.URL + "/api"
}

// Close stops the fake. Requests made afterwards get no response.
func (s *Server) Close() {
	s.srv.Close()
}

func (s *Server) routes() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withLogging, s.record, s.forcedResponses)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/auth/login", s.login)
			r.Post("/auth/register", s.register)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.auth)

			r.Get("/auth/me", s.me)
			r.Post("/auth/refresh", s.refresh)
			r.Post("/auth/change-password", s.changePassword)

			r.Get("/user/profile", s.me)
			r.Put("/user/profile", s.updateProfile)
			r.Get("/user/stats", s.stats)
			r.Get("/user/subscription", s.subscription)
			r.Delete("/user/delete", s.deleteAccount)

			r.Route("/workouts", func(r chi.Router) {
				r.Get("/", s.listWorkouts)
				r.Post("/", s.createWorkout)
				r.Get("/{id}", s.getWorkout)
				r.Put("/{id}", s.updateWorkout)
				r.Delete("/{id}", s.deleteWorkout)
				r.Post("/{id}/start", s.startWorkout)
				r.Post("/{id}/complete", s.completeWorkout)
				r.Post("/{id}/progress", s.workoutProgress)
			})

			r.Route("/nutrition", func(r chi.Router) {
				r.Get("/", s.listNutrition)
				r.Post("/", s.createNutrition)
				r.Post("/calculate-calories", s.calculateCalories)
				r.Get("/{id}", s.getNutrition)
				r.Put("/{id}", s.updateNutrition)
				r.Delete("/{id}", s.deleteNutrition)
			})

			r.Route("/progress", func(r chi.Router) {
				r.Get("/", s.listProgress)
				r.Post("/", s.createProgress)
				r.Get("/stats", s.progressStats)
				r.Get("/analytics", s.progressAnalytics)
				r.Get("/goals", s.progressGoals)
				r.Put("/{id}", s.updateProgress)
				r.Delete("/{id}", s.deleteProgress)
			})

			r.Post("/ai/generate-workout", s.generateWorkout)
			r.Post("/ai/generate-nutrition", s.generateNutrition)
			r.Post("/ai/chat", s.chat)
		})
	})

	return router
}

// Force makes every request to method and path (relative to the API root,
// e.g. "/auth/me") answer with status and body until [Server.Reset]. A
// string body is sent as {"error": body}; nil sends no body.
func (s *Server) Force(method, path string, status int, body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forced[forcedKey(method, path)] = forcedResponse{status: status, body: body}
}

// Drop makes requests to method and path close the connection without an
// answer.
func (s *Server) Drop(method, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forced[forcedKey(method, path)] = forcedResponse{drop: true}
}

// Reset removes every forced response.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forced = make(map[string]forcedResponse)
}

// Requests returns the requests seen so far, oldest first.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// LastRequest returns the most recent request.
func (s *Server) LastRequest() (RecordedRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return RecordedRequest{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func forcedKey(method, path string) string {
	return strings.ToUpper(method) + " " + strings.TrimRight(path, "/")
}
