// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/glow-up-client/internal/logger"
	"github.com/MKhiriev/glow-up-client/internal/utils"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// withLogging writes one line per request tagged with the client's request
// id, so a failing test shows what the fake answered.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		l := s.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", r.Header.Get(requestIDHeader))
		})
		r = r.WithContext(l.WithContext(r.Context()))

		lw := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(lw, r)

		logger.FromContext(r.Context()).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.Status()).
			Dur("duration", time.Since(start)).
			Int("size", lw.BytesWritten()).
			Send()
	})
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get(requestIDHeader),
		})
		s.mu.Unlock()

		if id := r.Header.Get(requestIDHeader); id != "" {
			w.Header().Set(requestIDHeader, id)
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) forcedResponses(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/api")

		s.mu.Lock()
		forced, ok := s.forced[forcedKey(r.Method, path)]
		s.mu.Unlock()

		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		if forced.drop {
			hijacker, ok := w.(http.Hijacker)
			if !ok {
				http.Error(w, "hijacking not supported", http.StatusInternalServerError)
				return
			}
			conn, _, err := hijacker.Hijack()
			if err == nil {
				_ = conn.Close()
			}
			return
		}

		switch body := forced.body.(type) {
		case nil:
			w.WriteHeader(forced.status)
		case string:
			utils.WriteError(w, body, forced.status)
		default:
			_, _ = utils.WriteJSON(w, body, forced.status)
		}
	})
}

// auth rejects requests without a valid bearer token issued by this fake and
// stores the account id in the request context.
func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			utils.WriteError(w, "Token requerido", http.StatusUnauthorized)
			return
		}

		userID, err := utils.ValidateAndParseJWTToken(token, tokenSignKey, tokenIssuer)
		if err != nil {
			utils.WriteError(w, "Token inválido", http.StatusUnauthorized)
			return
		}

		s.mu.Lock()
		_, exists := s.accounts[userID]
		s.mu.Unlock()
		if !exists {
			utils.WriteError(w, "Usuario no encontrado", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), userID)))
	})
}

func currentUserID(r *http.Request) int64 {
	id, _ := utils.GetUserIDFromContext(r.Context())
	return id
}
