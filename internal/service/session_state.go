// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/MKhiriev/glow-up-client/models"
)

// sessionState is the in-memory session. Readers use the exported methods;
// only the session manager calls the unexported writers. The mutex makes it
// safe to read from the goroutines bubbletea runs commands on.
type sessionState struct {
	mu      sync.RWMutex
	token   string
	user    *models.User
	loading bool
}

func newSessionState() *sessionState {
	return &sessionState{loading: true}
}

// Token implements adapter.CredentialSource.
func (s *sessionState) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *sessionState) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *sessionState) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *sessionState) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := models.Session{Token: s.token, Loading: s.loading}
	if s.user != nil {
		u := *s.user
		snapshot.User = &u
	}
	return snapshot
}

func (s *sessionState) authenticate(token string, user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = &user
	s.loading = false
}

// load puts a persisted token in place before its user is known.
func (s *sessionState) load(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = nil
	s.loading = true
}

func (s *sessionState) setToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// updateUser applies merge to the held user. It reports false and leaves the
// state alone when no user is held.
func (s *sessionState) updateUser(merge func(*models.User) error) (models.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return models.User{}, false, nil
	}

	merged := *s.user
	if err := merge(&merged); err != nil {
		return *s.user, true, err
	}
	s.user = &merged
	return merged, true, nil
}

func (s *sessionState) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	s.loading = false
}
