// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"testing"

	"github.com/MKhiriev/glow-up-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionState_StartsLoading(t *testing.T) {
	s := newSessionState()

	snap := s.Session()
	assert.True(t, snap.Loading)
	assert.False(t, snap.IsAuthenticated())
	assert.Empty(t, s.Token())
}

func TestSessionState_SnapshotIsACopy(t *testing.T) {
	s := newSessionState()
	s.authenticate("tok", models.User{ID: 1, Name: "Ana"})

	snap := s.Session()
	snap.User.Name = "changed"

	user, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "Ana", user.Name)
}

func TestSessionState_LoadThenClear(t *testing.T) {
	s := newSessionState()

	s.load("tok")
	assert.Equal(t, "tok", s.Token())
	assert.True(t, s.Session().Loading)
	assert.False(t, s.IsAuthenticated(), "a loaded token alone does not authenticate")

	s.clear()
	snap := s.Session()
	assert.Equal(t, models.Session{}, snap)
}

func TestSessionState_UpdateUserWithoutUser(t *testing.T) {
	s := newSessionState()

	called := false
	_, ok, err := s.updateUser(func(*models.User) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, called)
}

func TestSessionState_ConcurrentAccess(t *testing.T) {
	s := newSessionState()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.authenticate("tok", models.User{ID: 1})
		}()
		go func() {
			defer wg.Done()
			_ = s.Session()
			_ = s.Token()
		}()
	}
	wg.Wait()

	assert.Equal(t, "tok", s.Token())
}
