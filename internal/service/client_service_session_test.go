// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/glow-up-client/internal/adapter"
	"github.com/MKhiriev/glow-up-client/internal/app"
	"github.com/MKhiriev/glow-up-client/internal/logger"
	"github.com/MKhiriev/glow-up-client/internal/mock"
	"github.com/MKhiriev/glow-up-client/internal/store"
	"github.com/MKhiriev/glow-up-client/internal/utils"
	"github.com/MKhiriev/glow-up-client/internal/validators"
	"github.com/MKhiriev/glow-up-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type countingNavigator struct {
	calls   atomic.Int32
	expired atomic.Int32
}

func (n *countingNavigator) NavigateToLogin(sessionExpired bool) {
	n.calls.Add(1)
	if sessionExpired {
		n.expired.Add(1)
	}
}

// newTestSession builds a sessionManager on mocks and returns the
// unauthorized handler it registered on the adapter.
func newTestSession(t *testing.T, ctrl *gomock.Controller) (
	*sessionManager,
	*mock.MockServerAdapter,
	*mock.MockTokenRepository,
	adapter.UnauthorizedHandler,
) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockTokens := mock.NewMockTokenRepository(ctrl)

	var handler adapter.UnauthorizedHandler
	mockAdapter.EXPECT().SetCredentialSource(gomock.Any())
	mockAdapter.EXPECT().OnUnauthorized(gomock.Any()).Do(func(h adapter.UnauthorizedHandler) {
		handler = h
	})

	m := NewSessionManager(mockTokens, mockAdapter, validators.NewFormValidator(), logger.Nop()).(*sessionManager)
	require.NotNil(t, handler)

	return m, mockAdapter, mockTokens, handler
}

func ana() models.User {
	return models.User{ID: 1, Name: "Ana", Email: "a@b.com"}
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestSessionManager_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, mockAdapter, mockTokens, _ := newTestSession(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, models.LoginRequest{Email: "a@b.com", Password: "secret1"}).
			Return(models.AuthResponse{AccessToken: "tok123", User: models.User{ID: 1, Name: "Ana"}}, nil),
		mockTokens.EXPECT().SaveToken(ctx, "tok123").Return(nil),
	)

	res := m.Login(ctx, "a@b.com", "secret1")
	require.True(t, res.Success())
	assert.Equal(t, models.User{ID: 1, Name: "Ana"}, res.Data)

	assert.Equal(t, "tok123", m.Token(), "the adapter's credential source carries the new token")
	assert.True(t, m.IsAuthenticated())
	assert.False(t, m.Session().Loading)
}

func TestSessionManager_Login_ServerMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, mockAdapter, _, _ := newTestSession(t, ctrl)

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, &adapter.ResponseError{StatusCode: 401, Message: "Credenciales inválidas"})

	res := m.Login(context.Background(), "a@b.com", "wrongpw")
	require.False(t, res.Success())
	assert.Equal(t, "Credenciales inválidas", res.Message())
	assert.True(t, res.Is(app.KindUnauthorized))
	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, m.Token())
}

func TestSessionManager_Login_Fallbacks(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind app.Kind
	}{
		{"response without body", &adapter.ResponseError{StatusCode: 500}, app.KindServer},
		{"no response", fmt.Errorf("login: %w: dial tcp", adapter.ErrNoResponse), app.KindConnectivity},
		{"local", errors.New("boom"), app.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m, mockAdapter, _, _ := newTestSession(t, ctrl)

			mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{}, tt.err)

			res := m.Login(context.Background(), "a@b.com", "secret1")
			require.False(t, res.Success())
			assert.Equal(t, app.MsgLoginFailed, res.Message())
			assert.True(t, res.Is(tt.wantKind))
		})
	}
}

func TestSessionManager_Login_ValidationSkipsNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _, _ := newTestSession(t, ctrl)

	res := m.Login(context.Background(), "", "secret1")
	require.False(t, res.Success())
	assert.True(t, res.Is(app.KindValidation))
	assert.Equal(t, app.MsgEmailRequired, res.Message())
}

func TestSessionManager_Login_StorageFailureLeavesSessionUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, mockAdapter, mockTokens, _ := newTestSession(t, ctrl)

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{AccessToken: "tok123", User: ana()}, nil)
	mockTokens.EXPECT().SaveToken(gomock.Any(), "tok123").Return(errors.New("disk full"))

	res := m.Login(context.Background(), "a@b.com", "secret1")
	require.False(t, res.Success())
	assert.Equal(t, app.MsgSessionStorageFailed, res.Message())
	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, m.Token())
}

// ── Register ────────────────────────────────────────────────────────────────

func TestSessionManager_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, mockAdapter, mockTokens, _ := newTestSession(t, ctrl)

	form := models.RegisterForm{Name: "Ana", Email: "a@b.com", Password: "secret1", PasswordConfirmation: "secret1"}

	mockAdapter.EXPECT().Register(gomock.Any(), models.RegisterRequest{Name: "Ana", Email: "a@b.com", Password: "secret1"}).
		Return(models.AuthResponse{AccessToken: "tok456", User: ana()}, nil)
	mockTokens.EXPECT().SaveToken(gomock.Any(), "tok456").Return(nil)

	res := m.Register(context.Background(), form)
	require.True(t, res.Success())
	assert.Equal(t, ana(), res.Data)
	assert.Equal(t, "tok456", m.Token())
}

func TestSessionManager_Register_Validation(t *testing.T) {
	tests := []struct {
		name string
		form models.RegisterForm
		want string
	}{
		{
			name: "mismatch",
			form: models.RegisterForm{Name: "Ana", Email: "a@b.com", Password: "secret1", PasswordConfirmation: "secret2"},
			want: app.MsgPasswordMismatch,
		},
		{
			name: "too short",
			form: models.RegisterForm{Name: "Ana", Email: "a@b.com", Password: "abc", PasswordConfirmation: "abc"},
			want: app.MsgPasswordTooShort,
		},
		{
			name: "no name",
			form: models.RegisterForm{Email: "a@b.com", Password: "secret1", PasswordConfirmation: "secret1"},
			want: app.MsgNameRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m, _, _, _ := newTestSession(t, ctrl)

			res := m.Register(context.Background(), tt.form)
			require.False(t, res.Success())
			assert.True(t, res.Is(app.KindValidation))
			assert.Equal(t, tt.want, res.Message())
		})
	}
}

func TestSessionManager_Register_FailureClassification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		want     string
		wantKind app.Kind
	}{
		{
			name:     "response with body",
			err:      &adapter.ResponseError{StatusCode: 409, Message: "El email ya está registrado"},
			want:     "El email ya está registrado",
			wantKind: app.KindServer,
		},
		{
			name:     "response without usable body",
			err:      &adapter.ResponseError{StatusCode: 502, Body: []byte("<html>")},
			want:     "Error 502",
			wantKind: app.KindServer,
		},
		{
			name:     "no response",
			err:      fmt.Errorf("register: %w", adapter.ErrNoResponse),
			want:     app.MsgNoConnection,
			wantKind: app.KindConnectivity,
		},
		{
			name:     "neither",
			err:      errors.New("encode body"),
			want:     app.MsgRegistrationFailed,
			wantKind: app.KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m, mockAdapter, _, _ := newTestSession(t, ctrl)

			mockAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.AuthResponse{}, tt.err)

			res := m.Register(context.Background(), models.RegisterForm{
				Name: "Ana", Email: "a@b.com", Password: "secret1", PasswordConfirmation: "secret1",
			})
			require.False(t, res.Success())
			assert.Equal(t, tt.want, res.Message())
			assert.True(t, res.Is(tt.wantKind))
			assert.False(t, m.IsAuthenticated())
		})
	}
}

// ── Logout ──────────────────────────────────────────────────────────────────

func TestSessionManager_Logout_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, mockTokens, _ := newTestSession(t, ctrl)
	m.authenticate("tok", ana())

	mockTokens.EXPECT().DeleteToken(gomock.Any()).Return(nil).Times(2)

	require.True(t, m.Logout(context.Background()).Success())
	require.True(t, m.Logout(context.Background()).Success())

	assert.Equal(t, models.Session{}, m.Session())
}

func TestSessionManager_Logout_StorageFailureStillClearsMemory(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, mockTokens, _ := newTestSession(t, ctrl)
	m.authenticate("tok", ana())

	mockTokens.EXPECT().DeleteToken(gomock.Any()).Return(errors.New("readonly"))

	res := m.Logout(context.Background())
	assert.False(t, res.Success())
	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, m.Token())
}

// ── Restore ─────────────────────────────────────────────────────────────────

func TestSessionManager_Restore_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, mockTokens, _ := newTestSession(t, ctrl)

	mockTokens.EXPECT().GetToken(gomock.Any()).Return("", store.ErrTokenNotFound)

	snap := m.Restore(context.Background())
	assert.False(t, snap.Loading)
	assert.False(t, snap.IsAuthenticated())
}

func TestSessionManager_Restore_StorageErrorIsNoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, mockTokens, _ := newTestSession(t, ctrl)

	mockTokens.EXPECT().GetToken(gomock.Any()).Return("", errors.New("corrupt"))

	snap := m.Restore(context.Background())
	assert.Equal(t, models.Session{}, snap)
}

func TestSessionManager_Restore_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, mockAdapter, mockTokens, _ := newTestSession(t, ctrl)

	mockTokens.EXPECT().GetToken(gomock.Any()).Return("stored", nil)
	mockAdapter.EXPECT().CurrentUser(gomock.Any()).DoAndReturn(func(context.Context) (models.User, error) {
		// the token is in place for the request, the user is not known yet
		assert.Equal(t, "stored", m.Token())
		assert.True(t, m.Session().Loading)
		return ana(), nil
	})

	snap := m.Restore(context.Background())
	assert.False(t, snap.Loading)
	assert.Equal(t, "stored", snap.Token)
	require.NotNil(t, snap.User)
	assert.Equal(t, "Ana", snap.User.Name)
}

func TestSessionManager_Restore_FailureLogsOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, mockAdapter, mockTokens, _ := newTestSession(t, ctrl)

	gomock.InOrder(
		mockTokens.EXPECT().GetToken(gomock.Any()).Return("stale", nil),
		mockAdapter.EXPECT().CurrentUser(gomock.Any()).Return(models.User{}, &adapter.ResponseError{StatusCode: 500}),
		mockTokens.EXPECT().DeleteToken(gomock.Any()).Return(nil),
	)

	snap := m.Restore(context.Background())
	assert.Equal(t, models.Session{}, snap)
}

// ── UpdateUser ──────────────────────────────────────────────────────────────

func TestSessionManager_UpdateUser_ShallowMerge(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _, _ := newTestSession(t, ctrl)

	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	original := models.User{ID: 1, Name: "Ana", Email: "a@b.com", Age: 30, Weight: 60, FitnessGoal: "strength", CreatedAt: created}
	m.authenticate("tok", original)

	merged, ok := m.UpdateUser(models.User{Weight: 58.5})
	require.True(t, ok)

	want := original
	want.Weight = 58.5
	assert.Equal(t, want, merged)

	stored, _ := m.User()
	assert.Equal(t, want, stored)
	assert.Equal(t, "tok", m.Token(), "the token is untouched")
}

func TestSessionManager_UpdateUser_NewerCreatedAtWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _, _ := newTestSession(t, ctrl)
	m.authenticate("tok", ana())

	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	merged, ok := m.UpdateUser(models.User{CreatedAt: created})
	require.True(t, ok)
	assert.True(t, merged.CreatedAt.Equal(created))
	assert.Equal(t, "Ana", merged.Name)
}

func TestSessionManager_UpdateUser_NoUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _, _ := newTestSession(t, ctrl)

	_, ok := m.UpdateUser(models.User{Name: "x"})
	assert.False(t, ok)
	assert.False(t, m.IsAuthenticated())
}

// ── ReplaceProfile ──────────────────────────────────────────────────────────

func TestSessionManager_ReplaceProfile_ClearsFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _, _ := newTestSession(t, ctrl)

	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	m.authenticate("tok", models.User{ID: 1, Name: "Ana", Email: "a@b.com", Age: 30, DietaryRestrictions: "vegano", CreatedAt: created})

	replaced, ok := m.ReplaceProfile(models.ProfileUpdate{Name: "Ana"})
	require.True(t, ok)

	want := models.User{ID: 1, Name: "Ana", Email: "a@b.com", CreatedAt: created}
	assert.Equal(t, want, replaced)

	stored, _ := m.User()
	assert.Equal(t, want, stored)
}

func TestSessionManager_ReplaceProfile_NoUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _, _ := newTestSession(t, ctrl)

	_, ok := m.ReplaceProfile(models.ProfileUpdate{Name: "x"})
	assert.False(t, ok)
	assert.False(t, m.IsAuthenticated())
}

// ── RefreshToken / claims ───────────────────────────────────────────────────

func TestSessionManager_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, mockAdapter, mockTokens, _ := newTestSession(t, ctrl)
	m.authenticate("old", ana())

	mockAdapter.EXPECT().RefreshToken(gomock.Any()).Return("new", nil)
	mockTokens.EXPECT().SaveToken(gomock.Any(), "new").Return(nil)

	require.True(t, m.RefreshToken(context.Background()).Success())
	assert.Equal(t, "new", m.Token())
	assert.True(t, m.IsAuthenticated())
}

func TestSessionManager_RefreshToken_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, mockAdapter, _, _ := newTestSession(t, ctrl)
	m.authenticate("old", ana())

	mockAdapter.EXPECT().RefreshToken(gomock.Any()).Return("", fmt.Errorf("%w", adapter.ErrNoResponse))

	res := m.RefreshToken(context.Background())
	assert.Equal(t, app.MsgRefreshTokenFailed, res.Message())
	assert.Equal(t, "old", m.Token())
}

func TestSessionManager_TokenClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _, _ := newTestSession(t, ctrl)

	_, ok := m.TokenClaims()
	assert.False(t, ok)

	token, err := utils.GenerateJWTToken("glowup", 1, time.Hour, "key")
	require.NoError(t, err)
	m.authenticate(token, ana())

	claims, ok := m.TokenClaims()
	require.True(t, ok)
	assert.Equal(t, "1", claims.Subject)
	assert.False(t, claims.Expired(time.Now()))

	m.authenticate("opaque", ana())
	_, ok = m.TokenClaims()
	assert.False(t, ok)
}

// ── 401 handling ────────────────────────────────────────────────────────────

func TestSessionManager_Unauthorized_LogsOutAndNavigates(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, mockTokens, handler := newTestSession(t, ctrl)
	m.authenticate("tok", ana())

	nav := &countingNavigator{}
	m.SetNavigator(nav)

	mockTokens.EXPECT().DeleteToken(gomock.Any()).Return(nil)

	handler(context.Background())

	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, m.Token())
	assert.Equal(t, int32(1), nav.calls.Load())
	assert.Equal(t, int32(1), nav.expired.Load())
}

func TestSessionManager_Unauthorized_WithoutSessionIsNotExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, mockTokens, handler := newTestSession(t, ctrl)

	nav := &countingNavigator{}
	m.SetNavigator(nav)

	mockTokens.EXPECT().DeleteToken(gomock.Any()).Return(nil)

	handler(context.Background())

	assert.Equal(t, int32(1), nav.calls.Load(), "any 401 still shows the login page")
	assert.Zero(t, nav.expired.Load())
}

func TestSessionManager_Unauthorized_WithoutNavigator(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, mockTokens, handler := newTestSession(t, ctrl)
	m.authenticate("tok", ana())

	mockTokens.EXPECT().DeleteToken(gomock.Any()).Return(nil)

	assert.NotPanics(t, func() { handler(context.Background()) })
	assert.False(t, m.IsAuthenticated())
}
