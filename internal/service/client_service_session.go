// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"time"

	"dario.cat/mergo"
	"github.com/MKhiriev/glow-up-client/internal/adapter"
	"github.com/MKhiriev/glow-up-client/internal/app"
	"github.com/MKhiriev/glow-up-client/internal/logger"
	"github.com/MKhiriev/glow-up-client/internal/store"
	"github.com/MKhiriev/glow-up-client/internal/utils"
	"github.com/MKhiriev/glow-up-client/internal/validators"
	"github.com/MKhiriev/glow-up-client/models"
)

type sessionManager struct {
	*sessionState

	tokens    store.TokenRepository
	adapter   adapter.ServerAdapter
	validator validators.Validator

	navMu     sync.RWMutex
	navigator Navigator

	logger *logger.Logger
}

// NewSessionManager wires a session manager to its storage and adapter. The
// adapter is pointed at the manager's state for credentials and reports its
// 401 responses to the manager.
func NewSessionManager(
	tokens store.TokenRepository,
	serverAdapter adapter.ServerAdapter,
	validator validators.Validator,
	logger *logger.Logger,
) SessionManager {
	m := &sessionManager{
		sessionState: newSessionState(),
		tokens:       tokens,
		adapter:      serverAdapter,
		validator:    validator,
		logger:       logger,
	}

	serverAdapter.SetCredentialSource(m.sessionState)
	serverAdapter.OnUnauthorized(m.handleUnauthorized)

	return m
}

func (m *sessionManager) Restore(ctx context.Context) models.Session {
	token, err := m.tokens.GetToken(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrTokenNotFound) {
			m.logger.Err(err).Str("func", "sessionManager.Restore").Msg("error reading persisted token")
		}
		m.clear()
		return m.Session()
	}

	m.load(token)
	m.logger.Debug().Msg("persisted token found, fetching current user")

	user, err := m.adapter.CurrentUser(ctx)
	if err != nil {
		m.logger.Info().Err(err).Msg("stored session rejected, logging out")
		m.Logout(ctx)
		return m.Session()
	}

	m.authenticate(token, user)
	m.logger.Debug().Int64("user_id", user.ID).Msg("session restored")

	return m.Session()
}

func (m *sessionManager) Login(ctx context.Context, email, password string) app.Result[models.User] {
	req := models.LoginRequest{Email: email, Password: password}
	if err := m.validator.Validate(ctx, req); err != nil {
		return app.Fail[models.User](app.Validation(err))
	}

	resp, err := m.adapter.Login(ctx, req)
	if err != nil {
		return app.Fail[models.User](app.Describe(err, app.MsgLoginFailed))
	}

	if appErr := m.establish(ctx, resp); appErr != nil {
		return app.Fail[models.User](appErr)
	}

	m.logger.Debug().Int64("user_id", resp.User.ID).Msg("logged in")
	return app.Ok(resp.User)
}

func (m *sessionManager) Register(ctx context.Context, form models.RegisterForm) app.Result[models.User] {
	if err := m.validator.Validate(ctx, form); err != nil {
		return app.Fail[models.User](app.Validation(err))
	}

	resp, err := m.adapter.Register(ctx, form.Request())
	if err != nil {
		return app.Fail[models.User](app.DescribeDetailed(err, app.MsgRegistrationFailed))
	}

	if appErr := m.establish(ctx, resp); appErr != nil {
		return app.Fail[models.User](appErr)
	}

	m.logger.Debug().Int64("user_id", resp.User.ID).Msg("registered")
	return app.Ok(resp.User)
}

// establish persists the token first and only then changes memory, so a
// storage failure leaves the session as it was.
func (m *sessionManager) establish(ctx context.Context, resp models.AuthResponse) *app.Error {
	if err := m.tokens.SaveToken(ctx, resp.AccessToken); err != nil {
		m.logger.Err(err).Str("func", "sessionManager.establish").Msg("error persisting token")
		return app.Unknown(err, app.MsgSessionStorageFailed)
	}

	m.authenticate(resp.AccessToken, resp.User)
	return nil
}

func (m *sessionManager) Logout(ctx context.Context) app.Result[app.Empty] {
	m.clear()

	if err := m.tokens.DeleteToken(ctx); err != nil {
		m.logger.Err(err).Str("func", "sessionManager.Logout").Msg("error deleting persisted token")
		return app.Fail[app.Empty](app.Unknown(err, app.MsgSessionStorageFailed))
	}

	m.logger.Debug().Msg("logged out")
	return app.Ok(app.Empty{})
}

func (m *sessionManager) UpdateUser(partial models.User) (models.User, bool) {
	merged, ok, err := m.updateUser(func(dst *models.User) error {
		return mergo.Merge(dst, partial, mergo.WithOverride, mergo.WithTransformers(timeTransformer{}))
	})
	if err != nil {
		m.logger.Err(err).Str("func", "sessionManager.UpdateUser").Msg("error merging profile")
	}
	return merged, ok
}

func (m *sessionManager) ReplaceProfile(profile models.ProfileUpdate) (models.User, bool) {
	replaced, ok, _ := m.updateUser(func(dst *models.User) error {
		profile.ApplyTo(dst)
		return nil
	})
	return replaced, ok
}

func (m *sessionManager) RefreshToken(ctx context.Context) app.Result[app.Empty] {
	token, err := m.adapter.RefreshToken(ctx)
	if err != nil {
		return app.Fail[app.Empty](app.Describe(err, app.MsgRefreshTokenFailed))
	}

	if err = m.tokens.SaveToken(ctx, token); err != nil {
		m.logger.Err(err).Str("func", "sessionManager.RefreshToken").Msg("error persisting token")
		return app.Fail[app.Empty](app.Unknown(err, app.MsgSessionStorageFailed))
	}
	m.setToken(token)

	return app.Ok(app.Empty{})
}

func (m *sessionManager) TokenClaims() (models.TokenClaims, bool) {
	token := m.Token()
	if token == "" {
		return models.TokenClaims{}, false
	}

	claims, err := utils.PeekTokenClaims(token)
	if err != nil {
		return models.TokenClaims{}, false
	}
	return claims, true
}

func (m *sessionManager) SetNavigator(n Navigator) {
	m.navMu.Lock()
	defer m.navMu.Unlock()
	m.navigator = n
}

// handleUnauthorized runs for every 401, before the failing call returns.
func (m *sessionManager) handleUnauthorized(ctx context.Context) {
	// a token held before the 401 means a session ended, not a failed login
	expired := m.Token() != ""
	m.logger.Info().Bool("session_expired", expired).Msg("401 received, ending session")
	m.Logout(ctx)

	m.navMu.RLock()
	n := m.navigator
	m.navMu.RUnlock()

	if n != nil {
		n.NavigateToLogin(expired)
	}
}

// timeTransformer keeps a zero time.Time in the source from overwriting a
// set one; mergo treats structs without exported fields as non-empty.
type timeTransformer struct{}

func (timeTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != reflect.TypeOf(time.Time{}) {
		return nil
	}
	return func(dst, src reflect.Value) error {
		if dst.CanSet() && !src.Interface().(time.Time).IsZero() {
			dst.Set(src)
		}
		return nil
	}
}
