// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/glow-up-client/internal/adapter"
	"github.com/MKhiriev/glow-up-client/internal/app"
	"github.com/MKhiriev/glow-up-client/internal/logger"
	"github.com/MKhiriev/glow-up-client/internal/validators"
	"github.com/MKhiriev/glow-up-client/models"
)

type clientProfileService struct {
	adapter   adapter.ServerAdapter
	session   SessionManager
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientProfileService(serverAdapter adapter.ServerAdapter, session SessionManager, validator validators.Validator, logger *logger.Logger) ProfileService {
	return &clientProfileService{adapter: serverAdapter, session: session, validator: validator, logger: logger}
}

func (p *clientProfileService) Profile(ctx context.Context) app.Result[models.User] {
	user, err := p.adapter.GetProfile(ctx)
	if err != nil {
		return app.Fail[models.User](app.Describe(err, app.MsgLoadProfileFailed))
	}

	if merged, ok := p.session.UpdateUser(user); ok {
		return app.Ok(merged)
	}
	return app.Ok(user)
}

func (p *clientProfileService) UpdateProfile(ctx context.Context, profile models.ProfileUpdate) app.Result[models.User] {
	if err := p.validator.Validate(ctx, profile); err != nil {
		return app.Fail[models.User](app.Validation(err))
	}

	updated, err := p.adapter.UpdateProfile(ctx, profile)
	if err != nil {
		return app.Fail[models.User](app.Describe(err, app.MsgProfileUpdateFailed))
	}

	// the backend's answer wins, cleared fields included
	replaced, ok := p.session.ReplaceProfile(updated.ProfileUpdate())
	if !ok {
		// the session ended while the request was in flight
		return app.Ok(updated)
	}
	return app.Ok(replaced)
}

func (p *clientProfileService) ChangePassword(ctx context.Context, form models.ChangePasswordForm) app.Result[app.Empty] {
	if err := p.validator.Validate(ctx, form); err != nil {
		appErr := app.Validation(err)
		if errors.Is(err, validators.ErrPasswordTooShort) {
			appErr.Message = app.MsgNewPasswordTooShort
		}
		return app.Fail[app.Empty](appErr)
	}

	if err := p.adapter.ChangePassword(ctx, form.Request()); err != nil {
		return app.Fail[app.Empty](app.Describe(err, app.MsgPasswordChangeFailed))
	}

	return app.Ok(app.Empty{})
}

func (p *clientProfileService) Stats(ctx context.Context) app.Result[models.UserStats] {
	stats, err := p.adapter.GetStats(ctx)
	if err != nil {
		return app.Fail[models.UserStats](app.Describe(err, app.MsgLoadProfileFailed))
	}
	return app.Ok(stats)
}

func (p *clientProfileService) Subscription(ctx context.Context) app.Result[models.Subscription] {
	sub, err := p.adapter.GetSubscription(ctx)
	if err != nil {
		return app.Fail[models.Subscription](app.Describe(err, app.MsgLoadProfileFailed))
	}
	return app.Ok(sub)
}

func (p *clientProfileService) DeleteAccount(ctx context.Context) app.Result[app.Empty] {
	if err := p.adapter.DeleteAccount(ctx); err != nil {
		return app.Fail[app.Empty](app.Describe(err, app.MsgAccountDeleteFailed))
	}

	p.logger.Info().Msg("account deleted")
	return p.session.Logout(ctx)
}
