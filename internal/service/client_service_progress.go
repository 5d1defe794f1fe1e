// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/glow-up-client/internal/adapter"
	"github.com/MKhiriev/glow-up-client/internal/app"
	"github.com/MKhiriev/glow-up-client/internal/validators"
	"github.com/MKhiriev/glow-up-client/models"
)

type clientProgressService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
}

func NewClientProgressService(serverAdapter adapter.ServerAdapter, validator validators.Validator) ProgressService {
	return &clientProgressService{adapter: serverAdapter, validator: validator}
}

func (p *clientProgressService) List(ctx context.Context) app.Result[[]models.ProgressEntry] {
	return resultOf(p.adapter.ListProgressEntries(ctx))(app.MsgLoadProgressFailed)
}

func (p *clientProgressService) Create(ctx context.Context, req models.ProgressEntryRequest) app.Result[models.ProgressEntry] {
	if err := p.validator.Validate(ctx, req); err != nil {
		return app.Fail[models.ProgressEntry](app.Validation(err))
	}
	return resultOf(p.adapter.CreateProgressEntry(ctx, req))(app.MsgSaveProgressFailed)
}

func (p *clientProgressService) Update(ctx context.Context, id int64, req models.ProgressEntryRequest) app.Result[models.ProgressEntry] {
	if err := p.validator.Validate(ctx, req); err != nil {
		return app.Fail[models.ProgressEntry](app.Validation(err))
	}
	return resultOf(p.adapter.UpdateProgressEntry(ctx, id, req))(app.MsgSaveProgressFailed)
}

func (p *clientProgressService) Delete(ctx context.Context, id int64) app.Result[app.Empty] {
	return emptyResultOf(p.adapter.DeleteProgressEntry(ctx, id), app.MsgDeleteEntryFailed)
}

func (p *clientProgressService) Stats(ctx context.Context) app.Result[models.ProgressStats] {
	return resultOf(p.adapter.GetProgressStats(ctx))(app.MsgLoadProgressFailed)
}

func (p *clientProgressService) Analytics(ctx context.Context) app.Result[models.ProgressAnalytics] {
	return resultOf(p.adapter.GetProgressAnalytics(ctx))(app.MsgLoadProgressFailed)
}

func (p *clientProgressService) Goals(ctx context.Context) app.Result[models.ProgressGoals] {
	return resultOf(p.adapter.GetProgressGoals(ctx))(app.MsgLoadProgressFailed)
}
