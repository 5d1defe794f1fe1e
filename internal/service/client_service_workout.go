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

type clientWorkoutService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
}

func NewClientWorkoutService(serverAdapter adapter.ServerAdapter, validator validators.Validator) WorkoutService {
	return &clientWorkoutService{adapter: serverAdapter, validator: validator}
}

func (w *clientWorkoutService) List(ctx context.Context) app.Result[[]models.WorkoutPlan] {
	return resultOf(w.adapter.ListWorkoutPlans(ctx))(app.MsgLoadPlansFailed)
}

func (w *clientWorkoutService) Get(ctx context.Context, id int64) app.Result[models.WorkoutPlan] {
	return resultOf(w.adapter.GetWorkoutPlan(ctx, id))(app.MsgLoadPlansFailed)
}

func (w *clientWorkoutService) Create(ctx context.Context, plan models.WorkoutPlan) app.Result[models.WorkoutPlan] {
	if err := w.validator.Validate(ctx, plan); err != nil {
		return app.Fail[models.WorkoutPlan](app.Validation(err))
	}
	return resultOf(w.adapter.CreateWorkoutPlan(ctx, plan))(app.MsgCreatePlanFailed)
}

func (w *clientWorkoutService) Update(ctx context.Context, id int64, plan models.WorkoutPlan) app.Result[models.WorkoutPlan] {
	if err := w.validator.Validate(ctx, plan); err != nil {
		return app.Fail[models.WorkoutPlan](app.Validation(err))
	}
	return resultOf(w.adapter.UpdateWorkoutPlan(ctx, id, plan))(app.MsgUpdatePlanFailed)
}

func (w *clientWorkoutService) Delete(ctx context.Context, id int64) app.Result[app.Empty] {
	return emptyResultOf(w.adapter.DeleteWorkoutPlan(ctx, id), app.MsgDeletePlanFailed)
}

func (w *clientWorkoutService) Start(ctx context.Context, id int64) app.Result[models.WorkoutPlan] {
	return resultOf(w.adapter.StartWorkoutPlan(ctx, id))(app.MsgUpdatePlanFailed)
}

func (w *clientWorkoutService) Complete(ctx context.Context, id int64) app.Result[models.WorkoutPlan] {
	return resultOf(w.adapter.CompleteWorkoutPlan(ctx, id))(app.MsgUpdatePlanFailed)
}

func (w *clientWorkoutService) UpdateProgress(ctx context.Context, id int64, progress int) app.Result[models.WorkoutPlan] {
	if err := w.validator.Validate(ctx, models.WorkoutProgressRequest{Progress: progress}); err != nil {
		return app.Fail[models.WorkoutPlan](app.Validation(err))
	}
	return resultOf(w.adapter.UpdateWorkoutProgress(ctx, id, progress))(app.MsgUpdatePlanFailed)
}

func (w *clientWorkoutService) Generate(ctx context.Context, req models.WorkoutGenerationRequest) app.Result[models.WorkoutPlan] {
	if err := w.validator.Validate(ctx, req); err != nil {
		return app.Fail[models.WorkoutPlan](app.Validation(err))
	}
	return resultOf(w.adapter.GenerateWorkoutPlan(ctx, req))(app.MsgCreatePlanFailed)
}
