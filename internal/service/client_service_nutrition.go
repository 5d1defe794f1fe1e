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

type clientNutritionService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
}

func NewClientNutritionService(serverAdapter adapter.ServerAdapter, validator validators.Validator) NutritionService {
	return &clientNutritionService{adapter: serverAdapter, validator: validator}
}

func (n *clientNutritionService) List(ctx context.Context) app.Result[[]models.NutritionPlan] {
	return resultOf(n.adapter.ListNutritionPlans(ctx))(app.MsgLoadPlansFailed)
}

func (n *clientNutritionService) Get(ctx context.Context, id int64) app.Result[models.NutritionPlan] {
	return resultOf(n.adapter.GetNutritionPlan(ctx, id))(app.MsgLoadPlansFailed)
}

func (n *clientNutritionService) Create(ctx context.Context, plan models.NutritionPlan) app.Result[models.NutritionPlan] {
	if err := n.validator.Validate(ctx, plan); err != nil {
		return app.Fail[models.NutritionPlan](app.Validation(err))
	}
	return resultOf(n.adapter.CreateNutritionPlan(ctx, plan))(app.MsgCreatePlanFailed)
}

func (n *clientNutritionService) Update(ctx context.Context, id int64, plan models.NutritionPlan) app.Result[models.NutritionPlan] {
	if err := n.validator.Validate(ctx, plan); err != nil {
		return app.Fail[models.NutritionPlan](app.Validation(err))
	}
	return resultOf(n.adapter.UpdateNutritionPlan(ctx, id, plan))(app.MsgUpdatePlanFailed)
}

func (n *clientNutritionService) Delete(ctx context.Context, id int64) app.Result[app.Empty] {
	return emptyResultOf(n.adapter.DeleteNutritionPlan(ctx, id), app.MsgDeletePlanFailed)
}

// CalculateCalories sends the inputs to the backend, which owns the formula.
func (n *clientNutritionService) CalculateCalories(ctx context.Context, req models.CalorieRequest) app.Result[models.CalorieResult] {
	if err := n.validator.Validate(ctx, req); err != nil {
		return app.Fail[models.CalorieResult](app.Validation(err))
	}
	return resultOf(n.adapter.CalculateCalories(ctx, req))(app.MsgCaloriesFailed)
}

func (n *clientNutritionService) Generate(ctx context.Context, req models.NutritionGenerationRequest) app.Result[models.NutritionPlan] {
	if err := n.validator.Validate(ctx, req); err != nil {
		return app.Fail[models.NutritionPlan](app.Validation(err))
	}
	return resultOf(n.adapter.GenerateNutritionPlan(ctx, req))(app.MsgCreatePlanFailed)
}
