// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/glow-up-client/internal/adapter"
	"github.com/MKhiriev/glow-up-client/internal/app"
	"github.com/MKhiriev/glow-up-client/internal/validators"
	"github.com/MKhiriev/glow-up-client/models"
)

type clientAIService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
}

func NewClientAIService(serverAdapter adapter.ServerAdapter, validator validators.Validator) AIService {
	return &clientAIService{adapter: serverAdapter, validator: validator}
}

func (a *clientAIService) Chat(ctx context.Context, message string) app.Result[string] {
	req := models.ChatRequest{Message: strings.TrimSpace(message)}
	if err := a.validator.Validate(ctx, req); err != nil {
		return app.Fail[string](app.Validation(err))
	}
	return resultOf(a.adapter.Chat(ctx, req))(app.MsgChatFailed)
}
