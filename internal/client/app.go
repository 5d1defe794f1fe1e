// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/glow-up-client/internal/logger"
	"github.com/MKhiriev/glow-up-client/internal/service"
	"github.com/MKhiriev/glow-up-client/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) *App {
	return &App{services: services, ui: ui, logger: logger}
}

// Run restores the previous session and hands control to the UI. A restored
// session opens the dashboard, otherwise the user starts on the menu.
func (a *App) Run(ctx context.Context) error {
	session := a.services.Session.Restore(ctx)
	a.services.Session.SetNavigator(a.ui)

	startPage := tui.PageMenu
	if session.IsAuthenticated() {
		startPage = tui.PageDashboard
		a.logger.Info().Int64("user_id", session.User.ID).Msg("session restored")
	}

	// a cancelled ctx is a normal shutdown, the UI reports it as an error
	if err := a.ui.Run(ctx, startPage); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
