// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the Glow-Up pages in the terminal with bubbletea.
package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/glow-up-client/internal/app"
	"github.com/MKhiriev/glow-up-client/internal/logger"
	"github.com/MKhiriev/glow-up-client/internal/service"
	"github.com/MKhiriev/glow-up-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI owns the bubbletea program. It implements service.Navigator so that a
// session ended by the backend moves the user to the login page.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	mu      sync.Mutex
	program *tea.Program
	options []tea.ProgramOption
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger, options ...tea.ProgramOption) *TUI {
	if len(options) == 0 {
		options = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger, options: options}
}

// Pages builds every page of the application.
func (t *TUI) Pages(ctx context.Context) map[string]tea.Model {
	s := t.services
	return map[string]tea.Model{
		PageMenu:      NewMenuModel(),
		PageLogin:     NewLoginModel(ctx, s.Session),
		PageRegister:  NewRegisterModel(ctx, s.Session),
		PageDashboard: NewDashboardModel(ctx, s.Dashboard, s.Session),
		PageWorkouts:  NewWorkoutsModel(ctx, s.Workouts),
		PageNutrition: NewNutritionModel(ctx, s.Nutrition),
		PageProgress:  NewProgressModel(ctx, s.Progress),
		PageProfile:   NewProfileModel(ctx, s.Profile, s.Session),
		PageChat:      NewChatModel(ctx, s.AI),
	}
}

// Run blocks until the user quits. The first page is startPage, or login when
// startPage is protected and there is no session.
func (t *TUI) Run(ctx context.Context, startPage string) error {
	root := NewRootModel(t.Pages(ctx), startPage, t.services.Session, t.buildInfo)
	program := tea.NewProgram(root, append(t.options, tea.WithContext(ctx))...)

	t.mu.Lock()
	t.program = program
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	t.logger.Debug().Str("page", startPage).Msg("starting ui")
	_, err := program.Run()
	return err
}

// NavigateToLogin is safe to call from any goroutine. Without a running
// program it does nothing.
func (t *TUI) NavigateToLogin(sessionExpired bool) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	t.logger.Debug().Bool("session_expired", sessionExpired).Msg("401 from the server, showing login")
	// Send blocks until the event loop reads the message.
	go program.Send(loginRedirect(sessionExpired))
}

// loginRedirect carries the expiry notice only when a session was ended.
func loginRedirect(sessionExpired bool) NavigateTo {
	nav := NavigateTo{Page: PageLogin}
	if sessionExpired {
		nav.Payload = Notice{Text: app.MsgSessionExpired}
	}
	return nav
}
