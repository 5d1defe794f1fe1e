// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/glow-up-client/internal/app"
	"github.com/MKhiriev/glow-up-client/internal/logger"
	"github.com/MKhiriev/glow-up-client/internal/service"
	"github.com/MKhiriev/glow-up-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ service.Navigator = (*TUI)(nil)

func newHeadlessTUI(session *fakeSession) *TUI {
	services := &service.ClientServices{
		Session:   session,
		Workouts:  &fakeWorkouts{},
		AI:        &fakeAI{},
		Dashboard: &fakeDashboard{},
	}
	return New(services, models.NewAppBuildInfo("", "", ""), logger.Nop(),
		tea.WithInput(&bytes.Buffer{}), tea.WithOutput(&bytes.Buffer{}), tea.WithoutRenderer())
}

func TestTUI_NavigateToLoginWithoutProgram(t *testing.T) {
	ui := newHeadlessTUI(&fakeSession{})
	assert.NotPanics(t, func() { ui.NavigateToLogin(true) })
}

func TestTUI_PagesCoverEveryRoute(t *testing.T) {
	ui := newHeadlessTUI(&fakeSession{})
	pages := ui.Pages(context.Background())

	for _, page := range []string{PageMenu, PageLogin, PageRegister, PageDashboard, PageWorkouts, PageNutrition, PageProgress, PageProfile, PageChat} {
		assert.Contains(t, pages, page)
	}
}

func TestTUI_RunStopsWithContext(t *testing.T) {
	ui := newHeadlessTUI(&fakeSession{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- ui.Run(ctx, PageMenu) }()

	require.Eventually(t, func() bool {
		ui.mu.Lock()
		defer ui.mu.Unlock()
		return ui.program != nil
	}, time.Second, 10*time.Millisecond)

	ui.NavigateToLogin(true)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ui did not stop")
	}

	ui.mu.Lock()
	defer ui.mu.Unlock()
	assert.Nil(t, ui.program)
}

func TestLoginRedirect(t *testing.T) {
	expired := loginRedirect(true)
	assert.Equal(t, PageLogin, expired.Page)
	assert.Equal(t, Notice{Text: app.MsgSessionExpired}, expired.Payload)

	rejected := loginRedirect(false)
	assert.Equal(t, PageLogin, rejected.Page)
	assert.Nil(t, rejected.Payload, "a rejected login shows only its own error")
}

func TestRootModel_RejectedLoginRedirectKeepsLoginError(t *testing.T) {
	session := &fakeSession{loginResult: app.Fail[models.User](&app.Error{Kind: app.KindUnauthorized, Message: "Credenciales inválidas"})}
	ui := newHeadlessTUI(session)
	root := NewRootModel(ui.Pages(context.Background()), PageLogin, session, models.NewAppBuildInfo("", "", ""))

	var model tea.Model = root
	model, _ = feed(model, []tea.Msg{loginRedirect(false), LoginResult{Result: session.loginResult}})

	view := model.View()
	assert.Contains(t, view, "Credenciales inválidas")
	assert.NotContains(t, view, app.MsgSessionExpired)
}
