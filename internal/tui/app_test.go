// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/glow-up-client/internal/app"
	"github.com/MKhiriev/glow-up-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot(session *fakeSession, start string) RootModel {
	ctx := context.Background()
	pages := map[string]tea.Model{
		PageMenu:      NewMenuModel(),
		PageLogin:     NewLoginModel(ctx, session),
		PageRegister:  NewRegisterModel(ctx, session),
		PageDashboard: NewDashboardModel(ctx, &fakeDashboard{}, session),
		PageWorkouts:  NewWorkoutsModel(ctx, &fakeWorkouts{}),
		PageChat:      NewChatModel(ctx, &fakeAI{}),
	}
	return NewRootModel(pages, start, session, models.NewAppBuildInfo("1.0.0", "", ""))
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

func TestRootModel_StartPageProtectedWithoutSession(t *testing.T) {
	root := newTestRoot(&fakeSession{}, PageDashboard)
	assert.Equal(t, PageLogin, root.CurrentPage())
}

func TestRootModel_StartPageWithSession(t *testing.T) {
	root := newTestRoot(&fakeSession{user: &models.User{ID: 1, Name: "Ana"}}, PageDashboard)
	assert.Equal(t, PageDashboard, root.CurrentPage())
}

func TestRootModel_NavigateRedirectsProtectedPages(t *testing.T) {
	session := &fakeSession{}
	root := newTestRoot(session, PageMenu)

	for _, page := range []string{PageDashboard, PageWorkouts, PageChat} {
		next, cmd := update(t, root, NavigateTo{Page: page, Payload: Notice{Text: "hola"}})
		assert.Equal(t, PageLogin, next.CurrentPage(), page)
		_, hasNotice := find[Notice](collect(cmd))
		assert.False(t, hasNotice, "payload for the protected page is dropped")
	}

	session.user = &models.User{ID: 1}
	next, _ := update(t, root, NavigateTo{Page: PageWorkouts})
	assert.Equal(t, PageWorkouts, next.CurrentPage())
}

func TestRootModel_NavigateUnknownPageIsIgnored(t *testing.T) {
	root := newTestRoot(&fakeSession{}, PageMenu)

	next, cmd := update(t, root, NavigateTo{Page: "nowhere"})
	assert.Equal(t, PageMenu, next.CurrentPage())
	assert.Nil(t, cmd)
}

func TestRootModel_NavigateDeliversPayload(t *testing.T) {
	root := newTestRoot(&fakeSession{}, PageMenu)

	next, cmd := update(t, root, NavigateTo{Page: PageLogin, Payload: Notice{Text: app.MsgSessionExpired}})
	require.Equal(t, PageLogin, next.CurrentPage())

	notice, ok := find[Notice](collect(cmd))
	require.True(t, ok)
	next, _ = update(t, next, notice)
	assert.Contains(t, next.View(), app.MsgSessionExpired)
}

func TestRootModel_LoggedOutShowsMenu(t *testing.T) {
	root := newTestRoot(&fakeSession{user: &models.User{ID: 1}}, PageDashboard)

	next, cmd := update(t, root, LoggedOut{Notice: "Sesión cerrada"})
	require.Equal(t, PageMenu, next.CurrentPage())

	notice, ok := find[Notice](collect(cmd))
	require.True(t, ok)
	next, _ = update(t, next, notice)
	assert.Contains(t, next.View(), "Sesión cerrada")
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root := newTestRoot(&fakeSession{}, PageMenu)

	next, cmd := update(t, root, keyPress("ctrl+c"))
	assert.True(t, next.quitByUser)
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestRootModel_BuildInfoOnlyFromMenu(t *testing.T) {
	root := newTestRoot(&fakeSession{}, PageMenu)

	next, _ := update(t, root, keyPress("v"))
	assert.Contains(t, next.View(), "1.0.0")

	next, _ = update(t, next, keyPress("esc"))
	assert.NotContains(t, next.View(), "1.0.0")
	assert.Equal(t, PageMenu, next.CurrentPage())

	login, _ := update(t, root, NavigateTo{Page: PageLogin})
	login, _ = update(t, login, keyPress("v"))
	assert.NotContains(t, login.View(), "ACERCA DE")
}

func TestMenuModel_Navigation(t *testing.T) {
	m := NewMenuModel()

	_, cmd := m.Update(keyPress("enter"))
	nav, ok := find[NavigateTo](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, PageLogin, nav.Page)

	m.Update(keyPress("down"))
	_, cmd = m.Update(keyPress("enter"))
	nav, _ = find[NavigateTo](collect(cmd))
	assert.Equal(t, PageRegister, nav.Page)
}
