// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/glow-up-client/internal/service"
	"github.com/MKhiriev/glow-up-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// protectedPages need an authenticated session.
var protectedPages = map[string]bool{
	PageDashboard: true,
	PageWorkouts:  true,
	PageNutrition: true,
	PageProgress:  true,
	PageProfile:   true,
	PageChat:      true,
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages, redirecting protected pages to login
// 4) delegates all other messages to the active page
type RootModel struct {
	pages       map[string]tea.Model
	current     tea.Model
	currentName string
	session     service.SessionReader

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, session service.SessionReader, buildInfo models.AppBuildInfo) RootModel {
	r := RootModel{
		pages:     pages,
		session:   session,
		buildInfo: buildInfo,
	}
	r.current, r.currentName = r.resolve(startPage)
	return r
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.currentName == PageMenu {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.navigate(msg)
	case LoggedOut:
		nav := NavigateTo{Page: PageMenu}
		if msg.Notice != "" {
			nav.Payload = Notice{Text: msg.Notice}
		}
		return r.navigate(nav)
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.currentName] = updated
	return r, cmd
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, name := r.resolve(nav.Page)
	if next == nil {
		return r, nil
	}
	if name != nav.Page {
		// protected page without a session
		nav.Payload = nil
	}

	r.showBuildInfo = false
	r.current = next
	r.currentName = name

	cmds := []tea.Cmd{r.current.Init()}
	if nav.Payload != nil {
		payload := nav.Payload
		cmds = append(cmds, func() tea.Msg { return payload })
	}
	return r, tea.Batch(cmds...)
}

// resolve maps a page name to the page actually shown.
func (r RootModel) resolve(page string) (tea.Model, string) {
	if protectedPages[page] && (r.session == nil || !r.session.IsAuthenticated()) {
		page = PageLogin
	}
	next, ok := r.pages[page]
	if !ok {
		return nil, ""
	}
	return next, page
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("GLOW-UP", "", "")
	}
	return r.current.View()
}

// CurrentPage reports the name of the active page.
func (r RootModel) CurrentPage() string {
	return r.currentName
}
