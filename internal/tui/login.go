// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/glow-up-client/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the login screen. It renders the
// email and password inputs and dispatches an async login command on
// submission. On success it navigates to the dashboard.
type LoginModel struct {
	ctx     context.Context
	session service.SessionManager

	form       formModel
	submitting bool
	notice     string
	errMsg     string
}

// NewLoginModel creates a [LoginModel]. The email field receives focus
// immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, session service.SessionManager) *LoginModel {
	return &LoginModel{
		ctx:     ctx,
		session: session,
		form: newFormModel("",
			formField{label: "Email", placeholder: "tu@email.com"},
			formField{label: "Contraseña", placeholder: "contraseña", secret: true},
		),
	}
}

// Init implements [tea.Model]. A page reopened after a redirect must not
// stay locked by a request that was abandoned.
func (m *LoginModel) Init() tea.Cmd {
	m.submitting = false
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [Notice]      sets the banner above the form.
//   - [LoginResult] clears submitting state and shows the error or moves on.
//   - esc           navigates back to the menu.
//   - enter         dispatches the async login command.
//
// All other key events are forwarded to the form.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Notice:
		m.notice = msg.Text
		return m, nil
	case LoginResult:
		m.submitting = false
		if !msg.Result.Success() {
			m.errMsg = msg.Result.Message()
			return m, nil
		}
		m.errMsg = ""
		m.notice = ""
		m.form.reset()
		return m, func() tea.Msg { return NavigateTo{Page: PageDashboard} }
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: PageMenu} }
		case "enter":
			if m.submitting {
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(m.form.value(0), m.form.rawValue(1))
		}
	}

	return m, m.form.update(msg)
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	if m.notice != "" {
		b.WriteString(errorStyle.Render(m.notice))
		b.WriteString("\n\n")
	}
	b.WriteString(m.form.View())
	b.WriteString("\n\n")
	b.WriteString(submitLabel("Entrar", m.submitting))
	b.WriteString("\n")
	writeFeedback(&b, "", m.errMsg)

	return renderPage("INICIAR SESIÓN", strings.TrimRight(b.String(), "\n"), formHotKeys)
}

func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return LoginResult{Result: session.Login(ctx, email, password)}
	}
}
