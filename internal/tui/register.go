// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/glow-up-client/internal/service"
	"github.com/MKhiriev/glow-up-client/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	registerName = iota
	registerEmail
	registerPassword
	registerConfirm
)

// RegisterModel is the Bubble Tea model for the registration screen. A
// successful registration signs the user in and opens the dashboard.
type RegisterModel struct {
	ctx     context.Context
	session service.SessionManager

	form       formModel
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, session service.SessionManager) *RegisterModel {
	return &RegisterModel{
		ctx:     ctx,
		session: session,
		form: newFormModel("",
			formField{label: "Nombre", placeholder: "tu nombre"},
			formField{label: "Email", placeholder: "tu@email.com"},
			formField{label: "Contraseña", placeholder: "mínimo 6 caracteres", secret: true},
			formField{label: "Repite la contraseña", placeholder: "contraseña", secret: true},
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	m.submitting = false
	return textinput.Blink
}

// Update implements [tea.Model]. Validation happens in the session manager,
// so a form with a mismatched confirmation never reaches the network.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RegisterResult:
		m.submitting = false
		if !msg.Result.Success() {
			m.errMsg = msg.Result.Message()
			return m, nil
		}

		m.errMsg = ""
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
			return m, m.cmdRegister(models.RegisterForm{
				Name:                 m.form.value(registerName),
				Email:                m.form.value(registerEmail),
				Password:             m.form.rawValue(registerPassword),
				PasswordConfirmation: m.form.rawValue(registerConfirm),
			})
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.View())
	b.WriteString("\n\n")
	b.WriteString(submitLabel("Crear cuenta", m.submitting))
	b.WriteString("\n")
	writeFeedback(&b, "", m.errMsg)

	return renderPage("CREAR CUENTA", strings.TrimRight(b.String(), "\n"), formHotKeys)
}

func (m *RegisterModel) cmdRegister(form models.RegisterForm) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return RegisterResult{Result: session.Register(ctx, form)}
	}
}
