// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/glow-up-client/internal/service"
	"github.com/MKhiriev/glow-up-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const logoutItem = "logout"

// DashboardModel is the home page of an authenticated user: counters,
// the most recent plans and the navigation menu.
type DashboardModel struct {
	ctx       context.Context
	dashboard service.DashboardService
	session   service.SessionManager

	data    models.DashboardData
	loading bool
	spinner spinner.Model
	items   []menuItem
	idx     int
	errMsg  string
}

func NewDashboardModel(ctx context.Context, dashboard service.DashboardService, session service.SessionManager) *DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &DashboardModel{
		ctx:       ctx,
		dashboard: dashboard,
		session:   session,
		spinner:   s,
		items: []menuItem{
			{label: "Entrenamientos", page: PageWorkouts},
			{label: "Nutrición", page: PageNutrition},
			{label: "Progreso", page: PageProgress},
			{label: "Perfil", page: PageProfile},
			{label: "Coach IA", page: PageChat},
			{label: "Cerrar sesión", page: logoutItem},
		},
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case dashboardLoadedMsg:
		m.loading = false
		if !msg.result.Success() {
			m.errMsg = errorText(msg.result.Err)
			return m, nil
		}
		m.errMsg = ""
		m.data = msg.result.Data
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.refresh):
			if m.loading {
				return m, nil
			}
			return m, m.Init()
		case key.Matches(msg, keys.logout):
			return m, m.cmdLogout()
		case key.Matches(msg, keys.enter):
			page := m.items[m.idx].page
			if page == logoutItem {
				return m, m.cmdLogout()
			}
			return m, func() tea.Msg { return NavigateTo{Page: page} }
		}
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	if user, ok := m.session.User(); ok {
		fmt.Fprintf(&b, "¡Hola, %s!\n\n", user.Name)
	}

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Cargando...\n")
	} else {
		stats := m.data.Stats
		fmt.Fprintf(&b, "Planes de entrenamiento: %d │ Planes de nutrición: %d │ Mediciones: %d\n",
			stats.TotalWorkoutPlans, stats.TotalNutritionPlans, stats.TotalProgressEntries)
		fmt.Fprintf(&b, "Suscripción: %s\n\n", valueOrDash(stats.SubscriptionType))

		b.WriteString("Entrenamientos recientes:\n")
		if len(m.data.RecentWorkouts) == 0 {
			b.WriteString("  Aún no tienes planes\n")
		}
		for _, w := range m.data.RecentWorkouts {
			fmt.Fprintf(&b, "  • %-30s %s\n", fitText(w.Name, 30), progressBar(w.Progress, 10))
		}

		b.WriteString("\nNutrición reciente:\n")
		if len(m.data.RecentNutrition) == 0 {
			b.WriteString("  Aún no tienes planes\n")
		}
		for _, n := range m.data.RecentNutrition {
			fmt.Fprintf(&b, "  • %-30s %s kcal\n", fitText(n.Name, 30), intOrDash(n.DailyCalories))
		}
	}

	b.WriteString("\n")
	for i, item := range m.items {
		line := cursor(i == m.idx) + item.label
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	writeFeedback(&b, "", m.errMsg)

	return renderPage("PANEL", strings.TrimRight(b.String(), "\n"), "enter: abrir │ ↑/↓: mover │ r: recargar │ L: cerrar sesión")
}

func (m *DashboardModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	dashboard := m.dashboard

	return func() tea.Msg {
		return dashboardLoadedMsg{result: dashboard.Load(ctx)}
	}
}

func (m *DashboardModel) cmdLogout() tea.Cmd {
	return logoutCmd(m.ctx, m.session, "Sesión cerrada")
}

// logoutCmd ends the session. A storage failure is reported but the user is
// signed out either way.
func logoutCmd(ctx context.Context, session service.SessionManager, notice string) tea.Cmd {
	return func() tea.Msg {
		if res := session.Logout(ctx); !res.Success() {
			return LoggedOut{Notice: res.Message()}
		}
		return LoggedOut{Notice: notice}
	}
}
