// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/glow-up-client/internal/app"
	"github.com/MKhiriev/glow-up-client/internal/service"
	"github.com/MKhiriev/glow-up-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	profileName = iota
	profileAge
	profileGender
	profileHeight
	profileWeight
	profileGoal
	profileActivity
	profileRestrictions
)

const (
	pwdCurrent = iota
	pwdNew
	pwdConfirm
)

type profileMode int

const (
	profileView profileMode = iota
	profileEdit
	profilePassword
)

// ProfileModel shows and edits the account: personal data, password,
// statistics, subscription, session renewal and account removal.
type ProfileModel struct {
	ctx     context.Context
	profile service.ProfileService
	session service.SessionManager

	stats        models.UserStats
	subscription *models.Subscription
	loading      bool
	spinner      spinner.Model
	mode         profileMode
	form         formModel
	confirm      confirmModel
	submitting   bool
	status       string
	errMsg       string
}

func NewProfileModel(ctx context.Context, profile service.ProfileService, session service.SessionManager) *ProfileModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &ProfileModel{ctx: ctx, profile: profile, session: session, spinner: s}
}

func newProfileForm(user models.User) formModel {
	f := newFormModel("Editar perfil",
		formField{label: "Nombre"},
		formField{label: "Edad", charLimit: 3},
		formField{label: "Género", placeholder: "male / female / other"},
		formField{label: "Altura (cm)", charLimit: 5},
		formField{label: "Peso (kg)", charLimit: 5},
		formField{label: "Objetivo", placeholder: "weight_loss / muscle_gain / maintenance / strength / endurance"},
		formField{label: "Actividad", placeholder: "sedentary / light / moderate / active / very_active"},
		formField{label: "Restricciones"},
	)
	f.setValue(profileName, user.Name)
	if user.Age > 0 {
		f.setValue(profileAge, fmt.Sprint(user.Age))
	}
	f.setValue(profileGender, user.Gender)
	if user.Height > 0 {
		f.setValue(profileHeight, floatOrDash(user.Height, ""))
	}
	if user.Weight > 0 {
		f.setValue(profileWeight, floatOrDash(user.Weight, ""))
	}
	f.setValue(profileGoal, user.FitnessGoal)
	f.setValue(profileActivity, user.ActivityLevel)
	f.setValue(profileRestrictions, user.DietaryRestrictions)
	return f
}

func newPasswordForm() formModel {
	return newFormModel("Cambiar contraseña",
		formField{label: "Contraseña actual", secret: true},
		formField{label: "Nueva contraseña", placeholder: "mínimo 6 caracteres", secret: true},
		formField{label: "Repite la nueva", secret: true},
	)
}

func (m *ProfileModel) Init() tea.Cmd {
	m.mode = profileView
	m.loading = true
	m.submitting = false
	m.confirm = confirmModel{}
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case profileLoadedMsg:
		m.loading = false
		if !msg.profile.Success() {
			m.errMsg = errorText(msg.profile.Err)
			return m, nil
		}
		m.stats = msg.stats.Data
		m.subscription = nil
		if msg.subscription.Success() {
			sub := msg.subscription.Data
			m.subscription = &sub
		}
		return m, nil
	case profileSavedMsg:
		m.submitting = false
		if !msg.result.Success() {
			m.errMsg = errorText(msg.result.Err)
			return m, nil
		}
		m.errMsg = ""
		m.status = app.MsgProfileUpdated
		m.mode = profileView
		return m, cmdClearStatus()
	case doneMsg:
		m.submitting = false
		if !msg.result.Success() {
			m.errMsg = errorText(msg.result.Err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.status
		m.mode = profileView
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		if m.confirm.active() {
			return m, m.updateConfirm(msg)
		}
		switch m.mode {
		case profileEdit:
			return m, m.updateEdit(msg)
		case profilePassword:
			return m, m.updatePassword(msg)
		default:
			return m, m.updateView(msg)
		}
	}

	if m.mode != profileView {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m *ProfileModel) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.yes):
		cmd := m.confirm.onYes
		m.confirm = confirmModel{}
		m.submitting = true
		return cmd
	case key.Matches(msg, keys.no):
		m.confirm = confirmModel{}
	}
	return nil
}

func (m *ProfileModel) updateView(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		return func() tea.Msg { return NavigateTo{Page: PageDashboard} }
	case key.Matches(msg, keys.refresh):
		return m.Init()
	case key.Matches(msg, keys.edit):
		user, _ := m.session.User()
		m.errMsg = ""
		m.form = newProfileForm(user)
		m.mode = profileEdit
	case key.Matches(msg, keys.password):
		m.errMsg = ""
		m.form = newPasswordForm()
		m.mode = profilePassword
	case msg.String() == "R":
		if m.submitting {
			return nil
		}
		m.errMsg = ""
		m.submitting = true
		ctx, session := m.ctx, m.session
		return func() tea.Msg {
			return doneMsg{result: session.RefreshToken(ctx), status: app.MsgSessionRefreshed}
		}
	case msg.String() == "D":
		ctx, svc := m.ctx, m.profile
		m.confirm = confirmModel{
			question: "¿Eliminar tu cuenta? Se borrarán todos tus datos.",
			onYes: func() tea.Msg {
				if res := svc.DeleteAccount(ctx); !res.Success() {
					return doneMsg{result: res}
				}
				return LoggedOut{Notice: "Cuenta eliminada"}
			},
		}
	}
	return nil
}

func (m *ProfileModel) updateEdit(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.errMsg = ""
		m.mode = profileView
		return nil
	case key.Matches(msg, keys.enter):
		if m.submitting {
			return nil
		}
		age, ageOK := parseIntField(m.form.value(profileAge))
		height, heightOK := parseFloatField(m.form.value(profileHeight))
		weight, weightOK := parseFloatField(m.form.value(profileWeight))
		switch {
		case !ageOK:
			m.errMsg = app.MsgInvalidAge
			return nil
		case !heightOK:
			m.errMsg = app.MsgInvalidHeight
			return nil
		case !weightOK:
			m.errMsg = app.MsgInvalidWeight
			return nil
		}
		edit := models.ProfileUpdate{
			Name:                m.form.value(profileName),
			Age:                 age,
			Gender:              strings.ToLower(m.form.value(profileGender)),
			Height:              height,
			Weight:              weight,
			FitnessGoal:         m.form.value(profileGoal),
			ActivityLevel:       m.form.value(profileActivity),
			DietaryRestrictions: m.form.value(profileRestrictions),
		}

		m.errMsg = ""
		m.submitting = true
		ctx, svc := m.ctx, m.profile
		return func() tea.Msg {
			return profileSavedMsg{result: svc.UpdateProfile(ctx, edit)}
		}
	}
	return m.form.update(msg)
}

func (m *ProfileModel) updatePassword(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.errMsg = ""
		m.mode = profileView
		return nil
	case key.Matches(msg, keys.enter):
		if m.submitting {
			return nil
		}
		form := models.ChangePasswordForm{
			CurrentPassword:    m.form.rawValue(pwdCurrent),
			NewPassword:        m.form.rawValue(pwdNew),
			NewPasswordConfirm: m.form.rawValue(pwdConfirm),
		}

		m.errMsg = ""
		m.submitting = true
		ctx, svc := m.ctx, m.profile
		return func() tea.Msg {
			return doneMsg{result: svc.ChangePassword(ctx, form), status: app.MsgPasswordChanged}
		}
	}
	return m.form.update(msg)
}

func (m *ProfileModel) View() string {
	var b strings.Builder
	hotKeys := "e: editar │ p: contraseña │ R: renovar sesión │ D: eliminar cuenta │ r: recargar │ esc: panel"

	switch {
	case m.confirm.active():
		b.WriteString(m.confirm.View())
		hotKeys = ""
	case m.mode != profileView:
		label := "Guardar"
		if m.mode == profilePassword {
			label = "Cambiar"
		}
		b.WriteString(m.form.View())
		b.WriteString("\n\n")
		b.WriteString(submitLabel(label, m.submitting))
		b.WriteString("\n")
		hotKeys = formHotKeys
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Cargando...\n")
	default:
		m.writeProfile(&b)
	}

	writeFeedback(&b, m.status, m.errMsg)

	return renderPage("PERFIL", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *ProfileModel) writeProfile(b *strings.Builder) {
	user, _ := m.session.User()
	fmt.Fprintf(b, "Nombre:        %s\n", valueOrDash(user.Name))
	fmt.Fprintf(b, "Email:         %s\n", valueOrDash(user.Email))
	fmt.Fprintf(b, "Edad:          %s\n", intOrDash(user.Age))
	fmt.Fprintf(b, "Género:        %s\n", valueOrDash(user.Gender))
	fmt.Fprintf(b, "Altura:        %s\n", floatOrDash(user.Height, "cm"))
	fmt.Fprintf(b, "Peso:          %s\n", floatOrDash(user.Weight, "kg"))
	fmt.Fprintf(b, "Objetivo:      %s\n", valueOrDash(user.FitnessGoal))
	fmt.Fprintf(b, "Actividad:     %s\n", valueOrDash(user.ActivityLevel))
	fmt.Fprintf(b, "Restricciones: %s\n", valueOrDash(user.DietaryRestrictions))

	fmt.Fprintf(b, "\nPlanes de entrenamiento: %d │ Planes de nutrición: %d │ Mediciones: %d\n",
		m.stats.TotalWorkoutPlans, m.stats.TotalNutritionPlans, m.stats.TotalProgressEntries)

	if m.subscription != nil {
		fmt.Fprintf(b, "Suscripción: %s (%s)", valueOrDash(m.subscription.Type), valueOrDash(m.subscription.Status))
		if !m.subscription.ExpiresAt.IsZero() {
			fmt.Fprintf(b, ", vence el %s", m.subscription.ExpiresAt.Format("02/01/2006"))
		}
		b.WriteString("\n")
	}

	if claims, ok := m.session.TokenClaims(); ok && !claims.ExpiresAt.IsZero() {
		fmt.Fprintf(b, "Sesión válida hasta: %s\n", claims.ExpiresAt.Local().Format("02/01/2006 15:04"))
	}
}

func (m *ProfileModel) cmdLoad() tea.Cmd {
	ctx, svc := m.ctx, m.profile
	return func() tea.Msg {
		return profileLoadedMsg{
			profile:      svc.Profile(ctx),
			stats:        svc.Stats(ctx),
			subscription: svc.Subscription(ctx),
		}
	}
}
