// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/glow-up-client/internal/app"
	"github.com/MKhiriev/glow-up-client/internal/service"
	"github.com/MKhiriev/glow-up-client/internal/validators"
	"github.com/MKhiriev/glow-up-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	entryDate = iota
	entryWeight
	entryBodyFat
	entryMuscleMass
	entryChest
	entryWaist
	entryHips
	entryArms
	entryThighs
	entryNotes
)

// ProgressModel records body measurements and shows the backend's
// statistics, analytics and goals.
type ProgressModel struct {
	ctx      context.Context
	progress service.ProgressService
	now      func() time.Time

	list       listModel[models.ProgressEntry]
	stats      models.ProgressStats
	mode       planMode
	form       formModel
	editingID  int64
	insights   string
	confirm    confirmModel
	submitting bool
	status     string
	errMsg     string
}

func NewProgressModel(ctx context.Context, progress service.ProgressService) *ProgressModel {
	return &ProgressModel{
		ctx:      ctx,
		progress: progress,
		now:      time.Now,
		list:     newListModel[models.ProgressEntry](),
	}
}

func (m *ProgressModel) newEntryForm(entry *models.ProgressEntry) formModel {
	title := "Nueva medición"
	if entry != nil {
		title = "Editar medición del " + entry.Date
	}
	f := newFormModel(title,
		formField{label: "Fecha", placeholder: validators.ProgressDateLayout, charLimit: 10},
		formField{label: "Peso (kg)", charLimit: 6},
		formField{label: "Grasa corporal (%)", charLimit: 5},
		formField{label: "Masa muscular (kg)", charLimit: 6},
		formField{label: "Pecho (cm)", charLimit: 6},
		formField{label: "Cintura (cm)", charLimit: 6},
		formField{label: "Cadera (cm)", charLimit: 6},
		formField{label: "Brazos (cm)", charLimit: 6},
		formField{label: "Muslos (cm)", charLimit: 6},
		formField{label: "Notas"},
	)
	if entry == nil {
		f.setValue(entryDate, m.now().Format(validators.ProgressDateLayout))
		return f
	}

	f.setValue(entryDate, entry.Date)
	for i, v := range map[int]float64{
		entryWeight:     entry.Weight,
		entryBodyFat:    entry.BodyFat,
		entryMuscleMass: entry.MuscleMass,
		entryChest:      entry.Measurements.Chest,
		entryWaist:      entry.Measurements.Waist,
		entryHips:       entry.Measurements.Hips,
		entryArms:       entry.Measurements.Arms,
		entryThighs:     entry.Measurements.Thighs,
	} {
		if v != 0 {
			f.setValue(i, floatOrDash(v, ""))
		}
	}
	f.setValue(entryNotes, entry.Notes)
	return f
}

// request reads the form. The second value is false when a number does not
// parse.
func (m *ProgressModel) request() (models.ProgressEntryRequest, bool) {
	values := make(map[int]float64)
	for _, i := range []int{entryWeight, entryBodyFat, entryMuscleMass, entryChest, entryWaist, entryHips, entryArms, entryThighs} {
		v, ok := parseFloatField(m.form.value(i))
		if !ok {
			return models.ProgressEntryRequest{}, false
		}
		values[i] = v
	}

	return models.ProgressEntryRequest{
		Date:       m.form.value(entryDate),
		Weight:     values[entryWeight],
		BodyFat:    values[entryBodyFat],
		MuscleMass: values[entryMuscleMass],
		Chest:      values[entryChest],
		Waist:      values[entryWaist],
		Hips:       values[entryHips],
		Arms:       values[entryArms],
		Thighs:     values[entryThighs],
		Notes:      m.form.value(entryNotes),
	}, true
}

func (m *ProgressModel) Init() tea.Cmd {
	m.mode = modeList
	m.submitting = false
	m.confirm = confirmModel{}
	m.errMsg = ""
	return tea.Batch(m.list.startLoading(), m.cmdLoad())
}

func (m *ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.list.updateSpinner(msg); ok {
		return m, cmd
	}

	switch msg := msg.(type) {
	case progressLoadedMsg:
		if !msg.entries.Success() {
			m.list.loading = false
			m.errMsg = errorText(msg.entries.Err)
			return m, nil
		}
		m.list.setItems(msg.entries.Data)
		// stats are optional, the list is still useful without them
		m.stats = msg.stats.Data
		return m, nil
	case progressSavedMsg:
		m.submitting = false
		if !msg.result.Success() {
			m.errMsg = errorText(msg.result.Err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.status
		m.mode = modeList
		return m, tea.Batch(m.list.startLoading(), m.cmdLoad(), cmdClearStatus())
	case progressInsightsMsg:
		m.submitting = false
		if !msg.analytics.Success() {
			m.errMsg = errorText(msg.analytics.Err)
			return m, nil
		}
		m.insights = insightsView(msg.analytics.Data, msg.goals)
		return m, nil
	case doneMsg:
		m.submitting = false
		if !msg.result.Success() {
			m.errMsg = errorText(msg.result.Err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.status
		return m, tea.Batch(m.list.startLoading(), m.cmdLoad(), cmdClearStatus())
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		if m.confirm.active() {
			return m, m.updateConfirm(msg)
		}
		switch m.mode {
		case modeForm:
			return m, m.updateForm(msg)
		case modeDetail:
			if key.Matches(msg, keys.esc) {
				m.mode = modeList
				m.errMsg = ""
			}
			return m, nil
		default:
			return m, m.updateList(msg)
		}
	}

	if m.mode == modeForm {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m *ProgressModel) updateConfirm(msg tea.KeyMsg) tea.Cmd {
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

func (m *ProgressModel) updateList(msg tea.KeyMsg) tea.Cmd {
	if m.list.move(msg) {
		return nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return func() tea.Msg { return NavigateTo{Page: PageDashboard} }
	case key.Matches(msg, keys.refresh):
		return tea.Batch(m.list.startLoading(), m.cmdLoad())
	case key.Matches(msg, keys.newItem):
		m.errMsg = ""
		m.editingID = 0
		m.form = m.newEntryForm(nil)
		m.mode = modeForm
	case key.Matches(msg, keys.edit):
		if entry, ok := m.list.current(); ok {
			m.errMsg = ""
			m.editingID = entry.ID
			m.form = m.newEntryForm(&entry)
			m.mode = modeForm
		}
	case key.Matches(msg, keys.enter):
		if m.submitting {
			return nil
		}
		m.errMsg = ""
		m.insights = ""
		m.mode = modeDetail
		m.submitting = true
		return m.cmdInsights()
	case key.Matches(msg, keys.delete):
		entry, ok := m.list.current()
		if !ok {
			return nil
		}
		ctx, id, svc := m.ctx, entry.ID, m.progress
		m.confirm = confirmModel{
			question: fmt.Sprintf("¿Eliminar la medición del %s?", entry.Date),
			onYes: func() tea.Msg {
				return doneMsg{result: svc.Delete(ctx, id), status: "Medición eliminada"}
			},
		}
	}
	return nil
}

func (m *ProgressModel) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.errMsg = ""
		m.mode = modeList
		return nil
	case key.Matches(msg, keys.enter):
		if m.submitting {
			return nil
		}
		req, ok := m.request()
		if !ok {
			m.errMsg = app.MsgInvalidData
			return nil
		}

		m.errMsg = ""
		m.submitting = true
		ctx, id, svc := m.ctx, m.editingID, m.progress
		if id != 0 {
			return func() tea.Msg {
				return progressSavedMsg{result: svc.Update(ctx, id, req), status: "Medición actualizada"}
			}
		}
		return func() tea.Msg {
			return progressSavedMsg{result: svc.Create(ctx, req), status: "Medición guardada"}
		}
	}
	return m.form.update(msg)
}

func (m *ProgressModel) View() string {
	var b strings.Builder
	hotKeys := "n: nueva │ e: editar │ d: eliminar │ enter: análisis │ r: recargar │ esc: panel"

	switch {
	case m.confirm.active():
		b.WriteString(m.confirm.View())
		hotKeys = ""
	case m.mode == modeForm:
		b.WriteString(m.form.View())
		b.WriteString("\n\n")
		b.WriteString(submitLabel("Guardar", m.submitting))
		b.WriteString("\n")
		hotKeys = formHotKeys
	case m.mode == modeDetail:
		if m.submitting {
			b.WriteString("Cargando análisis...\n")
		} else {
			b.WriteString(m.insights)
			b.WriteString("\n")
		}
		hotKeys = "esc: volver"
	default:
		m.writeList(&b)
	}

	writeFeedback(&b, m.status, m.errMsg)

	return renderPage("PROGRESO", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *ProgressModel) writeList(b *strings.Builder) {
	if m.list.loading {
		b.WriteString(m.list.spinner.View())
		b.WriteString(" Cargando...\n")
		return
	}

	s := m.stats
	fmt.Fprintf(b, "Peso actual: %s │ Cambio: %s │ Grasa: %s │ Registros: %d\n\n",
		floatOrDash(s.LatestWeight, "kg"), floatOrDash(s.WeightChange, "kg"),
		floatOrDash(s.LatestBodyFat, "%"), s.TotalEntries)

	if len(m.list.items) == 0 {
		b.WriteString("Aún no hay mediciones. Pulsa n para registrar la primera.\n")
		return
	}

	fmt.Fprintf(b, "  %-10s │ %-8s │ %-7s │ %-8s │ %s\n", "Fecha", "Peso", "Grasa", "Cintura", "Notas")
	for i, e := range m.list.items {
		fmt.Fprintf(b, "%s%-10s │ %-8s │ %-7s │ %-8s │ %s\n", cursor(i == m.list.idx), e.Date,
			floatOrDash(e.Weight, "kg"), floatOrDash(e.BodyFat, "%"), floatOrDash(e.Measurements.Waist, "cm"),
			fitText(e.Notes, 24))
	}
}

// insightsView renders the analytics and goals documents. Goals are
// optional; their failure is shown inline.
func insightsView(analytics models.ProgressAnalytics, goals app.Result[models.ProgressGoals]) string {
	var b strings.Builder
	b.WriteString(selectedStyle.Render("Análisis"))
	b.WriteString("\n")
	b.WriteString(documentView(analytics))
	b.WriteString("\n\n")
	b.WriteString(selectedStyle.Render("Objetivos"))
	b.WriteString("\n")
	if goals.Success() {
		b.WriteString(documentView(goals.Data))
	} else {
		b.WriteString(errorText(goals.Err))
	}
	return b.String()
}

func documentView(doc map[string]any) string {
	if len(doc) == 0 {
		return "-"
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Sprint(doc)
	}
	return prettyJSON(raw)
}

func (m *ProgressModel) cmdLoad() tea.Cmd {
	ctx, svc := m.ctx, m.progress
	return func() tea.Msg {
		return progressLoadedMsg{entries: svc.List(ctx), stats: svc.Stats(ctx)}
	}
}

func (m *ProgressModel) cmdInsights() tea.Cmd {
	ctx, svc := m.ctx, m.progress
	return func() tea.Msg {
		return progressInsightsMsg{analytics: svc.Analytics(ctx), goals: svc.Goals(ctx)}
	}
}
