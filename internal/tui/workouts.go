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
	tea "github.com/charmbracelet/bubbletea"
)

type planMode int

const (
	modeList planMode = iota
	modeDetail
	modeForm
	modeGenerate
	modeCalories
)

const progressStep = 10

// workout form fields
const (
	workoutName = iota
	workoutDescription
	workoutDifficulty
	workoutWeeks
)

// generation form fields
const (
	genWorkoutGoal = iota
	genWorkoutActivity
	genWorkoutWeeks
)

// WorkoutsModel lists the workout plans and drives their lifecycle: create,
// edit, generate with the AI coach, start, track progress, complete and
// delete.
type WorkoutsModel struct {
	ctx      context.Context
	workouts service.WorkoutService

	list       listModel[models.WorkoutPlan]
	mode       planMode
	form       formModel
	editingID  int64
	generate   formModel
	confirm    confirmModel
	submitting bool
	status     string
	errMsg     string
}

func NewWorkoutsModel(ctx context.Context, workouts service.WorkoutService) *WorkoutsModel {
	return &WorkoutsModel{
		ctx:      ctx,
		workouts: workouts,
		list:     newListModel[models.WorkoutPlan](),
	}
}

func newWorkoutForm(plan *models.WorkoutPlan) formModel {
	title := "Nuevo plan"
	if plan != nil {
		title = "Editar: " + plan.Name
	}
	f := newFormModel(title,
		formField{label: "Nombre", placeholder: "Fuerza 3 días"},
		formField{label: "Descripción"},
		formField{label: "Dificultad", placeholder: "beginner / intermediate / advanced"},
		formField{label: "Semanas", placeholder: "1-52", charLimit: 2},
	)
	if plan != nil {
		f.setValue(workoutName, plan.Name)
		f.setValue(workoutDescription, plan.Description)
		f.setValue(workoutDifficulty, plan.Difficulty)
		if plan.DurationWeeks > 0 {
			f.setValue(workoutWeeks, fmt.Sprint(plan.DurationWeeks))
		}
	}
	return f
}

func newWorkoutGenerateForm() formModel {
	return newFormModel("Generar con IA",
		formField{label: "Objetivo", placeholder: "weight_loss / muscle_gain / strength / endurance"},
		formField{label: "Actividad", placeholder: "sedentary / light / moderate / active"},
		formField{label: "Semanas", placeholder: "1-52", charLimit: 2},
	)
}

func (m *WorkoutsModel) Init() tea.Cmd {
	m.mode = modeList
	m.submitting = false
	m.confirm = confirmModel{}
	m.errMsg = ""
	return tea.Batch(m.list.startLoading(), m.cmdLoad())
}

func (m *WorkoutsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.list.updateSpinner(msg); ok {
		return m, cmd
	}

	switch msg := msg.(type) {
	case workoutsLoadedMsg:
		if !msg.result.Success() {
			m.list.loading = false
			m.errMsg = errorText(msg.result.Err)
			return m, nil
		}
		m.list.setItems(msg.result.Data)
		return m, nil
	case workoutSavedMsg:
		m.submitting = false
		if !msg.result.Success() {
			m.errMsg = errorText(msg.result.Err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.status
		if m.mode == modeForm || m.mode == modeGenerate {
			m.mode = modeList
			return m, tea.Batch(m.list.startLoading(), m.cmdLoad(), cmdClearStatus())
		}
		saved := msg.result.Data
		m.list.replace(saved, func(p models.WorkoutPlan) bool { return p.ID == saved.ID })
		return m, cmdClearStatus()
	case doneMsg:
		m.submitting = false
		if !msg.result.Success() {
			m.errMsg = errorText(msg.result.Err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.status
		m.mode = modeList
		return m, tea.Batch(m.list.startLoading(), m.cmdLoad(), cmdClearStatus())
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Copiado al portapapeles"
		return m, cmdClearStatus()
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
		case modeGenerate:
			return m, m.updateGenerate(msg)
		case modeDetail:
			return m, m.updateDetail(msg)
		default:
			return m, m.updateList(msg)
		}
	}

	switch m.mode {
	case modeForm:
		return m, m.form.update(msg)
	case modeGenerate:
		return m, m.generate.update(msg)
	}
	return m, nil
}

func (m *WorkoutsModel) updateConfirm(msg tea.KeyMsg) tea.Cmd {
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

func (m *WorkoutsModel) updateList(msg tea.KeyMsg) tea.Cmd {
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
		m.form = newWorkoutForm(nil)
		m.mode = modeForm
	case key.Matches(msg, keys.generate):
		m.errMsg = ""
		m.generate = newWorkoutGenerateForm()
		m.mode = modeGenerate
	case key.Matches(msg, keys.enter):
		if _, ok := m.list.current(); ok {
			m.errMsg = ""
			m.mode = modeDetail
		}
	case key.Matches(msg, keys.delete):
		m.askDelete()
	}
	return nil
}

func (m *WorkoutsModel) updateDetail(msg tea.KeyMsg) tea.Cmd {
	plan, ok := m.list.current()
	if !ok {
		m.mode = modeList
		return nil
	}

	if key.Matches(msg, keys.esc) {
		m.mode = modeList
		m.errMsg = ""
		return nil
	}
	if key.Matches(msg, keys.copy) {
		return cmdCopyToClipboard(workoutDetail(plan))
	}
	if key.Matches(msg, keys.edit) {
		m.errMsg = ""
		m.editingID = plan.ID
		m.form = newWorkoutForm(&plan)
		m.mode = modeForm
		return nil
	}
	if key.Matches(msg, keys.delete) {
		m.askDelete()
		return nil
	}

	if m.submitting {
		return nil
	}

	ctx, id := m.ctx, plan.ID
	svc := m.workouts
	var run func() app.Result[models.WorkoutPlan]
	var status string

	switch {
	case key.Matches(msg, keys.start):
		run = func() app.Result[models.WorkoutPlan] { return svc.Start(ctx, id) }
		status = "Plan iniciado"
	case key.Matches(msg, keys.complete):
		run = func() app.Result[models.WorkoutPlan] { return svc.Complete(ctx, id) }
		status = "Plan completado"
	case key.Matches(msg, keys.more), key.Matches(msg, keys.less):
		progress := plan.Progress + progressStep
		if key.Matches(msg, keys.less) {
			progress = plan.Progress - progressStep
		}
		progress = max(0, min(progress, 100))
		run = func() app.Result[models.WorkoutPlan] { return svc.UpdateProgress(ctx, id, progress) }
		status = "Progreso actualizado"
	default:
		return nil
	}

	m.errMsg = ""
	m.submitting = true
	return func() tea.Msg { return workoutSavedMsg{result: run(), status: status} }
}

func (m *WorkoutsModel) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.errMsg = ""
		if m.editingID != 0 {
			m.mode = modeDetail
		} else {
			m.mode = modeList
		}
		return nil
	case key.Matches(msg, keys.enter):
		if m.submitting {
			return nil
		}
		weeks, ok := parseIntField(m.form.value(workoutWeeks))
		if !ok {
			m.errMsg = app.MsgInvalidDuration
			return nil
		}
		plan := models.WorkoutPlan{
			Name:          m.form.value(workoutName),
			Description:   m.form.value(workoutDescription),
			Difficulty:    m.form.value(workoutDifficulty),
			DurationWeeks: weeks,
		}

		m.errMsg = ""
		m.submitting = true
		ctx, id, svc := m.ctx, m.editingID, m.workouts
		if id != 0 {
			return func() tea.Msg {
				return workoutSavedMsg{result: svc.Update(ctx, id, plan), status: "Plan actualizado"}
			}
		}
		return func() tea.Msg {
			return workoutSavedMsg{result: svc.Create(ctx, plan), status: "Plan creado"}
		}
	}
	return m.form.update(msg)
}

func (m *WorkoutsModel) updateGenerate(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.errMsg = ""
		m.mode = modeList
		return nil
	case key.Matches(msg, keys.enter):
		if m.submitting {
			return nil
		}
		weeks, ok := parseIntField(m.generate.value(genWorkoutWeeks))
		if !ok {
			m.errMsg = app.MsgInvalidDuration
			return nil
		}
		req := models.WorkoutGenerationRequest{
			FitnessGoal:   m.generate.value(genWorkoutGoal),
			ActivityLevel: m.generate.value(genWorkoutActivity),
			DurationWeeks: weeks,
		}

		m.errMsg = ""
		m.submitting = true
		ctx, svc := m.ctx, m.workouts
		return func() tea.Msg {
			return workoutSavedMsg{result: svc.Generate(ctx, req), status: "Plan generado"}
		}
	}
	return m.generate.update(msg)
}

func (m *WorkoutsModel) askDelete() {
	plan, ok := m.list.current()
	if !ok {
		return
	}
	ctx, id, svc := m.ctx, plan.ID, m.workouts
	m.confirm = confirmModel{
		question: fmt.Sprintf("¿Eliminar \"%s\"?", plan.Name),
		onYes: func() tea.Msg {
			return doneMsg{result: svc.Delete(ctx, id), status: "Plan eliminado"}
		},
	}
}

func (m *WorkoutsModel) View() string {
	var b strings.Builder
	hotKeys := "enter: ver │ n: nuevo │ g: generar con IA │ d: eliminar │ r: recargar │ esc: panel"

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
	case m.mode == modeGenerate:
		b.WriteString(m.generate.View())
		b.WriteString("\n\n")
		b.WriteString(submitLabel("Generar", m.submitting))
		b.WriteString("\n")
		hotKeys = formHotKeys
	case m.mode == modeDetail:
		if plan, ok := m.list.current(); ok {
			b.WriteString(workoutDetail(plan))
			b.WriteString("\n")
		}
		if m.submitting {
			b.WriteString("\nGuardando...\n")
		}
		hotKeys = "s: iniciar │ +/-: progreso │ f: completar │ e: editar │ c: copiar │ d: eliminar │ esc: volver"
	default:
		m.writeList(&b)
	}

	writeFeedback(&b, m.status, m.errMsg)

	return renderPage("ENTRENAMIENTOS", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *WorkoutsModel) writeList(b *strings.Builder) {
	if m.list.loading {
		b.WriteString(m.list.spinner.View())
		b.WriteString(" Cargando...\n")
		return
	}
	if len(m.list.items) == 0 {
		b.WriteString("No tienes planes de entrenamiento. Pulsa g para generar uno.\n")
		return
	}
	for i, plan := range m.list.items {
		fmt.Fprintf(b, "%s%-32s %-11s %s\n", cursor(i == m.list.idx), fitText(plan.Name, 32),
			workoutStatusName(plan.Status), progressBar(plan.Progress, 10))
	}
}

func (m *WorkoutsModel) cmdLoad() tea.Cmd {
	ctx, svc := m.ctx, m.workouts
	return func() tea.Msg {
		return workoutsLoadedMsg{result: svc.List(ctx)}
	}
}
