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

const (
	nutritionName = iota
	nutritionDescription
	nutritionGoal
	nutritionCalories
	nutritionRestrictions
)

const (
	genNutritionGoal = iota
	genNutritionCalories
	genNutritionRestrictions
)

const (
	calAge = iota
	calGender
	calHeight
	calWeight
	calActivity
)

// NutritionModel lists the nutrition plans, generates new ones and runs the
// calorie calculator.
type NutritionModel struct {
	ctx       context.Context
	nutrition service.NutritionService

	list       listModel[models.NutritionPlan]
	mode       planMode
	form       formModel
	editingID  int64
	generate   formModel
	calc       formModel
	calories   *models.CalorieResult
	confirm    confirmModel
	submitting bool
	status     string
	errMsg     string
}

func NewNutritionModel(ctx context.Context, nutrition service.NutritionService) *NutritionModel {
	return &NutritionModel{
		ctx:       ctx,
		nutrition: nutrition,
		list:      newListModel[models.NutritionPlan](),
	}
}

func newNutritionForm(plan *models.NutritionPlan) formModel {
	title := "Nuevo plan"
	if plan != nil {
		title = "Editar: " + plan.Name
	}
	f := newFormModel(title,
		formField{label: "Nombre", placeholder: "Déficit suave"},
		formField{label: "Descripción"},
		formField{label: "Objetivo", placeholder: "weight_loss / muscle_gain / maintenance"},
		formField{label: "Calorías diarias", placeholder: "2000", charLimit: 5},
		formField{label: "Restricciones", placeholder: "vegetariano, sin gluten..."},
	)
	if plan != nil {
		f.setValue(nutritionName, plan.Name)
		f.setValue(nutritionDescription, plan.Description)
		f.setValue(nutritionGoal, plan.Goal)
		if plan.DailyCalories > 0 {
			f.setValue(nutritionCalories, fmt.Sprint(plan.DailyCalories))
		}
		f.setValue(nutritionRestrictions, plan.DietaryRestrictions)
	}
	return f
}

func newNutritionGenerateForm() formModel {
	return newFormModel("Generar con IA",
		formField{label: "Objetivo", placeholder: "weight_loss / muscle_gain / maintenance"},
		formField{label: "Calorías diarias", placeholder: "2000", charLimit: 5},
		formField{label: "Restricciones", placeholder: "opcional"},
	)
}

func newCaloriesForm() formModel {
	return newFormModel("Calculadora de calorías",
		formField{label: "Edad", placeholder: "30", charLimit: 3},
		formField{label: "Género", placeholder: "male / female"},
		formField{label: "Altura (cm)", placeholder: "170", charLimit: 5},
		formField{label: "Peso (kg)", placeholder: "70", charLimit: 5},
		formField{label: "Actividad", placeholder: "sedentary / light / moderate / active / very_active"},
	)
}

func (m *NutritionModel) Init() tea.Cmd {
	m.mode = modeList
	m.submitting = false
	m.confirm = confirmModel{}
	m.errMsg = ""
	return tea.Batch(m.list.startLoading(), m.cmdLoad())
}

func (m *NutritionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.list.updateSpinner(msg); ok {
		return m, cmd
	}

	switch msg := msg.(type) {
	case nutritionLoadedMsg:
		if !msg.result.Success() {
			m.list.loading = false
			m.errMsg = errorText(msg.result.Err)
			return m, nil
		}
		m.list.setItems(msg.result.Data)
		return m, nil
	case nutritionSavedMsg:
		m.submitting = false
		if !msg.result.Success() {
			m.errMsg = errorText(msg.result.Err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.status
		m.mode = modeList
		return m, tea.Batch(m.list.startLoading(), m.cmdLoad(), cmdClearStatus())
	case caloriesMsg:
		m.submitting = false
		if !msg.result.Success() {
			m.errMsg = errorText(msg.result.Err)
			return m, nil
		}
		m.errMsg = ""
		result := msg.result.Data
		m.calories = &result
		return m, nil
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
		case modeCalories:
			return m, m.updateCalories(msg)
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
	case modeCalories:
		return m, m.calc.update(msg)
	}
	return m, nil
}

func (m *NutritionModel) updateConfirm(msg tea.KeyMsg) tea.Cmd {
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

func (m *NutritionModel) updateList(msg tea.KeyMsg) tea.Cmd {
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
		m.form = newNutritionForm(nil)
		m.mode = modeForm
	case key.Matches(msg, keys.generate):
		m.errMsg = ""
		m.generate = newNutritionGenerateForm()
		m.mode = modeGenerate
	case key.Matches(msg, keys.calories):
		m.errMsg = ""
		m.calories = nil
		m.calc = newCaloriesForm()
		m.mode = modeCalories
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

func (m *NutritionModel) updateDetail(msg tea.KeyMsg) tea.Cmd {
	plan, ok := m.list.current()
	if !ok {
		m.mode = modeList
		return nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		m.errMsg = ""
	case key.Matches(msg, keys.copy):
		return cmdCopyToClipboard(nutritionDetail(plan))
	case key.Matches(msg, keys.edit):
		m.errMsg = ""
		m.editingID = plan.ID
		m.form = newNutritionForm(&plan)
		m.mode = modeForm
	case key.Matches(msg, keys.delete):
		m.askDelete()
	}
	return nil
}

func (m *NutritionModel) updateForm(msg tea.KeyMsg) tea.Cmd {
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
		calories, ok := parseIntField(m.form.value(nutritionCalories))
		if !ok {
			m.errMsg = app.MsgInvalidCalories
			return nil
		}
		plan := models.NutritionPlan{
			Name:                m.form.value(nutritionName),
			Description:         m.form.value(nutritionDescription),
			Goal:                m.form.value(nutritionGoal),
			DailyCalories:       calories,
			DietaryRestrictions: m.form.value(nutritionRestrictions),
		}

		m.errMsg = ""
		m.submitting = true
		ctx, id, svc := m.ctx, m.editingID, m.nutrition
		if id != 0 {
			return func() tea.Msg {
				return nutritionSavedMsg{result: svc.Update(ctx, id, plan), status: "Plan actualizado"}
			}
		}
		return func() tea.Msg {
			return nutritionSavedMsg{result: svc.Create(ctx, plan), status: "Plan creado"}
		}
	}
	return m.form.update(msg)
}

func (m *NutritionModel) updateGenerate(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.errMsg = ""
		m.mode = modeList
		return nil
	case key.Matches(msg, keys.enter):
		if m.submitting {
			return nil
		}
		calories, ok := parseIntField(m.generate.value(genNutritionCalories))
		if !ok {
			m.errMsg = app.MsgInvalidCalories
			return nil
		}
		req := models.NutritionGenerationRequest{
			Goal:                m.generate.value(genNutritionGoal),
			DailyCalories:       calories,
			DietaryRestrictions: m.generate.value(genNutritionRestrictions),
		}

		m.errMsg = ""
		m.submitting = true
		ctx, svc := m.ctx, m.nutrition
		return func() tea.Msg {
			return nutritionSavedMsg{result: svc.Generate(ctx, req), status: "Plan generado"}
		}
	}
	return m.generate.update(msg)
}

func (m *NutritionModel) updateCalories(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.errMsg = ""
		m.mode = modeList
		return nil
	case key.Matches(msg, keys.enter):
		if m.submitting {
			return nil
		}
		age, ageOK := parseIntField(m.calc.value(calAge))
		height, heightOK := parseFloatField(m.calc.value(calHeight))
		weight, weightOK := parseFloatField(m.calc.value(calWeight))
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
		req := models.CalorieRequest{
			Age:           age,
			Gender:        strings.ToLower(m.calc.value(calGender)),
			Height:        height,
			Weight:        weight,
			ActivityLevel: m.calc.value(calActivity),
		}

		m.errMsg = ""
		m.calories = nil
		m.submitting = true
		ctx, svc := m.ctx, m.nutrition
		return func() tea.Msg {
			return caloriesMsg{result: svc.CalculateCalories(ctx, req)}
		}
	}
	return m.calc.update(msg)
}

func (m *NutritionModel) askDelete() {
	plan, ok := m.list.current()
	if !ok {
		return
	}
	ctx, id, svc := m.ctx, plan.ID, m.nutrition
	m.confirm = confirmModel{
		question: fmt.Sprintf("¿Eliminar \"%s\"?", plan.Name),
		onYes: func() tea.Msg {
			return doneMsg{result: svc.Delete(ctx, id), status: "Plan eliminado"}
		},
	}
}

func (m *NutritionModel) View() string {
	var b strings.Builder
	hotKeys := "enter: ver │ n: nuevo │ g: generar con IA │ K: calorías │ d: eliminar │ r: recargar │ esc: panel"

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
	case m.mode == modeCalories:
		b.WriteString(m.calc.View())
		b.WriteString("\n\n")
		b.WriteString(submitLabel("Calcular", m.submitting))
		b.WriteString("\n")
		if m.calories != nil {
			b.WriteString("\n")
			b.WriteString(caloriesView(*m.calories))
			b.WriteString("\n")
		}
		hotKeys = formHotKeys
	case m.mode == modeDetail:
		if plan, ok := m.list.current(); ok {
			b.WriteString(nutritionDetail(plan))
			b.WriteString("\n")
		}
		hotKeys = "e: editar │ c: copiar │ d: eliminar │ esc: volver"
	default:
		m.writeList(&b)
	}

	writeFeedback(&b, m.status, m.errMsg)

	return renderPage("NUTRICIÓN", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func caloriesView(r models.CalorieResult) string {
	return fmt.Sprintf("Metabolismo basal: %.0f kcal\nCalorías diarias:  %.0f kcal\nProteínas %.0f g │ Carbohidratos %.0f g │ Grasas %.0f g",
		r.BMR, r.DailyCalories, r.Macros.Protein, r.Macros.Carbs, r.Macros.Fats)
}

func (m *NutritionModel) writeList(b *strings.Builder) {
	if m.list.loading {
		b.WriteString(m.list.spinner.View())
		b.WriteString(" Cargando...\n")
		return
	}
	if len(m.list.items) == 0 {
		b.WriteString("No tienes planes de nutrición. Pulsa g para generar uno.\n")
		return
	}
	for i, plan := range m.list.items {
		fmt.Fprintf(b, "%s%-32s %-14s %s kcal\n", cursor(i == m.list.idx), fitText(plan.Name, 32),
			fitText(valueOrDash(plan.Goal), 14), intOrDash(plan.DailyCalories))
	}
}

func (m *NutritionModel) cmdLoad() tea.Cmd {
	ctx, svc := m.ctx, m.nutrition
	return func() tea.Msg {
		return nutritionLoadedMsg{result: svc.List(ctx)}
	}
}
