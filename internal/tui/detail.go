// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/glow-up-client/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is replaced in tests; CI machines have no clipboard.
var writeClipboard = clipboard.WriteAll

const statusTTL = 3 * time.Second

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func workoutStatusName(status string) string {
	switch status {
	case models.WorkoutStatusActive:
		return "En curso"
	case models.WorkoutStatusCompleted:
		return "Completado"
	default:
		return "Pendiente"
	}
}

func workoutDetail(plan models.WorkoutPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  [%s]\n\n", plan.Name, workoutStatusName(plan.Status))
	fmt.Fprintf(&b, "Descripción: %s\n", valueOrDash(plan.Description))
	fmt.Fprintf(&b, "Dificultad:  %s\n", valueOrDash(plan.Difficulty))
	fmt.Fprintf(&b, "Objetivo:    %s\n", valueOrDash(plan.FitnessGoal))
	fmt.Fprintf(&b, "Duración:    %s semanas\n", intOrDash(plan.DurationWeeks))
	fmt.Fprintf(&b, "Progreso:    %s\n", progressBar(plan.Progress, 20))
	if schedule := prettyJSON(plan.Schedule); schedule != "" {
		b.WriteString("\nRutina:\n")
		b.WriteString(schedule)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func nutritionDetail(plan models.NutritionPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", plan.Name)
	fmt.Fprintf(&b, "Descripción:   %s\n", valueOrDash(plan.Description))
	fmt.Fprintf(&b, "Objetivo:      %s\n", valueOrDash(plan.Goal))
	fmt.Fprintf(&b, "Calorías:      %s kcal\n", intOrDash(plan.DailyCalories))
	fmt.Fprintf(&b, "Macros:        P %s%% │ C %s%% │ G %s%%\n",
		floatOrDash(plan.ProteinPercentage, ""), floatOrDash(plan.CarbsPercentage, ""), floatOrDash(plan.FatsPercentage, ""))
	fmt.Fprintf(&b, "Restricciones: %s\n", valueOrDash(plan.DietaryRestrictions))
	if meals := prettyJSON(plan.Meals); meals != "" {
		b.WriteString("\nComidas:\n")
		b.WriteString(meals)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// prettyJSON indents an opaque document generated by the backend. Invalid
// JSON is shown as is.
func prettyJSON(raw json.RawMessage) string {
	if len(bytes.TrimSpace(raw)) == 0 || string(raw) == "null" {
		return ""
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return string(raw)
	}
	return out.String()
}
