// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formField struct {
	label       string
	placeholder string
	secret      bool
	charLimit   int
}

// formModel is a column of labelled text inputs. Pages embed it for every
// data-entry screen and read the values back by index.
type formModel struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
}

func newFormModel(title string, fields ...formField) formModel {
	m := formModel{title: title}
	for _, f := range fields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.Width = 40
		in.CharLimit = 256
		if f.charLimit > 0 {
			in.CharLimit = f.charLimit
		}
		if f.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		m.labels = append(m.labels, f.label)
		m.inputs = append(m.inputs, in)
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
	return m
}

func (m *formModel) value(i int) string {
	return strings.TrimSpace(m.inputs[i].Value())
}

// rawValue is the unmodified input, used for passwords.
func (m *formModel) rawValue(i int) string {
	return m.inputs[i].Value()
}

func (m *formModel) setValue(i int, v string) {
	m.inputs[i].SetValue(v)
}

func (m *formModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
}

func (m *formModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *formModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// update handles focus movement and forwards everything else to the focused
// input. Enter and esc are left to the page.
func (m *formModel) update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *formModel) View() string {
	labelWidth := lipgloss.Width("Campo")
	for _, l := range m.labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString(selectedStyle.Render(m.title))
		b.WriteString("\n\n")
	}
	b.WriteString(fmt.Sprintf("%-*s │ Valor\n", labelWidth, "Campo"))
	b.WriteString(strings.Repeat("─", labelWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 42))
	b.WriteString("\n")
	for i, in := range m.inputs {
		b.WriteString(fmt.Sprintf("%-*s │ [", labelWidth, m.labels[i]))
		b.WriteString(in.View())
		b.WriteString("]\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// submitLabel renders the form button, showing progress while a request is
// outstanding.
func submitLabel(label string, submitting bool) string {
	if submitting {
		return "[" + label + "...]"
	}
	return "[" + label + "]"
}

const formHotKeys = "esc: volver │ tab/↓: siguiente campo │ enter: confirmar"
