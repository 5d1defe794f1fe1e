// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/glow-up-client/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const chatHistoryLimit = 20

type chatExchange struct {
	question string
	answer   string
}

// ChatModel is the conversation with the AI coach. Only the latest
// exchanges are kept on screen.
type ChatModel struct {
	ctx context.Context
	ai  service.AIService

	input      textinput.Model
	history    []chatExchange
	submitting bool
	status     string
	errMsg     string
}

func NewChatModel(ctx context.Context, ai service.AIService) *ChatModel {
	in := textinput.New()
	in.Placeholder = "Pregunta lo que quieras sobre tu entrenamiento o dieta"
	in.Width = 60
	in.CharLimit = 1000
	in.Focus()

	return &ChatModel{ctx: ctx, ai: ai, input: in}
}

func (m *ChatModel) Init() tea.Cmd {
	m.submitting = false
	m.input.Focus()
	return textinput.Blink
}

func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chatReplyMsg:
		m.submitting = false
		if !msg.result.Success() {
			m.errMsg = errorText(msg.result.Err)
			m.input.SetValue(msg.question)
			return m, nil
		}
		m.errMsg = ""
		m.history = append(m.history, chatExchange{question: msg.question, answer: msg.result.Data})
		if len(m.history) > chatHistoryLimit {
			m.history = m.history[len(m.history)-chatHistoryLimit:]
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Respuesta copiada"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: PageDashboard} }
		case msg.String() == "ctrl+y":
			if len(m.history) == 0 {
				return m, nil
			}
			return m, cmdCopyToClipboard(m.history[len(m.history)-1].answer)
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			question := m.input.Value()
			m.errMsg = ""
			m.submitting = true
			m.input.SetValue("")
			ctx, ai := m.ctx, m.ai
			return m, func() tea.Msg {
				return chatReplyMsg{question: strings.TrimSpace(question), result: ai.Chat(ctx, question)}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ChatModel) View() string {
	var b strings.Builder

	if len(m.history) == 0 {
		b.WriteString("Hola, soy tu coach. ¿En qué te ayudo hoy?\n")
	}
	for _, ex := range m.history {
		b.WriteString(selectedStyle.Render("Tú: "))
		b.WriteString(ex.question)
		b.WriteString("\n")
		b.WriteString(okStyle.Render("IA: "))
		b.WriteString(ex.answer)
		b.WriteString("\n\n")
	}

	if m.submitting {
		b.WriteString("El coach está escribiendo...\n")
	}
	b.WriteString("\n> ")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	writeFeedback(&b, m.status, m.errMsg)

	return renderPage("COACH IA", strings.TrimRight(b.String(), "\n"), "enter: enviar │ ctrl+y: copiar respuesta │ esc: panel")
}
