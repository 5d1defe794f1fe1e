// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import tea "github.com/charmbracelet/bubbletea"

// confirmModel asks a yes/no question before a destructive command runs.
type confirmModel struct {
	question string
	onYes    tea.Cmd
}

func (m confirmModel) active() bool {
	return m.question != ""
}

func (m confirmModel) View() string {
	content := m.question + "\n\n"
	content += "y: sí    n: no"
	return overlayBoxStyle.Render(content)
}
