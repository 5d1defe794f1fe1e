// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// listModel keeps a cursor over a slice of items loaded from the backend.
type listModel[T any] struct {
	items   []T
	idx     int
	loading bool
	spinner spinner.Model
}

func newListModel[T any]() listModel[T] {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel[T]{spinner: s, loading: true}
}

func (m *listModel[T]) setItems(items []T) {
	m.loading = false
	m.items = items
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// replace swaps the first item match accepts.
func (m *listModel[T]) replace(item T, match func(T) bool) {
	for i := range m.items {
		if match(m.items[i]) {
			m.items[i] = item
			return
		}
	}
}

func (m listModel[T]) current() (T, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[m.idx], true
}

// move handles cursor keys and reports whether msg was consumed.
func (m *listModel[T]) move(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return true
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
		return true
	}
	return false
}

func (m *listModel[T]) startLoading() tea.Cmd {
	m.loading = true
	return m.spinner.Tick
}

func (m *listModel[T]) updateSpinner(msg tea.Msg) (tea.Cmd, bool) {
	tick, ok := msg.(spinner.TickMsg)
	if !ok {
		return nil, false
	}
	if !m.loading {
		return nil, true
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(tick)
	return cmd, true
}

func cursor(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}
