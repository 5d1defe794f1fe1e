// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	logout   key.Binding
	refresh  key.Binding
	newItem  key.Binding
	generate key.Binding
	edit     key.Binding
	delete   key.Binding
	copy     key.Binding
	start    key.Binding
	complete key.Binding
	more     key.Binding
	less     key.Binding
	calories key.Binding
	password key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab", "down")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab", "up")),
	logout:   key.NewBinding(key.WithKeys("L")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	generate: key.NewBinding(key.WithKeys("g")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	start:    key.NewBinding(key.WithKeys("s")),
	complete: key.NewBinding(key.WithKeys("f")),
	more:     key.NewBinding(key.WithKeys("+")),
	less:     key.NewBinding(key.WithKeys("-")),
	calories: key.NewBinding(key.WithKeys("K")),
	password: key.NewBinding(key.WithKeys("p")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
