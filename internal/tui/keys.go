// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	toggle    key.Binding
	confirm   key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	enter     key.Binding
	quit      key.Binding
	reload    key.Binding
	add       key.Binding
	copy      key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	toggle:    key.NewBinding(key.WithKeys(" ", "space", "enter")),
	confirm:   key.NewBinding(key.WithKeys("s")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	reload:    key.NewBinding(key.WithKeys("r")),
	add:       key.NewBinding(key.WithKeys("a")),
	copy:      key.NewBinding(key.WithKeys("y")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
}
