// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the pointer-receiver flavour of tea.Model used by the nested
// components: Update mutates in place and only returns a command.
type Model interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	Focusable
}

func ModelPointer[T any, PT interface {
	*T
	Model
}](v PT) *Model {
	m := Model(v)
	return &m
}

func BorrowModelFunc[T any, PT interface {
	*T
	Model
}](m *Model, fn func(PT)) {
	t := (*m).(PT)
	fn(t)
	*m = Model(t)
}
