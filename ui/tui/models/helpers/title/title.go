// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package windowtitle keeps the terminal title in sync with the screen
// state, e.g. "Abrir Conta Bancária | Conta criada com sucesso!".
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

type titleMsg string

// Set changes the suffix shown after the base title. An empty title shows
// the base alone.
func Set(title string) tea.Cmd {
	return func() tea.Msg { return titleMsg(title) }
}

type TitleHandler struct {
	Base      string
	Delimiter string
	current   string
}

func NewHandler(base string, delimiter string) *TitleHandler {
	return &TitleHandler{
		Base:      base,
		Delimiter: delimiter,
	}
}

// Title is the text currently shown.
func (t TitleHandler) Title() string {
	if t.current == "" {
		return t.Base
	}
	return t.Base + t.Delimiter + t.current
}

func (t TitleHandler) Init() tea.Cmd {
	return tea.SetWindowTitle(t.Title())
}

// Handle consumes title messages and returns the command updating the
// terminal, or nil when msg is not a title message or nothing changed.
func (t *TitleHandler) Handle(msg tea.Msg) (tea.Cmd, bool) {
	title, ok := msg.(titleMsg)
	if !ok {
		return nil, false
	}
	if t.current == string(title) {
		return nil, true
	}
	t.current = string(title)
	return tea.SetWindowTitle(t.Title()), true
}
