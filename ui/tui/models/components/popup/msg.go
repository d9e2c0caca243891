// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/contabancaria/contabancaria/ui/tui/util"
)

type openMsg struct {
	Model   *util.Model
	OnClose func(*util.Model) tea.Cmd
}

type closeMsg struct{}

// Open shows m above everything else until Close is sent.
func Open(m *util.Model) tea.Cmd {
	return func() tea.Msg { return openMsg{Model: m} }
}

// OpenWithCallback is Open with a hook that runs when the popup closes.
func OpenWithCallback(m *util.Model, cb func(*util.Model) tea.Cmd) tea.Cmd {
	return func() tea.Msg { return openMsg{Model: m, OnClose: cb} }
}

// Close dismisses the topmost popup.
func Close() tea.Cmd {
	return func() tea.Msg { return closeMsg{} }
}
