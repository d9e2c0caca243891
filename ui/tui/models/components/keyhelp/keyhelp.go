// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders the key bindings announced by the focused model.
package keyhelp

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/contabancaria/contabancaria/ui/tui/util"
	"github.com/contabancaria/contabancaria/util/slicest"
)

type Model struct {
	KeyMap   help.KeyMap
	Expanded bool

	size util.Size
	help help.Model
}

func New() *Model {
	return &Model{
		help: help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.help.Width = m.size.Width
		return nil
	}

	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		m.KeyMap = msg.KeyMap
	}
	return nil
}

func (m Model) View() string {
	if m.KeyMap == nil {
		return ""
	}
	if m.Expanded {
		groups := slicest.Map(m.KeyMap.FullHelp(), dedupe)
		return m.help.FullHelpView(groups)
	}
	return m.help.ShortHelpView(dedupe(m.KeyMap.ShortHelp()))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.Expanded = !m.Expanded
}

// dedupe drops bindings whose help key was already listed, keeping the
// first (innermost) one.
func dedupe(bindings []key.Binding) []key.Binding {
	seen := make(map[string]bool, len(bindings))
	return slicest.Filter(bindings, func(b key.Binding) bool {
		k := b.Help().Key
		if !b.Enabled() || seen[k] {
			return false
		}
		seen[k] = true
		return true
	})
}
