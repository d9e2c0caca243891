// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/contabancaria/contabancaria/ui/tui/models/components/keyhelp"
	"github.com/contabancaria/contabancaria/ui/tui/util"
)

type Model struct {
	baseKeyMap help.KeyMap
	size       util.Size
	help       *keyhelp.Model
}

func New(baseKeyMap help.KeyMap) *Model {
	m := &Model{
		baseKeyMap: baseKeyMap,
		help:       keyhelp.New(),
	}
	m.help.KeyMap = baseKeyMap
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	// keys announced by the focused model come first, global keys last
	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		return m.help.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap),
		})
	}

	m.size.Update(msg)
	return m.help.Update(msg)
}

func (m Model) view() string {
	return m.help.View()
}

func (m Model) View() string {
	hPos := lipgloss.Left
	if m.help.Expanded {
		hPos = lipgloss.Center
	}

	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		Render(lipgloss.Place(
			m.size.Width, max(m.size.Height-1, 0),
			hPos, lipgloss.Top,
			m.view(),
		))
}

// Focus is a no-op, the footer never takes key input.
func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}

// Expanded reports whether the full help is shown.
func (m *Model) Expanded() bool {
	return m.help.Expanded
}
