// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/contabancaria/contabancaria/internal/i18n"
	"github.com/contabancaria/contabancaria/ui/tui/models/helpers/form"
)

// Toggle is an on/off switch.
type Toggle struct {
	Label   string
	Default bool
	KeyMap  ToggleKeyMap

	on      bool
	focused bool
}

type ToggleKeyMap struct {
	Toggle key.Binding
	Done   key.Binding
}

func (k ToggleKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Toggle, k.Done} }

func (k ToggleKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Toggle, k.Done}} }

func NewToggle(label string, def bool) *Toggle {
	return &Toggle{
		Label:   label,
		Default: def,
		on:      def,
		KeyMap: ToggleKeyMap{
			Toggle: key.NewBinding(
				key.WithKeys(" ", "left", "right", "h", "l"),
				key.WithHelp("space", i18n.T("help.toggle")),
			),
			Done: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", i18n.T("help.next")),
			),
		},
	}
}

func (t *Toggle) Focus() (tea.Cmd, help.KeyMap) {
	t.focused = true
	return nil, t.KeyMap
}

func (t *Toggle) Blur() {
	t.focused = false
}

func (t *Toggle) Init() tea.Cmd { return nil }

func (t *Toggle) Reset() {
	t.on = t.Default
}

func (t *Toggle) Get() any {
	return t.on
}

func (t *Toggle) Set(v any) {
	if v, ok := v.(bool); ok {
		t.on = v
	}
}

func (t *Toggle) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, form.ActionNone
	}
	switch {
	case key.Matches(kmsg, t.KeyMap.Done):
		return nil, form.ActionNext
	case key.Matches(kmsg, t.KeyMap.Toggle):
		t.on = !t.on
	}
	return nil, form.ActionNone
}

func (t *Toggle) View(width int) string {
	knob := mutedStyle.Render("( ○   )")
	if t.on {
		knob = focusedValueStyle.Render("(   ● )")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, renderLabel(t.Label, t.focused, width), " ", knob)
}

var _ form.FormInput = (*Toggle)(nil)
