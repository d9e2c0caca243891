// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/contabancaria/contabancaria/ui/tui/models/helpers/form"
)

type Button struct {
	Label    string
	Disabled bool
	KeyMap   ButtonKeyMap

	DisabledStyle lipgloss.Style
	BlurredStyle  lipgloss.Style
	FocusedStyle  lipgloss.Style

	focused bool
}

type ButtonKeyMap struct {
	Click key.Binding
}

func (k ButtonKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Click} }

func (k ButtonKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Click}} }

// NewButton builds a submit button; help describes the click binding in the
// footer.
func NewButton(label, help string, disabled bool) *Button {
	base := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder())

	return &Button{
		Label:    label,
		Disabled: disabled,
		KeyMap: ButtonKeyMap{
			Click: key.NewBinding(
				key.WithKeys("enter", " "),
				key.WithHelp("enter", help),
			),
		},
		DisabledStyle: base.
			BorderForeground(colorSubtle).
			Foreground(colorSubtle),
		BlurredStyle: base.
			BorderForeground(colorAccent).
			Foreground(colorAccent),
		FocusedStyle: base.
			BorderForeground(colorAccent).
			Background(colorAccent).
			Foreground(lipgloss.Color("231")).
			Bold(true),
	}
}

func (b *Button) Focus() (tea.Cmd, help.KeyMap) {
	b.focused = true
	b.KeyMap.Click.SetEnabled(!b.Disabled)
	return nil, b.KeyMap
}

func (b *Button) Blur() {
	b.focused = false
}

func (b *Button) SetDisabled(disabled bool) {
	b.Disabled = disabled
	b.KeyMap.Click.SetEnabled(!disabled)
}

func (b *Button) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && !b.Disabled && key.Matches(msg, b.KeyMap.Click) {
		return nil, form.ActionSubmit
	}
	return nil, form.ActionNone
}

func (b *Button) View(width int) string {
	style := b.BlurredStyle
	switch {
	case b.Disabled:
		style = b.DisabledStyle
	case b.focused:
		style = b.FocusedStyle
	}
	if width > 2 {
		style = style.MaxWidth(width)
	}
	return style.Render(b.Label)
}

// not needed
func (b *Button) Get() any      { return nil }
func (b *Button) Init() tea.Cmd { return nil }
func (b *Button) Reset()        {}
func (b *Button) Set(any)       {}

var (
	_ form.FormInput = (*Button)(nil)
	_ form.Disabler  = (*Button)(nil)
)
