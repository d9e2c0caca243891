// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/contabancaria/contabancaria/internal/i18n"
	"github.com/contabancaria/contabancaria/ui/tui/models/helpers/form"
	"github.com/contabancaria/contabancaria/util/slicest"
)

// Option is one dropdown entry. Label is displayed, Value is what Get
// returns.
type Option struct {
	Label string
	Value string
}

// Select is a single-choice dropdown cycled with the arrow keys.
type Select struct {
	Label   string
	Options []Option
	KeyMap  SelectKeyMap

	selected int
	focused  bool
}

type SelectKeyMap struct {
	Prev key.Binding
	Next key.Binding
	Done key.Binding
}

func (k SelectKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Next, k.Done} }

func (k SelectKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Prev, k.Next, k.Done}} }

func NewSelect(label string, options ...Option) *Select {
	return &Select{
		Label:   label,
		Options: options,
		KeyMap: SelectKeyMap{
			Prev: key.NewBinding(
				key.WithKeys("left", "h"),
				key.WithHelp("←", i18n.T("help.select")),
			),
			Next: key.NewBinding(
				key.WithKeys("right", "l", " "),
				key.WithHelp("←/→", i18n.T("help.select")),
			),
			Done: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", i18n.T("help.next")),
			),
		},
	}
}

func (s *Select) Focus() (tea.Cmd, help.KeyMap) {
	s.focused = true
	return nil, s.KeyMap
}

func (s *Select) Blur() {
	s.focused = false
}

func (s *Select) Init() tea.Cmd { return nil }

func (s *Select) Reset() {
	s.selected = 0
}

// Selected returns the chosen option.
func (s *Select) Selected() Option {
	if len(s.Options) == 0 {
		return Option{}
	}
	return s.Options[s.selected]
}

func (s *Select) Get() any {
	return s.Selected().Value
}

// Set selects the option whose value equals v. Unknown values are ignored.
func (s *Select) Set(v any) {
	var value string
	switch v := v.(type) {
	case string:
		value = v
	case fmt.Stringer:
		value = v.String()
	default:
		return
	}
	if i := slicest.IndexFunc(s.Options, func(o Option) bool { return o.Value == value }); i >= 0 {
		s.selected = i
	}
}

func (s *Select) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(s.Options) == 0 {
		return nil, form.ActionNone
	}

	n := len(s.Options)
	switch {
	case key.Matches(kmsg, s.KeyMap.Done):
		return nil, form.ActionNext
	case key.Matches(kmsg, s.KeyMap.Prev):
		s.selected = (s.selected - 1 + n) % n
	case key.Matches(kmsg, s.KeyMap.Next):
		s.selected = (s.selected + 1) % n
	}
	return nil, form.ActionNone
}

func (s *Select) View(width int) string {
	style := valueStyle
	if s.focused {
		style = focusedValueStyle
	}
	current := style.Render(fmt.Sprintf("‹ %s ›", s.Selected().Label))

	return lipgloss.JoinVertical(lipgloss.Left, renderLabel(s.Label, s.focused, width), current)
}

var _ form.FormInput = (*Select)(nil)
