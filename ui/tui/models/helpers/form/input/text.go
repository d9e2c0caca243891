// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/contabancaria/contabancaria/internal/i18n"
	"github.com/contabancaria/contabancaria/ui/tui/models/helpers/form"
)

type Text struct {
	Label       string
	Placeholder string
	KeyMap      TextKeyMap
	// Accept filters typed runes; nil accepts everything.
	Accept func(rune) bool

	input   textinput.Model
	focused bool
}

type TextKeyMap struct {
	Next key.Binding
}

func (k TextKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Next} }

func (k TextKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Next}} }

type TextOpt = func(t *Text)

// WithCharLimit caps the number of characters the input accepts.
func WithCharLimit(n int) TextOpt {
	return func(t *Text) { t.input.CharLimit = n }
}

// WithAccept installs a rune filter, e.g. for numeric fields.
func WithAccept(fn func(rune) bool) TextOpt {
	return func(t *Text) { t.Accept = fn }
}

// NumericRunes accepts digits and a decimal point.
func NumericRunes(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.'
}

func NewText(label, placeholder string, opts ...TextOpt) *Text {
	t := &Text{
		Label:       label,
		Placeholder: placeholder,
		KeyMap: TextKeyMap{
			Next: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", i18n.T("help.next")),
			),
		},
		input: textinput.New(),
	}
	t.input.Prompt = "› "
	t.input.CharLimit = 64
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Text) Blur() {
	t.input.Blur()
	t.focused = false
}

func (t *Text) Focus() (tea.Cmd, help.KeyMap) {
	t.focused = true
	return t.input.Focus(), t.KeyMap
}

func (t *Text) Get() any {
	return t.input.Value()
}

func (t *Text) Init() tea.Cmd {
	return nil
}

func (t *Text) Reset() {
	t.input.SetValue("")
}

func (t *Text) Set(value any) {
	if value, ok := value.(string); ok {
		t.input.SetValue(value)
	}
}

func (t *Text) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(kmsg, t.KeyMap.Next) {
			return nil, form.ActionNext
		}
		if t.Accept != nil && kmsg.Type == tea.KeySpace && !t.Accept(' ') {
			return nil, form.ActionNone
		}
		if t.Accept != nil && kmsg.Type == tea.KeyRunes {
			kept := make([]rune, 0, len(kmsg.Runes))
			for _, r := range kmsg.Runes {
				if t.Accept(r) {
					kept = append(kept, r)
				}
			}
			if len(kept) == 0 {
				return nil, form.ActionNone
			}
			kmsg.Runes = kept
			msg = kmsg
		}
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd, form.ActionNone
}

func (t *Text) View(width int) string {
	t.input.Width = max(width-4, 1)
	t.input.Placeholder = t.Placeholder
	if t.focused {
		t.input.TextStyle = focusedValueStyle
	} else {
		t.input.TextStyle = valueStyle
	}

	return lipgloss.JoinVertical(lipgloss.Left, renderLabel(t.Label, t.focused, width), t.input.View())
}

var _ form.FormInput = (*Text)(nil)
