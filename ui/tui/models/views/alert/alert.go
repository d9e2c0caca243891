// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package alert is the acknowledgement dialog shown through the popup
// injector: a title, a message and a single OK button.
package alert

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/contabancaria/contabancaria/internal/i18n"
	"github.com/contabancaria/contabancaria/ui/tui/models/components/popup"
	"github.com/contabancaria/contabancaria/ui/tui/util"
)

type Kind int

const (
	KindError Kind = iota
	KindSuccess
)

var (
	errorTitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	successTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true)
	buttonStyle       = lipgloss.NewStyle().
				Padding(0, 2).
				Background(lipgloss.Color("33")).
				Foreground(lipgloss.Color("231")).
				Bold(true)
)

type KeyMap struct {
	Close key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Close} }

func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Close}} }

type Model struct {
	Kind    Kind
	Title   string
	Message string
	KeyMap  KeyMap

	size util.Size
}

func New(kind Kind, title, message string) *Model {
	return &Model{
		Kind:    kind,
		Title:   title,
		Message: message,
		KeyMap: KeyMap{
			Close: key.NewBinding(
				key.WithKeys("enter", "esc", " "),
				key.WithHelp("enter", i18n.T("help.close")),
			),
		},
	}
}

// NewError is the "Erro de validação" dialog for message.
func NewError(message string) *Model {
	return New(KindError, i18n.T("validation.title"), message)
}

// NewSuccess is the "Conta criada com sucesso!" dialog showing summary.
func NewSuccess(summary string) *Model {
	return New(KindSuccess, i18n.T("summary.success_title"), summary)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.KeyMap.Close) {
		return popup.Close()
	}
	return nil
}

func (m Model) View() string {
	titleStyle := errorTitleStyle
	if m.Kind == KindSuccess {
		titleStyle = successTitleStyle
	}

	body := lipgloss.NewStyle()
	if w := lipgloss.Width(m.Message); m.size.Width > 0 && w > m.size.Width {
		body = body.Width(m.size.Width)
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		titleStyle.Render(m.Title),
		"",
		body.Render(m.Message),
		"",
		buttonStyle.Render(i18n.T("dialog.ok")),
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, m.KeyMap
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
