// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root is the top level tea.Model: header, the account form behind
// the popup injector, and the key help footer.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/contabancaria/contabancaria/buildvars"
	"github.com/contabancaria/contabancaria/internal/i18n"
	"github.com/contabancaria/contabancaria/ui/tui/models/components/header"
	"github.com/contabancaria/contabancaria/ui/tui/models/components/popup"
	"github.com/contabancaria/contabancaria/ui/tui/models/components/stack"
	windowtitle "github.com/contabancaria/contabancaria/ui/tui/models/helpers/title"
	"github.com/contabancaria/contabancaria/ui/tui/models/views/accountform"
	"github.com/contabancaria/contabancaria/ui/tui/models/views/footer"
	"github.com/contabancaria/contabancaria/ui/tui/util"
)

type Model struct {
	stack        *stack.Model
	injector     *popup.Injector
	form         *accountform.Model
	footer       *util.Model
	keyMap       KeyMap
	titleHandler *windowtitle.TitleHandler
}

func New(opts accountform.Options) *Model {
	keyMap := BaseKeyMap()
	title := i18n.T("app.title")

	_form := accountform.New(opts)
	_injector := popup.NewInjector(util.ModelPointer(_form))
	_footer_ptr := util.ModelPointer(footer.New(keyMap))

	return &Model{
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithFocus(stack.FocusIndex(1)),
			stack.WithItem(util.ModelPointer(header.New(title)), header.SizeConfig),
			stack.WithItem(util.ModelPointer(_injector), stack.VariableSize(1), dropKeyMapAnnouncements),
			stack.WithItem(_footer_ptr, footer.SizeConfig),
		),
		injector:     _injector,
		form:         _form,
		footer:       _footer_ptr,
		keyMap:       keyMap,
		titleHandler: windowtitle.NewHandler(fmt.Sprintf("%s %s", title, buildvars.DisplayVersion()), " | "),
	}
}

type helpToggledMsg struct{}

// dropKeyMapAnnouncements keeps footer-bound announcements away from the
// form inputs.
func dropKeyMapAnnouncements(_ util.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(util.AnnounceKeyMapMsg); ok {
		return nil
	}
	return msg
}

func (m Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.stack.Init()
	focusCmd, keyMap := m.stack.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keyMap.Exit):
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Help):
			util.BorrowModelFunc(m.footer, func(_footer *footer.Model) {
				_footer.ToggleExpanded()
			})
			// lets the stack resize the footer to the new help height
			return m, m.stack.Update(helpToggledMsg{})
		}
		return m, m.stack.Update(msg)
	}

	if cmd, ok := m.titleHandler.Handle(msg); ok {
		return m, cmd
	}

	return m, m.stack.Update(msg)
}

func (m Model) View() string {
	return m.stack.View()
}

// Form is the account form screen.
func (m Model) Form() *accountform.Model {
	return m.form
}

// PopupOpen reports whether a dialog blocks the form.
func (m Model) PopupOpen() bool {
	return m.injector.Open()
}

// Title is the current terminal window title.
func (m Model) Title() string {
	return m.titleHandler.Title()
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)
