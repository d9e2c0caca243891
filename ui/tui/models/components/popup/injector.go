// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package popup overlays modal models on top of a child view. While a popup
// is open every non-size message goes to it alone, which makes it blocking
// for the view underneath.
package popup

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/contabancaria/contabancaria/ui/tui/util"
)

const (
	reservedHeight int = 2
	reservedWidth  int = 6
)

var (
	frameStyle = lipgloss.
			NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Margin(0, 1)
	dimmedStyle = lipgloss.
			NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#DDDADA", Dark: "#3C3C3C"})
)

type popup struct {
	model   *util.Model
	onClose func(*util.Model) tea.Cmd
}

type Injector struct {
	child  *util.Model
	popups []popup
	size   util.Size
}

func NewInjector(child *util.Model) *Injector {
	return &Injector{
		child: child,
	}
}

func (m Injector) Init() tea.Cmd {
	return (*m.child).Init()
}

// Open reports whether a popup is shown.
func (m *Injector) Open() bool {
	return len(m.popups) > 0
}

func (m *Injector) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		if len(m.popups) > 0 {
			return tea.Batch(
				(*m.activeModel()).Update(m.popupSize()),
				(*m.child).Update(msg),
			)
		}
		return (*m.child).Update(msg)
	}

	switch msg := msg.(type) {
	case openMsg:
		return m.open(popup{
			model:   msg.Model,
			onClose: msg.OnClose,
		})
	case closeMsg:
		return m.close()
	}

	return (*m.activeModel()).Update(msg)
}

func (m *Injector) popupSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  max(m.size.Width-reservedWidth, 0),
		Height: max(m.size.Height-reservedHeight, 0),
	}
}

// overlay centers v2 on a width x height canvas holding v1. A zero
// dimension falls back to the size of v1.
func overlay(v1, v2 string, width, height int) string {
	v1Lines := strings.Split(v1, "\n")
	if width <= 0 {
		width = lipgloss.Width(v1)
	}
	if height <= 0 {
		height = len(v1Lines)
	}
	for len(v1Lines) < height {
		v1Lines = append(v1Lines, "")
	}

	v2 = lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(v2)
	v2Width, _ := lipgloss.Size(v2)
	v2Lines := strings.Split(v2, "\n")

	offsetLeft := max((width-v2Width)/2, 0)
	offsetTop := max((height-len(v2Lines))/2, 0)

	for i, line := range v2Lines {
		row := i + offsetTop
		if row >= len(v1Lines) {
			break
		}
		left := ansi.Truncate(v1Lines[row], offsetLeft, "")
		if pad := offsetLeft - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(v1Lines[row], offsetLeft+lipgloss.Width(line), "")
		v1Lines[row] = left + line + right
	}

	return strings.Join(v1Lines, "\n")
}

func (m Injector) View() string {
	childView := (*m.child).View()
	if len(m.popups) == 0 {
		return childView
	}

	popupView := frameStyle.Render((*m.activeModel()).View())
	return overlay(dimmedStyle.Render(ansi.Strip(childView)), popupView, m.size.Width, m.size.Height)
}

func (m *Injector) Focus() (tea.Cmd, help.KeyMap) {
	return (*m.activeModel()).Focus()
}

func (m *Injector) Blur() {
	(*m.activeModel()).Blur()
}

// *Injector implements util.Model
var _ util.Model = (*Injector)(nil)

func (m *Injector) open(p popup) tea.Cmd {
	m.Blur()
	m.popups = append(m.popups, p)
	return tea.Batch(
		(*p.model).Init(),
		m.focusActiveModel(),
		(*p.model).Update(m.popupSize()),
	)
}

func (m *Injector) close() tea.Cmd {
	if len(m.popups) == 0 {
		return nil
	}

	m.Blur()
	p := m.popups[len(m.popups)-1]
	m.popups = m.popups[:len(m.popups)-1]

	var onCloseCmd tea.Cmd
	if p.onClose != nil {
		onCloseCmd = p.onClose(p.model)
	}
	return tea.Batch(
		m.focusActiveModel(),
		onCloseCmd,
	)
}

func (m *Injector) activeModel() *util.Model {
	if len(m.popups) > 0 {
		return m.popups[len(m.popups)-1].model
	}
	return m.child
}

func (m *Injector) focusActiveModel() tea.Cmd {
	cmd, keyMap := m.Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}
