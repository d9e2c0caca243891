// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package stack lays out child models along one axis and routes messages
// and focus to them.
package stack

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/contabancaria/contabancaria/ui/tui/util"
	"github.com/contabancaria/contabancaria/util/slicest"
)

const (
	Vertical   Orientation = true
	Horizontal Orientation = false
)

type Orientation bool

type Model struct {
	Orientation Orientation
	Align       lipgloss.Position
	Gap         int
	MsgFilters  []MsgFilter

	items   []Item
	size    util.Size
	focused Focus
}

type Item struct {
	Model      *util.Model
	SizeConfig SizeConfig
	MsgFilters []MsgFilter
	size       int
	oldSize    int
}

func (s Model) Init() tea.Cmd {
	return tea.Batch(slicest.Map(s.items, func(item Item) tea.Cmd {
		return (*item.Model).Init()
	})...)
}

func (s *Model) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if s.size.Update(msg) {
		s.calculateItemSizes()
		return tea.Batch(s.updateResizedItems(true)...)
	}

	cmds = append(cmds, slicest.Map(s.items, func(item Item) tea.Cmd {
		filtered := applyMessageFilters(*item.Model, msg, item.MsgFilters)
		filtered = applyMessageFilters(*item.Model, filtered, s.MsgFilters)
		if filtered == nil {
			return nil
		}
		return (*item.Model).Update(filtered)
	})...)

	// content driven SizeConfigs may change after an update
	s.calculateItemSizes()
	cmds = append(cmds, s.updateResizedItems(false)...)

	return tea.Batch(cmds...)
}

func (s Model) View() string {
	var joiner func(pos lipgloss.Position, strs ...string) string
	var styler func(size int, margin int) lipgloss.Style
	switch s.Orientation {
	case Vertical:
		joiner = lipgloss.JoinVertical
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(s.size.Width).
				Height(size).
				MaxWidth(s.size.Width).
				MaxHeight(size + margin).
				MarginTop(margin)
		}
	case Horizontal:
		joiner = lipgloss.JoinHorizontal
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(size).
				Height(s.size.Height).
				MaxWidth(size + margin).
				MaxHeight(s.size.Height).
				MarginLeft(margin)
		}
	}

	views := make([]string, 0, len(s.items))
	for i, item := range s.items {
		if item.size == 0 {
			continue
		}
		// no gap before the first item
		margin := s.Gap * min(i, 1)
		views = append(views, styler(item.size, margin).Render((*item.Model).View()))
	}
	return joiner(s.Align, views...)
}

func (s *Model) Focus() (tea.Cmd, help.KeyMap) {
	if len(s.items) == 0 {
		return nil, nil
	}
	if s.focused == FocusAll() {
		cmds := make([]tea.Cmd, len(s.items))
		keyMaps := make([]help.KeyMap, len(s.items))
		for i, item := range s.items {
			cmds[i], keyMaps[i] = (*item.Model).Focus()
		}
		return tea.Batch(cmds...), util.MergeKeyMaps(keyMaps...)
	}
	return (*s.items[s.focused].Model).Focus()
}

func (s *Model) Blur() {
	if len(s.items) == 0 {
		return
	}
	if s.focused == FocusAll() {
		for _, item := range s.items {
			(*item.Model).Blur()
		}
		return
	}
	(*s.items[s.focused].Model).Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

type Focus int

func FocusAll() Focus        { return -1 }
func FocusIndex(i int) Focus { return Focus(i) }

func (s *Model) SetFocus(focus Focus) (tea.Cmd, help.KeyMap) {
	s.Blur()
	s.focused = util.Clamp(FocusAll(), focus, Focus(len(s.items)-1))
	return s.Focus()
}
