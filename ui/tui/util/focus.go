// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/contabancaria/contabancaria/util/slicest"
)

// Focusable is implemented by every model that can receive key input. Focus
// returns the key map the model reacts to so parents can announce it.
type Focusable interface {
	Focus() (tea.Cmd, help.KeyMap)
	Blur()
}

// AnnounceKeyMapMsg tells the footer which keys the focused model handles.
type AnnounceKeyMapMsg struct {
	KeyMap help.KeyMap
}

func AnnounceKeyMapCmd(k help.KeyMap) tea.Cmd {
	return func() tea.Msg {
		return AnnounceKeyMapMsg{KeyMap: k}
	}
}

func MergeKeyMaps(keymaps ...help.KeyMap) help.KeyMap {
	return MergedKeyMaps{KeyMaps: keymaps}
}

type MergedKeyMaps struct {
	KeyMaps []help.KeyMap
}

func (m MergedKeyMaps) ShortHelp() []key.Binding {
	bindings := slicest.Map(m.KeyMaps, func(k help.KeyMap) []key.Binding {
		if k != nil {
			return k.ShortHelp()
		}
		return nil
	})
	return slices.Concat(bindings...)
}

func (m MergedKeyMaps) FullHelp() [][]key.Binding {
	groups := slicest.Map(m.KeyMaps, func(k help.KeyMap) [][]key.Binding {
		if k != nil {
			return k.FullHelp()
		}
		return nil
	})
	return slices.Concat(groups...)
}

var _ help.KeyMap = (*MergedKeyMaps)(nil)
