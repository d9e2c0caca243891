// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/contabancaria/contabancaria/internal/i18n"
)

type KeyMap struct {
	Exit key.Binding
	Help key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Exit, km.Help}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Help, km.Exit}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// BaseKeyMap holds the global bindings. Help sits on f1 because "?" is a
// valid character in the name field.
func BaseKeyMap() KeyMap {
	return KeyMap{
		Exit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", i18n.T("help.exit")),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", i18n.T("help.help")),
		),
	}
}
