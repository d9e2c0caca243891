// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/contabancaria/contabancaria/ui/tui/util"
	"github.com/contabancaria/contabancaria/util/slicest"
)

// MsgFilter may rewrite or drop (return nil) a message before it reaches an
// item.
type MsgFilter = func(model util.Model, msg tea.Msg) tea.Msg

func applyMessageFilters(model util.Model, msg tea.Msg, filters []MsgFilter) tea.Msg {
	return slicest.ReduceD(filters, msg, func(filter MsgFilter, msg tea.Msg) tea.Msg {
		if msg == nil {
			return nil
		}
		return filter(model, msg)
	})
}
