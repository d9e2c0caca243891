// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/contabancaria/contabancaria/ui/tui/models/components/stack"
	"github.com/contabancaria/contabancaria/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 20 }

// Calculate grows the footer with the help view plus the top border.
func (s *sizeConfig) Calculate(model util.Model, _ int, _ int) int {
	if footer, ok := model.(*Model); ok {
		return lipgloss.Height(footer.view()) + 1
	}
	return 2
}
