// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/contabancaria/contabancaria/ui/tui/models/components/stack"
	"github.com/contabancaria/contabancaria/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

// Calculate hides the header on very short terminals so the form keeps its
// rows.
func (s *sizeConfig) Calculate(_ util.Model, _ int, total int) int {
	if total >= 20 {
		return 2
	}
	return 0
}
