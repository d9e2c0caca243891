// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import "github.com/charmbracelet/lipgloss"

const (
	colorSubtle = lipgloss.Color("240")
	colorAccent = lipgloss.Color("33") // the original form's #007bff blue
	colorMuted  = lipgloss.Color("245")
)

var (
	labelStyle        = lipgloss.NewStyle().Foreground(colorSubtle)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	valueStyle        = lipgloss.NewStyle()
	focusedValueStyle = lipgloss.NewStyle().Foreground(colorAccent)
	mutedStyle        = lipgloss.NewStyle().Foreground(colorMuted)
)

func renderLabel(label string, focused bool, width int) string {
	if focused {
		return focusedLabelStyle.MaxWidth(max(width, 1)).Render(label)
	}
	return labelStyle.MaxWidth(max(width, 1)).Render(label)
}
