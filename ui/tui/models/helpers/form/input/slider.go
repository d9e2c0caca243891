// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/contabancaria/contabancaria/internal/i18n"
	"github.com/contabancaria/contabancaria/ui/tui/models/helpers/form"
	"github.com/contabancaria/contabancaria/ui/tui/util"
)

// Slider picks an integer in [Min, Max] moving in multiples of Step. The
// label is rendered from the current value on every frame.
type Slider struct {
	Min, Max, Step, Default int
	Label                   func(value int) string
	KeyMap                  SliderKeyMap

	value   int
	focused bool
}

type SliderKeyMap struct {
	Dec     key.Binding
	Inc     key.Binding
	DecFast key.Binding
	IncFast key.Binding
	First   key.Binding
	Last    key.Binding
	Done    key.Binding
}

func (k SliderKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Inc, k.Done} }

func (k SliderKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Dec, k.Inc, k.DecFast, k.IncFast, k.First, k.Last, k.Done}}
}

// fastSteps is how many steps pgup/pgdown move.
const fastSteps = 10

func NewSlider(minimum, maximum, step, def int, label func(int) string) *Slider {
	s := &Slider{
		Min:     minimum,
		Max:     maximum,
		Step:    max(step, 1),
		Default: def,
		Label:   label,
		KeyMap: SliderKeyMap{
			Dec:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "-")),
			Inc:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←/→", i18n.T("help.adjust"))),
			DecFast: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "--")),
			IncFast: key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "++")),
			First:   key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "min")),
			Last:    key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "max")),
			Done:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", i18n.T("help.next"))),
		},
	}
	s.Reset()
	return s
}

// Value is the current slider position.
func (s *Slider) Value() int {
	return s.value
}

// snap clamps v to the range and rounds it to the nearest step from Min.
func (s *Slider) snap(v int) int {
	v = util.Clamp(s.Min, v, s.Max)
	steps := (v - s.Min + s.Step/2) / s.Step
	return util.Clamp(s.Min, s.Min+steps*s.Step, s.Max)
}

func (s *Slider) Focus() (tea.Cmd, help.KeyMap) {
	s.focused = true
	return nil, s.KeyMap
}

func (s *Slider) Blur() {
	s.focused = false
}

func (s *Slider) Init() tea.Cmd { return nil }

func (s *Slider) Reset() {
	s.value = s.snap(s.Default)
}

func (s *Slider) Get() any {
	return s.value
}

func (s *Slider) Set(v any) {
	switch v := v.(type) {
	case int:
		s.value = s.snap(v)
	case int64:
		s.value = s.snap(int(v))
	case float64:
		s.value = s.snap(int(v))
	}
}

func (s *Slider) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, form.ActionNone
	}

	switch {
	case key.Matches(kmsg, s.KeyMap.Done):
		return nil, form.ActionNext
	case key.Matches(kmsg, s.KeyMap.Dec):
		s.value = s.snap(s.value - s.Step)
	case key.Matches(kmsg, s.KeyMap.Inc):
		s.value = s.snap(s.value + s.Step)
	case key.Matches(kmsg, s.KeyMap.DecFast):
		s.value = s.snap(s.value - fastSteps*s.Step)
	case key.Matches(kmsg, s.KeyMap.IncFast):
		s.value = s.snap(s.value + fastSteps*s.Step)
	case key.Matches(kmsg, s.KeyMap.First):
		s.value = s.Min
	case key.Matches(kmsg, s.KeyMap.Last):
		s.value = s.snap(s.Max)
	}
	return nil, form.ActionNone
}

// track draws the bar with the thumb at the current position.
func (s *Slider) track(width int) string {
	width = max(width, 3)
	span := s.Max - s.Min
	pos := 0
	if span > 0 {
		pos = (s.value - s.Min) * (width - 1) / span
	}

	filled := strings.Repeat("━", pos)
	rest := strings.Repeat("─", width-1-pos)
	thumb := "●"

	style := focusedValueStyle
	if !s.focused {
		style = valueStyle
	}
	return style.Render(filled+thumb) + mutedStyle.Render(rest)
}

func (s *Slider) View(width int) string {
	label := ""
	if s.Label != nil {
		label = s.Label(s.value)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		renderLabel(label, s.focused, width),
		s.track(min(max(width-2, 3), 40)),
	)
}

var _ form.FormInput = (*Slider)(nil)
