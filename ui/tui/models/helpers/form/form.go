// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/contabancaria/contabancaria/ui/tui/util"
	"github.com/contabancaria/contabancaria/util/slicest"
	"github.com/go-viper/mapstructure/v2"
)

type FormInput interface {
	util.Focusable
	Reset()
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Set(any)
	Get() any
	View(width int) string
}

// Disabler is implemented by inputs that can be switched off while the form
// is invalid (the submit button).
type Disabler interface {
	SetDisabled(bool)
}

type formItem struct {
	id    string
	input FormInput
}

// Form is a vertical list of inputs decoded into T with mapstructure. Inputs
// registered with an empty id take part in focus cycling but not in Get/Set.
type Form[T any] struct {
	OnSubmit func(result T, err error) tea.Cmd
	Validate func(result T) error
	Gap      int

	items       []formItem
	activeIndex int
	focused     bool
	keyMap      KeyMap
	baseKeyMap  help.KeyMap
	err         error
	size        util.Size
}

func (f Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f Form[T]) Update(msg tea.Msg) (Form[T], tea.Cmd) {
	if f.size.Update(msg) {
		return f, nil
	}

	if !f.focused || len(f.items) == 0 {
		return f, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, f.keyMap.Next):
			return f, f.changeActiveIndex(1)
		case key.Matches(kmsg, f.keyMap.Prev):
			return f, f.changeActiveIndex(-1)
		}
	}

	cmd := f.updateActiveInput(msg)
	return f, cmd
}

func (f Form[T]) View() string {
	views := make([]string, 0, 2*len(f.items))
	for i, item := range f.items {
		if i > 0 {
			for range f.Gap {
				views = append(views, "")
			}
		}
		views = append(views, item.input.View(f.size.Width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

func (f *Form[T]) Focus() (tea.Cmd, help.KeyMap) {
	f.focused = true
	if len(f.items) == 0 {
		return nil, f.KeyMap()
	}
	cmd, inputKeyMap := f.items[f.activeIndex].input.Focus()
	return cmd, util.MergeKeyMaps(inputKeyMap, f.keyMap, f.baseKeyMap)
}

func (f *Form[T]) Blur() {
	f.focused = false
	if len(f.items) > 0 {
		f.items[f.activeIndex].input.Blur()
	}
}

// *Form implements util.Focusable
var _ util.Focusable = (*Form[any])(nil)

// KeyMap returns the navigation bindings merged with the base key map.
func (f *Form[T]) KeyMap() help.KeyMap {
	return util.MergeKeyMaps(f.keyMap, f.baseKeyMap)
}

// ActiveIndex is the position of the focused input.
func (f *Form[T]) ActiveIndex() int {
	return f.activeIndex
}

// Err is the result of the last eager validation.
func (f *Form[T]) Err() error {
	return f.err
}

// Valid reports whether the last eager validation passed.
func (f *Form[T]) Valid() bool {
	return f.err == nil
}

func (f *Form[T]) Reset() tea.Cmd {
	for _, item := range f.items {
		item.input.Reset()
	}
	f.revalidate()

	if len(f.items) == 0 {
		return nil
	}
	f.items[f.activeIndex].input.Blur()
	f.activeIndex = 0
	return f.focusActive()
}

// Submit decodes the inputs, runs the validation guard and hands the result
// to OnSubmit.
func (f *Form[T]) Submit() tea.Cmd {
	data, err := f.Get()
	if err == nil && f.Validate != nil {
		err = f.Validate(data)
	}

	if f.OnSubmit == nil {
		return nil
	}
	return f.OnSubmit(data, err)
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	var actionCmd tea.Cmd

	updateCmd, action := f.items[f.activeIndex].input.Update(msg)
	f.revalidate()

	switch action {
	case ActionNone:
	case ActionNext:
		actionCmd = f.changeActiveIndex(1)
	case ActionSubmit:
		actionCmd = f.Submit()
	}

	return tea.Batch(updateCmd, actionCmd)
}

// revalidate runs eager validation after every change and toggles the
// Disabler inputs.
func (f *Form[T]) revalidate() {
	if f.Validate == nil {
		f.err = nil
		return
	}

	data, err := f.Get()
	if err == nil {
		err = f.Validate(data)
	}
	f.err = err

	for _, item := range f.items {
		if d, ok := item.input.(Disabler); ok {
			d.SetDisabled(err != nil)
		}
	}
}

func (f *Form[T]) changeActiveIndex(delta int) tea.Cmd {
	n := len(f.items)
	if n == 0 {
		return nil
	}

	f.items[f.activeIndex].input.Blur()
	f.activeIndex = ((f.activeIndex+delta)%n + n) % n
	return f.focusActive()
}

func (f *Form[T]) focusActive() tea.Cmd {
	if !f.focused {
		return nil
	}
	cmd, keyMap := f.Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}

func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))

	for _, item := range f.items {
		if item.id == "" {
			continue
		}
		values[item.id] = item.input.Get()
	}

	err := mapstructure.Decode(values, &data)
	return data, err
}

func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}

	for i := range f.items {
		if value, ok := values[f.items[i].id]; ok {
			f.items[i].input.Set(value)
		}
	}
	f.revalidate()

	return nil
}
