// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type NewOpt[T any] = func(form *Form[T])

func New[T any](opts ...NewOpt[T]) Form[T] {
	form := Form[T]{keyMap: DefaultKeyMap()}
	for _, opt := range opts {
		opt(&form)
	}
	form.revalidate()
	return form
}

func WithOnSubmit[T any](fn func(result T, err error) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnSubmit = fn
	}
}

// WithValidation enables eager validation: fn is evaluated after every
// change and inputs implementing Disabler are disabled while it fails.
func WithValidation[T any](fn func(result T) error) NewOpt[T] {
	return func(form *Form[T]) {
		form.Validate = fn
	}
}

func WithKeyMap[T any](keyMap help.KeyMap) NewOpt[T] {
	return func(form *Form[T]) {
		form.baseKeyMap = keyMap
	}
}

func WithGap[T any](gap int) NewOpt[T] {
	return func(form *Form[T]) {
		form.Gap = gap
	}
}

func WithInput[T any](id string, input FormInput) NewOpt[T] {
	return func(form *Form[T]) {
		form.items = append(form.items, formItem{
			id:    id,
			input: input,
		})
	}
}
