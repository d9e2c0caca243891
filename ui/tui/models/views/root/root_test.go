// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/contabancaria/contabancaria/core/account"
	"github.com/contabancaria/contabancaria/internal/i18n"
	"github.com/contabancaria/contabancaria/ui/tui/models/views/accountform"
)

func newRoot(t *testing.T) *Model {
	t.Helper()
	i18n.Init("pt-BR")
	m := New(accountform.Options{})
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return m
}

func (m *Model) press(msgs ...tea.Msg) tea.Cmd {
	var last tea.Cmd
	for _, msg := range msgs {
		_, last = m.Update(msg)
	}
	return last
}

// collect runs cmd and flattens batches. Only used on commands that do not
// block (no cursor blink).
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	m := newRoot(t)
	cmd := m.press(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestUpdate_HelpToggle(t *testing.T) {
	m := newRoot(t)
	m.press(tea.KeyMsg{Type: tea.KeyF1})

	expanded := false
	if f, ok := (*m.footer).(interface{ Expanded() bool }); ok {
		expanded = f.Expanded()
	}
	if !expanded {
		t.Fatalf("f1 should expand the key help")
	}
}

func TestUpdate_SubmitOpensBlockingDialog(t *testing.T) {
	m := newRoot(t)

	m.press(
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Ana")}, tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("20")}, tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
	)
	for _, msg := range collect(m.press(tea.KeyMsg{Type: tea.KeyEnter})) {
		m.press(msg)
	}

	if !m.PopupOpen() {
		t.Fatalf("success dialog should be open")
	}
	if !strings.Contains(m.Title(), "Conta criada com sucesso!") {
		t.Fatalf("window title = %q", m.Title())
	}
	if !strings.Contains(m.View(), "Nome: Ana") {
		t.Fatalf("dialog should show the summary:\n%s", m.View())
	}

	// the dialog swallows keys meant for the form
	m.press(tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.Form().Summary() == nil {
		t.Fatalf("reset reached the form while the dialog was open")
	}

	for _, msg := range collect(m.press(tea.KeyMsg{Type: tea.KeyEsc})) {
		m.press(msg)
	}
	if m.PopupOpen() {
		t.Fatalf("esc should close the dialog")
	}
	if m.Form().Summary() == nil {
		t.Fatalf("inline summary must survive closing the dialog")
	}
}

func TestView_ErrorDialogWrapsOnNarrowTerminals(t *testing.T) {
	want := "Idade mínima para abrir conta é 18 anos."
	for _, width := range []int{80, 50, 40} {
		m := newRoot(t)
		m.Update(tea.WindowSizeMsg{Width: width, Height: 30})

		f := account.NewForm()
		f.Name, f.Age, f.Sex = "Ana", "17", account.SexFeminino
		if err := m.Form().SetValues(f); err != nil {
			t.Fatalf("SetValues: %v", err)
		}
		for _, msg := range collect(m.Form().Submit()) {
			m.press(msg)
		}
		if !m.PopupOpen() {
			t.Fatalf("width %d: error dialog should be open", width)
		}

		view := m.View()
		for _, word := range strings.Fields(want) {
			if !strings.Contains(view, word) {
				t.Fatalf("width %d: dialog lost %q:\n%s", width, word, view)
			}
		}
	}
}
