// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/contabancaria/contabancaria/ui/tui/models/helpers/form"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestText_AcceptFiltersRunes(t *testing.T) {
	txt := NewText("Idade", "", WithAccept(NumericRunes))
	txt.Focus()

	for _, msg := range []tea.KeyMsg{runes("1"), runes("x"), runes("7"), runes("."), runes("9a")} {
		txt.Update(msg)
	}
	if got := txt.Get(); got != "17.9" {
		t.Fatalf("Get() = %q, want 17.9", got)
	}

	if _, action := txt.Update(tea.KeyMsg{Type: tea.KeyEnter}); action != form.ActionNext {
		t.Fatalf("enter should advance, got action %d", action)
	}

	txt.Reset()
	if got := txt.Get(); got != "" {
		t.Fatalf("Reset left %q", got)
	}
	txt.Set("42")
	txt.Set(42) // ignored
	if got := txt.Get(); got != "42" {
		t.Fatalf("Set() = %q", got)
	}
}

func TestText_AcceptFiltersSpace(t *testing.T) {
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	age := NewText("Idade", "", WithAccept(NumericRunes))
	age.Focus()
	for _, msg := range []tea.KeyMsg{runes("1"), space, runes("8")} {
		age.Update(msg)
	}
	if got := age.Get(); got != "18" {
		t.Fatalf("Get() = %q, want 18", got)
	}

	name := NewText("Nome", "")
	name.Focus()
	for _, msg := range []tea.KeyMsg{runes("Ana"), space, runes("Lu")} {
		name.Update(msg)
	}
	if got := name.Get(); got != "Ana Lu" {
		t.Fatalf("Get() = %q, want %q", got, "Ana Lu")
	}
}

func TestSelect_CyclesAndSets(t *testing.T) {
	s := NewSelect("Sexo", Option{"Selecione...", ""}, Option{"A", "a"}, Option{"B", "b"})

	s.Update(tea.KeyMsg{Type: tea.KeyRight})
	if s.Get() != "a" {
		t.Fatalf("right -> %v, want a", s.Get())
	}
	s.Update(tea.KeyMsg{Type: tea.KeyLeft})
	s.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if s.Get() != "b" {
		t.Fatalf("left wraps -> %v, want b", s.Get())
	}
	if _, action := s.Update(tea.KeyMsg{Type: tea.KeyEnter}); action != form.ActionNext {
		t.Fatalf("enter should advance")
	}

	s.Set("zzz")
	if s.Get() != "b" {
		t.Fatalf("unknown values must be ignored, got %v", s.Get())
	}
	s.Reset()
	if s.Get() != "" {
		t.Fatalf("Reset should select the first option, got %v", s.Get())
	}
	if !strings.Contains(s.View(40), "Selecione...") {
		t.Fatalf("view misses the selected label: %q", s.View(40))
	}
}

func TestSlider_StepsAndBounds(t *testing.T) {
	s := NewSlider(500, 10000, 100, 2500, func(v int) string { return "R$ " + strconv.Itoa(v) })

	if s.Get() != 2500 {
		t.Fatalf("default = %v", s.Get())
	}
	s.Update(tea.KeyMsg{Type: tea.KeyRight})
	if s.Value() != 2600 {
		t.Fatalf("right -> %d, want 2600", s.Value())
	}
	s.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	if s.Value() != 1600 {
		t.Fatalf("pgdown -> %d, want 1600", s.Value())
	}
	s.Update(tea.KeyMsg{Type: tea.KeyHome})
	s.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if s.Value() != 500 {
		t.Fatalf("below minimum -> %d, want 500", s.Value())
	}
	s.Update(tea.KeyMsg{Type: tea.KeyEnd})
	s.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	if s.Value() != 10000 {
		t.Fatalf("above maximum -> %d, want 10000", s.Value())
	}

	s.Set(3049)
	if s.Value() != 3000 {
		t.Fatalf("Set snaps to step, got %d", s.Value())
	}

	for i := 0; i < 200; i++ {
		if i%3 == 0 {
			s.Update(tea.KeyMsg{Type: tea.KeyLeft})
		} else {
			s.Update(tea.KeyMsg{Type: tea.KeyRight})
		}
		v := s.Value()
		if v < 500 || v > 10000 || v%100 != 0 {
			t.Fatalf("slider left range: %d", v)
		}
		if !strings.Contains(s.View(60), "R$ "+strconv.Itoa(v)) {
			t.Fatalf("label does not match slider value %d: %q", v, s.View(60))
		}
	}
}

func TestToggle(t *testing.T) {
	tg := NewToggle("Estudante:", false)
	tg.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if tg.Get() != true {
		t.Fatalf("space should toggle on")
	}
	tg.Update(tea.KeyMsg{Type: tea.KeyRight})
	if tg.Get() != false {
		t.Fatalf("right should toggle off")
	}
	tg.Set(true)
	tg.Reset()
	if tg.Get() != false {
		t.Fatalf("Reset should restore the default")
	}
}

func TestButton_DisabledIgnoresClick(t *testing.T) {
	b := NewButton("Abrir Conta", "abrir conta", true)
	if _, action := b.Update(tea.KeyMsg{Type: tea.KeyEnter}); action != form.ActionNone {
		t.Fatalf("disabled button must not submit")
	}
	b.SetDisabled(false)
	if _, action := b.Update(tea.KeyMsg{Type: tea.KeyEnter}); action != form.ActionSubmit {
		t.Fatalf("enabled button should submit")
	}
	if !strings.Contains(b.View(30), "Abrir Conta") {
		t.Fatalf("button view misses label")
	}
}
