// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import "testing"

func TestTitleHandler(t *testing.T) {
	h := NewHandler("Abrir Conta", " | ")
	if h.Title() != "Abrir Conta" {
		t.Fatalf("Title() = %q", h.Title())
	}

	if _, handled := h.Handle("other"); handled {
		t.Fatalf("non-title messages must not be handled")
	}

	cmd, handled := h.Handle(Set("OK")())
	if !handled || cmd == nil || h.Title() != "Abrir Conta | OK" {
		t.Fatalf("Handle(Set) = %v %v %q", cmd, handled, h.Title())
	}

	cmd, handled = h.Handle(Set("OK")())
	if !handled || cmd != nil {
		t.Fatalf("repeating the same title should be a no-op")
	}
}
