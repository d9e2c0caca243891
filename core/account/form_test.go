// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package account

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewForm_Defaults(t *testing.T) {
	want := AccountForm{CreditLimit: 2500}
	if diff := cmp.Diff(want, NewForm()); diff != "" {
		t.Fatalf("NewForm() mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapCreditLimit(t *testing.T) {
	cases := map[int]int{
		-10:   500,
		0:     500,
		500:   500,
		549:   500,
		550:   600,
		2500:  2500,
		3049:  3000,
		9999:  10000,
		10000: 10000,
		12345: 10000,
	}
	for in, want := range cases {
		if got := SnapCreditLimit(in); got != want {
			t.Fatalf("SnapCreditLimit(%d) = %d, want %d", in, got, want)
		}
	}

	for v := -1000; v <= 11000; v += 37 {
		got := SnapCreditLimit(v)
		if got < MinCreditLimit || got > MaxCreditLimit || got%CreditLimitStep != 0 {
			t.Fatalf("SnapCreditLimit(%d) = %d out of range or off step", v, got)
		}
	}
}

func TestParseAge(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"20", 20, true},
		{" 18 ", 18, true},
		{"17.9", 17.9, true},
		{"", 0, false},
		{"  ", 0, false},
		{"vinte", 0, false},
		{"Inf", 0, false},
	}
	for _, tc := range cases {
		got, ok := AccountForm{Age: tc.in}.ParseAge()
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseAge(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseSex(t *testing.T) {
	for _, s := range append(Sexes(), SexUnset) {
		got, err := ParseSex(string(s))
		if err != nil || got != s {
			t.Fatalf("ParseSex(%q) = (%q, %v)", s, got, err)
		}
	}
	if _, err := ParseSex("X"); err == nil {
		t.Fatalf("ParseSex(X) expected an error")
	}
}
