// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package account

import "fmt"

// Sex is the value picked in the dropdown. The zero value means nothing
// was selected yet.
type Sex string

const (
	SexUnset     Sex = ""
	SexMasculino Sex = "Masculino"
	SexFeminino  Sex = "Feminino"
	SexOutro     Sex = "Outro"
)

// Sexes lists the selectable values in display order.
func Sexes() []Sex {
	return []Sex{SexMasculino, SexFeminino, SexOutro}
}

// IsSet reports whether a value other than SexUnset was chosen.
func (s Sex) IsSet() bool {
	return s != SexUnset
}

func (s Sex) String() string {
	return string(s)
}

// ParseSex maps a dropdown value back to a Sex. The empty string parses to
// SexUnset.
func ParseSex(v string) (Sex, error) {
	switch Sex(v) {
	case SexUnset, SexMasculino, SexFeminino, SexOutro:
		return Sex(v), nil
	}
	return SexUnset, fmt.Errorf("unknown sex value %q", v)
}
