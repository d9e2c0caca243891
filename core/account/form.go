// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package account

import (
	"math"
	"strconv"
	"strings"
)

// Credit limit bounds in whole reais.
const (
	MinCreditLimit     = 500
	MaxCreditLimit     = 10000
	CreditLimitStep    = 100
	DefaultCreditLimit = 2500
)

// MinimumAge is the youngest age allowed to open an account.
const MinimumAge = 18

// AccountForm is the transient state of the form. Field tags are used by
// the TUI form helper to decode widget values into the struct.
type AccountForm struct {
	Name        string `mapstructure:"name"`
	Age         string `mapstructure:"age"`
	Sex         Sex    `mapstructure:"sex"`
	CreditLimit int    `mapstructure:"credit_limit"`
	IsStudent   bool   `mapstructure:"is_student"`
}

// NewForm returns a form holding the default values.
func NewForm() AccountForm {
	return AccountForm{
		Sex:         SexUnset,
		CreditLimit: DefaultCreditLimit,
	}
}

// TrimmedName returns the name without surrounding whitespace.
func (f AccountForm) TrimmedName() string {
	return strings.TrimSpace(f.Name)
}

// ParseAge converts the age text to a number. ok is false for empty,
// non-numeric, NaN or infinite input.
func (f AccountForm) ParseAge() (age float64, ok bool) {
	text := strings.TrimSpace(f.Age)
	if text == "" {
		return 0, false
	}
	age, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(age) || math.IsInf(age, 0) {
		return 0, false
	}
	return age, true
}

// SnapCreditLimit clamps v to [MinCreditLimit, MaxCreditLimit] and rounds it
// to the nearest multiple of CreditLimitStep.
func SnapCreditLimit(v int) int {
	v = min(max(v, MinCreditLimit), MaxCreditLimit)
	steps := (v - MinCreditLimit + CreditLimitStep/2) / CreditLimitStep
	return min(MinCreditLimit+steps*CreditLimitStep, MaxCreditLimit)
}

// WithCreditLimit returns a copy of f with the limit snapped into range.
func (f AccountForm) WithCreditLimit(v int) AccountForm {
	f.CreditLimit = SnapCreditLimit(v)
	return f
}
