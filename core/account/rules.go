// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package account

import (
	"errors"

	"github.com/contabancaria/contabancaria/internal/i18n"
)

// Field names a form slot. The values match the mapstructure tags of
// AccountForm so front ends can map an error back to a widget.
type Field string

const (
	FieldName        Field = "name"
	FieldAge         Field = "age"
	FieldSex         Field = "sex"
	FieldCreditLimit Field = "credit_limit"
	FieldIsStudent   Field = "is_student"
)

// Message IDs of the validation failures, resolved through i18n.
const (
	MsgNameRequired = "validation.name_required"
	MsgAgeInvalid   = "validation.age_invalid"
	MsgAgeMinimum   = "validation.age_minimum"
	MsgSexRequired  = "validation.sex_required"
)

// Rule is one (predicate, message) pair of the ordered rule list.
type Rule struct {
	Field     Field
	MessageID string
	Check     func(AccountForm) bool
}

var rules = []Rule{
	{
		Field:     FieldName,
		MessageID: MsgNameRequired,
		Check:     func(f AccountForm) bool { return f.TrimmedName() != "" },
	},
	{
		Field:     FieldAge,
		MessageID: MsgAgeInvalid,
		Check: func(f AccountForm) bool {
			_, ok := f.ParseAge()
			return ok
		},
	},
	{
		Field:     FieldAge,
		MessageID: MsgAgeMinimum,
		Check: func(f AccountForm) bool {
			age, ok := f.ParseAge()
			return ok && age >= MinimumAge
		},
	},
	{
		Field:     FieldSex,
		MessageID: MsgSexRequired,
		Check:     func(f AccountForm) bool { return f.Sex.IsSet() },
	},
}

// Rules returns the validation rules in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// RulesFor returns the rules that check the given field, in order.
func RulesFor(field Field) []Rule {
	var out []Rule
	for _, r := range rules {
		if r.Field == field {
			out = append(out, r)
		}
	}
	return out
}

// ValidationError reports the first rule a form failed.
type ValidationError struct {
	Field     Field
	MessageID string
}

func (e *ValidationError) Error() string {
	return i18n.T(e.MessageID)
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// Validate evaluates the rules in order and returns the first failure.
func Validate(f AccountForm) error {
	return check(f, rules)
}

// ValidateField evaluates only the rules of one field.
func ValidateField(f AccountForm, field Field) error {
	return check(f, RulesFor(field))
}

func check(f AccountForm, rs []Rule) error {
	for _, r := range rs {
		if !r.Check(f) {
			return &ValidationError{Field: r.Field, MessageID: r.MessageID}
		}
	}
	return nil
}

// Valid is the derived validity of the current state.
func Valid(f AccountForm) bool {
	return Validate(f) == nil
}
