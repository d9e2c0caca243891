// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package account

import (
	"testing"

	"github.com/contabancaria/contabancaria/internal/i18n"
)

func validForm() AccountForm {
	f := NewForm()
	f.Name = "Ana"
	f.Age = "20"
	f.Sex = SexFeminino
	return f
}

func TestValidate_FirstFailureInOrder(t *testing.T) {
	i18n.Init("pt-BR")

	cases := []struct {
		name    string
		mutate  func(*AccountForm)
		wantMsg string
		field   Field
	}{
		{name: "valid", mutate: func(*AccountForm) {}},
		{name: "empty name", mutate: func(f *AccountForm) { f.Name = "" }, wantMsg: MsgNameRequired, field: FieldName},
		{name: "whitespace name", mutate: func(f *AccountForm) { f.Name = "   \t" }, wantMsg: MsgNameRequired, field: FieldName},
		{name: "empty age", mutate: func(f *AccountForm) { f.Age = "" }, wantMsg: MsgAgeInvalid, field: FieldAge},
		{name: "non numeric age", mutate: func(f *AccountForm) { f.Age = "abc" }, wantMsg: MsgAgeInvalid, field: FieldAge},
		{name: "NaN age", mutate: func(f *AccountForm) { f.Age = "NaN" }, wantMsg: MsgAgeInvalid, field: FieldAge},
		{name: "age 17", mutate: func(f *AccountForm) { f.Age = "17" }, wantMsg: MsgAgeMinimum, field: FieldAge},
		{name: "age 17.9", mutate: func(f *AccountForm) { f.Age = "17.9" }, wantMsg: MsgAgeMinimum, field: FieldAge},
		{name: "age 18", mutate: func(f *AccountForm) { f.Age = "18" }},
		{name: "age padded", mutate: func(f *AccountForm) { f.Age = " 30 " }},
		{name: "sex unset", mutate: func(f *AccountForm) { f.Sex = SexUnset }, wantMsg: MsgSexRequired, field: FieldSex},
		{
			name:    "name checked before age",
			mutate:  func(f *AccountForm) { f.Name = ""; f.Age = "x" },
			wantMsg: MsgNameRequired, field: FieldName,
		},
		{
			name:    "invalid age checked before minimum and sex",
			mutate:  func(f *AccountForm) { f.Age = ""; f.Sex = SexUnset },
			wantMsg: MsgAgeInvalid, field: FieldAge,
		},
		{
			name:    "minimum age checked before sex",
			mutate:  func(f *AccountForm) { f.Age = "17"; f.Sex = SexUnset },
			wantMsg: MsgAgeMinimum, field: FieldAge,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validForm()
			tc.mutate(&f)
			err := Validate(f)
			if tc.wantMsg == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				if !Valid(f) {
					t.Fatalf("Valid() = false for a passing form")
				}
				return
			}
			verr, ok := AsValidationError(err)
			if !ok {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if verr.MessageID != tc.wantMsg || verr.Field != tc.field {
				t.Fatalf("Validate() = {%s %s}, want {%s %s}", verr.Field, verr.MessageID, tc.field, tc.wantMsg)
			}
			if Valid(f) {
				t.Fatalf("Valid() = true for a failing form")
			}
		})
	}
}

func TestValidate_AgeSeventeenRejectedRegardlessOfOtherFields(t *testing.T) {
	for _, sex := range Sexes() {
		for _, student := range []bool{true, false} {
			f := validForm()
			f.Age = "17"
			f.Sex = sex
			f.IsStudent = student
			f.CreditLimit = MaxCreditLimit
			verr, ok := AsValidationError(Validate(f))
			if !ok || verr.MessageID != MsgAgeMinimum {
				t.Fatalf("age 17 with sex=%s student=%v: got %v", sex, student, verr)
			}
		}
	}
}

func TestValidationError_MessageIsTranslated(t *testing.T) {
	i18n.Init("pt-BR")
	f := validForm()
	f.Age = "16"
	err := Validate(f)
	if err == nil || err.Error() != "Idade mínima para abrir conta é 18 anos." {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestValidateField_OnlyChecksThatField(t *testing.T) {
	f := NewForm()
	f.Age = "42"
	if err := ValidateField(f, FieldAge); err != nil {
		t.Fatalf("ValidateField(age) = %v", err)
	}
	if err := ValidateField(f, FieldName); err == nil {
		t.Fatalf("ValidateField(name) expected an error for an empty name")
	}
	if err := ValidateField(f, FieldIsStudent); err != nil {
		t.Fatalf("fields without rules always pass, got %v", err)
	}
}

func TestRules_ReturnsCopy(t *testing.T) {
	rs := Rules()
	if len(rs) != 4 {
		t.Fatalf("expected 4 rules, got %d", len(rs))
	}
	rs[0].MessageID = "mutated"
	if Rules()[0].MessageID != MsgNameRequired {
		t.Fatalf("Rules() must not expose the internal slice")
	}
}
