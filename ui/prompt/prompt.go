// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package prompt asks for the account form one question at a time. Every
// answer is checked with the rules of its own field before the next question
// and the complete form goes through account.Submit at the end.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/contabancaria/contabancaria/core/account"
	"github.com/contabancaria/contabancaria/internal/i18n"
	"github.com/contabancaria/contabancaria/internal/logging"
	"github.com/contabancaria/contabancaria/util/slicest"
)

// Run collects a form through d, prints the summary and returns it.
func Run(ctx context.Context, d Driver) (account.Summary, error) {
	f, err := Ask(ctx, d)
	if err != nil {
		return account.Summary{}, err
	}

	summary, err := account.Submit(f)
	if err != nil {
		return account.Summary{}, err
	}
	logging.Infof("account summary produced for %q", summary.Name)

	msg := fmt.Sprintf("%s\n\n%s\n%s", i18n.T("summary.success_title"), i18n.T("form.summary_title"), summary)
	if err := d.Info(ctx, msg); err != nil {
		return account.Summary{}, err
	}
	return summary, nil
}

// Ask runs the questions in screen order and returns the answers.
func Ask(ctx context.Context, d Driver) (account.AccountForm, error) {
	f := account.NewForm()

	name, err := d.Input(ctx, InputConfig{
		Message:   i18n.T("form.name.label"),
		Help:      i18n.T("form.name.placeholder"),
		Validator: fieldValidator(account.FieldName, func(f *account.AccountForm, s string) { f.Name = s }),
	})
	if err != nil {
		return f, err
	}
	f.Name = name

	age, err := d.Input(ctx, InputConfig{
		Message:   i18n.T("form.age.label"),
		Help:      i18n.T("form.age.placeholder"),
		Validator: fieldValidator(account.FieldAge, func(f *account.AccountForm, s string) { f.Age = s }),
	})
	if err != nil {
		return f, err
	}
	f.Age = age

	sexes := account.Sexes()
	idx, err := d.Select(ctx, SelectConfig{
		Message:      strings.TrimSuffix(i18n.T("form.sex.label"), ":"),
		Options:      slicest.Map(sexes, account.Sex.String),
		DefaultIndex: -1,
	})
	if err != nil {
		return f, err
	}
	if idx < 0 || idx >= len(sexes) {
		return f, &account.ValidationError{Field: account.FieldSex, MessageID: account.MsgSexRequired}
	}
	f.Sex = sexes[idx]

	limit, err := d.Input(ctx, InputConfig{
		Message:   i18n.T("prompt.credit_limit"),
		Default:   strconv.Itoa(account.DefaultCreditLimit),
		Help:      i18n.T("prompt.credit_limit_help", account.MinCreditLimit, account.MaxCreditLimit, account.CreditLimitStep),
		Validator: validateCreditLimit,
	})
	if err != nil {
		return f, err
	}
	v, err := parseCreditLimit(limit)
	if err != nil {
		return f, err
	}
	f = f.WithCreditLimit(v)

	student, err := d.Confirm(ctx, ConfirmConfig{
		Message: strings.TrimSuffix(i18n.T("form.student.label"), ":"),
	})
	if err != nil {
		return f, err
	}
	f.IsStudent = student

	logging.Debugf("prompt answers collected: limit=%d student=%t", f.CreditLimit, f.IsStudent)
	return f, nil
}

// fieldValidator checks an answer against the rules of field only, so the
// age question reports "not a number" before "too young".
func fieldValidator(field account.Field, set func(*account.AccountForm, string)) func(string) error {
	return func(s string) error {
		f := account.NewForm()
		set(&f, s)
		return account.ValidateField(f, field)
	}
}

func parseCreditLimit(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", i18n.T("prompt.credit_limit_invalid"), err)
	}
	return v, nil
}

func validateCreditLimit(s string) error {
	if _, err := parseCreditLimit(s); err != nil {
		return errors.New(i18n.T("prompt.credit_limit_invalid"))
	}
	return nil
}
