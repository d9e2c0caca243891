// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package account

import (
	"fmt"
	"strings"

	"github.com/contabancaria/contabancaria/internal/i18n"
)

// Summary is the snapshot taken by a successful submission.
type Summary struct {
	Name        string
	Age         string
	Sex         Sex
	CreditLimit int
	IsStudent   bool
}

// Submit validates f and, when every rule passes, builds its summary from
// the field values as entered.
func Submit(f AccountForm) (Summary, error) {
	if err := Validate(f); err != nil {
		return Summary{}, err
	}
	return Summary{
		Name:        f.Name,
		Age:         f.Age,
		Sex:         f.Sex,
		CreditLimit: f.CreditLimit,
		IsStudent:   f.IsStudent,
	}, nil
}

// String renders the summary one field per line using the active locale.
func (s Summary) String() string {
	student := i18n.T("summary.no")
	if s.IsStudent {
		student = i18n.T("summary.yes")
	}

	lines := []string{
		fmt.Sprintf("%s: %s", i18n.T("summary.name"), s.Name),
		fmt.Sprintf("%s: %s", i18n.T("summary.age"), s.Age),
		fmt.Sprintf("%s: %s", i18n.T("summary.sex"), s.Sex),
		fmt.Sprintf("%s: R$ %.2f", i18n.T("summary.credit_limit"), float64(s.CreditLimit)),
		fmt.Sprintf("%s: %s", i18n.T("summary.student"), student),
	}
	return strings.Join(lines, "\n")
}
