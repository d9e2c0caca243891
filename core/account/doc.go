// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package account holds the UI-agnostic state of the account opening form:
// the field values, the ordered validation rules and the summary produced by
// a successful submission. Front ends (the TUI screen and the line prompts)
// mutate an AccountForm and call Valid/Validate/Submit; nothing here keeps
// hidden state between calls.
package account
