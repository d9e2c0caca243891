// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui groups the front ends of ContaBancaria: the Cobra commands in
// `ui/cli`, the full-screen form in `ui/tui` and the line prompts in
// `ui/prompt`. All of them delegate the form rules to `core/account`.
package ui
