// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the full-screen account opening form. Presentation
// and input handling live here; the form rules and the summary are provided
// by `core/account`.
package tui
