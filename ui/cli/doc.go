// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for ContaBancaria using
// Cobra. It loads configuration, initializes translations and logging, and
// starts one of the two front ends. CLI code stays thin: the form rules live
// in `core/account`.
package cli
