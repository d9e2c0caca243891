// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package prompt

import "errors"

// ErrAborted signals the user aborted input (ctrl+c) or the context was
// cancelled.
var ErrAborted = errors.New("prompt: aborted")
