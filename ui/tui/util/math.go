// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import "cmp"

// Clamp bounds wanted to [lo, hi].
func Clamp[T cmp.Ordered](lo, wanted, hi T) T {
	return min(max(lo, wanted), hi)
}
