// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest holds small generic slice helpers used by the TUI layout
// code.
package slicest

// Reduce

// Reduce reduces slice S to type U.
func Reduce[T any, S ~[]T, U any](s S, fn func(T, U) U) U {
	var zero U
	return ReduceD(s, zero, fn)
}

// ReduceD reduces slice S to type U using explicit initial value.
// - D: Uses init parameter as starting accumulator.
func ReduceD[T any, S ~[]T, U any](s S, init U, fn func(T, U) U) U {
	for _, t := range s {
		init = fn(t, init)
	}
	return init
}

// Map

func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	result := make([]U, len(s))
	for i, v := range s {
		result[i] = fn(v)
	}
	return result
}

// Filter returns the elements of s for which fn reports true.
func Filter[T any, S ~[]T](s S, fn func(T) bool) S {
	var result S
	for _, v := range s {
		if fn(v) {
			result = append(result, v)
		}
	}
	return result
}

// IndexFunc returns the index of the first element matching fn, or -1.
func IndexFunc[T any, S ~[]T](s S, fn func(T) bool) int {
	for i, v := range s {
		if fn(v) {
			return i
		}
	}
	return -1
}
