// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package slicest

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	if diff := cmp.Diff([]string{"1", "2", "3"}, got); diff != "" {
		t.Fatalf("Map mismatch (-want +got):\n%s", diff)
	}
	if got := Map([]int(nil), strconv.Itoa); len(got) != 0 {
		t.Fatalf("Map(nil) = %v", got)
	}
}

func TestReduce(t *testing.T) {
	sum := Reduce([]int{1, 2, 3, 4}, func(v, acc int) int { return acc + v })
	if sum != 10 {
		t.Fatalf("Reduce sum = %d, want 10", sum)
	}
	joined := ReduceD([]string{"b", "c"}, "a", func(v, acc string) string { return acc + v })
	if joined != "abc" {
		t.Fatalf("ReduceD = %q, want abc", joined)
	}
}

func TestFilterAndIndexFunc(t *testing.T) {
	even := Filter([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 })
	if diff := cmp.Diff([]int{2, 4}, even); diff != "" {
		t.Fatalf("Filter mismatch (-want +got):\n%s", diff)
	}
	if i := IndexFunc([]string{"x", "y"}, func(s string) bool { return s == "y" }); i != 1 {
		t.Fatalf("IndexFunc = %d, want 1", i)
	}
	if i := IndexFunc([]string{"x"}, func(s string) bool { return s == "z" }); i != -1 {
		t.Fatalf("IndexFunc = %d, want -1", i)
	}
}
