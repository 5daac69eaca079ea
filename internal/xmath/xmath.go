// SPDX-License-Identifier: ice License 1.0

// Package xmath holds the floor division and overflow checked arithmetic the calendar math relies on.
package xmath

import (
	"math"
)

// FloorDiv rounds towards negative infinity, so negative years and epoch days split into whole cycles correctly.
func FloorDiv(x, y int64) int64 {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}

	return q
}

// FloorMod has the sign of y.
func FloorMod(x, y int64) int64 {
	return x - FloorDiv(x, y)*y
}

func AddExact(x, y int64) (sum int64, ok bool) {
	sum = x + y

	return sum, (sum > x) == (y > 0)
}

func MultiplyExact(x, y int64) (product int64, ok bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, false
	}
	product = x * y

	return product, product/y == x
}
