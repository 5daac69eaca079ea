// SPDX-License-Identifier: ice License 1.0

package xmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloor(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct{ x, y, div, mod int64 }{
		{7, 3, 2, 1},
		{-7, 3, -3, 2},
		{-6, 3, -2, 0},
		{0, 30, 0, 0},
		{-1, 30, -1, 29},
		{7, -3, -3, -2},
	} {
		assert.Equal(t, tc.div, FloorDiv(tc.x, tc.y), "%v / %v", tc.x, tc.y)
		assert.Equal(t, tc.mod, FloorMod(tc.x, tc.y), "%v mod %v", tc.x, tc.y)
	}
}

func TestExact(t *testing.T) {
	t.Parallel()
	sum, ok := AddExact(1, 2)
	assert.True(t, ok)
	assert.Equal(t, int64(3), sum)
	_, ok = AddExact(math.MaxInt64, 1)
	assert.False(t, ok)
	_, ok = AddExact(math.MinInt64, -1)
	assert.False(t, ok)
	sum, ok = AddExact(math.MinInt64, 0)
	assert.True(t, ok)
	assert.Equal(t, int64(math.MinInt64), sum)

	product, ok := MultiplyExact(-4, 7)
	assert.True(t, ok)
	assert.Equal(t, int64(-28), product)
	_, ok = MultiplyExact(math.MaxInt64, 2)
	assert.False(t, ok)
	_, ok = MultiplyExact(math.MinInt64, -1)
	assert.False(t, ok)
	product, ok = MultiplyExact(0, math.MinInt64)
	assert.True(t, ok)
	assert.Zero(t, product)
}
