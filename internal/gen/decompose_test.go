package gen

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
		order Order
		total int
		want  []Term
	}{
		{"powers of two", []int{1, 2, 4, 8, 16}, OrderInputReversed, 31, []Term{{16, 1}, {8, 1}, {4, 1}, {2, 1}, {1, 1}}},
		{"exact fit", []int{1, 2, 4, 8, 16}, OrderInputReversed, 16, []Term{{16, 1}}},
		{"repeats largest", []int{1, 2, 4}, OrderInputReversed, 9, []Term{{4, 2}, {1, 1}}},
		{"reversed unsorted input", []int{3, 1, 2}, OrderInputReversed, 7, []Term{{2, 3}, {1, 1}}},
		{"descending unsorted input", []int{3, 1, 2}, OrderDescending, 7, []Term{{3, 2}, {1, 1}}},
		{"non-multiples that work", []int{3, 5}, OrderInputReversed, 8, []Term{{5, 1}, {3, 1}}},
		{"very large total", []int{1}, OrderInputReversed, math.MaxInt, []Term{{1, math.MaxInt}}},
		{"very large total with remainder", []int{1, math.MaxInt / 2}, OrderInputReversed, math.MaxInt, []Term{{math.MaxInt / 2, 2}, {1, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decompose(tt.sizes, tt.order, tt.total)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecompose_Unsupported(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
		total int
	}{
		{"greedy dead end", []int{2, 4}, 3},
		{"smaller than every size", []int{3, 5}, 4},
		{"greedy commits wrongly", []int{3, 5}, 9},
		{"zero", []int{1, 2}, 0},
		{"negative", []int{1}, -1},
		{"most negative int", []int{math.MaxInt / 2}, math.MinInt},
		{"most negative int with unit size", []int{1, 2}, math.MinInt},
		{"no sizes", nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decompose(tt.sizes, OrderInputReversed, tt.total)
			require.ErrorIs(t, err, ErrUnsupportedSize)
		})
	}
}

func TestDecompose_RejectsNonPositiveSizes(t *testing.T) {
	_, err := Decompose([]int{2, 0}, OrderInputReversed, 4)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedSize)
}

func TestFormatDecomposition(t *testing.T) {
	assert.Equal(t, "16 = 16", FormatDecomposition(16, []Term{{16, 1}}))
	assert.Equal(t, "9 = 4×2 + 1", FormatDecomposition(9, []Term{{4, 2}, {1, 1}}))
}

func ExampleDecompose() {
	terms, err := Decompose([]int{1, 2, 4, 8, 16}, OrderInputReversed, 31)
	fmt.Println(FormatDecomposition(31, terms), err)

	terms, err = Decompose([]int{1, 2, 4}, OrderInputReversed, 9)
	fmt.Println(FormatDecomposition(9, terms), err)

	_, err = Decompose([]int{2, 4}, OrderInputReversed, 3)
	fmt.Println(err)
	// Output:
	// 31 = 16 + 8 + 4 + 2 + 1 <nil>
	// 9 = 4×2 + 1 <nil>
	// total 3: no size fits remainder 1: unsupported data vector size
}
