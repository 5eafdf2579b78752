package bracket

import (
	"fmt"
	"testing"
)

func TestSize(t *testing.T) {
	type testCase struct {
		n, expected int
	}

	tests := []testCase{
		{n: 1, expected: 1},
		{n: 2, expected: 2},
		{n: 3, expected: 4},
		{n: 5, expected: 8},
		{n: 8, expected: 8},
		{n: 9, expected: 16},
		{n: 12, expected: 16},
		{n: 16, expected: 16},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("Size for %d entrants", tc.n), func(t *testing.T) {
			if got := Size(tc.n); got != tc.expected {
				t.Fatalf("expected size %d for %d entrants but got %d", tc.expected, tc.n, got)
			}
		})
	}
}

func TestSizeIsSmallestPowerOfTwo(t *testing.T) {
	for n := 1; n <= 16; n++ {
		size := Size(n)
		if size&(size-1) != 0 {
			t.Fatalf("size %d for %d entrants is not a power of two", size, n)
		}
		if size < n {
			t.Fatalf("size %d cannot seat %d entrants", size, n)
		}
		if size > 1 && size/2 >= n {
			t.Fatalf("size %d for %d entrants is not the smallest, %d fits", size, n, size/2)
		}
	}
}

func TestRounds(t *testing.T) {
	type testCase struct {
		size, expected int
	}

	tests := []testCase{
		{size: 0, expected: 0},
		{size: 1, expected: 0},
		{size: 2, expected: 1},
		{size: 4, expected: 2},
		{size: 8, expected: 3},
		{size: 16, expected: 4},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("Rounds for bracket of %d", tc.size), func(t *testing.T) {
			if got := Rounds(tc.size); got != tc.expected {
				t.Fatalf("expected %d rounds for bracket of %d but got %d", tc.expected, tc.size, got)
			}
		})
	}
}
