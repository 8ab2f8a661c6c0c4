package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessRate(t *testing.T) {
	cases := []struct {
		placed, total int64
		want          int
	}{
		{0, 0, 0},
		{5, 0, 0}, // guard: never divide by zero
		{0, 10, 0},
		{10, 10, 100},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{1, 8, 13}, // 12.5 rounds up
		{49, 100, 49},
		{1, 1000, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SuccessRate(tc.placed, tc.total), "placed=%d total=%d", tc.placed, tc.total)
	}
}
