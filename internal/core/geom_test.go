package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	assert.Equal(t, 25, r.Right())
	assert.Equal(t, 25, r.Bottom())
}

func TestRectCentered(t *testing.T) {
	got := NewRect(0, 0, 80, 24).Centered(20, 6)
	assert.Equal(t, NewRect(30, 9, 20, 6), got)
}

func TestPointAdd(t *testing.T) {
	assert.Equal(t, Point{X: 2, Y: 5}, Point{X: 3, Y: 4}.Add(-1, 1))
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Clamp(tc.val, tc.min, tc.max), "Clamp(%d, %d, %d)", tc.val, tc.min, tc.max)
	}
}

func TestClampDelay(t *testing.T) {
	assert.Equal(t, MinDelay, ClampDelay(time.Millisecond))
	assert.Equal(t, MaxDelay, ClampDelay(time.Minute))
	assert.Equal(t, 500*time.Millisecond, ClampDelay(500*time.Millisecond))
}

func TestParseColor(t *testing.T) {
	for _, c := range ClassicPalette() {
		got, err := ParseColor(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseColor("  CYAN ")
	require.NoError(t, err)
	assert.Equal(t, ColorCyan, got)

	_, err = ParseColor("chartreuse")
	assert.Error(t, err)
}
