package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInCircle(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 10, 10, true},
		{"inside", 14, 10, true},
		{"on rim", 15, 10, false},
		{"outside", 30, 30, false},
		{"nan", math.NaN(), 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InCircle(tt.x, tt.y, 10, 10, 5))
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}
	assert.True(t, r.Contains(50, 40))
	assert.False(t, r.Contains(10, 40), "left edge is outside")
	assert.False(t, r.Contains(110, 40), "right edge is outside")
	assert.False(t, r.Contains(50, 71))
	assert.False(t, r.Contains(math.Inf(1), 40))
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite(0, -3))
	assert.False(t, Finite(math.NaN(), 0))
	assert.False(t, Finite(0, math.Inf(-1)))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(5, 0, 10))
	assert.Equal(t, 0.0, Clamp(-5, 0, 10))
	assert.Equal(t, 10.0, Clamp(50, 0, 10))
	assert.Equal(t, 5.0, Clamp(1, 10, 0), "empty range collapses to the middle")
}
