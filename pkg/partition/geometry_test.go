package partition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePadding(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		expected      Padding
		paddedW       int
		paddedH       int
	}{
		{"Square", 100, 100, Padding{}, 100, 100},
		{"Tall portrait pads width", 100, 200, Padding{Horizontal: 21}, 142, 200},
		{"Wide landscape pads height", 200, 100, Padding{Vertical: 21}, 200, 142},
		{"Squat portrait pads height", 100, 120, Padding{Vertical: 11}, 100, 142},
		{"Squat landscape pads width", 120, 100, Padding{Horizontal: 11}, 142, 100},
		{"A4 at 72dpi portrait", 595, 842, Padding{}, 595, 842},
		{"A4 at 72dpi landscape", 842, 595, Padding{}, 842, 595},
		{"Remainder below one keeps half", 10, 40, Padding{Horizontal: 9}, 28, 40},
		{"Remainder above one adds a pixel", 10, 30, Padding{Horizontal: 6}, 22, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pad := ComputePadding(tt.width, tt.height, TargetRatio)
			assert.Equal(t, tt.expected, pad)
			w, h := pad.PaddedSize(tt.width, tt.height)
			assert.Equal(t, tt.paddedW, w)
			assert.Equal(t, tt.paddedH, h)
		})
	}
}

func TestComputePadding_Properties(t *testing.T) {
	for width := 1; width <= 400; width += 7 {
		for height := 1; height <= 400; height += 11 {
			pad := ComputePadding(width, height, TargetRatio)

			assert.True(t, pad.Horizontal == 0 || pad.Vertical == 0,
				"%dx%d padded on both axes: %+v", width, height, pad)
			assert.GreaterOrEqual(t, pad.Horizontal, 0)
			assert.GreaterOrEqual(t, pad.Vertical, 0)

			if width == height {
				assert.Equal(t, Padding{}, pad)
				continue
			}

			w, h := pad.PaddedSize(width, height)
			long, short := float64(max(w, h)), float64(min(w, h))
			assert.LessOrEqual(t, math.Abs(long/math.Sqrt2-short), 1.0,
				"%dx%d padded to %dx%d is off ratio", width, height, w, h)
		}
	}
}

func TestLineWidth(t *testing.T) {
	tests := []struct {
		width, height int
		expected      int
	}{
		{100, 100, 2},
		{142, 200, 2},
		{500, 707, 4},  // 2.5 rounds to 2, 3.535 rounds to 4
		{1000, 1414, 7}, // 5 and 7.07
		{2480, 3508, 18},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, LineWidth(tt.width, tt.height), "%dx%d", tt.width, tt.height)
	}
}

func TestGuidePositions(t *testing.T) {
	assert.Equal(t, []int{25, 50, 75}, GuidePositions(100, 4))
	assert.Equal(t, []int{50, 100, 150}, GuidePositions(200, 4))
	// 35.5 and 106.5 round half to even.
	assert.Equal(t, []int{36, 71, 106}, GuidePositions(142, 4))
	assert.Equal(t, []int{2, 5, 8}, GuidePositions(10, 4))
	assert.Equal(t, []int{33, 67}, GuidePositions(100, 3))
	assert.Empty(t, GuidePositions(100, 1))
	assert.Empty(t, GuidePositions(100, 0))
}
