package partition

import "math"

// TargetRatio is the ISO paper aspect ratio every output is padded to.
const TargetRatio = math.Sqrt2

// lineWidthDivisor sets guide line thickness relative to the canvas size.
const lineWidthDivisor = 200

// minLineWidth is the thinnest guide line drawn, in pixels.
const minLineWidth = 2

// Padding is the blank border added on each side of an image.
// Horizontal is added to both the left and right edges, Vertical to the top and bottom.
// At most one of the two is non-zero.
type Padding struct {
	Horizontal int
	Vertical   int
}

// PaddedSize returns the canvas size after applying p to a width x height image.
func (p Padding) PaddedSize(width, height int) (int, int) {
	return width + 2*p.Horizontal, height + 2*p.Vertical
}

// ComputePadding returns the per-side padding that brings a width x height image to ratio.
//
// When the short side is too short the short side is padded, otherwise the long side is.
// The raw difference is split across both sides: each side gets floor(diff/2), plus one
// more pixel when the remainder left after the even split is at least 1.
func ComputePadding(width, height int, ratio float64) Padding {
	w, h := float64(width), float64(height)

	var pad Padding
	switch {
	case (h > w && h > w*ratio) || (w > h && h*ratio > w):
		var diff float64
		if h > w {
			diff = h/ratio - w
		} else {
			diff = h*ratio - w
		}
		pad.Horizontal = splitDifference(diff)
	case (h > w && h < w*ratio) || (w > h && h*ratio < w):
		var diff float64
		if h > w {
			diff = w*ratio - h
		} else {
			diff = w/ratio - h
		}
		pad.Vertical = splitDifference(diff)
	}
	return pad
}

func splitDifference(diff float64) int {
	half := math.Floor(diff / 2)
	remainder := diff - half*2
	if remainder < 1 {
		return int(half)
	}
	return int(half) + 1
}

// LineWidth returns the guide line thickness for a width x height canvas.
func LineWidth(width, height int) int {
	lw := minLineWidth
	lw = max(lw, roundInt(float64(width)/lineWidthDivisor))
	lw = max(lw, roundInt(float64(height)/lineWidthDivisor))
	return lw
}

// GuidePositions returns the parts-1 evenly spaced offsets that split length into parts.
func GuidePositions(length, parts int) []int {
	if parts <= 1 {
		return nil
	}
	positions := make([]int, 0, parts-1)
	for i := 1; i < parts; i++ {
		positions = append(positions, roundInt(float64(length*i)/float64(parts)))
	}
	return positions
}

// roundInt rounds half to even.
func roundInt(f float64) int {
	return int(math.RoundToEven(f))
}
