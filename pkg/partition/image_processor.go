package partition

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/partition/util/log"
	"golang.org/x/image/draw"
)

// ErrInvalidPartitions is returned when a partition count is below 1.
var ErrInvalidPartitions = errors.New("partition counts must be at least 1")

var (
	backgroundColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	guideLineColor  = color.NRGBA{R: 0, G: 0, B: 0, A: 128}
)

// Processor pads images to TargetRatio and draws guide lines over them.
type Processor struct {
	ratio     float64
	lineColor color.NRGBA
}

// NewProcessor creates a Processor for the standard paper ratio.
func NewProcessor() *Processor {
	return &Processor{
		ratio:     TargetRatio,
		lineColor: guideLineColor,
	}
}

// Process returns a padded copy of img with horizontal columns and vertical rows of guides.
// The source image is never modified.
func (p *Processor) Process(ctx context.Context, img image.Image, horizontal, vertical int) (image.Image, error) {
	if horizontal < 1 || vertical < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidPartitions, horizontal, vertical)
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	pad := ComputePadding(bounds.Dx(), bounds.Dy(), p.ratio)
	canvas := p.pad(img, pad)
	log.Debugf("Padding %dx%d image by %+v to %dx%d", bounds.Dx(), bounds.Dy(), pad, canvas.Bounds().Dx(), canvas.Bounds().Dy())

	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	overlay := p.guideOverlay(canvas.Bounds().Dx(), canvas.Bounds().Dy(), horizontal, vertical)
	canvas = imaging.Overlay(canvas, overlay, image.Pt(0, 0), 1)

	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return matchColorModel(canvas, img.ColorModel()), nil
}

// pad places img on an opaque white canvas offset by pad.
func (p *Processor) pad(img image.Image, pad Padding) *image.NRGBA {
	width, height := pad.PaddedSize(img.Bounds().Dx(), img.Bounds().Dy())
	canvas := imaging.New(width, height, backgroundColor)
	return imaging.Paste(canvas, img, image.Pt(pad.Horizontal, pad.Vertical))
}

// guideOverlay draws the guide grid on a transparent layer of the given size.
// Lines are written with draw.Src so that crossings keep the line alpha instead of doubling it.
func (p *Processor) guideOverlay(width, height, horizontal, vertical int) *image.NRGBA {
	overlay := imaging.New(width, height, color.Transparent)
	lw := LineWidth(width, height)
	line := image.NewUniform(p.lineColor)

	for _, x := range GuidePositions(width, horizontal) {
		start := x - lw/2
		r := image.Rect(start, 0, start+lw, height).Intersect(overlay.Bounds())
		draw.Draw(overlay, r, line, image.Point{}, draw.Src)
	}
	for _, y := range GuidePositions(height, vertical) {
		start := y - lw/2
		r := image.Rect(0, start, width, start+lw).Intersect(overlay.Bounds())
		draw.Draw(overlay, r, line, image.Point{}, draw.Src)
	}
	return overlay
}

// matchColorModel converts the canvas back to the grayscale model of grayscale sources.
// Gray16 sources keep their model, but the canvas only carries 8 bits per channel.
// Every other source, paletted ones included, stays NRGBA: requantising to the source
// palette would snap the semi-transparent guides to whatever palette entry is nearest.
func matchColorModel(canvas *image.NRGBA, model color.Model) image.Image {
	switch model {
	case color.GrayModel:
		gray := image.NewGray(canvas.Bounds())
		draw.Draw(gray, gray.Bounds(), canvas, canvas.Bounds().Min, draw.Src)
		return gray
	case color.Gray16Model:
		gray := image.NewGray16(canvas.Bounds())
		draw.Draw(gray, gray.Bounds(), canvas, canvas.Bounds().Min, draw.Src)
		return gray
	default:
		return canvas
	}
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
