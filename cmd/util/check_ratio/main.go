// check_ratio prints the dimensions of images and the padding partition would add to them.
package main

import (
	"fmt"
	"image"
	"io"
	"math"
	"os"

	_ "github.com/disintegration/imaging" // Register BMP and TIFF decoders
	"github.com/dixieflatline76/partition/pkg/partition"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: check_ratio IMAGE...")
		return
	}
	for _, path := range os.Args[1:] {
		if err := report(os.Stdout, path); err != nil {
			fmt.Printf("Error checking %s: %v\n", path, err)
		}
	}
}

func report(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}

	imgW, imgH := cfg.Width, cfg.Height
	pad := partition.ComputePadding(imgW, imgH, partition.TargetRatio)
	newW, newH := pad.PaddedSize(imgW, imgH)
	ratio := float64(max(newW, newH)) / float64(min(newW, newH))

	fmt.Fprintf(w, "File: %s (%s)\n", path, format)
	fmt.Fprintf(w, "Dimensions: %dx%d\n", imgW, imgH)
	fmt.Fprintf(w, "Padding: %d left/right, %d top/bottom\n", pad.Horizontal, pad.Vertical)
	fmt.Fprintf(w, "Padded: %dx%d (ratio %.6f, target %.6f, off by %.6f)\n", newW, newH, ratio, partition.TargetRatio, math.Abs(ratio-partition.TargetRatio))
	fmt.Fprintf(w, "Line width: %d\n", partition.LineWidth(newW, newH))
	return nil
}
