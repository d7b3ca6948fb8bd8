package partition

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
)

// ErrNotImage is returned when a file cannot be decoded as an image.
var ErrNotImage = errors.New("not an image")

// jpegQuality is used when writing JPEG output.
const jpegQuality = 95

// ImageCodec reads and writes image files.
type ImageCodec interface {
	// Open decodes the image at path and reports its container format.
	Open(path string) (image.Image, imaging.Format, error)
	// Save encodes img to path in the given format.
	Save(img image.Image, path string, format imaging.Format) error
}

// fileCodec is the ImageCodec backed by the local filesystem.
type fileCodec struct {
	autoOrient bool
}

// NewFileCodec creates an ImageCodec for local files.
// With autoOrient set, EXIF orientation is applied while decoding.
func NewFileCodec(autoOrient bool) ImageCodec {
	return &fileCodec{autoOrient: autoOrient}
}

// Open decodes the image at path. Files that no registered decoder accepts return ErrNotImage.
func (c *fileCodec) Open(path string) (image.Image, imaging.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	// Sniff the container first so the output can be written in the same format.
	_, formatName, err := image.DecodeConfig(f)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %v", ErrNotImage, path, err)
	}
	format, err := imaging.FormatFromExtension(formatName)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: unsupported format %q", ErrNotImage, path, formatName)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, 0, fmt.Errorf("rewinding %s: %w", path, err)
	}
	img, err := imaging.Decode(f, imaging.AutoOrientation(c.autoOrient))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %v", ErrNotImage, path, err)
	}
	return img, format, nil
}

// Save encodes img to path. A partially written file is removed on failure.
func (c *fileCodec) Save(img image.Image, path string, format imaging.Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := imaging.Encode(f, img, format, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("encoding %s as %s: %w", path, format, err)
	}
	return nil
}
