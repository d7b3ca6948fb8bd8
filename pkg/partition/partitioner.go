// Package partition pads images to the ISO paper ratio and overlays evenly
// spaced guide lines for drawing practice.
package partition

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dixieflatline76/partition/util/log"
)

// Skipped records an input that produced no output.
type Skipped struct {
	Path string
	Err  error
}

// Result summarises one Run.
type Result struct {
	Processed []string // Output paths, in processing order
	Skipped   []Skipped
}

// Partitioner processes an image file or a directory of images.
type Partitioner struct {
	codec     ImageCodec
	processor *Processor
	files     *FileManager
	out       io.Writer
}

// NewPartitioner creates a Partitioner that prints one status line per file to out.
func NewPartitioner(codec ImageCodec, out io.Writer) *Partitioner {
	return &Partitioner{
		codec:     codec,
		processor: NewProcessor(),
		files:     NewFileManager(),
		out:       out,
	}
}

// Run processes path with the given number of guide columns and rows.
//
// A file is written next to the source with the output prefix. A directory is mirrored
// into a prefixed sibling directory, one entry at a time in listing order. Files that
// cannot be processed, including a missing or unreadable path, are reported and skipped.
// Only invalid counts, an output directory that cannot be created and a done context
// are returned as errors.
func (p *Partitioner) Run(ctx context.Context, path string, horizontal, vertical int) (*Result, error) {
	if horizontal < 1 || vertical < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidPartitions, horizontal, vertical)
	}

	result := &Result{}
	info, err := os.Stat(path)
	if err != nil {
		// An unreadable input is reported like any other file that cannot be processed.
		p.skip(result, path, err)
		fmt.Fprintf(p.out, "%s could not be read: %v\n", path, err)
		return result, nil
	}

	if !info.IsDir() {
		if err := p.processFile(ctx, path, p.files.OutputFilePath(path), horizontal, vertical, result); err != nil {
			return result, err
		}
		return result, nil
	}

	outDir, err := p.files.OutputDirPath(path)
	if err != nil {
		return nil, err
	}
	if err := p.files.EnsureDir(outDir); err != nil {
		return nil, err
	}
	entries, err := p.files.ListEntries(path)
	if err != nil {
		return nil, err
	}
	log.Debugf("Processing %d entries from %s into %s", len(entries), path, outDir)

	for _, entry := range entries {
		if err := checkContext(ctx); err != nil {
			return result, err
		}
		src := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			p.skip(result, src, fmt.Errorf("%s is a directory", src))
			fmt.Fprintf(p.out, "%s is a directory, skipping.\n", src)
			continue
		}
		if err := p.processFile(ctx, src, filepath.Join(outDir, entry.Name()), horizontal, vertical, result); err != nil {
			return result, err
		}
	}

	log.Debugf("Finished %s: %d processed, %d skipped", path, len(result.Processed), len(result.Skipped))
	return result, nil
}

// processFile handles a single image. Per-file failures are recorded in result and
// printed; the returned error is non-nil only when the context is done.
func (p *Partitioner) processFile(ctx context.Context, src, dst string, horizontal, vertical int, result *Result) error {
	img, format, err := p.codec.Open(src)
	if err != nil {
		p.skip(result, src, err)
		if errors.Is(err, ErrNotImage) {
			fmt.Fprintf(p.out, "%s is not an image.\n", src)
		} else {
			fmt.Fprintf(p.out, "%s could not be read: %v\n", src, err)
		}
		return nil
	}

	processed, err := p.processor.Process(ctx, img, horizontal, vertical)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		p.skip(result, src, err)
		fmt.Fprintf(p.out, "%s could not be processed: %v\n", src, err)
		return nil
	}

	if err := p.codec.Save(processed, dst, format); err != nil {
		p.skip(result, src, err)
		fmt.Fprintf(p.out, "%s could not be saved: %v\n", src, err)
		return nil
	}

	result.Processed = append(result.Processed, dst)
	fmt.Fprintf(p.out, "Processed and saved %s.\n", src)
	return nil
}

func (p *Partitioner) skip(result *Result, src string, err error) {
	log.Debugf("Skipping %s: %v", src, err)
	result.Skipped = append(result.Skipped, Skipped{Path: src, Err: err})
}
