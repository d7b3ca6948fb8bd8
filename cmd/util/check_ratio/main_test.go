package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tall.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, 100, 200))))
	require.NoError(t, f.Close())

	var buf bytes.Buffer
	require.NoError(t, report(&buf, path))
	out := buf.String()
	assert.Contains(t, out, "(png)")
	assert.Contains(t, out, "Dimensions: 100x200")
	assert.Contains(t, out, "Padding: 21 left/right, 0 top/bottom")
	assert.Contains(t, out, "Padded: 142x200")
	assert.Contains(t, out, "Line width: 2")

	assert.Error(t, report(&buf, filepath.Join(t.TempDir(), "missing.png")))
}
