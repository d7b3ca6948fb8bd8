package partition

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dixieflatline76/partition/config"
)

// FileManager handles the file system layout of processed output.
type FileManager struct {
	prefix string
}

// NewFileManager creates a FileManager that names outputs with config.OutputPrefix.
func NewFileManager() *FileManager {
	return &FileManager{prefix: config.OutputPrefix}
}

// OutputFilePath returns the sibling path a processed copy of path is written to.
func (fm *FileManager) OutputFilePath(path string) string {
	dir, name := filepath.Split(filepath.Clean(path))
	return filepath.Join(dir, fm.prefix+name)
}

// OutputDirPath returns the sibling directory that processed copies of dir are written to.
// The directory is resolved to an absolute path first so "." and trailing separators work.
func (fm *FileManager) OutputDirPath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	parent, name := filepath.Split(abs)
	if name == "" {
		return "", fmt.Errorf("cannot derive an output directory for %s", abs)
	}
	return filepath.Join(parent, fm.prefix+name), nil
}

// EnsureDir creates dir, or reuses it when it already exists.
func (fm *FileManager) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}

// ListEntries returns the entries of dir in directory-listing order.
func (fm *FileManager) ListEntries(dir string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	return entries, nil
}
