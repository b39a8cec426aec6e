package fs

import (
	"context"
	"os"

	"github.com/trebuchet-org/stark-deploy/internal/usecase"
)

// FileSystemAdapter answers path questions against the local disk
type FileSystemAdapter struct {
	// No state needed for now
}

// NewFileSystemAdapter creates a new file system adapter
func NewFileSystemAdapter() *FileSystemAdapter {
	return &FileSystemAdapter{}
}

// FileExists checks if a regular file exists
func (f *FileSystemAdapter) FileExists(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return !info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// DirExists checks if a directory exists
func (f *FileSystemAdapter) DirExists(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// EnsureDirectory ensures a directory exists
func (f *FileSystemAdapter) EnsureDirectory(ctx context.Context, path string) error {
	return os.MkdirAll(path, 0755)
}

// Ensure the adapter implements the interface
var _ usecase.FileSystem = (*FileSystemAdapter)(nil)
