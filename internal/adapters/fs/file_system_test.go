package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSystemAdapter(t *testing.T) {
	ctx := context.Background()
	fsys := NewFileSystemAdapter()
	dir := t.TempDir()
	file := filepath.Join(dir, "account.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0644))

	exists, err := fsys.FileExists(ctx, file)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = fsys.FileExists(ctx, dir)
	require.NoError(t, err)
	assert.False(t, exists, "a directory is not a file")

	exists, err = fsys.DirExists(ctx, dir)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = fsys.DirExists(ctx, file)
	require.NoError(t, err)
	assert.False(t, exists, "a file is not a directory")

	exists, err = fsys.FileExists(ctx, filepath.Join(dir, "missing.json"))
	require.NoError(t, err)
	assert.False(t, exists)

	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, fsys.EnsureDirectory(ctx, nested))
	exists, err = fsys.DirExists(ctx, nested)
	require.NoError(t, err)
	assert.True(t, exists)
}
