package manifest

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/stark-deploy/internal/domain"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFile), []byte(content), 0644))
	return dir
}

func TestScarbManifestReader_ReadPackageName(t *testing.T) {
	reader := NewScarbManifestReader(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name     string
		content  *string
		wantName string
		wantErr  error
	}{
		{
			name: "valid manifest",
			content: ptr(`[package]
name = "hello_starknet"
version = "0.1.0"
edition = "2023_11"

[dependencies]
starknet = ">=2.6.3"

[[target.starknet-contract]]
`),
			wantName: "hello_starknet",
		},
		{
			name:     "surrounding whitespace is trimmed",
			content:  ptr("[package]\nname = \"  spaced  \"\n"),
			wantName: "spaced",
		},
		{
			name:    "missing file",
			content: nil,
			wantErr: domain.ErrManifestNotFound,
		},
		{
			name:    "invalid toml",
			content: ptr("[package\nname = "),
			wantErr: domain.ErrManifestMalformed,
		},
		{
			name:    "workspace without package",
			content: ptr("[workspace]\nmembers = [\"a\"]\n"),
			wantErr: domain.ErrManifestMalformed,
		},
		{
			name:    "package without name",
			content: ptr("[package]\nversion = \"0.1.0\"\n"),
			wantErr: domain.ErrManifestMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.content != nil {
				dir = writeManifest(t, *tt.content)
			}

			name, err := reader.ReadPackageName(dir)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, name)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func ptr(s string) *string {
	return &s
}
