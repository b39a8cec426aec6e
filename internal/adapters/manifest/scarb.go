package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/stark-deploy/internal/domain"
	"github.com/trebuchet-org/stark-deploy/internal/usecase"
)

// ManifestFile is the Scarb project descriptor, relative to the project root
const ManifestFile = "Scarb.toml"

// scarbTOML is the subset of Scarb.toml we care about
type scarbTOML struct {
	Package *struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
}

// ScarbManifestReader reads package metadata from Scarb.toml
type ScarbManifestReader struct {
	log *slog.Logger
}

// NewScarbManifestReader creates a new manifest reader
func NewScarbManifestReader(log *slog.Logger) *ScarbManifestReader {
	return &ScarbManifestReader{
		log: log.With("component", "ScarbManifestReader"),
	}
}

// ReadPackageName returns [package].name from the project's Scarb.toml
func (r *ScarbManifestReader) ReadPackageName(projectPath string) (string, error) {
	manifest, err := r.ReadManifest(projectPath)
	if err != nil {
		return "", err
	}
	return manifest.PackageName, nil
}

// ReadManifest loads and validates the project's Scarb.toml
func (r *ScarbManifestReader) ReadManifest(projectPath string) (*domain.ProjectManifest, error) {
	path := filepath.Join(projectPath, ManifestFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("%w: could not read %s: %v", domain.ErrManifestNotFound, path, err)
	}

	var raw scarbTOML
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", domain.ErrManifestMalformed, path, err)
	}

	if raw.Package == nil {
		return nil, fmt.Errorf("%w: %s has no [package] section", domain.ErrManifestMalformed, path)
	}

	name := strings.TrimSpace(raw.Package.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: %s has no package name", domain.ErrManifestMalformed, path)
	}

	r.log.Debug("read manifest", "path", path, "package", name, "version", raw.Package.Version)
	return &domain.ProjectManifest{PackageName: name}, nil
}

// Ensure the reader implements the interface
var _ usecase.ManifestReader = (*ScarbManifestReader)(nil)
