package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/stark-deploy/internal/domain/config"
)

// ProjectFileName is the optional per-project configuration file
const ProjectFileName = "stark-deploy.toml"

// loadEnvFiles loads .env files so project file values can reference them
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				slog.Warn("failed to load env file", "path", envFile, "error", err)
			}
		}
	}
}

// LoadProjectFile reads stark-deploy.toml from the project root.
// It returns nil without error when the file does not exist.
func LoadProjectFile(projectRoot string) (*config.ProjectFileConfig, string, error) {
	path := filepath.Join(projectRoot, ProjectFileName)

	var cfg config.ProjectFileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("failed to parse %s: %w", ProjectFileName, err)
	}

	return &cfg, path, nil
}
