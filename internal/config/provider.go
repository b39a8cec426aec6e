package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/stark-deploy/internal/domain"
	"github.com/trebuchet-org/stark-deploy/internal/domain/config"
)

const (
	// DataDirName holds local config, the registry and generated wallet files
	DataDirName = ".stark-deploy"
	// EnvPrefix is the prefix of environment variables read by viper
	EnvPrefix = "STARK_DEPLOY"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		projectRoot = FindProjectRoot()
	}

	loadEnvFiles(projectRoot)

	projectFile, configFile, err := LoadProjectFile(projectRoot)
	if err != nil {
		return nil, err
	}

	resolver := NewNetworkResolver(projectFile)

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, DataDirName),
		WorkingDir:     v.GetString("working_dir"),
		BuildProfile:   v.GetString("build_profile"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Timeout:        v.GetDuration("timeout"),
		ConfigFile:     configFile,
		Networks:       resolver.Profiles(),
	}

	if cfg.WorkingDir == "" {
		cfg.WorkingDir = cfg.DataDir
	}
	// Wallet tools run with Dir set to the working dir, so a relative path
	// would be resolved twice
	workingDir, err := filepath.Abs(cfg.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working dir %s: %w", cfg.WorkingDir, err)
	}
	cfg.WorkingDir = workingDir
	if cfg.BuildProfile == "" && projectFile != nil {
		cfg.BuildProfile = projectFile.BuildProfile
	}
	if cfg.BuildProfile == "" {
		cfg.BuildProfile = domain.DefaultBuildProfile
	}

	networkName := v.GetString("network")
	if networkName == "" && projectFile != nil {
		networkName = projectFile.Network
	}
	if networkName != "" {
		network, err := resolver.Resolve(networkName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve network %s: %w", networkName, err)
		}
		cfg.Network = network
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to find Scarb.toml.
// It falls back to the current directory when no manifest is found.
func FindProjectRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, "Scarb.toml")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, DataDirName))

	// Set up environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", 0)
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})

	return v
}
