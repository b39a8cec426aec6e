package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/stark-deploy/internal/domain/config"
	"github.com/trebuchet-org/stark-deploy/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// RenderConfig renders the configuration display
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	if !result.Exists {
		fmt.Fprintf(r.out, "❌ No .stark-deploy/config.local.json file found\n")
		fmt.Fprintf(r.out, "⚠️  Without config, deploy uses --network or prompts for one\n")
	} else {
		fmt.Fprintln(r.out, "📋 Current config:")
		fmt.Fprintf(r.out, "Network:       %s\n", valueOrUnset(result.Config.Network))
		fmt.Fprintf(r.out, "Build profile: %s\n", valueOrUnset(result.Config.BuildProfile))
		fmt.Fprintf(r.out, "📁 config file: %s\n", getRelativePath(result.ConfigPath))
	}

	if result.ProjectFile != "" {
		fmt.Fprintf(r.out, "\n📦 Project file: %s\n", getRelativePath(result.ProjectFile))
	}

	return nil
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	fmt.Fprintf(r.out, "✅ Set %s to: %s\n", result.Key, result.Value)
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	switch result.Key {
	case config.ConfigKeyNetwork:
		fmt.Fprintf(r.out, "✅ Removed network from config (deploy will prompt or use --network)\n")
	case config.ConfigKeyBuildProfile:
		fmt.Fprintf(r.out, "✅ Reset build profile to: dev\n")
	}

	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

func valueOrUnset(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}
