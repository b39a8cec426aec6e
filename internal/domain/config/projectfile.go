package config

// ProjectFileConfig represents the optional stark-deploy.toml file
type ProjectFileConfig struct {
	Network      string                    `toml:"network,omitempty"`
	BuildProfile string                    `toml:"build_profile,omitempty"`
	Networks     map[string]NetworkProfile `toml:"networks"`
}
