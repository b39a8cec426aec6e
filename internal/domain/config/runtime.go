package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string
	WorkingDir  string

	// Network profile selected for this run, nil if none could be resolved
	Network *NetworkProfile

	// Build settings
	BuildProfile string

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration

	// Config source tracking
	ConfigFile string // path of stark-deploy.toml when present

	// All configured network profiles, keyed by name
	Networks map[string]NetworkProfile
}

// NetworkProfile bundles everything that differs between target networks
type NetworkProfile struct {
	Name     string `toml:"-" json:"name" yaml:"name"`
	RPCURL   string `toml:"rpc_url" json:"rpcUrl" yaml:"rpc_url"`
	Keystore string `toml:"keystore" json:"keystore" yaml:"keystore"`
	Account  string `toml:"account" json:"account" yaml:"account"`
	MaxFee   string `toml:"max_fee,omitempty" json:"maxFee,omitempty" yaml:"max_fee,omitempty"`
}

// PipelineConfig is the immutable input of a single pipeline run
type PipelineConfig struct {
	ProjectPath   string
	ContractName  string
	WalletAddress string

	// ConstructorInput is nil when no constructor arguments were supplied
	ConstructorInput *string

	Network      NetworkProfile
	WorkingDir   string
	BuildProfile string

	RegenerateKeystore bool
	DryRun             bool
}
