package models

import (
	"fmt"
	"time"
)

// Deployment represents a recorded contract deployment
type Deployment struct {
	// Core identification
	ID           string `json:"id" yaml:"id"`
	Network      string `json:"network" yaml:"network"`
	PackageName  string `json:"packageName" yaml:"package_name"`
	ContractName string `json:"contractName" yaml:"contract_name"`

	// On-chain identifiers
	ClassHash string `json:"classHash" yaml:"class_hash"`
	Address   string `json:"address,omitempty" yaml:"address,omitempty"`

	// Deployment inputs
	Deployer        string   `json:"deployer" yaml:"deployer"`
	ConstructorArgs []string `json:"constructorArgs" yaml:"constructor_args"`
	Artifact        string   `json:"artifact" yaml:"artifact"`
	RPCURL          string   `json:"rpcUrl" yaml:"rpc_url"`

	// Metadata
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
}

// ShortID returns the first segment of the record ID for display
func (d *Deployment) ShortID() string {
	if len(d.ID) > 8 {
		return d.ID[:8]
	}
	return d.ID
}

// DisplayName returns a human friendly name for the deployment
func (d *Deployment) DisplayName() string {
	return fmt.Sprintf("%s::%s", d.PackageName, d.ContractName)
}

// DeploymentFilter narrows registry listings
type DeploymentFilter struct {
	Network      string
	ContractName string
}

// Matches reports whether the deployment satisfies the filter
func (f DeploymentFilter) Matches(d *Deployment) bool {
	if f.Network != "" && d.Network != f.Network {
		return false
	}
	if f.ContractName != "" && d.ContractName != f.ContractName {
		return false
	}
	return true
}
