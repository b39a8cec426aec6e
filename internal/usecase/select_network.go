package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/stark-deploy/internal/domain/config"
)

// DefaultNetwork is used when nothing selects a network and prompting is disabled
const DefaultNetwork = "sepolia"

// SelectNetwork picks the network profile a deployment targets
type SelectNetwork struct {
	runtime  *config.RuntimeConfig
	resolver NetworkResolver
	selector NetworkSelector
}

// NewSelectNetwork creates a new SelectNetwork use case
func NewSelectNetwork(runtime *config.RuntimeConfig, resolver NetworkResolver, selector NetworkSelector) *SelectNetwork {
	return &SelectNetwork{
		runtime:  runtime,
		resolver: resolver,
		selector: selector,
	}
}

// Run resolves name, falling back to the configured network, then a prompt
func (uc *SelectNetwork) Run(ctx context.Context, name string) (*config.NetworkProfile, error) {
	if name == "" && uc.runtime.Network != nil {
		return uc.runtime.Network, nil
	}

	if name == "" {
		if uc.runtime.NonInteractive || uc.selector == nil {
			name = DefaultNetwork
		} else {
			selected, err := uc.selector.SelectNetwork(ctx, uc.resolver.GetNetworks(ctx), "Select network")
			if err != nil {
				return nil, fmt.Errorf("failed to select network: %w", err)
			}
			name = selected
		}
	}

	return uc.resolver.ResolveNetwork(ctx, name)
}
