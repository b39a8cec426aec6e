package config

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/stark-deploy/internal/domain"
	"github.com/trebuchet-org/stark-deploy/internal/domain/config"
	"github.com/trebuchet-org/stark-deploy/internal/usecase"
)

// NetworkResolverAdapter resolves network profiles from the runtime configuration
type NetworkResolverAdapter struct {
	networks map[string]config.NetworkProfile
}

// NewNetworkResolverAdapter creates a new network resolver adapter
func NewNetworkResolverAdapter(cfg *config.RuntimeConfig) *NetworkResolverAdapter {
	return &NetworkResolverAdapter{networks: cfg.Networks}
}

// GetNetworks returns all configured network names in sorted order
func (a *NetworkResolverAdapter) GetNetworks(ctx context.Context) []string {
	names := lo.Keys(a.networks)
	sort.Strings(names)
	return names
}

// ResolveNetwork resolves a network by name
func (a *NetworkResolverAdapter) ResolveNetwork(ctx context.Context, networkName string) (*config.NetworkProfile, error) {
	profile, ok := a.networks[networkName]
	if !ok {
		return nil, fmt.Errorf("%w: '%s' (available: %s)", domain.ErrUnknownNetwork, networkName, strings.Join(a.GetNetworks(ctx), ", "))
	}
	if profile.RPCURL == "" {
		return nil, fmt.Errorf("network '%s' has no rpc_url configured", networkName)
	}

	profile.Name = networkName
	return &profile, nil
}

// Ensure the adapter implements the interface
var _ usecase.NetworkResolver = (*NetworkResolverAdapter)(nil)
