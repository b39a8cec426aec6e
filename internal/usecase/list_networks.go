package usecase

import (
	"context"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Currently no parameters, but we keep the struct for future extensibility
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	Active   string
}

// NetworkStatus represents a configured network profile
type NetworkStatus struct {
	Name     string
	RPCURL   string
	Keystore string
	Account  string
	Error    error
}

// ActiveNetwork is the name of the network profile selected for this run
type ActiveNetwork string

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	resolver NetworkResolver
	active   string
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(resolver NetworkResolver, active ActiveNetwork) *ListNetworks {
	return &ListNetworks{
		resolver: resolver,
		active:   string(active),
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	networkNames := uc.resolver.GetNetworks(ctx)

	networks := make([]NetworkStatus, 0, len(networkNames))
	for _, name := range networkNames {
		status := NetworkStatus{
			Name: name,
		}

		profile, err := uc.resolver.ResolveNetwork(ctx, name)
		if err != nil {
			status.Error = err
		} else {
			status.RPCURL = profile.RPCURL
			status.Keystore = profile.Keystore
			status.Account = profile.Account
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks: networks,
		Active:   uc.active,
	}, nil
}
