package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/stark-deploy/internal/domain"
	"github.com/trebuchet-org/stark-deploy/internal/domain/config"
)

// BuiltinNetworks returns the network profiles available without any project configuration
func BuiltinNetworks() map[string]config.NetworkProfile {
	return map[string]config.NetworkProfile{
		"sepolia": {
			Name:     "sepolia",
			RPCURL:   "https://free-rpc.nethermind.io/sepolia-juno",
			Keystore: "sepolia_keystore.json",
			Account:  "sepolia_account.json",
			MaxFee:   "0.001",
		},
		"mainnet": {
			Name:     "mainnet",
			RPCURL:   "https://free-rpc.nethermind.io/mainnet-juno",
			Keystore: "mainnet_keystore.json",
			Account:  "mainnet_account.json",
		},
		"devnet": {
			Name:     "devnet",
			RPCURL:   "http://127.0.0.1:5050",
			Keystore: "devnet_keystore.json",
			Account:  "devnet_account.json",
		},
	}
}

// NetworkResolver resolves network names to profiles
type NetworkResolver struct {
	profiles map[string]config.NetworkProfile
	// unset env vars referenced by a profile's rpc_url
	missing map[string][]string
}

// NewNetworkResolver merges the project file networks over the built-in profiles.
// A nil project file yields only the built-ins.
func NewNetworkResolver(file *config.ProjectFileConfig) *NetworkResolver {
	r := &NetworkResolver{
		profiles: BuiltinNetworks(),
		missing:  make(map[string][]string),
	}
	if file == nil {
		return r
	}

	for name, override := range file.Networks {
		base, ok := r.profiles[name]
		if !ok {
			base = config.NetworkProfile{
				Keystore: name + "_keystore.json",
				Account:  name + "_account.json",
			}
		}
		base.Name = name

		if override.RPCURL != "" {
			url, missing := expandEnv(override.RPCURL)
			base.RPCURL = url
			if len(missing) > 0 {
				r.missing[name] = missing
			}
		}
		if override.Keystore != "" {
			base.Keystore, _ = expandEnv(override.Keystore)
		}
		if override.Account != "" {
			base.Account, _ = expandEnv(override.Account)
		}
		if override.MaxFee != "" {
			base.MaxFee = override.MaxFee
		}
		// Profiles without an rpc_url take it from <NAME>_RPC_URL
		if base.RPCURL == "" {
			base.RPCURL = os.Getenv(GenerateEnvVarName(name))
		}
		r.profiles[name] = base
	}
	return r
}

// Names returns all configured network names in sorted order
func (r *NetworkResolver) Names() []string {
	names := lo.Keys(r.profiles)
	sort.Strings(names)
	return names
}

// Profiles returns a copy of all configured profiles
func (r *NetworkResolver) Profiles() map[string]config.NetworkProfile {
	return lo.Assign(r.profiles)
}

// Resolve resolves a network name to its profile
func (r *NetworkResolver) Resolve(networkName string) (*config.NetworkProfile, error) {
	profile, ok := r.profiles[networkName]
	if !ok {
		return nil, fmt.Errorf("%w: '%s' (available: %s)", domain.ErrUnknownNetwork, networkName, strings.Join(r.Names(), ", "))
	}

	if missing := r.missing[networkName]; len(missing) > 0 {
		return nil, fmt.Errorf("network '%s' rpc_url references unset variable %s (define it in .env)", networkName, strings.Join(missing, ", "))
	}
	if profile.RPCURL == "" {
		return nil, fmt.Errorf("network '%s' has no rpc_url, set %s or add [networks.%s] to %s", networkName, GenerateEnvVarName(networkName), networkName, ProjectFileName)
	}
	if profile.Keystore == "" || profile.Account == "" {
		return nil, fmt.Errorf("network '%s' must name both a keystore and an account file", networkName)
	}

	return &profile, nil
}
