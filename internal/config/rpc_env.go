package config

import (
	"os"
	"strings"
)

// GenerateEnvVarName generates a conventional env var name for a network's RPC URL.
// Convention: uppercase, dashes/dots to underscores, append _RPC_URL.
// Examples: sepolia -> SEPOLIA_RPC_URL, starknet-devnet -> STARKNET_DEVNET_RPC_URL
func GenerateEnvVarName(networkName string) string {
	name := strings.ToUpper(networkName)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + "_RPC_URL"
}

// expandEnv expands $VAR and ${VAR} references and reports the variables
// that are not set in the environment.
func expandEnv(raw string) (string, []string) {
	var missing []string
	expanded := os.Expand(raw, func(name string) string {
		value, ok := os.LookupEnv(name)
		if !ok {
			missing = append(missing, name)
		}
		return value
	})
	return expanded, missing
}
