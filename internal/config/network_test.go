package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/stark-deploy/internal/domain"
	"github.com/trebuchet-org/stark-deploy/internal/domain/config"
)

func TestNetworkResolver_Builtins(t *testing.T) {
	r := NewNetworkResolver(nil)

	assert.Equal(t, []string{"devnet", "mainnet", "sepolia"}, r.Names())

	sepolia, err := r.Resolve("sepolia")
	require.NoError(t, err)
	assert.Equal(t, "sepolia", sepolia.Name)
	assert.Equal(t, "https://free-rpc.nethermind.io/sepolia-juno", sepolia.RPCURL)
	assert.Equal(t, "sepolia_keystore.json", sepolia.Keystore)
	assert.Equal(t, "sepolia_account.json", sepolia.Account)
	assert.Equal(t, "0.001", sepolia.MaxFee)
}

func TestNetworkResolver_Unknown(t *testing.T) {
	r := NewNetworkResolver(nil)

	_, err := r.Resolve("goerli")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownNetwork)
	assert.Contains(t, err.Error(), "devnet, mainnet, sepolia")
}

func TestNetworkResolver_ProjectOverrides(t *testing.T) {
	t.Setenv("KATANA_RPC_URL", "http://localhost:5050")

	file := &config.ProjectFileConfig{
		Networks: map[string]config.NetworkProfile{
			"sepolia": {RPCURL: "https://starknet-sepolia.example.org", MaxFee: "0.002"},
			"katana":  {RPCURL: "${KATANA_RPC_URL}"},
			"broken":  {RPCURL: "${STARK_DEPLOY_TEST_NOT_SET}"},
		},
	}
	r := NewNetworkResolver(file)

	tests := []struct {
		name    string
		network string
		want    config.NetworkProfile
		wantErr string
	}{
		{
			name:    "override keeps builtin wallet files",
			network: "sepolia",
			want: config.NetworkProfile{
				Name:     "sepolia",
				RPCURL:   "https://starknet-sepolia.example.org",
				Keystore: "sepolia_keystore.json",
				Account:  "sepolia_account.json",
				MaxFee:   "0.002",
			},
		},
		{
			name:    "new network gets namespaced wallet files",
			network: "katana",
			want: config.NetworkProfile{
				Name:     "katana",
				RPCURL:   "http://localhost:5050",
				Keystore: "katana_keystore.json",
				Account:  "katana_account.json",
			},
		},
		{
			name:    "unset variable",
			network: "broken",
			wantErr: "STARK_DEPLOY_TEST_NOT_SET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.network)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestNetworkResolver_MissingRPCURL(t *testing.T) {
	file := &config.ProjectFileConfig{
		Networks: map[string]config.NetworkProfile{
			"appchain": {Keystore: "app_keystore.json"},
		},
	}

	t.Run("no env fallback", func(t *testing.T) {
		t.Setenv("APPCHAIN_RPC_URL", "")

		_, err := NewNetworkResolver(file).Resolve("appchain")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "APPCHAIN_RPC_URL")
	})

	t.Run("env fallback", func(t *testing.T) {
		t.Setenv("APPCHAIN_RPC_URL", "https://appchain.example/rpc")

		profile, err := NewNetworkResolver(file).Resolve("appchain")
		require.NoError(t, err)
		assert.Equal(t, "https://appchain.example/rpc", profile.RPCURL)
		assert.Equal(t, "app_keystore.json", profile.Keystore)
		assert.Equal(t, "appchain_account.json", profile.Account)
	})
}
