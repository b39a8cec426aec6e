package interactive

import (
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/stark-deploy/internal/domain/config"
)

func TestSelectNetwork_NonInteractive(t *testing.T) {
	s := NewSelectorAdapter(&config.RuntimeConfig{NonInteractive: true})

	_, err := s.SelectNetwork(context.Background(), []string{"devnet", "sepolia"}, "Select network")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-interactive")
}

func TestSelectNetwork_SingleOption(t *testing.T) {
	s := NewSelectorAdapter(&config.RuntimeConfig{})

	got, err := s.SelectNetwork(context.Background(), []string{"sepolia"}, "Select network")
	require.NoError(t, err)
	assert.Equal(t, "sepolia", got)

	_, err = s.SelectNetwork(context.Background(), nil, "Select network")
	require.Error(t, err)
}

func TestFormatNetworkOptions(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	profiles := map[string]config.NetworkProfile{
		"sepolia": {RPCURL: "https://free-rpc.nethermind.io/sepolia-juno"},
		"custom":  {},
	}

	got := formatNetworkOptions([]string{"custom", "sepolia"}, profiles)
	assert.Equal(t, []string{"custom", "sepolia (https://free-rpc.nethermind.io/sepolia-juno)"}, got)
}

func TestCreateFuzzySearchFunc(t *testing.T) {
	items := []string{"devnet", "mainnet", "sepolia"}
	search := createFuzzySearchFunc(items)

	tests := []struct {
		input string
		index int
		want  bool
	}{
		{input: "", index: 0, want: true},
		{input: "sep", index: 2, want: true},
		{input: "SEP", index: 2, want: true},
		{input: "spl", index: 2, want: true},
		{input: "sep", index: 1, want: false},
		{input: "mnt", index: 1, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.input+"/"+items[tt.index], func(t *testing.T) {
			assert.Equal(t, tt.want, search(tt.input, tt.index))
		})
	}
}
