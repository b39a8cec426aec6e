package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/stark-deploy/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// RenderNetworksList renders every configured network profile
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	for _, network := range result.Networks {
		name := network.Name
		if network.Name == result.Active {
			name = color.New(color.Bold).Sprintf("%s (active)", network.Name)
		}

		if network.Error != nil {
			fmt.Fprintf(r.out, "  ❌ %s - Error: %v\n", name, network.Error)
			continue
		}
		fmt.Fprintf(r.out, "  ✅ %s - %s\n", name, network.RPCURL)
		fmt.Fprintf(r.out, "     %s\n", color.New(color.Faint).Sprintf("keystore: %s, account: %s", network.Keystore, network.Account))
	}

	return nil
}
