package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/stark-deploy/internal/cli/render"
	"github.com/trebuchet-org/stark-deploy/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List available network profiles",
		Long: `List the built-in network profiles (sepolia, mainnet, devnet) together with
any [networks.<name>] tables from stark-deploy.toml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			// Run use case
			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{})
			if err != nil {
				return err
			}

			renderer := render.NewNetworksRenderer(cmd.OutOrStdout())
			return renderer.RenderNetworksList(result)
		},
	}

	return cmd
}
