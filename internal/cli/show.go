package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/stark-deploy/internal/cli/render"
	"github.com/trebuchet-org/stark-deploy/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var (
		network string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "show <deployment>",
		Short: "Show detailed deployment information from registry",
		Long: `Show detailed information about a specific deployment.

You can specify deployments using:
- Record ID or a unique prefix of it: "3f2a9c1e"
- Contract name: "Counter" (the newest deployment wins)
- Contract address: "0x0123..."

Examples:
  stark-deploy show Counter
  stark-deploy show Counter --network mainnet
  stark-deploy show 0x04a3...e21`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if err := validateFormat(format); err != nil {
				return err
			}

			params := usecase.ShowDeploymentParams{
				Ref:     args[0],
				Network: network,
			}

			deployment, err := app.ShowDeployment.Run(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to resolve deployment: %w", err)
			}

			renderer := render.NewDeploymentRenderer(cmd.OutOrStdout())
			if format == formatYAML {
				return renderer.RenderYAML(deployment)
			}
			return renderer.RenderDeployment(deployment)
		},
	}

	cmd.Flags().StringVar(&network, "network", "", "Only consider deployments on this network")
	cmd.Flags().StringVar(&format, "format", formatTable, "Output format (table, yaml)")

	return cmd
}
