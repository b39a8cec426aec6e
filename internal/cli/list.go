package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/stark-deploy/internal/cli/render"
	"github.com/trebuchet-org/stark-deploy/internal/usecase"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var (
		network      string
		contractName string
		format       string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recorded deployments",
		Long: `List all deployments recorded in .stark-deploy/deployments.json.

The list can be filtered by network or contract name.`,
		Example: `  # List all deployments
  stark-deploy list

  # List Counter deployments on sepolia
  stark-deploy list --network sepolia --contract Counter

  # Machine readable output
  stark-deploy list --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if err := validateFormat(format); err != nil {
				return err
			}

			// Run use case
			params := usecase.ListDeploymentsParams{
				Network:      network,
				ContractName: contractName,
			}

			result, err := app.ListDeployments.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewDeploymentsRenderer(cmd.OutOrStdout())
			if format == formatYAML {
				return renderer.RenderYAML(result)
			}
			return renderer.RenderDeploymentList(result)
		},
	}

	cmd.Flags().StringVar(&network, "network", "", "Filter by network")
	cmd.Flags().StringVar(&contractName, "contract", "", "Filter by contract name")
	cmd.Flags().StringVar(&format, "format", formatTable, "Output format (table, yaml)")

	return cmd
}

const (
	formatTable = "table"
	formatYAML  = "yaml"
)

func validateFormat(format string) error {
	switch format {
	case formatTable, formatYAML:
		return nil
	}
	return fmt.Errorf("invalid format: %s (valid: %s, %s)", format, formatTable, formatYAML)
}
