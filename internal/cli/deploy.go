package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/stark-deploy/internal/cli/render"
	"github.com/trebuchet-org/stark-deploy/internal/domain"
	"github.com/trebuchet-org/stark-deploy/internal/domain/config"
)

// deployOptions holds the flag values of the deploy command
type deployOptions struct {
	path               string
	walletAddress      string
	contractName       string
	constructor        string
	network            string
	workingDir         string
	buildProfile       string
	regenerateKeystore bool
	dryRun             bool
}

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	opts := &deployOptions{}

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Compile, declare and deploy a contract",
		Long: `Compile the Cairo project with scarb, then use starkli to create a keystore,
fetch the account descriptor, declare the contract class and deploy it.

Constructor arguments are comma separated. When --constructor names a file
ending in .constructor, the arguments are read from that file instead.`,
		Example: `  # Deploy the Counter contract to sepolia
  stark-deploy deploy -p ./counter -c Counter -d 0x0123...abc --constructor "0x1, 42"

  # Read constructor arguments from a file
  stark-deploy deploy -p ./token -c ERC20 -d 0x0123...abc --constructor args.constructor

  # Show the commands without running them
  stark-deploy deploy -p ./counter -c Counter -d 0x0123...abc --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if !domain.IsFelt(opts.walletAddress) {
				return fmt.Errorf("invalid wallet address %q: expected a 0x-prefixed felt", opts.walletAddress)
			}

			network, err := app.SelectNetwork.Run(cmd.Context(), opts.network)
			if err != nil {
				return err
			}

			projectPath, err := filepath.Abs(opts.path)
			if err != nil {
				return fmt.Errorf("failed to resolve project path: %w", err)
			}

			pipelineCfg := config.PipelineConfig{
				ProjectPath:        projectPath,
				ContractName:       opts.contractName,
				WalletAddress:      opts.walletAddress,
				Network:            *network,
				WorkingDir:         app.Config.WorkingDir,
				BuildProfile:       app.Config.BuildProfile,
				RegenerateKeystore: opts.regenerateKeystore,
				DryRun:             opts.dryRun,
			}
			if cmd.Flags().Changed("constructor") {
				input := opts.constructor
				pipelineCfg.ConstructorInput = &input
			}

			renderer := render.NewDeployRenderer(cmd.OutOrStdout())

			result, err := app.DeployContract.Run(cmd.Context(), pipelineCfg)
			if err != nil {
				render.NewDeployRenderer(cmd.ErrOrStderr()).RenderFailure(err)
				return &SilentError{Err: err}
			}

			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVarP(&opts.path, "path", "p", "", "Path to the Scarb project")
	cmd.Flags().StringVarP(&opts.walletAddress, "wallet-address", "d", "", "Address of the deploying account")
	cmd.Flags().StringVarP(&opts.contractName, "contract-name", "c", "", "Name of the contract to deploy")
	cmd.Flags().StringVar(&opts.constructor, "constructor", "", "Constructor arguments, inline or a path to a .constructor file")
	cmd.Flags().StringVarP(&opts.network, "network", "n", "", "Network profile to deploy to (e.g. sepolia, mainnet, devnet)")
	cmd.Flags().StringVar(&opts.workingDir, "working-dir", "", "Directory for keystore and account files (defaults to .stark-deploy)")
	cmd.Flags().StringVar(&opts.buildProfile, "build-profile", "", "Scarb build profile (defaults to dev)")
	cmd.Flags().BoolVar(&opts.regenerateKeystore, "regenerate-keystore", false, "Create a new keystore even if one exists")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the commands that would run without executing them")

	_ = cmd.MarkFlagRequired("path")
	_ = cmd.MarkFlagRequired("wallet-address")
	_ = cmd.MarkFlagRequired("contract-name")

	return cmd
}
