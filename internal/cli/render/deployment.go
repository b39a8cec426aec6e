package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/trebuchet-org/stark-deploy/internal/domain/models"
	"gopkg.in/yaml.v3"
)

// DeploymentRenderer renders detailed information about a single deployment
type DeploymentRenderer struct {
	out io.Writer
}

// NewDeploymentRenderer creates a new deployment renderer
func NewDeploymentRenderer(out io.Writer) *DeploymentRenderer {
	return &DeploymentRenderer{out: out}
}

// RenderDeployment renders detailed deployment information
func (r *DeploymentRenderer) RenderDeployment(deployment *models.Deployment) error {
	// Header
	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "Deployment: %s\n", deployment.ID)
	fmt.Fprintln(r.out, strings.Repeat("=", 80))

	fmt.Fprintln(r.out, "\nBasic Information:")
	fmt.Fprintf(r.out, "  Contract: %s\n", color.New(color.FgYellow).Sprint(deployment.DisplayName()))
	if deployment.Address != "" {
		fmt.Fprintf(r.out, "  Address: %s\n", deployment.Address)
	} else {
		fmt.Fprintf(r.out, "  Address: %s\n", missingStyle.Sprint("(not found in deploy output)"))
	}
	fmt.Fprintf(r.out, "  Class Hash: %s\n", deployment.ClassHash)
	fmt.Fprintf(r.out, "  Network: %s\n", deployment.Network)
	if deployment.RPCURL != "" {
		fmt.Fprintf(r.out, "  RPC: %s\n", deployment.RPCURL)
	}

	fmt.Fprintln(r.out, "\nDeployment Inputs:")
	fmt.Fprintf(r.out, "  Deployer: %s\n", deployment.Deployer)
	if len(deployment.ConstructorArgs) == 0 {
		fmt.Fprintln(r.out, "  Constructor Arguments: (none)")
	} else {
		fmt.Fprintln(r.out, "  Constructor Arguments:")
		for i, arg := range deployment.ConstructorArgs {
			fmt.Fprintf(r.out, "    %d. %s\n", i+1, arg)
		}
	}

	fmt.Fprintln(r.out, "\nArtifact Information:")
	fmt.Fprintf(r.out, "  Path: %s\n", deployment.Artifact)

	fmt.Fprintf(r.out, "\nDeployed at: %s\n", timestampStyle.Sprint(deployment.CreatedAt.Format("2006-01-02 15:04:05 MST")))
	return nil
}

// RenderYAML writes a single deployment record as YAML
func (r *DeploymentRenderer) RenderYAML(deployment *models.Deployment) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(deployment)
}
