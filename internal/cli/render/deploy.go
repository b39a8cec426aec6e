package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/trebuchet-org/stark-deploy/internal/domain"
	"github.com/trebuchet-org/stark-deploy/internal/usecase"
)

// DeployRenderer renders the outcome of a pipeline run
type DeployRenderer struct {
	out io.Writer
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer) *DeployRenderer {
	return &DeployRenderer{out: out}
}

// Render renders a successful run or a dry-run plan
func (r *DeployRenderer) Render(result *usecase.DeployContractResult) error {
	if result.DryRun {
		return r.renderPlan(result.Plan)
	}

	outcome := result.Outcome
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Deployed %s::%s", outcome.PackageName, outcome.ContractName)))
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "  Class hash: %s\n", color.New(color.FgCyan).Sprint(outcome.ClassHash))
	if outcome.ContractAddress != "" {
		fmt.Fprintf(r.out, "  Address:    %s\n", color.New(color.FgGreen, color.Bold).Sprint(outcome.ContractAddress))
	}
	if len(outcome.ConstructorArgs) > 0 {
		fmt.Fprintf(r.out, "  Arguments:  %s\n", strings.Join(outcome.ConstructorArgs, " "))
	}
	fmt.Fprintf(r.out, "  Artifact:   %s\n", getRelativePath(outcome.ArtifactPath))

	if outcome.ContractAddress == "" && outcome.DeployOutput != "" {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, FormatWarning("Could not find the contract address in the deploy output:"))
		fmt.Fprintln(r.out, strings.TrimSpace(outcome.DeployOutput))
	}

	if result.Deployment != nil {
		fmt.Fprintf(r.out, "\n📁 Recorded as %s\n", color.New(color.Faint).Sprint(result.Deployment.ShortID()))
	}
	return nil
}

// renderPlan lists the commands a real run would execute
func (r *DeployRenderer) renderPlan(plan []domain.Invocation) error {
	fmt.Fprintln(r.out)
	color.New(color.Bold).Fprintln(r.out, "Dry run, the following commands would be executed:")
	for i, inv := range plan {
		fmt.Fprintf(r.out, "  %d. %s %s\n", i+1, inv.Tool, strings.Join(inv.Args, " "))
		if inv.Dir != "" {
			fmt.Fprintf(r.out, "     %s\n", color.New(color.Faint).Sprintf("in %s", getRelativePath(inv.Dir)))
		}
	}
	return nil
}

// RenderFailure describes which stage stopped the pipeline
func (r *DeployRenderer) RenderFailure(err error) {
	var stageErr *domain.StageError
	if !errors.As(err, &stageErr) {
		fmt.Fprintln(r.out, FormatError(err.Error()))
		return
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, FormatError(fmt.Sprintf("%s failed: %v", titleCase(string(stageErr.Stage)), stageErr.Err)))
	if stageErr.Detail != "" {
		fmt.Fprintln(r.out, strings.TrimSpace(stageErr.Detail))
	}

	var launchErr *domain.ToolLaunchError
	if errors.As(err, &launchErr) {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Make sure %s is installed and on your PATH", launchErr.Tool)))
	}
}

var _ Renderer[*usecase.DeployContractResult] = (*DeployRenderer)(nil)
