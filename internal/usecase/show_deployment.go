package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/stark-deploy/internal/domain"
	"github.com/trebuchet-org/stark-deploy/internal/domain/models"
)

// ShowDeploymentParams contains parameters for showing a deployment
type ShowDeploymentParams struct {
	// Ref is a record ID (or unique prefix), a contract address or a contract name
	Ref     string
	Network string
}

// ShowDeployment is the use case for showing deployment details
type ShowDeployment struct {
	repo DeploymentRepository
}

// NewShowDeployment creates a new ShowDeployment use case
func NewShowDeployment(repo DeploymentRepository) *ShowDeployment {
	return &ShowDeployment{
		repo: repo,
	}
}

// Run executes the show deployment use case
func (uc *ShowDeployment) Run(ctx context.Context, params ShowDeploymentParams) (*models.Deployment, error) {
	if params.Ref == "" {
		return nil, fmt.Errorf("deployment reference is required")
	}

	if deployment, err := uc.repo.GetDeployment(ctx, params.Ref); err == nil {
		return deployment, nil
	}

	all, err := uc.repo.ListDeployments(ctx, models.DeploymentFilter{Network: params.Network})
	if err != nil {
		return nil, err
	}

	matches := lo.Filter(all, func(d *models.Deployment, _ int) bool {
		return strings.HasPrefix(d.ID, params.Ref) ||
			d.ContractName == params.Ref ||
			(domain.IsFelt(params.Ref) && domain.CanonicalFelt(d.Address) == domain.CanonicalFelt(params.Ref))
	})

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("deployment %q: %w", params.Ref, domain.ErrNotFound)
	case 1:
		return matches[0], nil
	}

	// Several deployments of the same contract: the newest one wins
	newest := lo.MaxBy(matches, func(a, b *models.Deployment) bool {
		return a.CreatedAt.After(b.CreatedAt)
	})
	return newest, nil
}
