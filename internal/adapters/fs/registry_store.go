package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/trebuchet-org/stark-deploy/internal/domain"
	"github.com/trebuchet-org/stark-deploy/internal/domain/config"
	"github.com/trebuchet-org/stark-deploy/internal/domain/models"
	"github.com/trebuchet-org/stark-deploy/internal/usecase"
)

// DeploymentsFile is the registry file inside the data dir
const DeploymentsFile = "deployments.json"

// registryFile is the on-disk layout of the registry
type registryFile struct {
	Deployments map[string]*models.Deployment `json:"deployments"`
}

// RegistryStoreAdapter keeps deployment records in a JSON file
type RegistryStoreAdapter struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// NewRegistryStoreAdapter creates a new registry store under the data dir
func NewRegistryStoreAdapter(cfg *config.RuntimeConfig) *RegistryStoreAdapter {
	return &RegistryStoreAdapter{
		path: filepath.Join(cfg.DataDir, DeploymentsFile),
		now:  time.Now,
	}
}

// SaveDeployment stores a record, assigning an ID and timestamp when missing
func (s *RegistryStoreAdapter) SaveDeployment(_ context.Context, deployment *models.Deployment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	registry, err := s.load()
	if err != nil {
		return err
	}

	if deployment.ID == "" {
		deployment.ID = uuid.New().String()
	}
	if deployment.CreatedAt.IsZero() {
		deployment.CreatedAt = s.now().UTC()
	}
	registry.Deployments[deployment.ID] = deployment

	return s.save(registry)
}

// GetDeployment retrieves a deployment by its exact ID
func (s *RegistryStoreAdapter) GetDeployment(_ context.Context, id string) (*models.Deployment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	registry, err := s.load()
	if err != nil {
		return nil, err
	}

	deployment, ok := registry.Deployments[id]
	if !ok {
		return nil, fmt.Errorf("deployment %s: %w", id, domain.ErrNotFound)
	}
	return deployment, nil
}

// ListDeployments retrieves deployments matching the filter
func (s *RegistryStoreAdapter) ListDeployments(_ context.Context, filter models.DeploymentFilter) ([]*models.Deployment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	registry, err := s.load()
	if err != nil {
		return nil, err
	}

	return lo.Filter(lo.Values(registry.Deployments), func(d *models.Deployment, _ int) bool {
		return filter.Matches(d)
	}), nil
}

// GetPath returns the path of the registry file
func (s *RegistryStoreAdapter) GetPath() string {
	return s.path
}

// load reads the registry, returning an empty one if the file does not exist
func (s *RegistryStoreAdapter) load() (*registryFile, error) {
	registry := &registryFile{Deployments: make(map[string]*models.Deployment)}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return registry, nil
		}
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	if err := json.Unmarshal(data, registry); err != nil {
		return nil, fmt.Errorf("failed to parse registry file: %w", err)
	}
	if registry.Deployments == nil {
		registry.Deployments = make(map[string]*models.Deployment)
	}
	return registry, nil
}

// save writes the registry through a temp file so readers never see a partial file
func (s *RegistryStoreAdapter) save(registry *registryFile) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create registry directory: %w", err)
	}

	data, err := json.MarshalIndent(registry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	tmp, err := os.CreateTemp(dir, DeploymentsFile+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp registry file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write registry file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace registry file: %w", err)
	}
	return nil
}

// Ensure RegistryStoreAdapter implements DeploymentRepository
var _ usecase.DeploymentRepository = (*RegistryStoreAdapter)(nil)
