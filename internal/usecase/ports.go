package usecase

import (
	"context"

	"github.com/trebuchet-org/stark-deploy/internal/domain"
	"github.com/trebuchet-org/stark-deploy/internal/domain/config"
	"github.com/trebuchet-org/stark-deploy/internal/domain/models"
)

// ToolRunner executes external executables and captures their output.
// A non-zero exit is reported through StageResult; only a failure to
// start the process is returned as an error.
type ToolRunner interface {
	Run(ctx context.Context, inv domain.Invocation) (*domain.StageResult, error)
}

// ManifestReader extracts the package name from a project's manifest
type ManifestReader interface {
	ReadPackageName(projectPath string) (string, error)
}

// ConstructorArgsNormalizer turns raw CLI input into positional constructor tokens
type ConstructorArgsNormalizer interface {
	Normalize(raw *string) (domain.ConstructorArgs, error)
}

// FileSystem answers existence questions about paths and prepares directories
type FileSystem interface {
	FileExists(ctx context.Context, path string) (bool, error)
	DirExists(ctx context.Context, path string) (bool, error)
	EnsureDirectory(ctx context.Context, path string) error
}

// DeploymentRepository persists deployment records
type DeploymentRepository interface {
	SaveDeployment(ctx context.Context, deployment *models.Deployment) error
	GetDeployment(ctx context.Context, ref string) (*models.Deployment, error)
	ListDeployments(ctx context.Context, filter models.DeploymentFilter) ([]*models.Deployment, error)
}

// NetworkResolver handles network profile resolution
type NetworkResolver interface {
	GetNetworks(ctx context.Context) []string
	ResolveNetwork(ctx context.Context, networkName string) (*config.NetworkProfile, error)
}

// NetworkSelector handles interactive selection of a network profile
type NetworkSelector interface {
	SelectNetwork(ctx context.Context, names []string, prompt string) (string, error)
}

// LocalConfigRepository manages local configuration persistence
type LocalConfigRepository interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, config *config.LocalConfig) error
	GetPath() string
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   domain.Stage
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Warn(message string)
	Error(message string)
	// Stop ends any animation left running by the last stage
	Stop()
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Warn(string)                               {}
func (NopProgress) Error(string)                              {}
func (NopProgress) Stop()                                     {}
