package usecase_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/stark-deploy/internal/domain"
	"github.com/trebuchet-org/stark-deploy/internal/domain/config"
	"github.com/trebuchet-org/stark-deploy/internal/domain/models"
	"github.com/trebuchet-org/stark-deploy/internal/usecase"
)

// MockDeploymentRepository is a mock implementation of DeploymentRepository
type MockDeploymentRepository struct {
	mock.Mock
}

func (m *MockDeploymentRepository) SaveDeployment(ctx context.Context, deployment *models.Deployment) error {
	args := m.Called(ctx, deployment)
	return args.Error(0)
}

func (m *MockDeploymentRepository) GetDeployment(ctx context.Context, ref string) (*models.Deployment, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deployment), args.Error(1)
}

func (m *MockDeploymentRepository) ListDeployments(ctx context.Context, filter models.DeploymentFilter) ([]*models.Deployment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Deployment), args.Error(1)
}

// MockNetworkResolver is a mock implementation of NetworkResolver
type MockNetworkResolver struct {
	mock.Mock
}

func (m *MockNetworkResolver) GetNetworks(ctx context.Context) []string {
	args := m.Called(ctx)
	return args.Get(0).([]string)
}

func (m *MockNetworkResolver) ResolveNetwork(ctx context.Context, networkName string) (*config.NetworkProfile, error) {
	args := m.Called(ctx, networkName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.NetworkProfile), args.Error(1)
}

// MockNetworkSelector is a mock implementation of NetworkSelector
type MockNetworkSelector struct {
	mock.Mock
}

func (m *MockNetworkSelector) SelectNetwork(ctx context.Context, names []string, prompt string) (string, error) {
	args := m.Called(ctx, names, prompt)
	return args.String(0), args.Error(1)
}

// MockLocalConfigRepository is a mock implementation of LocalConfigRepository
type MockLocalConfigRepository struct {
	mock.Mock
}

func (m *MockLocalConfigRepository) Exists() bool {
	return m.Called().Bool(0)
}

func (m *MockLocalConfigRepository) Load(ctx context.Context) (*config.LocalConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.LocalConfig), args.Error(1)
}

func (m *MockLocalConfigRepository) Save(ctx context.Context, cfg *config.LocalConfig) error {
	return m.Called(ctx, cfg).Error(0)
}

func (m *MockLocalConfigRepository) GetPath() string {
	return m.Called().String(0)
}

// MockProgressSink records everything the pipeline reports
type MockProgressSink struct {
	events   []usecase.ProgressEvent
	infos    []string
	warnings []string
	failures []string
	stops    int
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string)  { m.infos = append(m.infos, message) }
func (m *MockProgressSink) Warn(message string)  { m.warnings = append(m.warnings, message) }
func (m *MockProgressSink) Error(message string) { m.failures = append(m.failures, message) }
func (m *MockProgressSink) Stop()                { m.stops++ }

func (m *MockProgressSink) stages() []domain.Stage {
	stages := make([]domain.Stage, len(m.events))
	for i, e := range m.events {
		stages[i] = e.Stage
	}
	return stages
}

// fakeFiles is an in-memory FileSystem
type fakeFiles struct {
	files map[string]bool
	dirs  map[string]bool
	err   error
}

func newFakeFiles(dirs ...string) *fakeFiles {
	f := &fakeFiles{files: map[string]bool{}, dirs: map[string]bool{}}
	for _, d := range dirs {
		f.dirs[d] = true
	}
	return f
}

func (f *fakeFiles) add(paths ...string) {
	for _, p := range paths {
		f.files[p] = true
	}
}

func (f *fakeFiles) FileExists(ctx context.Context, path string) (bool, error) {
	return f.files[path], f.err
}

func (f *fakeFiles) DirExists(ctx context.Context, path string) (bool, error) {
	return f.dirs[path], nil
}

func (f *fakeFiles) EnsureDirectory(ctx context.Context, path string) error {
	f.dirs[path] = true
	return nil
}

// fakeManifest returns a fixed package name
type fakeManifest struct {
	name string
	err  error
}

func (m *fakeManifest) ReadPackageName(projectPath string) (string, error) {
	return m.name, m.err
}

// scriptedRunner records invocations and answers each step with a canned result.
// Steps are "build", "signer", "account", "declare" and "deploy".
type scriptedRunner struct {
	files     *fakeFiles
	calls     []domain.Invocation
	results   map[string]*domain.StageResult
	launchErr map[string]error
}

func newScriptedRunner(files *fakeFiles) *scriptedRunner {
	return &scriptedRunner{
		files:     files,
		results:   map[string]*domain.StageResult{},
		launchErr: map[string]error{},
	}
}

func stepOf(inv domain.Invocation) string {
	return inv.Args[0]
}

func (r *scriptedRunner) Run(ctx context.Context, inv domain.Invocation) (*domain.StageResult, error) {
	r.calls = append(r.calls, inv)
	step := stepOf(inv)

	if err := r.launchErr[step]; err != nil {
		return nil, &domain.ToolLaunchError{Tool: inv.Tool, Err: err}
	}
	if res, ok := r.results[step]; ok {
		return res, nil
	}

	switch step {
	case "signer":
		r.files.add(inv.Args[3])
	case "account":
		for i, arg := range inv.Args {
			if arg == "--output" {
				r.files.add(inv.Args[i+1])
			}
		}
	case "declare":
		return &domain.StageResult{Stdout: "Declaring Cairo 1 class\n0x0abc\n"}, nil
	case "deploy":
		return &domain.StageResult{Stdout: "Deploying class 0x0abc\nContract deployed:\n0x0def\n"}, nil
	}
	return &domain.StageResult{}, nil
}

func (r *scriptedRunner) steps() []string {
	steps := make([]string, len(r.calls))
	for i, c := range r.calls {
		steps[i] = stepOf(c)
	}
	return steps
}

func (r *scriptedRunner) commandLine(step string) string {
	for _, c := range r.calls {
		if stepOf(c) == step {
			return fmt.Sprintf("%s %s", c.Tool, strings.Join(c.Args, " "))
		}
	}
	return ""
}
