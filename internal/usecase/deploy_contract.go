package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/trebuchet-org/stark-deploy/internal/domain"
	"github.com/trebuchet-org/stark-deploy/internal/domain/config"
	"github.com/trebuchet-org/stark-deploy/internal/domain/models"
)

const (
	// CompilerTool builds Cairo projects
	CompilerTool = "scarb"
	// WalletTool manages signers and talks to the network
	WalletTool = "starkli"
)

// stageMessages are the status lines printed before each stage runs
var stageMessages = map[domain.Stage]string{
	domain.StageValidateInputs:   "Validating inputs...",
	domain.StageReadManifest:     "Reading Scarb.toml...",
	domain.StageCompile:          "Compiling the contract...",
	domain.StageGenerateKeystore: "Generating keystore...",
	domain.StageFetchAccount:     "Fetching account...",
	domain.StageResolveArtifact:  "Checking contract artifact...",
	domain.StageDeclare:          "Declaring the contract...",
	domain.StageNormalizeArgs:    "Parsing constructor arguments...",
	domain.StageDeploy:           "Deploying contract...",
	domain.StageSuccess:          "Deployment complete",
}

// DeployContractResult contains the result of a pipeline run
type DeployContractResult struct {
	Outcome    *domain.DeploymentOutcome
	Deployment *models.Deployment // nil when the record could not be saved

	// Plan holds the invocations a dry run would have executed
	Plan   []domain.Invocation
	DryRun bool
}

// DeployContract drives the compile, declare and deploy pipeline
type DeployContract struct {
	runner     ToolRunner
	manifest   ManifestReader
	normalizer ConstructorArgsNormalizer
	files      FileSystem
	repo       DeploymentRepository
	progress   ProgressSink
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	runner ToolRunner,
	manifest ManifestReader,
	normalizer ConstructorArgsNormalizer,
	files FileSystem,
	repo DeploymentRepository,
	progress ProgressSink,
) *DeployContract {
	if progress == nil {
		progress = NopProgress{}
	}
	return &DeployContract{
		runner:     runner,
		manifest:   manifest,
		normalizer: normalizer,
		files:      files,
		repo:       repo,
		progress:   progress,
	}
}

// pipelinePaths are the filesystem locations used by a run
type pipelinePaths struct {
	keystore string
	account  string
	artifact string
}

// Run executes every stage in order and stops at the first terminal failure.
// Failures are returned as *domain.StageError wrapping one of the domain sentinels.
// The progress sink is stopped before Run returns so callers can print freely.
func (uc *DeployContract) Run(ctx context.Context, cfg config.PipelineConfig) (*DeployContractResult, error) {
	defer uc.progress.Stop()
	return uc.run(ctx, cfg)
}

func (uc *DeployContract) run(ctx context.Context, cfg config.PipelineConfig) (*DeployContractResult, error) {
	paths := pipelinePaths{
		keystore: resolvePath(cfg.WorkingDir, cfg.Network.Keystore),
		account:  resolvePath(cfg.WorkingDir, cfg.Network.Account),
	}

	// Stage 1: Validate inputs
	uc.enter(ctx, domain.StageValidateInputs)
	exists, err := uc.files.DirExists(ctx, cfg.ProjectPath)
	if err != nil {
		return nil, domain.NewStageError(domain.StageValidateInputs, fmt.Errorf("%w: %v", domain.ErrPathNotFound, err), cfg.ProjectPath)
	}
	if !exists {
		return nil, domain.NewStageError(domain.StageValidateInputs, domain.ErrPathNotFound, cfg.ProjectPath)
	}

	// Stage 2: Read manifest
	uc.enter(ctx, domain.StageReadManifest)
	packageName, err := uc.manifest.ReadPackageName(cfg.ProjectPath)
	if err != nil {
		return nil, domain.NewStageError(domain.StageReadManifest, err, "")
	}
	paths.artifact = domain.ResolveArtifactPath(
		domain.BuildRoot(cfg.ProjectPath, cfg.BuildProfile),
		packageName,
		cfg.ContractName,
	)

	if cfg.DryRun {
		return uc.plan(cfg, paths)
	}

	outcome := &domain.DeploymentOutcome{
		PackageName:  packageName,
		ContractName: cfg.ContractName,
		ArtifactPath: paths.artifact,
	}

	// Stage 3: Compile
	uc.enter(ctx, domain.StageCompile)
	res, err := uc.runner.Run(ctx, compileInvocation(cfg))
	if err != nil {
		return nil, domain.NewStageError(domain.StageCompile, err, "")
	}
	if !res.Success() {
		return nil, domain.NewStageError(domain.StageCompile, domain.ErrCompilationFailed, failureDetail(res))
	}

	// Stage 4: Generate keystore (failures are not fatal)
	uc.enter(ctx, domain.StageGenerateKeystore)
	reused, err := uc.generateKeystore(ctx, cfg, paths)
	if err != nil {
		return nil, err
	}
	outcome.KeystoreReused = reused

	// Stage 5: Fetch account
	uc.enter(ctx, domain.StageFetchAccount)
	accountExists, err := uc.files.FileExists(ctx, paths.account)
	if err != nil {
		return nil, domain.NewStageError(domain.StageFetchAccount, err, paths.account)
	}
	res, err = uc.runner.Run(ctx, fetchAccountInvocation(cfg, paths, accountExists))
	if err != nil {
		return nil, domain.NewStageError(domain.StageFetchAccount, err, "")
	}
	if !res.Success() {
		return nil, domain.NewStageError(domain.StageFetchAccount, domain.ErrAccountFetchFailed, failureDetail(res))
	}

	// Stage 6: Resolve and validate artifact
	uc.enter(ctx, domain.StageResolveArtifact)
	if err := uc.checkPreconditions(ctx, paths); err != nil {
		return nil, err
	}

	// Stage 7: Declare
	uc.enter(ctx, domain.StageDeclare)
	res, err = uc.runner.Run(ctx, declareInvocation(cfg, paths))
	if err != nil {
		return nil, domain.NewStageError(domain.StageDeclare, err, "")
	}
	if !res.Success() {
		return nil, domain.NewStageError(domain.StageDeclare, domain.ErrDeclareFailed, res.Stderr)
	}
	classHash, ok := domain.ExtractClassHash(res.Stdout)
	if !ok {
		return nil, domain.NewStageError(domain.StageDeclare, domain.ErrClassHashNotFound, res.Stdout)
	}
	outcome.ClassHash = classHash
	uc.progress.Info(fmt.Sprintf("Class hash: %s", classHash))

	// Stage 8: Normalize constructor arguments
	uc.enter(ctx, domain.StageNormalizeArgs)
	args, err := uc.normalizer.Normalize(cfg.ConstructorInput)
	if err != nil {
		return nil, domain.NewStageError(domain.StageNormalizeArgs, err, "")
	}
	outcome.ConstructorArgs = args

	// Stage 9: Deploy
	uc.enter(ctx, domain.StageDeploy)
	res, err = uc.runner.Run(ctx, deployInvocation(cfg, paths, classHash, args))
	if err != nil {
		return nil, domain.NewStageError(domain.StageDeploy, err, "")
	}
	if !res.Success() {
		return nil, domain.NewStageError(domain.StageDeploy, domain.ErrDeployFailed, failureDetail(res))
	}
	outcome.DeployOutput = res.Stdout
	outcome.ContractAddress = domain.ExtractContractAddress(res.Stdout)

	// Stage 10: Success
	uc.enter(ctx, domain.StageSuccess)
	result := &DeployContractResult{Outcome: outcome}
	result.Deployment = uc.record(ctx, cfg, outcome)

	return result, nil
}

// enter prints the status line of a stage
func (uc *DeployContract) enter(ctx context.Context, stage domain.Stage) {
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   stage,
		Current: stage.Index() + 1,
		Total:   len(domain.PipelineStages),
		Message: stageMessages[stage],
		Spinner: stage != domain.StageSuccess && stage != domain.StageGenerateKeystore,
	})
}

// generateKeystore creates signing material unless a keystore is already present.
// It returns true when an existing keystore was reused.
func (uc *DeployContract) generateKeystore(ctx context.Context, cfg config.PipelineConfig, paths pipelinePaths) (bool, error) {
	exists, err := uc.files.FileExists(ctx, paths.keystore)
	if err != nil {
		return false, domain.NewStageError(domain.StageGenerateKeystore, err, paths.keystore)
	}
	if exists && !cfg.RegenerateKeystore {
		uc.progress.Info(fmt.Sprintf("Keystore %s already exists, skipping generation", paths.keystore))
		return true, nil
	}

	if err := uc.files.EnsureDirectory(ctx, filepath.Dir(paths.keystore)); err != nil {
		return false, domain.NewStageError(domain.StageGenerateKeystore, err, paths.keystore)
	}

	res, err := uc.runner.Run(ctx, keystoreInvocation(cfg, paths))
	if err != nil {
		return false, domain.NewStageError(domain.StageGenerateKeystore, err, "")
	}
	if !res.Success() {
		uc.progress.Warn(fmt.Sprintf("Keystore generation failed (exit code %d), continuing", res.ExitCode))
	}
	return false, nil
}

// checkPreconditions verifies every file the declare stage reads
func (uc *DeployContract) checkPreconditions(ctx context.Context, paths pipelinePaths) error {
	required := []struct {
		label string
		path  string
	}{
		{"contract artifact", paths.artifact},
		{"keystore", paths.keystore},
		{"account", paths.account},
	}

	for _, file := range required {
		exists, err := uc.files.FileExists(ctx, file.path)
		if err != nil {
			return domain.NewStageError(domain.StageResolveArtifact, fmt.Errorf("%w: %v", domain.ErrPreconditionMissing, err), file.path)
		}
		if !exists {
			return domain.NewStageError(domain.StageResolveArtifact, domain.ErrPreconditionMissing, fmt.Sprintf("%s file not found: %s", file.label, file.path))
		}
	}
	return nil
}

// record saves the deployment to the registry; a failure only produces a warning
func (uc *DeployContract) record(ctx context.Context, cfg config.PipelineConfig, outcome *domain.DeploymentOutcome) *models.Deployment {
	if uc.repo == nil {
		return nil
	}

	deployment := &models.Deployment{
		Network:         cfg.Network.Name,
		PackageName:     outcome.PackageName,
		ContractName:    outcome.ContractName,
		ClassHash:       string(outcome.ClassHash),
		Address:         outcome.ContractAddress,
		Deployer:        cfg.WalletAddress,
		ConstructorArgs: append([]string{}, outcome.ConstructorArgs...),
		Artifact:        outcome.ArtifactPath,
		RPCURL:          cfg.Network.RPCURL,
	}
	if err := uc.repo.SaveDeployment(ctx, deployment); err != nil {
		uc.progress.Warn(fmt.Sprintf("Warning: failed to record deployment: %v", err))
		return nil
	}
	return deployment
}

// plan returns the invocations a real run would perform, without executing them.
// Constructor input is normalized so malformed input is caught early.
func (uc *DeployContract) plan(cfg config.PipelineConfig, paths pipelinePaths) (*DeployContractResult, error) {
	args, err := uc.normalizer.Normalize(cfg.ConstructorInput)
	if err != nil {
		return nil, domain.NewStageError(domain.StageNormalizeArgs, err, "")
	}

	return &DeployContractResult{
		DryRun: true,
		Plan: []domain.Invocation{
			compileInvocation(cfg),
			keystoreInvocation(cfg, paths),
			fetchAccountInvocation(cfg, paths, false),
			declareInvocation(cfg, paths),
			deployInvocation(cfg, paths, "<class-hash>", args),
		},
	}, nil
}

func compileInvocation(cfg config.PipelineConfig) domain.Invocation {
	args := []string{"build"}
	if cfg.BuildProfile != "" && cfg.BuildProfile != domain.DefaultBuildProfile {
		args = append(args, "--profile", cfg.BuildProfile)
	}
	return domain.Invocation{Tool: CompilerTool, Args: args, Dir: cfg.ProjectPath}
}

func keystoreInvocation(cfg config.PipelineConfig, paths pipelinePaths) domain.Invocation {
	return domain.Invocation{
		Tool:        WalletTool,
		Args:        []string{"signer", "keystore", "from-key", paths.keystore},
		Dir:         cfg.WorkingDir,
		Interactive: true,
	}
}

// fetchAccountInvocation overwrites a descriptor left by a previous run
func fetchAccountInvocation(cfg config.PipelineConfig, paths pipelinePaths, overwrite bool) domain.Invocation {
	args := []string{
		"account", "fetch", cfg.WalletAddress,
		"--rpc", cfg.Network.RPCURL,
		"--output", paths.account,
	}
	if overwrite {
		args = append(args, "--force")
	}
	return domain.Invocation{Tool: WalletTool, Args: args, Dir: cfg.WorkingDir}
}

func declareInvocation(cfg config.PipelineConfig, paths pipelinePaths) domain.Invocation {
	args := []string{
		"declare", paths.artifact,
		"--rpc", cfg.Network.RPCURL,
		"--account", paths.account,
		"--keystore", paths.keystore,
	}
	if cfg.Network.MaxFee != "" {
		args = append(args, "--max-fee", cfg.Network.MaxFee)
	}
	return domain.Invocation{Tool: WalletTool, Args: args, Dir: cfg.WorkingDir}
}

// deployInvocation passes each constructor token as its own argument
func deployInvocation(cfg config.PipelineConfig, paths pipelinePaths, classHash domain.ClassHash, ctorArgs domain.ConstructorArgs) domain.Invocation {
	args := make([]string, 0, 8+len(ctorArgs))
	args = append(args, "deploy", string(classHash))
	args = append(args, ctorArgs...)
	args = append(args,
		"--account", paths.account,
		"--rpc", cfg.Network.RPCURL,
		"--keystore", paths.keystore,
	)
	if cfg.Network.MaxFee != "" {
		args = append(args, "--max-fee", cfg.Network.MaxFee)
	}
	return domain.Invocation{Tool: WalletTool, Args: args, Dir: cfg.WorkingDir}
}

// resolvePath anchors relative profile paths at the working directory
func resolvePath(base, path string) string {
	if path == "" || filepath.IsAbs(path) || base == "" {
		return path
	}
	return filepath.Join(base, path)
}

// failureDetail picks the most useful output of a failed invocation
func failureDetail(res *domain.StageResult) string {
	if detail := strings.TrimSpace(res.Stderr); detail != "" {
		return detail
	}
	if detail := strings.TrimSpace(res.Stdout); detail != "" {
		return detail
	}
	return "exit code " + strconv.Itoa(res.ExitCode)
}
