package domain

// Stage identifies a step of the deployment pipeline
type Stage string

const (
	StageValidateInputs   Stage = "validate-inputs"
	StageReadManifest     Stage = "read-manifest"
	StageCompile          Stage = "compile"
	StageGenerateKeystore Stage = "generate-keystore"
	StageFetchAccount     Stage = "fetch-account"
	StageResolveArtifact  Stage = "resolve-artifact"
	StageDeclare          Stage = "declare"
	StageNormalizeArgs    Stage = "normalize-args"
	StageDeploy           Stage = "deploy"
	StageSuccess          Stage = "success"
)

// PipelineStages lists the stages in execution order
var PipelineStages = []Stage{
	StageValidateInputs,
	StageReadManifest,
	StageCompile,
	StageGenerateKeystore,
	StageFetchAccount,
	StageResolveArtifact,
	StageDeclare,
	StageNormalizeArgs,
	StageDeploy,
	StageSuccess,
}

// Index returns the position of the stage in the pipeline, -1 if unknown
func (s Stage) Index() int {
	for i, stage := range PipelineStages {
		if stage == s {
			return i
		}
	}
	return -1
}

// ProjectManifest holds the fields read from Scarb.toml
type ProjectManifest struct {
	PackageName string
}

// Invocation describes a single external tool execution
type Invocation struct {
	Tool string
	Args []string
	Dir  string

	// Interactive attaches the tool to the user's terminal so it can prompt
	Interactive bool
}

// StageResult is the captured outcome of an external tool execution
type StageResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the tool exited with status 0
func (r *StageResult) Success() bool {
	return r.ExitCode == 0
}

// ClassHash identifies a declared contract class
type ClassHash string

// ConstructorArgs are positional constructor parameters, in order
type ConstructorArgs []string

// DeploymentOutcome is returned by a successful pipeline run
type DeploymentOutcome struct {
	PackageName     string
	ContractName    string
	ArtifactPath    string
	ClassHash       ClassHash
	ContractAddress string
	ConstructorArgs ConstructorArgs
	DeployOutput    string
	KeystoreReused  bool
}
