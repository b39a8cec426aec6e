package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for pipeline operations
var (
	// ErrPathNotFound is returned when the project path does not exist
	ErrPathNotFound = errors.New("path not found")

	// ErrManifestNotFound is returned when Scarb.toml is missing from the project
	ErrManifestNotFound = errors.New("manifest not found")

	// ErrManifestMalformed is returned when the manifest cannot be parsed or lacks a package name
	ErrManifestMalformed = errors.New("manifest malformed")

	// ErrCompilationFailed is returned when the compiler exits non-zero
	ErrCompilationFailed = errors.New("compilation failed")

	// ErrAccountFetchFailed is returned when the account descriptor could not be fetched
	ErrAccountFetchFailed = errors.New("account fetch failed")

	// ErrPreconditionMissing is returned when a file required by the declare stage is absent
	ErrPreconditionMissing = errors.New("precondition missing")

	// ErrDeclareFailed is returned when the declare subcommand exits non-zero
	ErrDeclareFailed = errors.New("declare failed")

	// ErrClassHashNotFound is returned when declare output holds no class hash
	ErrClassHashNotFound = errors.New("class hash not found")

	// ErrConstructorFileUnreadable is returned when a constructor file cannot be read
	ErrConstructorFileUnreadable = errors.New("constructor file unreadable")

	// ErrDeployFailed is returned when the deploy subcommand exits non-zero
	ErrDeployFailed = errors.New("deploy failed")

	// ErrToolLaunchFailed is returned when an external executable cannot be started
	ErrToolLaunchFailed = errors.New("tool launch failed")

	// ErrNotFound is returned when a requested registry record doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrUnknownNetwork is returned when a network profile name is not configured
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrInvalidFelt is returned when a value is not a valid field element
	ErrInvalidFelt = errors.New("invalid felt")
)

// StageError reports the pipeline stage that terminated a run.
// Err is one of the sentinel errors above (possibly wrapping a cause),
// Detail carries context such as the missing file or captured stderr.
type StageError struct {
	Stage  Stage
	Err    error
	Detail string
}

func (e *StageError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Stage, e.Err)
	if detail := strings.TrimSpace(e.Detail); detail != "" {
		msg += ": " + detail
	}
	return msg
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError wraps err as a failure of stage
func NewStageError(stage Stage, err error, detail string) *StageError {
	return &StageError{Stage: stage, Err: err, Detail: detail}
}

// ToolLaunchError is returned by the tool runner when a process cannot be started
type ToolLaunchError struct {
	Tool string
	Err  error
}

func (e *ToolLaunchError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Tool, e.Err)
}

func (e *ToolLaunchError) Unwrap() []error {
	return []error{ErrToolLaunchFailed, e.Err}
}
