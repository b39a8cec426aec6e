package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageError(t *testing.T) {
	err := NewStageError(StageDeclare, ErrDeclareFailed, "  Error: insufficient balance\n")

	assert.Equal(t, "declare: declare failed: Error: insufficient balance", err.Error())
	assert.ErrorIs(t, err, ErrDeclareFailed)

	noDetail := NewStageError(StageCompile, ErrCompilationFailed, "")
	assert.Equal(t, "compile: compilation failed", noDetail.Error())
}

func TestToolLaunchError(t *testing.T) {
	cause := errors.New("executable file not found in $PATH")
	err := NewStageError(StageCompile, &ToolLaunchError{Tool: "scarb", Err: cause}, "")

	assert.ErrorIs(t, err, ErrToolLaunchFailed)
	assert.ErrorIs(t, err, cause)

	var launchErr *ToolLaunchError
	assert.ErrorAs(t, err, &launchErr)
	assert.Equal(t, "scarb", launchErr.Tool)
	assert.Equal(t, "compile: failed to launch scarb: executable file not found in $PATH", err.Error())
}
