package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"
	"github.com/trebuchet-org/stark-deploy/internal/domain"
	"github.com/trebuchet-org/stark-deploy/internal/usecase"
	"golang.org/x/term"
)

// ExecRunner runs external tools as child processes
type ExecRunner struct {
	log    *slog.Logger
	stdin  *os.File
	stdout io.Writer
	input  *stdinPump
}

// NewExecRunner creates a runner attached to the process' terminal
func NewExecRunner(log *slog.Logger) *ExecRunner {
	return &ExecRunner{
		log:    log.With("component", "ExecRunner"),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		input:  newStdinPump(os.Stdin),
	}
}

// Run executes the invocation and waits for it to exit.
// Stdout and stderr are captured separately; interactive invocations on a
// terminal run under a pty and their transcript is returned as stdout.
func (r *ExecRunner) Run(ctx context.Context, inv domain.Invocation) (*domain.StageResult, error) {
	if _, err := exec.LookPath(inv.Tool); err != nil {
		r.log.Error("tool not found", "tool", inv.Tool, "error", err)
		return nil, &domain.ToolLaunchError{Tool: inv.Tool, Err: err}
	}

	if inv.Interactive && r.stdin != nil && term.IsTerminal(int(r.stdin.Fd())) {
		return r.runInteractive(ctx, inv)
	}

	start := time.Now()
	r.log.Debug("running tool", "tool", inv.Tool, "args", inv.Args, "dir", inv.Dir)

	cmd := exec.CommandContext(ctx, inv.Tool, inv.Args...)
	cmd.Dir = inv.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if inv.Interactive && r.stdin != nil {
		cmd.Stdin = r.stdin
	}

	err := cmd.Run()
	result := &domain.StageResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	return r.finish(ctx, inv, result, err, time.Since(start))
}

// runInteractive hands the terminal to the tool so it can prompt for secrets
func (r *ExecRunner) runInteractive(ctx context.Context, inv domain.Invocation) (*domain.StageResult, error) {
	start := time.Now()
	r.log.Debug("running interactive tool", "tool", inv.Tool, "args", inv.Args, "dir", inv.Dir)

	cmd := exec.CommandContext(ctx, inv.Tool, inv.Args...)
	cmd.Dir = inv.Dir

	ptyFile, err := pty.Start(cmd)
	if err != nil {
		r.log.Error("failed to start pty", "tool", inv.Tool, "error", err)
		return nil, &domain.ToolLaunchError{Tool: inv.Tool, Err: err}
	}
	defer func() {
		_ = ptyFile.Close()
	}()

	if err := pty.InheritSize(r.stdin, ptyFile); err != nil {
		r.log.Debug("failed to inherit terminal size", "error", err)
	}

	fd := int(r.stdin.Fd())
	if state, err := term.MakeRaw(fd); err == nil {
		defer func() {
			_ = term.Restore(fd, state)
		}()
	}

	if r.input == nil {
		r.input = newStdinPump(r.stdin)
	}
	done := make(chan struct{})
	forwarded := make(chan struct{})
	go func() {
		defer close(forwarded)
		r.input.forward(ptyFile, done)
	}()

	var transcript bytes.Buffer
	// The copy ends with EIO once the child closes its side of the pty
	_, _ = io.Copy(io.MultiWriter(r.stdout, &transcript), ptyFile)

	err = cmd.Wait()
	close(done)
	<-forwarded

	result := &domain.StageResult{Stdout: transcript.String()}
	return r.finish(ctx, inv, result, err, time.Since(start))
}

// finish converts the wait error into an exit code or a launch failure.
// A child killed because ctx ended reports the context error instead.
func (r *ExecRunner) finish(ctx context.Context, inv domain.Invocation, result *domain.StageResult, err error, duration time.Duration) (*domain.StageResult, error) {
	if err != nil && ctx.Err() != nil {
		r.log.Debug("tool interrupted", "tool", inv.Tool, "error", ctx.Err(), "duration", duration)
		return nil, fmt.Errorf("%s interrupted: %w", inv.Tool, ctx.Err())
	}

	if err == nil {
		r.log.Debug("tool completed", "tool", inv.Tool, "duration", duration)
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		r.log.Debug("tool exited with non-zero status",
			"tool", inv.Tool, "exitCode", result.ExitCode, "stderr", result.Stderr, "duration", duration)
		return result, nil
	}

	r.log.Error("failed to launch tool", "tool", inv.Tool, "error", err)
	return nil, &domain.ToolLaunchError{Tool: inv.Tool, Err: err}
}

// Ensure the runner implements the interface
var _ usecase.ToolRunner = (*ExecRunner)(nil)
