package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/stark-deploy/internal/usecase"
)

// SpinnerProgressReporter prints one status line per pipeline stage and keeps
// a spinner running while a long stage is in flight
type SpinnerProgressReporter struct {
	out     io.Writer
	spinner *spinner.Spinner
}

// NewSpinnerProgressReporter creates a reporter writing to stdout
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	return NewSpinnerProgressReporterTo(os.Stdout)
}

// NewSpinnerProgressReporterTo creates a reporter writing to out.
// The spinner only animates when out is a terminal.
func NewSpinnerProgressReporterTo(out io.Writer) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		out:     out,
		spinner: s,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.stopSpinner()

	if event.Message != "" {
		counter := color.New(color.Faint).Sprintf("[%d/%d]", event.Current, event.Total)
		fmt.Fprintf(r.out, "%s %s\n", counter, event.Message)
	}

	if event.Spinner {
		r.spinner.Suffix = " " + event.Message
		r.spinner.Start()
	}
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.println(color.New(color.FgCyan), message)
}

// Warn prints a warning
func (r *SpinnerProgressReporter) Warn(message string) {
	r.println(color.New(color.FgYellow), message)
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.println(color.New(color.FgRed), message)
}

// Stop clears the spinner of the last stage
func (r *SpinnerProgressReporter) Stop() {
	r.stopSpinner()
}

func (r *SpinnerProgressReporter) println(c *color.Color, message string) {
	// Stop spinner temporarily
	wasActive := r.stopSpinner()

	c.Fprintln(r.out, message)

	// Restart spinner if it was active
	if wasActive {
		r.spinner.Start()
	}
}

func (r *SpinnerProgressReporter) stopSpinner() bool {
	if r.spinner != nil && r.spinner.Active() {
		r.spinner.Stop()
		return true
	}
	return false
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
