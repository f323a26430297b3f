package cli

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/katalvlaran/hull/internal/workload"
)

// ExitCode is the process status hull reports for a failed command.
type ExitCode int

const (
	ExitMismatch ExitCode = 1 // a container disagreed with brute force
	ExitBadInput ExitCode = 2 // unreadable file, invalid workload or flags
)

// commandError tags a failed step (op) with the status it maps to.
type commandError struct {
	code ExitCode
	op   string
	err  error
}

func (e *commandError) Error() string { return e.op + ": " + e.err.Error() }
func (e *commandError) Unwrap() error { return e.err }

func badInput(op string, err error) error {
	return &commandError{code: ExitBadInput, op: op, err: err}
}

// ExitCodeOf maps an Execute error to a process status. A tagged step keeps
// its own code; an untagged workload.ErrMismatch is a verification failure;
// anything else (cobra flag and argument errors) is bad input.
func ExitCodeOf(err error) int {
	var ce *commandError
	switch {
	case errors.As(err, &ce):
		return int(ce.code)
	case errors.Is(err, workload.ErrMismatch):
		return int(ExitMismatch)
	default:
		return int(ExitBadInput)
	}
}

// OutputFormatter renders command results as text or JSON.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Emit writes data as indented JSON, or calls text for the text format.
func (f *OutputFormatter) Emit(data interface{}, text func(w io.Writer) error) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
	return text(f.Writer)
}
