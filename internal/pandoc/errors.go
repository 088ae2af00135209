// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pandoc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoInput is returned when a call has no input and its options do not
// form a command that pandoc answers without input.
var ErrNoInput = errors.New("No input specified")

// ProcessError reports a pandoc process that ran and exited non-zero.
type ProcessError struct {
	// ExitStatus is the process exit status.
	ExitStatus int
	// Stdout is everything the process wrote to standard output.
	Stdout string
	// Stderr is everything the process wrote to standard error.
	Stderr string
	// Args are the arguments pandoc was started with.
	Args []string
}

func (e *ProcessError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = strings.TrimSpace(e.Stdout)
	}
	if msg == "" {
		return fmt.Sprintf("pandoc exited with status %d", e.ExitStatus)
	}
	return fmt.Sprintf("pandoc exited with status %d: %s", e.ExitStatus, msg)
}

// DecodeError reports pandoc output that could not be decoded as a JSON
// document. The process itself succeeded.
type DecodeError struct {
	// Text is the output that failed to decode.
	Text string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding pandoc JSON output: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

var (
	errWrittenToFile = errors.New("output was written to a file")
	errNotObject     = errors.New("top-level value is not an object")
)
