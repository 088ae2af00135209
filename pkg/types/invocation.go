// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// InputMode identifies how input reached pandoc for one invocation.
type InputMode string

const (
	InputNone   InputMode = "none"
	InputFile   InputMode = "file"
	InputInline InputMode = "inline"
)

// Invocation describes one spawned pandoc process.
type Invocation struct {
	// ID is assigned by the history store; zero before insertion.
	ID int64 `json:"id" yaml:"id"`

	// Binary is the executable that was run.
	Binary string `json:"binary" yaml:"binary"`

	// Args are the command-line arguments, excluding the binary.
	Args []string `json:"args" yaml:"args"`

	// Mode is the input mode of the call.
	Mode InputMode `json:"mode" yaml:"mode"`

	// ExitStatus is the process exit status; -1 when the process did not start.
	ExitStatus int `json:"exit_status" yaml:"exit_status"`

	// Error is set when the process could not be run. A non-zero exit
	// status alone leaves it empty.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// StartedAt is when the process was spawned.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// Duration is the wall time until the process exited.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Succeeded reports whether the process exited with status zero.
func (i Invocation) Succeeded() bool {
	return i.ExitStatus == 0 && i.Error == ""
}
