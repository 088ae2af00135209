// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pandoc

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
)

// runOutput is what a finished process left behind.
type runOutput struct {
	Stdout     []byte
	Stderr     []byte
	ExitStatus int
}

// executor abstracts process execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	// Run starts name with args, feeding stdin when non-nil, and waits for it
	// to exit. A non-zero exit is reported through ExitStatus, not the error;
	// the error is reserved for processes that could not be run at all.
	Run(ctx context.Context, name string, args []string, stdin io.Reader) (runOutput, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(ctx context.Context, name string, args []string, stdin io.Reader) (runOutput, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	status, err := exitStatus(ctx, cmd.Run())
	return runOutput{Stdout: stdout.Bytes(), Stderr: stderr.Bytes(), ExitStatus: status}, err
}

// exitStatus classifies the error from cmd.Run. A clean exit wins even if ctx
// ended meanwhile; a process killed because ctx ended reports ctx's error.
func exitStatus(ctx context.Context, runErr error) (int, error) {
	if runErr == nil {
		return 0, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, ctxErr
	}
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, runErr
}

var defaultExec = &osExecutor{}
