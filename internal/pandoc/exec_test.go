// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pandoc

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitStatus(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	startErr := errors.New("fork/exec pandoc: no such file or directory")

	tests := []struct {
		name       string
		ctx        context.Context
		runErr     error
		wantStatus int
		wantErr    error
	}{
		{"clean exit", context.Background(), nil, 0, nil},
		{"clean exit after ctx ended", cancelled, nil, 0, nil},
		{"killed after ctx ended", cancelled, errors.New("signal: killed"), -1, context.Canceled},
		{"start failure", context.Background(), startErr, -1, startErr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := exitStatus(tt.ctx, tt.runErr)
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not on PATH")
	}
}

func TestOSExecutor_ExitStatus(t *testing.T) {
	requireShell(t)

	out, err := defaultExec.Run(context.Background(), "sh", []string{"-c", "echo out; echo err >&2; exit 3"}, nil)
	require.NoError(t, err, "a non-zero exit is not a run error")
	assert.Equal(t, 3, out.ExitStatus)
	assert.Equal(t, "out\n", string(out.Stdout))
	assert.Equal(t, "err\n", string(out.Stderr))
}

func TestOSExecutor_Stdin(t *testing.T) {
	requireShell(t)

	out, err := defaultExec.Run(context.Background(), "sh", []string{"-c", "cat"}, strings.NewReader("piped"))
	require.NoError(t, err)
	assert.Equal(t, 0, out.ExitStatus)
	assert.Equal(t, "piped", string(out.Stdout))
}
