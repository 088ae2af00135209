// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pandoc builds and runs pandoc invocations. Callers describe a call
// with an Input (none, a file path, or inline data) and an ordered Options
// set; the package encodes the options as command-line flags, runs the
// executable once, and classifies the outcome as a Result or an error.
//
// A Client holds no mutable state and may be shared between goroutines. Each
// call spawns its own process and blocks until it exits or ctx is done.
package pandoc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dmitriid/panpipe/pkg/types"
)

const defaultBinary = "pandoc"

// noInputCommands are option names that make a call valid without input.
var noInputCommands = []string{OptVersion}

// Result is a successful invocation.
type Result struct {
	// Text is the captured standard output. It is empty when ToFile is set.
	Text string
	// ToFile reports that an output option sent the conversion to a file, so
	// there is no text payload.
	ToFile bool
}

// Recorder receives one Invocation per spawned process.
type Recorder interface {
	Record(ctx context.Context, inv types.Invocation) error
}

// Client runs pandoc.
type Client struct {
	binary   string
	timeout  time.Duration
	exec     executor
	logger   *log.Logger
	recorder Recorder
	now      func() time.Time
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithLogger sets the logger used for per-call debug output.
func WithLogger(l *log.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

// WithRecorder registers r to receive every invocation.
func WithRecorder(r Recorder) ClientOption {
	return func(c *Client) { c.recorder = r }
}

func withExecutor(e executor) ClientOption {
	return func(c *Client) { c.exec = e }
}

// New creates a Client from cfg. An empty Binary means "pandoc" on PATH.
func New(cfg types.PandocConfig, opts ...ClientOption) *Client {
	c := &Client{
		binary:  cfg.Binary,
		timeout: cfg.Timeout,
		exec:    defaultExec,
		logger:  log.NewWithOptions(os.Stderr, log.Options{Prefix: "pandoc", Level: log.WarnLevel}),
		now:     time.Now,
	}
	if c.binary == "" {
		c.binary = defaultBinary
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Binary returns the executable the client runs.
func (c *Client) Binary() string { return c.binary }

// Available reports whether the executable can be found.
func (c *Client) Available() bool {
	_, err := c.exec.LookPath(c.binary)
	return err == nil
}

// Call runs pandoc once.
//
// An input option in opts is never passed to pandoc: when in is NoInput it
// supplies the file path, otherwise it is dropped. With a FilePath input the path is the first argument; with InlineData the
// payload is piped to standard input; with NoInput the options must contain
// a command pandoc answers without input (currently only version), otherwise
// ErrNoInput is returned and nothing is spawned.
//
// A non-zero exit status yields a *ProcessError. On success the captured
// standard output is returned unless opts has an output option.
func (c *Client) Call(ctx context.Context, in Input, opts Options) (Result, error) {
	optIn, opts := SplitInput(opts)
	if in.Mode() == types.InputNone {
		in = optIn
	}

	args := opts.Args()
	var stdin io.Reader

	switch in.Mode() {
	case types.InputFile:
		args = append([]string{in.Path()}, args...)
	case types.InputInline:
		stdin = bytes.NewReader(in.Data())
	default:
		if !slices.ContainsFunc(noInputCommands, opts.Has) {
			return Result{}, ErrNoInput
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	c.logger.Debug("running pandoc", "binary", c.binary, "mode", in.Mode(), "args", args)
	started := c.now()
	out, err := c.exec.Run(ctx, c.binary, args, stdin)
	elapsed := c.now().Sub(started)

	c.record(ctx, types.Invocation{
		Binary:     c.binary,
		Args:       args,
		Mode:       in.Mode(),
		ExitStatus: out.ExitStatus,
		Error:      errText(err),
		StartedAt:  started,
		Duration:   elapsed,
	})

	if err != nil {
		return Result{}, fmt.Errorf("running %s: %w", c.binary, err)
	}
	c.logger.Debug("pandoc finished", "status", out.ExitStatus, "elapsed", elapsed)

	if out.ExitStatus != 0 {
		return Result{}, &ProcessError{
			ExitStatus: out.ExitStatus,
			Stdout:     string(out.Stdout),
			Stderr:     string(out.Stderr),
			Args:       args,
		}
	}

	if opts.Has(OptOutput) {
		return Result{ToFile: true}, nil
	}
	return Result{Text: string(out.Stdout)}, nil
}

// CallOptions runs pandoc with the input taken from an "input" option (a
// file path). Without one the call is a no-input call.
func (c *Client) CallOptions(ctx context.Context, opts Options) (Result, error) {
	return c.Call(ctx, NoInput(), opts)
}

// CallText converts text piped through standard input.
func (c *Client) CallText(ctx context.Context, text string, opts Options) (Result, error) {
	return c.Call(ctx, InlineText(text), opts)
}

// Convert runs a conversion to the given output format, replacing any "to"
// option already in opts.
func (c *Client) Convert(ctx context.Context, in Input, to string, opts Options) (Result, error) {
	return c.Call(ctx, in, opts.Put(OptTo, to))
}

func (c *Client) record(ctx context.Context, inv types.Invocation) {
	if c.recorder == nil {
		return
	}
	// The call's own context may already be done; the record must still land.
	if err := c.recorder.Record(context.WithoutCancel(ctx), inv); err != nil {
		c.logger.Warn("recording invocation", "err", err)
	}
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
