// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs pandoc over many input files, writing one output file
// per input into a directory and reporting a per-file status.
package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitriid/panpipe/internal/pandoc"
)

// Status is the outcome for a single file.
type Status string

const (
	StatusConverted Status = "converted"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Caller runs one pandoc invocation. *pandoc.Client implements it.
type Caller interface {
	Call(ctx context.Context, in pandoc.Input, opts pandoc.Options) (pandoc.Result, error)
}

// Job describes a batch: every file is converted to To and written to OutDir
// with extension Ext (defaults to To).
type Job struct {
	To     string
	Ext    string
	OutDir string
	// Options are passed to every call. Any to or output entry is replaced
	// by the job's format and the computed output path.
	Options pandoc.Options
	// Overwrite replaces existing outputs instead of skipping them.
	Overwrite bool
}

func (j Job) outPath(src string) string {
	ext := j.Ext
	if ext == "" {
		ext = j.To
	}
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return filepath.Join(j.OutDir, base+"."+strings.TrimPrefix(ext, "."))
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertFile converts src according to job, letting pandoc write the output
// file itself. If the output already exists and Overwrite is off, it skips.
func ConvertFile(ctx context.Context, c Caller, job Job, src string, w io.Writer) Status {
	dst := job.outPath(src)
	name := filepath.Base(src)

	if !job.Overwrite {
		if _, err := os.Stat(dst); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", name)
			return StatusSkipped
		}
	}

	if err := os.MkdirAll(job.OutDir, 0o755); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
		return StatusFailed
	}

	opts := job.Options.Put(pandoc.OptTo, job.To).Put(pandoc.OptOutput, dst)

	if _, err := c.Call(ctx, pandoc.FilePath(src), opts); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
		return StatusFailed
	}

	fmt.Fprintf(w, "converted: %s -> %s\n", name, dst)
	return StatusConverted
}

// ConvertBatch processes srcs in order, printing per-file status to w and
// returning a summary. A cancelled ctx stops the batch before the next file.
func ConvertBatch(ctx context.Context, c Caller, job Job, srcs []string, w io.Writer) BatchResult {
	var result BatchResult
	for _, src := range srcs {
		if ctx.Err() != nil {
			break
		}
		switch ConvertFile(ctx, c, job, src, w) {
		case StatusConverted:
			result.Converted++
		case StatusSkipped:
			result.Skipped++
		case StatusFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}
