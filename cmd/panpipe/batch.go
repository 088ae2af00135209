// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitriid/panpipe/internal/convert"
)

var batchCmd = &cobra.Command{
	Use:   "batch <files...>",
	Short: "Convert many files into an output directory",
	Long: `Batch converts each file to --to, letting pandoc write <out-dir>/<name>.<ext>.
Files whose output already exists are skipped unless --overwrite is set.
Extra pandoc options are passed with --opt as in convert.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringP("to", "t", "html", "output format")
	batchCmd.Flags().String("ext", "", "output file extension (default: the output format)")
	batchCmd.Flags().String("out-dir", "out", "directory for converted files")
	batchCmd.Flags().Bool("overwrite", false, "replace existing outputs")
	batchCmd.Flags().StringArrayP("opt", "O", nil, "pandoc option as name=value or name (repeatable, order kept)")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetStringArray("opt")
	opts, err := parseOptions(raw)
	if err != nil {
		return err
	}

	job := convert.Job{Options: opts}
	job.To, _ = cmd.Flags().GetString("to")
	job.Ext, _ = cmd.Flags().GetString("ext")
	job.OutDir, _ = cmd.Flags().GetString("out-dir")
	job.Overwrite, _ = cmd.Flags().GetBool("overwrite")

	client, cleanup, err := newClient()
	if err != nil {
		return err
	}
	defer cleanup()

	result := convert.ConvertBatch(cmd.Context(), client, job, args, cmd.OutOrStdout())
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}
