// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitriid/panpipe/internal/pandoc"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a document with pandoc",
	Long: `Convert runs pandoc on a file, or on standard input when no file is given,
and prints the result. Options are passed as --opt name=value or --opt name
(a bare flag) and reach pandoc in the order given, after --from, --to and
--output. Option names may use underscores in place of dashes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	addConversionFlags(convertCmd)
	convertCmd.Flags().StringP("output", "o", "", "write the result to this file instead of stdout")

	rootCmd.AddCommand(convertCmd)
}

func addConversionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("from", "f", "", "input format")
	cmd.Flags().StringP("to", "t", "", "output format")
	cmd.Flags().StringArrayP("opt", "O", nil, "pandoc option as name=value or name (repeatable, order kept)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}
	in, err := inputFromArgs(args, opts, cmd.InOrStdin())
	if err != nil {
		return err
	}

	client, cleanup, err := newClient()
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := client.Call(cmd.Context(), in, opts)
	if err != nil {
		return err
	}
	if res.ToFile {
		v, _ := opts.Get(pandoc.OptOutput)
		fmt.Fprintf(os.Stderr, "wrote: %s\n", v)
		return nil
	}
	_, err = io.WriteString(cmd.OutOrStdout(), res.Text)
	return err
}

// inputFromArgs reads a file path argument, or stdin when there is none. An
// --opt input=path with no argument leaves the input to the client.
func inputFromArgs(args []string, opts pandoc.Options, stdin io.Reader) (pandoc.Input, error) {
	if len(args) == 1 && args[0] != "-" {
		return pandoc.FilePath(args[0]), nil
	}
	if len(args) == 0 && opts.Has(pandoc.OptInput) {
		return pandoc.NoInput(), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return pandoc.Input{}, fmt.Errorf("reading stdin: %w", err)
	}
	return pandoc.InlineData(data), nil
}

// optionsFromFlags collects --from, --to, --output and every --opt in order.
func optionsFromFlags(cmd *cobra.Command) (pandoc.Options, error) {
	var opts pandoc.Options
	for _, name := range []string{pandoc.OptFrom, pandoc.OptTo, pandoc.OptOutput} {
		if cmd.Flags().Lookup(name) == nil {
			continue
		}
		if v, _ := cmd.Flags().GetString(name); v != "" {
			opts = opts.Set(name, v)
		}
	}
	raw, _ := cmd.Flags().GetStringArray("opt")
	parsed, err := parseOptions(raw)
	if err != nil {
		return nil, err
	}
	return append(opts, parsed...), nil
}

// parseOptions turns "name=value" and "name" strings into options. Dashes in
// names are kept; the encoder only rewrites underscores.
func parseOptions(raw []string) (pandoc.Options, error) {
	var opts pandoc.Options
	for _, r := range raw {
		name, value, hasValue := strings.Cut(r, "=")
		name = strings.TrimLeft(strings.TrimSpace(name), "-")
		if name == "" {
			return nil, fmt.Errorf("invalid option %q: missing name", r)
		}
		if hasValue {
			opts = opts.Set(name, value)
		} else {
			opts = opts.Flag(name)
		}
	}
	return opts, nil
}

// exitCode maps pandoc's exit status through to the CLI.
func exitCode(err error) int {
	var pe *pandoc.ProcessError
	if errors.As(err, &pe) && pe.ExitStatus > 0 {
		return pe.ExitStatus
	}
	return 1
}
