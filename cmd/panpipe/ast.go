// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Print the pandoc AST of a document",
	Long: `AST converts a file (or standard input) to pandoc's JSON document model and
prints it, indented, as JSON or YAML. Any --to option is replaced by json.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAST,
}

func init() {
	addConversionFlags(astCmd)
	astCmd.Flags().Bool("yaml", false, "print the AST as YAML")

	rootCmd.AddCommand(astCmd)
}

func runAST(cmd *cobra.Command, args []string) error {
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

	doc, err := client.AST(cmd.Context(), in, opts)
	if err != nil {
		return err
	}

	asYAML, _ := cmd.Flags().GetBool("yaml")
	return writeStructured(cmd.OutOrStdout(), doc, asYAML)
}

// writeStructured prints v as indented JSON or YAML.
func writeStructured(w io.Writer, v any, asYAML bool) error {
	if asYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
