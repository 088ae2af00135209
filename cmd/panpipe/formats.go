// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitriid/panpipe/internal/catalog"
)

var formatsCmd = &cobra.Command{
	Use:   "formats <catalog>",
	Short: "List pandoc capabilities from the bundled reference data",
	Long: `Formats prints one of the bundled capability catalogs, one entry per line:

  ` + strings.Join(catalog.Names, "\n  ") + `

Extensions are printed with their +/- default marker.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: catalog.Names,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, ok := catalog.Default().Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown catalog %q: want one of %s", args[0], strings.Join(catalog.Names, ", "))
		}

		asYAML, _ := cmd.Flags().GetBool("yaml")
		if asYAML {
			return writeStructured(cmd.OutOrStdout(), map[string][]string{args[0]: list}, true)
		}
		for _, entry := range list {
			fmt.Fprintln(cmd.OutOrStdout(), entry)
		}
		return nil
	},
}

func init() {
	formatsCmd.Flags().Bool("yaml", false, "print the catalog as YAML")

	rootCmd.AddCommand(formatsCmd)
}
