package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the versions of panpipe and pandoc",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "panpipe %s\n", version)

		client, cleanup, err := newClient()
		if err != nil {
			return err
		}
		defer cleanup()

		if v, ok := client.Version(cmd.Context()); ok {
			fmt.Fprintf(out, "pandoc  %s (%s)\n", v, client.Binary())
		} else {
			fmt.Fprintf(out, "pandoc  unknown (%s)\n", client.Binary())
		}
		if dir, ok := client.DataDir(cmd.Context()); ok {
			fmt.Fprintf(out, "data    %s\n", dir)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
