// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dmitriid/panpipe/internal/history"
	"github.com/dmitriid/panpipe/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded pandoc invocations",
	Long: `History lists pandoc invocations recorded with --history (or
history.enabled in the config file), newest first.`,
	RunE: runHistory,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete recorded invocations older than --older-than",
	RunE:  runHistoryPrune,
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum number of invocations to show (default from config)")
	historyCmd.Flags().Bool("failed", false, "show only failed invocations")
	historyCmd.Flags().Bool("yaml", false, "print as YAML")
	historyPruneCmd.Flags().Duration("older-than", 30*24*time.Hour, "age of the oldest invocation to keep")

	historyCmd.AddCommand(historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}

func openHistory() (*history.Store, error) {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return nil, err
	}
	return history.Open(cfg.History)
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	failed, _ := cmd.Flags().GetBool("failed")
	opts := history.ListOptions{Limit: limit, FailedOnly: failed}

	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		return store.Export(cmd.Context(), opts, cmd.OutOrStdout())
	}

	invs, err := store.List(cmd.Context(), opts)
	if err != nil {
		return err
	}
	formatHistory(cmd.OutOrStdout(), invs)
	return nil
}

func formatHistory(w io.Writer, invs []types.Invocation) {
	if len(invs) == 0 {
		fmt.Fprintln(w, "No invocations recorded.")
		return
	}

	fmt.Fprintf(w, "%-5s  %-20s  %-6s  %-6s  %-8s  %s\n", "ID", "Started", "Mode", "Status", "Time", "Args")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, inv := range invs {
		status := fmt.Sprint(inv.ExitStatus)
		if inv.Error != "" {
			status = "error"
		}
		fmt.Fprintf(w, "%-5d  %-20s  %-6s  %-6s  %-8s  %s\n",
			inv.ID,
			inv.StartedAt.Local().Format("2006-01-02 15:04:05"),
			inv.Mode,
			status,
			inv.Duration.Round(time.Millisecond),
			strings.Join(inv.Args, " "),
		)
	}
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	olderThan, _ := cmd.Flags().GetDuration("older-than")
	n, err := store.Prune(cmd.Context(), time.Now().Add(-olderThan))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "pruned %d invocation(s)\n", n)
	return nil
}
