// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the panpipe CLI, a thin shell over the
// pandoc invocation library.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dmitriid/panpipe/internal/history"
	"github.com/dmitriid/panpipe/internal/pandoc"
	"github.com/dmitriid/panpipe/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the panpipe CLI.
var rootCmd = &cobra.Command{
	Use:   "panpipe",
	Short: "Run pandoc conversions from structured options",
	Long: `panpipe builds pandoc command lines from structured options, runs pandoc,
and reports the result: converted text, a written file, or the JSON AST.

It also lists the formats, extensions and highlight languages/styles pandoc
supports, from reference data bundled with the binary.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./panpipe.yaml or ~/.config/panpipe/panpipe.yaml)")
	rootCmd.PersistentFlags().String("pandoc", "", "pandoc executable (default: pandoc on PATH)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "per-invocation timeout (default: none)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("history", false, "record invocations in the history database")

	_ = viper.BindPFlag("pandoc.binary", rootCmd.PersistentFlags().Lookup("pandoc"))
	_ = viper.BindPFlag("pandoc.timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("history.enabled", rootCmd.PersistentFlags().Lookup("history"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("panpipe")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "panpipe"))
		}
	}

	setDefaults(viper.GetViper())

	viper.SetEnvPrefix("PANPIPE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("pandoc.binary", "pandoc")
	v.SetDefault("pandoc.timeout", time.Duration(0))
	v.SetDefault("log.level", "warn")
	v.SetDefault("history.enabled", false)
	v.SetDefault("history.max_results", 20)
	if home, err := os.UserHomeDir(); err == nil {
		v.SetDefault("history.path", filepath.Join(home, ".local", "state", "panpipe", "history.db"))
	} else {
		v.SetDefault("history.path", "panpipe-history.db")
	}
}

// loadConfig decodes the merged flag, env and file settings.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg types.LogConfig) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "panpipe"})
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// newClient builds a pandoc client from config. The returned cleanup closes
// the history store when one was opened.
func newClient() (*pandoc.Client, func(), error) {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return nil, nil, err
	}
	logger := newLogger(cfg.Log)

	opts := []pandoc.ClientOption{pandoc.WithLogger(logger)}
	cleanup := func() {}
	if cfg.History.Enabled {
		store, err := history.Open(cfg.History)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, pandoc.WithRecorder(store))
		cleanup = func() {
			if err := store.Close(); err != nil {
				logger.Warn("closing history", "err", err)
			}
		}
	}
	return pandoc.New(cfg.Pandoc, opts...), cleanup, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}
