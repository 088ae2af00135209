package types

import "time"

// PandocConfig holds settings for running the pandoc executable.
type PandocConfig struct {
	// Binary is the executable name or path (default "pandoc").
	Binary string `json:"binary" yaml:"binary" mapstructure:"binary"`

	// Timeout bounds a single invocation. Zero waits until the process exits.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// HistoryConfig holds settings for the invocation history database.
type HistoryConfig struct {
	// Enabled controls whether invocations are recorded.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Path is the SQLite database file (e.g. "~/.local/state/panpipe/history.db").
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// MaxResults is the default number of rows listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default warn).
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

// Config groups all panpipe settings.
type Config struct {
	Pandoc  PandocConfig  `json:"pandoc" yaml:"pandoc" mapstructure:"pandoc"`
	History HistoryConfig `json:"history" yaml:"history" mapstructure:"history"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}
