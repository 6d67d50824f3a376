package model

import "prettybytes/internal/util/format"

// CLIOptions holds the resolved inputs of a single invocation.
type CLIOptions struct {
	Bytes    uint64 // Value of --bytes; meaningful only when HasBytes is set.
	HasBytes bool

	// Format carries only the options the user set through flags, env, or
	// config file. Unset fields stay nil and take the formatter defaults.
	Format format.Options

	ConfigFile string // Explicit --config path, empty to search the config dir.
	LogFile    string // Rotating log file; empty logs to stderr.
	Verbose    bool
}
