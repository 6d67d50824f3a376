package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"prettybytes/internal/logging"
)

const (
	ExitOK         = 0
	ExitCLIError   = 1
	ExitInputError = 2
)

// Version is reported by --version. Set at build time with -ldflags.
var Version = "dev"

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// logSink owns the log writer opened for one execution.
type logSink struct {
	closer io.Closer
}

func (s *logSink) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func newRootCmd(sink *logSink) *cobra.Command {
	root := &cobra.Command{
		Use:   "prettybytes",
		Short: "Convert a byte count into a human-readable size",
		Long: `prettybytes prints a byte count as a human-readable size such as "5.05 MB".

The count comes from --bytes when stdin is a terminal. When stdin is piped,
the first line of stdin is used instead and --bytes is ignored.

Defaults can be set in config.{yaml,toml,json} in the config directory or
through PRETTYBYTES_* environment variables.`,
		Example: `  prettybytes --bytes 1024
  echo 5292880 | prettybytes
  prettybytes -b 3145728 --use-1024-instead-of-1000 false --number-of-decimal 3`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cmd, sink)
		},
		PreRunE: runPreRun,
		RunE:    runExecute,
	}

	// Persistent flags available to all subcommands
	root.PersistentFlags().String("config", "", "Config file (default is config.{yaml|toml|json} in the config dir)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Log debug details to stderr or the log file")
	root.PersistentFlags().String("log-file", "", "Write logs to a rotating file instead of stderr")

	bindFormatFlags(root.Flags())

	root.AddCommand(newCompletionCmd())

	return root
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	sink := &logSink{}
	defer sink.Close()
	root := newRootCmd(sink)
	return root.ExecuteContext(ctx)
}

func setupLogging(cmd *cobra.Command, sink *logSink) error {
	logFile := getPersistentString(cmd, "log-file", "")
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("failed to create log dir: %w", err)}
		}
	}
	cfg := logging.DefaultConfig(logFile)
	cfg.Verbose = getPersistentBool(cmd, "verbose", false)

	logger, closer := logging.Setup(cfg, cmd.ErrOrStderr())
	sink.closer = closer
	slog.SetDefault(logger)
	return nil
}

// Helpers
func getPersistentString(cmd *cobra.Command, name, def string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil || v == "" {
		return def
	}
	return v
}

func getPersistentBool(cmd *cobra.Command, name string, def bool) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return def
	}
	return v
}
