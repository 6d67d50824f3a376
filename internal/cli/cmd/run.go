package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"prettybytes/internal/cli"
	"prettybytes/internal/config"
	"prettybytes/internal/model"
	"prettybytes/internal/ui"
	"prettybytes/internal/util/format"
)

type ctxKey string

const runInputsKey ctxKey = "runInputs"

var errMissingBytes = errors.New("--bytes is required when stdin is a terminal")

// stdinIsTerminal decides between reading --bytes and reading stdin.
var stdinIsTerminal = func(r io.Reader) bool { return ui.IsTerminal(r) }

func runPreRun(cmd *cobra.Command, _ []string) error {
	opts, err := assembleRunInputs(cmd)
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	cmd.SetContext(context.WithValue(cmd.Context(), runInputsKey, opts))
	return nil
}

func assembleRunInputs(cmd *cobra.Command) (model.CLIOptions, error) {
	// Precedence: flag > env > config file > default
	configFile := getPersistentString(cmd, "config", "")
	fopts, err := config.Load(cmd.Flags(), configFile)
	if err != nil {
		return model.CLIOptions{}, err
	}

	return model.CLIOptions{
		Bytes:      byteCountFlag(cmd.Flags()),
		HasBytes:   cmd.Flags().Changed("bytes"),
		Format:     fopts,
		ConfigFile: configFile,
		LogFile:    getPersistentString(cmd, "log-file", ""),
		Verbose:    getPersistentBool(cmd, "verbose", false),
	}, nil
}

func runExecute(cmd *cobra.Command, _ []string) error {
	// Set by runPreRun
	in, _ := cmd.Context().Value(runInputsKey).(model.CLIOptions)
	slog.Debug("run inputs",
		"has_bytes", in.HasBytes,
		"config", in.ConfigFile,
		"log_file", in.LogFile,
		"verbose", in.Verbose,
	)

	n, ok, err := resolveByteCount(cmd.InOrStdin(), in)
	if err != nil {
		return err
	}
	if !ok {
		slog.Debug("stdin closed without data")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), format.Bytes(n, &in.Format))
	return nil
}

// resolveByteCount returns the byte count from --bytes when stdin is a
// terminal, otherwise from the first line of stdin. ok is false when stdin
// ended without data.
func resolveByteCount(stdin io.Reader, in model.CLIOptions) (uint64, bool, error) {
	if stdinIsTerminal(stdin) {
		if !in.HasBytes {
			return 0, false, &ExitError{Code: ExitCLIError, Err: errMissingBytes}
		}
		return in.Bytes, true, nil
	}

	if in.HasBytes {
		slog.Debug("stdin is not a terminal, ignoring --bytes", "bytes", in.Bytes)
	}
	n, ok, err := cli.ReadByteCount(stdin)
	if err != nil {
		return 0, false, &ExitError{Code: ExitInputError, Err: err}
	}
	return n, ok, nil
}
