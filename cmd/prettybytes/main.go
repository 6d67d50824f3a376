package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	prettycmd "prettybytes/internal/cli/cmd"
	"prettybytes/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := prettycmd.Execute(ctx)
	stop()
	os.Exit(report(os.Stderr, err))
}

// report prints err to w and returns the process exit code for it.
func report(w io.Writer, err error) int {
	if err == nil {
		return prettycmd.ExitOK
	}
	styles := ui.NewStyles(w)

	code := prettycmd.ExitCLIError
	var ee *prettycmd.ExitError
	if errors.As(err, &ee) {
		code = ee.Code
		err = ee.Err
	}
	if err != nil {
		fmt.Fprintln(w, styles.Error.Render("error: "+err.Error()))
		if code == prettycmd.ExitCLIError {
			fmt.Fprintln(w, styles.Hint.Render("Run 'prettybytes --help' for usage."))
		}
	}
	return code
}
