package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/carson-networks/ledger-forms/app"
	"github.com/carson-networks/ledger-forms/internal/logging"
)

func main() {
	logger := logging.SetupLogging()

	err := app.New(logger, os.Stdout).Run(os.Args)
	if err == nil {
		return
	}

	code := 1
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(os.Stderr, msg)
	}
	logger.WithError(err).WithField("exitCode", code).Debug("ledger.exit")
	os.Exit(code)
}
