package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hjps/approvalctl/internal/cli"
	"github.com/hjps/approvalctl/internal/config"
	"github.com/hjps/approvalctl/internal/errors"
	"github.com/hjps/approvalctl/internal/sentry"
	"github.com/hjps/approvalctl/internal/version"
)

func main() {
	if err := sentry.Initialize(version.Version); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer sentry.Flush(2 * time.Second)

	// Load the configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(errors.ExitCodeConfig)
	}

	// Execute with config
	if err := cli.Execute(cfg); err != nil {
		sentry.CaptureError(err, nil, nil)
		fmt.Fprintln(os.Stderr, errors.FormatSimple(err))
		os.Exit(errors.ExitCodeFromError(err))
	}
}
