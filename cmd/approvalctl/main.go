package main

import (
	"fmt"
	"os"

	"github.com/hjps/approvalctl/internal/cli"
	"github.com/hjps/approvalctl/internal/config"
	"github.com/hjps/approvalctl/internal/errors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(errors.ExitCodeConfig)
	}

	if err := cli.Execute(cfg); err != nil {
		fmt.Fprintln(os.Stderr, errors.FormatSimple(err))
		os.Exit(errors.ExitCodeFromError(err))
	}
}
