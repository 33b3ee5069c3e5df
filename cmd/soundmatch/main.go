// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

// Package main provides the CLI entry point for SoundMatch.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/giovanamalaia/soundmatch/internal/cli"
	"github.com/giovanamalaia/soundmatch/internal/console"
	"github.com/giovanamalaia/soundmatch/internal/domain"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewCLI().Run(ctx, os.Args); err != nil {
		exitErr := &domain.ExitError{}
		if errors.As(err, &exitErr) {
			console.DefaultOutput.Errorf("%s", exitErr.Message)

			return exitErr.Code
		}

		console.DefaultOutput.Errorf("Unexpected error: %v", err)

		return cli.ExitGeneralError
	}

	return cli.ExitSuccess
}
