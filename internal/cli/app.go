// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the soundmatch command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/giovanamalaia/soundmatch/internal/adapters/network"
	"github.com/giovanamalaia/soundmatch/internal/config"
	"github.com/giovanamalaia/soundmatch/internal/console"
	"github.com/giovanamalaia/soundmatch/internal/domain"
	"github.com/giovanamalaia/soundmatch/internal/logging"
	"github.com/urfave/cli/v3"
)

// Exit codes follow standard Unix conventions for better scripting support.
const (
	ExitSuccess       = 0  // Operation completed successfully
	ExitGeneralError  = 1  // Generic failure (catch-all)
	ExitUsageError    = 2  // Invalid command line usage
	ExitConfigError   = 3  // Configuration file error
	ExitNotFoundError = 5  // The service does not know the song
	ExitNetworkError  = 11 // Network operation failed
	ExitTimeoutError  = 13 // Operation timed out
)

// version is set at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "" //nolint:gochecknoglobals

var (
	// ErrTerminalRequired is returned when a prompt is needed but stdin is not a terminal.
	ErrTerminalRequired = errors.New("a terminal is required to prompt for a song")
	// ErrUnknownCommand is returned for arguments that name no command.
	ErrUnknownCommand = errors.New("unknown command")
)

// CLI holds the global flags and the collaborators built from them.
type CLI struct {
	app *cli.Command

	verbose    bool
	json       bool
	quiet      bool
	plain      bool
	configPath string
	serviceURL string
	timeout    time.Duration

	cfg     config.Config
	service domain.SongService
	console *console.OutputState

	out io.Writer
	err io.Writer

	// Seams for tests.
	interactive func() bool
	prompt      func(ctx context.Context, suggestions []string) (string, error)
	launchTUI   func(ctx context.Context, service domain.SongService, trackURL string) error
}

// NewCLI creates the soundmatch command tree.
func NewCLI() *CLI {
	app := &CLI{
		console:     console.DefaultOutput,
		out:         os.Stdout,
		err:         os.Stderr,
		interactive: stdinIsTerminal,
		prompt:      promptTerm,
		launchTUI:   launchTUI,
	}

	app.app = &cli.Command{
		Name:    "soundmatch",
		Usage:   "Find songs similar to the ones you like",
		Version: getVersion(),
		Suggest: true,
		Description: `Type a song you like and SoundMatch suggests similar ones.

Without a command the interactive search opens.

EXAMPLES:
  soundmatch                              # interactive search
  soundmatch recommend Shape of You       # print recommendations
  soundmatch songs --filter beatles       # list catalog matches
  soundmatch config init                  # write the default config`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "show progress messages and debug logs on stderr",
				Destination: &app.verbose,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output structured JSON results",
				Aliases:     []string{"j"},
				Destination: &app.json,
			},
			&cli.BoolFlag{
				Name:        "quiet",
				Usage:       "suppress headings and informational output",
				Aliases:     []string{"q"},
				Destination: &app.quiet,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "output tab-separated lines for scripts",
				Destination: &app.plain,
			},
			&cli.StringFlag{
				Name:        "config",
				Usage:       "config file (default $XDG_CONFIG_HOME/soundmatch/config.toml)",
				Sources:     cli.EnvVars("SOUNDMATCH_CONFIG"),
				Destination: &app.configPath,
			},
			&cli.StringFlag{
				Name:        "service-url",
				Usage:       "base URL of the recommendation service",
				Destination: &app.serviceURL,
			},
			&cli.DurationFlag{
				Name:        "timeout",
				Usage:       "timeout for each service request (0 = no timeout)",
				Value:       network.DefaultTimeout,
				Destination: &app.timeout,
			},
		},
		Before:   app.initConfig,
		Action:   app.defaultAction,
		Commands: app.createAllCommands(),
	}

	return app
}

// App returns the root command, ready to Run.
func App() *cli.Command {
	return NewCLI().app
}

// Run executes the CLI application.
func (app *CLI) Run(ctx context.Context, args []string) error {
	return app.app.Run(ctx, args)
}

// initConfig validates the global flags, loads the config file and builds
// the service client and the logger from it.
func (app *CLI) initConfig(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if app.json && app.plain {
		return ctx, domain.NewExitError(ExitUsageError, "cannot use both --json and --plain flags simultaneously", nil)
	}

	app.console.SetMode(app.verbose, app.json, app.plain)

	path := app.configFile()

	cfg, err := config.Load(path)
	if err != nil {
		return ctx, domain.NewExitError(ExitConfigError, fmt.Sprintf("Invalid config file %s", path), err)
	}

	if app.serviceURL != "" {
		cfg.Service.BaseURL = app.serviceURL
	}

	if cmd.IsSet("timeout") {
		cfg.Service.Timeout = config.Duration(app.timeout)
	}

	app.cfg = cfg
	app.service = network.NewHTTPClient(cfg.Service.BaseURL, cfg.Timeout())

	logCfg := logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: app.err}
	if app.verbose {
		logCfg.Level = "debug"
	}

	logging.Init(logCfg)
	logging.Debug().Str("config", path).Str("service", cfg.Service.BaseURL).Msg("configuration loaded")

	return ctx, nil
}

// defaultAction opens the interactive search.
func (app *CLI) defaultAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		return domain.NewExitError(ExitUsageError,
			fmt.Sprintf("'%s' is not a command. Run 'soundmatch --help' to see available commands.", cmd.Args().First()),
			ErrUnknownCommand)
	}

	return app.runTUI(ctx, cmd)
}

func (app *CLI) configFile() string {
	if app.configPath != "" {
		return config.ExpandPath(app.configPath)
	}

	return config.DefaultPath()
}

// fail converts err into an ExitError carrying a user-facing message.
func (app *CLI) fail(err error) error {
	var exitErr *domain.ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	code := exitCodeFor(err)

	if app.json {
		if writeErr := app.baseHandler().GetOutput().Error(err.Error(), code); writeErr != nil {
			logging.Debug().Err(writeErr).Msg("failed to write error result")
		}
	}

	return domain.NewExitError(code, domain.FormatErrorMessage(err, app.verbose), err)
}

// exitCodeFor maps an error to the process exit code.
func exitCodeFor(err error) int {
	var serviceErr *domain.ServiceError

	switch {
	case errors.As(err, &serviceErr) && serviceErr.IsNotFound():
		return ExitNotFoundError
	case errors.Is(err, context.DeadlineExceeded):
		return ExitTimeoutError
	case errors.Is(err, domain.ErrEmptyTerm), errors.Is(err, ErrTerminalRequired):
		return ExitUsageError
	case errors.As(err, &serviceErr),
		errors.Is(err, domain.ErrNetworkFailure),
		errors.Is(err, domain.ErrServiceUnavailable),
		errors.Is(err, domain.ErrMalformedResponse):
		return ExitNetworkError
	default:
		return ExitGeneralError
	}
}

// getVersion returns the build version.
func getVersion() string {
	if version != "" {
		return version
	}

	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return "dev"
}
