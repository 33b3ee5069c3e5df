// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/giovanamalaia/soundmatch/internal/cli/handlers"
	"github.com/giovanamalaia/soundmatch/internal/config"
	"github.com/giovanamalaia/soundmatch/internal/domain"
	"github.com/giovanamalaia/soundmatch/internal/logging"
	"github.com/giovanamalaia/soundmatch/internal/tui"
	"github.com/urfave/cli/v3"
)

// createAllCommands creates the subcommands of the root command.
func (app *CLI) createAllCommands() []*cli.Command {
	return []*cli.Command{
		app.createTUICommand(),
		app.createRecommendCommand(),
		app.createSongsCommand(),
		app.createConfigCommand(),
		app.createVersionCommand(),
	}
}

func (app *CLI) createTUICommand() *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Open the interactive search",
		Description: `Open the interactive search. Type at least two characters to get
suggestions from the catalog, pick one or press Enter to get similar songs.

Logs are written to the file configured under [log] because the screen
belongs to the interface.`,
		Action: app.runTUI,
	}
}

func (app *CLI) createRecommendCommand() *cli.Command {
	return &cli.Command{
		Name:      "recommend",
		Aliases:   []string{"r"},
		Usage:     "Print songs similar to a song",
		ArgsUsage: "<song title>",
		Description: `Ask the service for songs similar to the given title. Words are joined
with spaces, so quoting is optional. Without a title you are prompted for one.

EXAMPLES:
  soundmatch recommend Shape of You
  soundmatch recommend --json "Let It Be"`,
		Action: app.runRecommend,
	}
}

func (app *CLI) createSongsCommand() *cli.Command {
	return &cli.Command{
		Name:  "songs",
		Usage: "List the song catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "filter",
				Aliases: []string{"f"},
				Usage:   "only songs whose title or artist contains this text (2+ characters)",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "list at most this many songs (0 = all)",
			},
		},
		Action: app.runSongs,
	}
}

func (app *CLI) createConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the configuration file",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write the default configuration",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "overwrite an existing file",
					},
				},
				Action: app.runConfigInit,
			},
			{
				Name:   "show",
				Usage:  "Print the effective configuration",
				Action: app.runConfigShow,
			},
			{
				Name:  "path",
				Usage: "Print the configuration file location",
				Action: func(_ context.Context, _ *cli.Command) error {
					app.console.SuccessResult(app.configFile(), "")

					return nil
				},
			},
		},
	}
}

func (app *CLI) createVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version information",
		Action: func(_ context.Context, _ *cli.Command) error {
			app.console.SuccessResult(getVersion(), "")

			return nil
		},
	}
}

// runTUI opens the interactive search with logs sent to the log file.
func (app *CLI) runTUI(ctx context.Context, _ *cli.Command) error {
	logPath := app.cfg.LogPath()

	logFile, err := logging.OpenFile(logPath)
	if err != nil {
		app.console.Warningf("logging disabled: %v", err)
		logging.Init(logging.Config{Level: "disabled"})
	} else {
		defer func() {
			_ = logFile.Close()
		}()

		level := app.cfg.Log.Level
		if app.verbose {
			level = "debug"
		}

		logging.Init(logging.Config{Level: level, Format: app.cfg.Log.Format, Output: logFile})
	}

	logging.Info().Str("service", app.cfg.Service.BaseURL).Msg("starting interactive search")

	if err := app.launchTUI(ctx, app.service, app.cfg.Player.TrackURL); err != nil {
		logging.Error().Err(err).Msg("interactive search failed")

		if app.verbose {
			return domain.NewExitError(ExitGeneralError, fmt.Sprintf("Failed to launch TUI: %v", err), err)
		}

		return domain.NewExitError(ExitGeneralError, "Failed to launch interactive interface (terminal required)", err)
	}

	return nil
}

func (app *CLI) runRecommend(ctx context.Context, cmd *cli.Command) error {
	term := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))

	if term == "" {
		prompted, err := app.promptForTerm(ctx)
		if err != nil {
			return app.fail(err)
		}

		term = prompted
	}

	app.console.Progressf("Asking %s for songs like %q", app.cfg.Service.BaseURL, term)

	result, err := handlers.NewRecommendHandler(app.baseHandler(), app.service).Execute(ctx, term)
	if err != nil {
		return app.fail(err)
	}

	app.console.Progressf("Received %d songs in %s", len(result.Recommendations), result.Duration)

	return nil
}

func (app *CLI) runSongs(ctx context.Context, cmd *cli.Command) error {
	if cmd.Int("limit") < 0 {
		return domain.NewExitError(ExitUsageError, "--limit must not be negative", nil)
	}

	_, err := handlers.NewSongsHandler(app.baseHandler(), app.service).
		Execute(ctx, cmd.String("filter"), cmd.Int("limit"))
	if err != nil {
		return app.fail(err)
	}

	return nil
}

func (app *CLI) runConfigInit(_ context.Context, cmd *cli.Command) error {
	path := app.configFile()

	if err := config.Init(path, cmd.Bool("force")); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return domain.NewExitError(ExitConfigError,
				fmt.Sprintf("%s already exists (use --force to overwrite)", path), err)
		}

		return domain.NewExitError(ExitConfigError, fmt.Sprintf("Failed to write %s", path), err)
	}

	app.console.SuccessResult(path, "Configuration written")

	return nil
}

func (app *CLI) runConfigShow(_ context.Context, _ *cli.Command) error {
	if app.json {
		app.console.JSONResult("success", map[string]any{
			"path":   app.configFile(),
			"config": app.cfg,
		})

		return nil
	}

	data, err := config.Marshal(app.cfg)
	if err != nil {
		return domain.NewExitError(ExitConfigError, "Failed to encode configuration", err)
	}

	_, _ = app.out.Write(data)

	return nil
}

// baseHandler builds the handler settings from the global flags.
func (app *CLI) baseHandler() *handlers.BaseHandler {
	base := handlers.NewBaseHandler(app.out, app.verbose, app.json, app.quiet, app.plain, app.cfg.Timeout())
	base.TrackURL = app.cfg.Player.TrackURL

	return base
}

func launchTUI(ctx context.Context, service domain.SongService, trackURL string) error {
	return tui.LaunchInteractive(ctx, service, trackURL)
}
