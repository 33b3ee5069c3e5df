// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/giovanamalaia/soundmatch/internal/domain"
	"github.com/giovanamalaia/soundmatch/internal/logging"
	"golang.org/x/term"
)

// promptForTerm asks for a song title, offering catalog titles as completions.
// A catalog that fails to load only costs the completions.
func (app *CLI) promptForTerm(ctx context.Context) (string, error) {
	if !app.interactive() {
		return "", domain.NewExitError(ExitUsageError, "Give a song title: soundmatch recommend <song title>", ErrTerminalRequired)
	}

	var suggestions []string

	catalog, err := app.service.AllSongs(ctx)
	if err != nil {
		logging.Debug().Err(err).Msg("catalog unavailable, prompting without completions")

		_ = app.baseHandler().GetOutput().Info("Song list unavailable, type the title without completions.")
	}

	for _, song := range catalog {
		suggestions = append(suggestions, song.TrackName)
	}

	term, err := app.prompt(ctx, suggestions)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(term) == "" {
		return "", domain.ErrEmptyTerm
	}

	return term, nil
}

// promptTerm shows a huh input with tab completion over suggestions.
func promptTerm(ctx context.Context, suggestions []string) (string, error) {
	var term string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("🎧 Which song do you like?").
				Description("Tab completes titles from the catalog").
				Placeholder("Ex: Shape of You...").
				Suggestions(suggestions).
				Value(&term),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", domain.NewExitError(ExitGeneralError, "Cancelled", err)
		}

		return "", fmt.Errorf("prompt failed: %w", err)
	}

	return term, nil
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
