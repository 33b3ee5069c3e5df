// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

// Package tui implements the interactive terminal interface.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/giovanamalaia/soundmatch/internal/domain"
	"github.com/giovanamalaia/soundmatch/internal/tui/models"
	"github.com/giovanamalaia/soundmatch/internal/tui/styles"
	"golang.org/x/term"
)

// ErrNoTerminal is returned when the TUI is launched in a non-terminal environment.
var ErrNoTerminal = errors.New("TUI requires a terminal environment")

// Screen represents different TUI screens.
type Screen int

// Define screen constants (use models constants for compatibility).
const (
	SearchScreen Screen = Screen(models.SearchScreen)
	HelpScreen   Screen = Screen(models.HelpScreen)
)

// helpPreloadedMsg is sent when help content has been pre-rendered.
type helpPreloadedMsg struct {
	model tea.Model
}

// App is the root model. It owns the search screen for the whole session
// and swaps the help screen in and out on top of it.
//
//nolint:containedctx // TUI models require context for proper cancellation propagation
type App struct {
	width         int
	height        int
	styles        *styles.Styles
	currentScreen Screen
	contentModel  tea.Model
	search        *models.SearchModel
	models        map[Screen]tea.Model // Cache of initialized models
	ctx           context.Context

	quitting bool
}

// NewApp creates the application with the search screen showing.
// Requests made by the search screen go to service and are bound to ctx.
func NewApp(ctx context.Context, service domain.SongService, trackURL string) *App {
	if ctx == nil {
		ctx = context.Background()
	}

	app := &App{
		styles:        styles.New(),
		currentScreen: SearchScreen,
		models:        make(map[Screen]tea.Model),
		ctx:           ctx,
	}

	app.search = models.NewSearch(ctx, app.styles, service, trackURL)
	app.contentModel = app.search
	app.models[SearchScreen] = app.search

	return app
}

// Run starts the TUI application with the provided context.
func (a *App) Run(ctx context.Context) error {
	program := tea.NewProgram(
		a,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer presses feed the click-outside observer
		tea.WithReportFocus(),     // Focus regain re-shows suggestions
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI application failed: %w", err)
	}

	return nil
}

// Init implements the tea.Model interface.
func (a *App) Init() tea.Cmd {
	// Pre-create help model asynchronously for instant loading
	preloadCmd := func() tea.Msg {
		return helpPreloadedMsg{model: models.NewHelp(a.styles)}
	}

	return tea.Batch(a.search.Init(), preloadCmd)
}

// Update implements the tea.Model interface with global navigation handling.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case helpPreloadedMsg:
		a.models[HelpScreen] = msg.model

		return a, nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		var cmd tea.Cmd

		a.contentModel, cmd = a.contentModel.Update(msg)

		return a, cmd

	case models.NavigateMsg:
		return a.handleNavigation(msg)

	// Results of search requests belong to the search screen even while
	// help is showing.
	case models.CatalogLoadedMsg, models.RecommendationsMsg, spinner.TickMsg:
		_, cmd := a.search.Update(msg)

		return a, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.quitting = true

			return a, tea.Quit
		}
	}

	var cmd tea.Cmd

	a.contentModel, cmd = a.contentModel.Update(msg)

	return a, cmd
}

// View implements the tea.Model interface.
func (a *App) View() string {
	if a.quitting {
		return models.GoodbyeMessage
	}

	return a.contentModel.View()
}

// GetCurrentScreen returns the current screen (for testing).
func (a *App) GetCurrentScreen() Screen {
	return a.currentScreen
}

// GetContentModel returns the current content model (for testing).
func (a *App) GetContentModel() tea.Model {
	return a.contentModel
}

// Search returns the search screen model.
func (a *App) Search() *models.SearchModel {
	return a.search
}

// LaunchInteractive starts the interactive TUI interface.
func LaunchInteractive(ctx context.Context, service domain.SongService, trackURL string) error {
	if !isTerminal() {
		return fmt.Errorf("terminal check failed: %w", ErrNoTerminal)
	}

	return NewApp(ctx, service, trackURL).Run(ctx)
}

// handleNavigation handles navigation messages between screens.
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (a *App) handleNavigation(msg models.NavigateMsg) (tea.Model, tea.Cmd) {
	targetScreen := Screen(msg.Screen)

	if a.currentScreen == targetScreen {
		return a, nil
	}

	return a.navigateToScreen(targetScreen)
}

// navigateToScreen switches to targetScreen, creating its model on first use.
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (a *App) navigateToScreen(targetScreen Screen) (tea.Model, tea.Cmd) {
	cachedModel, exists := a.models[targetScreen]
	if !exists {
		cachedModel = a.createModelForScreen(targetScreen)
		a.models[targetScreen] = cachedModel
	}

	a.currentScreen = targetScreen
	a.contentModel = cachedModel

	var cmds []tea.Cmd

	if !exists {
		cmds = append(cmds, cachedModel.Init())
	}

	// Send the current size to the model, it may have missed resizes
	if a.width > 0 && a.height > 0 {
		updatedModel, cmd := a.contentModel.Update(tea.WindowSizeMsg{
			Width:  a.width,
			Height: a.height,
		})
		a.contentModel = updatedModel
		a.models[targetScreen] = updatedModel

		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// createModelForScreen creates a new model based on the screen type.
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (a *App) createModelForScreen(screen Screen) tea.Model {
	switch screen {
	case HelpScreen:
		return models.NewHelp(a.styles)
	default:
		return a.search
	}
}

// isTerminal checks if stdin and stdout are connected to a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
