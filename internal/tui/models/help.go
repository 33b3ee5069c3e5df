// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/giovanamalaia/soundmatch/internal/tui/styles"
)

// HelpSection represents a help documentation section.
type HelpSection struct {
	Title   string
	Content string
}

// Help represents the help screen model.
type Help struct {
	styles         *styles.Styles
	width          int
	height         int
	sections       []HelpSection
	viewport       viewport.Model
	renderer       *glamour.TermRenderer
	currentSection int
	keyMap         HelpKeyMap
}

// HelpKeyMap defines key bindings for the help screen.
type HelpKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// DefaultHelpKeyMap returns the default key bindings.
func DefaultHelpKeyMap() HelpKeyMap {
	return HelpKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "previous section"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next section"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "f1", "q"),
			key.WithHelp("esc", "back to search"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func helpSections() []HelpSection {
	return []HelpSection{
		{
			Title: "Searching",
			Content: `# Searching

Type a song you like and SoundMatch asks the recommendation service for
**5 similar songs**.

1. Start typing a title or an artist. After two characters up to eight
   matching songs from the catalog are suggested.
2. Pick a suggestion, or press **Enter** to search for exactly what you typed.
3. Each result links to its playback page.

If the service does not know the song, the error is shown under the search
box. Try another title.`,
		},
		{
			Title: "Keys",
			Content: `# Keys

| Key | Action |
| --- | --- |
| Enter | Search, or pick the highlighted suggestion |
| ↑ / ↓ | Move through suggestions |
| Esc | Hide suggestions |
| PgUp / PgDn | Scroll results |
| Mouse click | Pick a suggestion, press the button, or dismiss suggestions by clicking elsewhere |
| F1 | Toggle this help |
| Ctrl+C | Quit |`,
		},
		{
			Title: "Command line",
			Content: "# Command line\n\n" +
				"```sh\n" +
				"soundmatch recommend Shape of You   # print recommendations\n" +
				"soundmatch songs --filter beatles   # list catalog matches\n" +
				"soundmatch config init              # write the default config\n" +
				"```\n\n" +
				"The service address, timeout and log file are read from " +
				"`$XDG_CONFIG_HOME/soundmatch/config.toml`.",
		},
	}
}

// NewHelp creates a new help model.
func NewHelp(styleConfig *styles.Styles) *Help {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		renderer, _ = glamour.NewTermRenderer()
	}

	viewPort := viewport.New(80, 20)
	viewPort.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styleConfig.Primary)

	helpModel := &Help{
		styles:   styleConfig,
		sections: helpSections(),
		viewport: viewPort,
		renderer: renderer,
		keyMap:   DefaultHelpKeyMap(),
	}

	helpModel.updateContent()

	return helpModel
}

// Init initializes the help model.
func (m *Help) Init() tea.Cmd {
	return nil
}

// Update handles messages for the Help model.
func (m *Help) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		verticalMargins := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.renderFooter()) + 2

		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-verticalMargins, 3)
		m.updateContent()
	}

	return m, nil
}

// View renders the help screen.
func (m *Help) View() string {
	var builder strings.Builder

	builder.WriteString(m.renderHeader())
	builder.WriteString("\n\n")
	builder.WriteString(m.viewport.View())
	builder.WriteString("\n")
	builder.WriteString(m.renderFooter())

	return builder.String()
}

// CurrentSection returns the index of the displayed section.
func (m *Help) CurrentSection() int {
	return m.currentSection
}

func (m *Help) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keyMap.Back):
		return m, func() tea.Msg {
			return NavigateMsg{Screen: SearchScreen}
		}
	case key.Matches(msg, m.keyMap.Left):
		m.moveSection(-1)

		return m, nil
	case key.Matches(msg, m.keyMap.Right):
		m.moveSection(1)

		return m, nil
	default:
		var cmd tea.Cmd

		m.viewport, cmd = m.viewport.Update(msg)

		return m, cmd
	}
}

func (m *Help) moveSection(direction int) {
	next := m.currentSection + direction
	if next >= 0 && next < len(m.sections) {
		m.currentSection = next
		m.updateContent()
		m.viewport.GotoTop()
	}
}

func (m *Help) renderHeader() string {
	title := m.styles.Title.Render("❓ SoundMatch help")

	tabs := make([]string, 0, len(m.sections))

	for i, section := range m.sections {
		style := lipgloss.NewStyle().Padding(0, 1).MarginRight(1)
		if i == m.currentSection {
			style = style.Background(m.styles.Primary).Foreground(lipgloss.Color("#1a1b26"))
		} else {
			style = style.Faint(true)
		}

		tabs = append(tabs, style.Render(section.Title))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m *Help) renderFooter() string {
	return RenderFooter(m.styles, m.width, []key.Binding{
		m.keyMap.Down, m.keyMap.Right, m.keyMap.Back, m.keyMap.Quit,
	})
}

// updateContent renders the current section content and updates the viewport.
func (m *Help) updateContent() {
	if m.currentSection >= len(m.sections) {
		return
	}

	section := m.sections[m.currentSection]

	rendered, err := m.renderer.Render(section.Content)
	if err != nil {
		rendered = section.Content
	}

	m.viewport.SetContent(rendered)
}
