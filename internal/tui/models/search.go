// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

// Package models provides Bubble Tea models for the TUI interface.
package models

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/giovanamalaia/soundmatch/internal/domain"
	"github.com/giovanamalaia/soundmatch/internal/search"
	"github.com/giovanamalaia/soundmatch/internal/tui/styles"
)

// Layout constants for the search screen.
const (
	originX          = 2  // Left padding of the screen
	originY          = 1  // Top padding of the screen
	defaultInputSize = 40 // Input width before the first WindowSizeMsg
	minInputSize     = 16
	maxInputSize     = 60
	minResultsHeight = 3
	noHighlight      = -1
)

// Labels shown on the search screen.
const (
	TitleText       = "SoundMatch 🎧"
	PlaceholderText = "Ex: Shape of You..."
	ButtonText      = "Buscar"
	ListenText      = "Ouvir no Spotify"
)

// CatalogLoadedMsg carries the result of the one-time catalog fetch.
type CatalogLoadedMsg struct {
	Catalog domain.Catalog
	Err     error
}

// RecommendationsMsg carries the result of one recommendation request.
type RecommendationsMsg struct {
	Request search.Request
	Songs   []domain.Song
	Err     error
}

// SearchKeyMap defines key bindings for the search screen.
type SearchKeyMap struct {
	Search     key.Binding
	Next       key.Binding
	Prev       key.Binding
	Dismiss    key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultSearchKeyMap returns the default key bindings.
func DefaultSearchKeyMap() SearchKeyMap {
	return SearchKeyMap{
		Search: key.NewBinding(
			key.WithKeys(KeyEnter),
			key.WithHelp("enter", "search"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next suggestion"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous suggestion"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "hide suggestions"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// KeyEnter is the Bubble Tea name of the Enter key.
const KeyEnter = "enter"

// layout holds the screen regions of the search widget after a render.
type layout struct {
	widget      search.Bounds
	input       search.Bounds
	button      search.Bounds
	suggestions []search.Bounds
}

// SearchModel is the search view: input with suggestions, a search button,
// an error banner and the recommendation list.
//
//nolint:containedctx // TUI models require context for proper cancellation propagation
type SearchModel struct {
	ctx      context.Context
	styles   *styles.Styles
	service  domain.SongService
	trackURL string

	session     *search.Session
	pointer     *search.PointerObserver
	input       textinput.Model
	spinner     spinner.Model
	results     viewport.Model
	keyMap      SearchKeyMap
	highlighted int

	width  int
	height int
}

// NewSearch creates the search view backed by service. Playback links are
// built from trackURL.
func NewSearch(ctx context.Context, styleConfig *styles.Styles, service domain.SongService, trackURL string) *SearchModel {
	if ctx == nil {
		ctx = context.Background()
	}

	input := textinput.New()
	input.Placeholder = PlaceholderText
	input.Prompt = "🔍 "
	input.Width = defaultInputSize
	input.Focus()

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = styleConfig.PrimaryText

	model := &SearchModel{
		ctx:         ctx,
		styles:      styleConfig,
		service:     service,
		trackURL:    trackURL,
		session:     search.NewSession(),
		input:       input,
		spinner:     spin,
		results:     viewport.New(0, minResultsHeight),
		keyMap:      DefaultSearchKeyMap(),
		highlighted: noHighlight,
	}

	model.pointer = search.NewPointerObserver(func(search.Point) {
		model.session.HideSuggestions()
		model.highlighted = noHighlight
	})

	return model
}

// LoadCatalogCmd fetches the catalog once.
func LoadCatalogCmd(ctx context.Context, service domain.SongService) tea.Cmd {
	return func() tea.Msg {
		catalog, err := service.AllSongs(ctx)

		return CatalogLoadedMsg{Catalog: catalog, Err: err}
	}
}

// RecommendCmd performs the request described by req.
func RecommendCmd(ctx context.Context, service domain.SongService, req search.Request) tea.Cmd {
	return func() tea.Msg {
		songs, err := service.Recommend(ctx, req.Term)

		return RecommendationsMsg{Request: req, Songs: songs, Err: err}
	}
}

// Init starts the catalog load.
func (m *SearchModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, LoadCatalogCmd(m.ctx, m.service))
}

// Update handles messages for the SearchModel.
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = min(max(msg.Width-originX*2-lipgloss.Width(m.renderButton())-8, minInputSize), maxInputSize)
		m.results.Width = max(msg.Width-originX*2, 0)

		return m, nil

	case CatalogLoadedMsg:
		if msg.Err != nil {
			m.session.CatalogFailed(msg.Err)
		} else {
			m.session.SetCatalog(msg.Catalog)
		}

		return m, nil

	case RecommendationsMsg:
		if m.session.Complete(msg.Request, msg.Songs, msg.Err) {
			m.syncInput()
			m.results.GotoTop()
		}

		return m, nil

	case spinner.TickMsg:
		if !m.session.Loading() {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.FocusMsg:
		m.session.Focus()

		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		return m, m.handleKeyMessage(msg)
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// View renders the search screen.
func (m *SearchModel) View() string {
	state := m.session.State()
	header := m.renderHeader()
	widget, _ := m.renderWidget()

	sections := []string{header, "", widget}

	if banner := m.renderBanner(state); banner != "" {
		sections = append(sections, "", banner)
	}

	footer := RenderFooter(m.styles, max(m.width-originX*2, 0), m.footerBindings())

	used := lipgloss.Height(lipgloss.JoinVertical(lipgloss.Left, sections...)) + lipgloss.Height(footer) + originY*2 + 1
	if m.height > 0 {
		m.results.Height = max(m.height-used, minResultsHeight)
	}

	results := ""
	if state == search.StateResults {
		results = m.renderResults()
	}

	m.results.SetContent(results)
	sections = append(sections, "", m.results.View(), footer)

	return m.styles.Container.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// Session exposes the state record behind the view.
func (m *SearchModel) Session() *search.Session {
	return m.session
}

// Query returns the text currently in the input.
func (m *SearchModel) Query() string {
	return m.input.Value()
}

// Highlighted returns the index of the highlighted suggestion, or -1.
func (m *SearchModel) Highlighted() int {
	return m.highlighted
}

// handleKeyMessage processes keyboard input. Keys not bound here edit the query.
func (m *SearchModel) handleKeyMessage(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return tea.Quit
	case key.Matches(msg, m.keyMap.Help):
		return func() tea.Msg {
			return NavigateMsg{Screen: HelpScreen}
		}
	case key.Matches(msg, m.keyMap.Search):
		if m.highlighted != noHighlight && m.session.SuggestionsVisible() {
			return m.chooseSuggestion(m.highlighted)
		}

		cmd := m.startSearch("")
		m.session.HideSuggestions()

		return cmd
	case key.Matches(msg, m.keyMap.Dismiss):
		m.session.HideSuggestions()
		m.highlighted = noHighlight

		return nil
	case key.Matches(msg, m.keyMap.Next):
		m.moveHighlight(1)

		return nil
	case key.Matches(msg, m.keyMap.Prev):
		m.moveHighlight(-1)

		return nil
	case key.Matches(msg, m.keyMap.ScrollUp):
		m.results.HalfPageUp()

		return nil
	case key.Matches(msg, m.keyMap.ScrollDown):
		m.results.HalfPageDown()

		return nil
	}

	before := m.input.Value()

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	if after := m.input.Value(); after != before {
		m.session.SetQuery(after)
		m.highlighted = noHighlight
	}

	return cmd
}

// handleMouse routes pointer presses: suggestion rows, the button and the
// input act on the press, anything outside the widget dismisses suggestions.
// The wheel scrolls the results and never counts as a press.
func (m *SearchModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if tea.MouseEvent(msg).IsWheel() {
		var cmd tea.Cmd

		m.results, cmd = m.results.Update(msg)

		return cmd
	}

	if msg.Action != tea.MouseActionPress {
		return nil
	}

	point := search.Point{X: msg.X, Y: msg.Y}
	regions := m.measure()

	m.pointer.Watch(regions.widget)
	if m.pointer.PointerDown(point) || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	for i, row := range regions.suggestions {
		if row.Contains(point) {
			return m.chooseSuggestion(i)
		}
	}

	switch {
	case regions.button.Contains(point):
		if m.session.Loading() {
			return nil
		}

		return m.startSearch("")
	case regions.input.Contains(point):
		cmd := m.input.Focus()
		m.session.Focus()

		return cmd
	}

	return nil
}

func (m *SearchModel) chooseSuggestion(i int) tea.Cmd {
	req, ok := m.session.ChooseSuggestion(i)
	if !ok {
		return nil
	}

	m.syncInput()
	m.highlighted = noHighlight

	return tea.Batch(m.spinner.Tick, RecommendCmd(m.ctx, m.service, req))
}

func (m *SearchModel) startSearch(term string) tea.Cmd {
	req, ok := m.session.Search(term)
	if !ok {
		return nil
	}

	m.highlighted = noHighlight

	return tea.Batch(m.spinner.Tick, RecommendCmd(m.ctx, m.service, req))
}

func (m *SearchModel) moveHighlight(delta int) {
	if !m.session.SuggestionsVisible() {
		m.highlighted = noHighlight

		return
	}

	count := len(m.session.Suggestions())
	next := m.highlighted + delta

	switch {
	case next < 0:
		next = noHighlight
	case next >= count:
		next = count - 1
	}

	m.highlighted = next
}

// syncInput writes the session query back into the input when they differ.
func (m *SearchModel) syncInput() {
	if m.input.Value() != m.session.Query() {
		m.input.SetValue(m.session.Query())
		m.input.CursorEnd()
	}
}

func (m *SearchModel) footerBindings() []key.Binding {
	return []key.Binding{
		m.keyMap.Search, m.keyMap.Next, m.keyMap.Dismiss, m.keyMap.Help, m.keyMap.Quit,
	}
}

func (m *SearchModel) renderHeader() string {
	subtitle := "Digite uma música que você gosta e sugerimos " +
		m.styles.Highlight.Render("5 parecidas") + "."

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(TitleText),
		m.styles.Subtitle.Render(subtitle),
	)
}

func (m *SearchModel) renderButton() string {
	if m.session != nil && m.session.Loading() {
		return m.styles.ButtonDisabled.Render(m.spinner.View())
	}

	return m.styles.Button.Render(ButtonText)
}

// renderWidget renders the search box and, when visible, the suggestion
// list. It also returns the regions of the rendered parts relative to the
// widget's top-left corner.
func (m *SearchModel) renderWidget() (string, layout) {
	inputStyle := m.styles.Input
	if m.input.Focused() {
		inputStyle = m.styles.InputFocused
	}

	inputBox := inputStyle.Render(m.input.View())
	button := m.renderButton()
	box := lipgloss.JoinHorizontal(lipgloss.Top, inputBox, " ", button)

	regions := layout{
		input:  search.Bounds{X: 0, Y: 0, Width: lipgloss.Width(inputBox), Height: lipgloss.Height(inputBox)},
		button: search.Bounds{X: lipgloss.Width(inputBox) + 1, Y: 0, Width: lipgloss.Width(button), Height: lipgloss.Height(button)},
	}

	widget := box

	if m.session.SuggestionsVisible() {
		list := m.renderSuggestions(lipgloss.Width(box))
		widget = lipgloss.JoinVertical(lipgloss.Left, box, list)

		top := lipgloss.Height(box) + 1 // first row sits under the list's top border
		for i := range m.session.Suggestions() {
			regions.suggestions = append(regions.suggestions, search.Bounds{
				X: 0, Y: top + i, Width: lipgloss.Width(list), Height: 1,
			})
		}
	}

	regions.widget = search.Bounds{Width: lipgloss.Width(widget), Height: lipgloss.Height(widget)}

	return widget, regions
}

// measure returns the widget regions in screen coordinates.
func (m *SearchModel) measure() layout {
	_, regions := m.renderWidget()

	dx := originX
	dy := originY + lipgloss.Height(m.renderHeader()) + 1

	shift := func(b search.Bounds) search.Bounds {
		b.X += dx
		b.Y += dy

		return b
	}

	regions.widget = shift(regions.widget)
	regions.input = shift(regions.input)
	regions.button = shift(regions.button)

	for i := range regions.suggestions {
		regions.suggestions[i] = shift(regions.suggestions[i])
	}

	return regions
}

func (m *SearchModel) renderSuggestions(width int) string {
	frame := m.styles.Suggestions.GetHorizontalFrameSize()
	inner := max(width-frame, minInputSize)

	rows := make([]string, 0, len(m.session.Suggestions()))

	for i, song := range m.session.Suggestions() {
		name := runewidth.Truncate(song.TrackName, inner, "…")
		artist := ""

		if rest := inner - runewidth.StringWidth(name) - 3; rest > 0 {
			artist = runewidth.Truncate(song.TrackArtist, rest, "…")
		}

		style := m.styles.Suggestion
		if i == m.highlighted {
			style = m.styles.SuggestionSel
		}

		row := name
		if artist != "" {
			row += m.styles.MutedText.Render(" • " + artist)
		}

		rows = append(rows, style.Width(inner).Render(row))
	}

	return m.styles.Suggestions.Width(inner + m.styles.Suggestions.GetHorizontalPadding()).Render(strings.Join(rows, "\n"))
}

func (m *SearchModel) renderBanner(state search.State) string {
	switch state {
	case search.StateError:
		return m.styles.ErrorBanner.Render("⚠️ " + m.session.ErrorMessage())
	case search.StateLoading:
		return m.spinner.View() + m.styles.MutedText.Render(" Buscando músicas parecidas…")
	default:
		return ""
	}
}

func (m *SearchModel) renderResults() string {
	songs := m.session.Recommendations()
	if len(songs) == 0 {
		return ""
	}

	width := m.results.Width
	if width <= 0 {
		width = defaultInputSize * 2
	}

	cardWidth := width - m.styles.Card.GetHorizontalFrameSize()

	cards := make([]string, 0, len(songs))

	for _, song := range songs {
		link := song.PlaybackURL(m.trackURL)
		body := lipgloss.JoinVertical(lipgloss.Left,
			m.styles.PrimaryText.Bold(true).Render(runewidth.Truncate(song.TrackName, cardWidth, "…")),
			m.styles.MutedText.Render(runewidth.Truncate(song.TrackArtist, cardWidth, "…")),
			fmt.Sprintf("%s %s", ListenText+":", m.styles.Link.Render(link)),
		)

		cards = append(cards, m.styles.Card.Width(cardWidth+m.styles.Card.GetHorizontalPadding()).Render(body))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
