// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

// Package search holds the state behind the search view: the catalog, the
// query with its suggestions, and the outcome of the latest recommendation
// request. A Session is owned by a single goroutine; it performs no I/O.
package search

import (
	"strings"

	"github.com/giovanamalaia/soundmatch/internal/domain"
	"github.com/giovanamalaia/soundmatch/internal/logging"
)

// Status is the request status shown next to the search field.
type Status int

// Request statuses.
const (
	StatusIdle Status = iota
	StatusLoading
	StatusError
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// State is the coarse view state derived from a Session.
type State int

// View states, in display priority order.
const (
	StateIdle State = iota
	StateSuggesting
	StateLoading
	StateError
	StateResults
)

// String implements fmt.Stringer.
func (s State) String() string {
	return [...]string{"idle", "suggesting", "loading", "error", "results"}[s]
}

// Request identifies one recommendation fetch. Seq increases with every
// search started by the session.
type Request struct {
	Seq      uint64
	Term     string
	Explicit bool // Term was passed in rather than taken from the query
}

// Session is the single owned state record of the search view.
type Session struct {
	catalog       domain.Catalog
	catalogLoaded bool

	query              string
	suggestions        []domain.Song
	suggestionsVisible bool

	recommendations []domain.Song
	status          Status
	errMessage      string

	seq uint64
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// SetCatalog installs the catalog. Later calls are ignored: the catalog is
// loaded once per session.
func (s *Session) SetCatalog(catalog domain.Catalog) {
	if s.catalogLoaded {
		return
	}

	s.catalog = catalog
	s.catalogLoaded = true
	s.refreshSuggestions()
}

// CatalogFailed records a failed catalog load. The failure is logged and
// suggestions stay unavailable.
func (s *Session) CatalogFailed(err error) {
	if s.catalogLoaded {
		return
	}

	s.catalogLoaded = true

	logger := logging.Component("catalog")
	logger.Warn().Err(err).Msg("failed to load song catalog, suggestions disabled")
}

// CatalogLoaded reports whether the catalog load has finished, either way.
func (s *Session) CatalogLoaded() bool {
	return s.catalogLoaded
}

// Catalog returns the loaded catalog.
func (s *Session) Catalog() domain.Catalog {
	return s.catalog
}

// SetQuery handles a keystroke: it replaces the query and recomputes the
// suggestions, which become visible when the query is long enough.
func (s *Session) SetQuery(query string) {
	s.query = query
	s.refreshSuggestions()
	s.suggestionsVisible = domain.QualifiesForSuggestions(query)
}

// Query returns the current input text.
func (s *Session) Query() string {
	return s.query
}

// Focus is called when the input gains focus.
func (s *Session) Focus() {
	if domain.QualifiesForSuggestions(s.query) {
		s.suggestionsVisible = true
	}
}

// HideSuggestions hides the suggestion list without touching the query.
func (s *Session) HideSuggestions() {
	s.suggestionsVisible = false
}

// Suggestions returns the suggestion set for the current query.
func (s *Session) Suggestions() []domain.Song {
	return s.suggestions
}

// SuggestionsVisible reports whether the suggestion list should be drawn.
func (s *Session) SuggestionsVisible() bool {
	return s.suggestionsVisible && len(s.suggestions) > 0
}

// Search starts a recommendation request for term, or for the current query
// when term is empty. It returns false, with no state change, when the
// resolved term is blank.
func (s *Session) Search(term string) (Request, bool) {
	explicit := term != ""

	resolved := term
	if !explicit {
		resolved = s.query
	}

	if strings.TrimSpace(resolved) == "" {
		return Request{}, false
	}

	s.seq++
	s.status = StatusLoading
	s.errMessage = ""
	s.recommendations = nil
	s.suggestionsVisible = false

	return Request{Seq: s.seq, Term: resolved, Explicit: explicit}, true
}

// ChooseSuggestion accepts suggestion i: the query becomes its track name and
// a search for exactly that name starts.
func (s *Session) ChooseSuggestion(i int) (Request, bool) {
	if i < 0 || i >= len(s.suggestions) {
		return Request{}, false
	}

	name := s.suggestions[i].TrackName
	s.setQuerySilently(name)

	return s.Search(name)
}

// Complete applies the outcome of req. Outcomes of requests superseded by a
// newer Search are discarded and Complete returns false.
func (s *Session) Complete(req Request, songs []domain.Song, err error) bool {
	if req.Seq != s.seq {
		logging.Debug().Uint64("seq", req.Seq).Uint64("latest", s.seq).Msg("discarding stale recommendation response")

		return false
	}

	s.status = StatusIdle

	if err != nil {
		s.status = StatusError
		s.errMessage = err.Error()
		s.recommendations = nil

		logging.Debug().Err(err).Str("term", req.Term).Msg("recommendation request failed")

		return true
	}

	s.recommendations = append([]domain.Song(nil), songs...)

	if req.Explicit {
		s.setQuerySilently(req.Term)
	}

	return true
}

// Recommendations returns the result of the latest successful search.
func (s *Session) Recommendations() []domain.Song {
	return s.recommendations
}

// Status returns the request status.
func (s *Session) Status() Status {
	return s.status
}

// Loading reports whether a request is in flight.
func (s *Session) Loading() bool {
	return s.status == StatusLoading
}

// ErrorMessage returns the message of the last failed search, if any.
func (s *Session) ErrorMessage() string {
	return s.errMessage
}

// State derives the view state.
func (s *Session) State() State {
	switch {
	case s.status == StatusLoading:
		return StateLoading
	case s.status == StatusError:
		return StateError
	case len(s.recommendations) > 0:
		return StateResults
	case s.SuggestionsVisible():
		return StateSuggesting
	default:
		return StateIdle
	}
}

// setQuerySilently replaces the query without changing suggestion
// visibility, as when a search writes the accepted term back.
func (s *Session) setQuerySilently(query string) {
	s.query = query
	s.refreshSuggestions()
}

func (s *Session) refreshSuggestions() {
	s.suggestions = s.catalog.Suggest(s.query)
}
