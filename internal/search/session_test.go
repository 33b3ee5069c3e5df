// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

package search

import (
	"errors"
	"fmt"
	"testing"

	"github.com/giovanamalaia/soundmatch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func beatles() domain.Catalog {
	return domain.Catalog{
		{TrackID: "1", TrackName: "Yesterday", TrackArtist: "Beatles"},
		{TrackID: "2", TrackName: "Let It Be", TrackArtist: "Beatles"},
	}
}

func newLoadedSession() *Session {
	session := NewSession()
	session.SetCatalog(beatles())

	return session
}

func TestSessionInitialState(t *testing.T) {
	t.Parallel()

	session := NewSession()

	assert.Equal(t, StateIdle, session.State())
	assert.Equal(t, StatusIdle, session.Status())
	assert.Empty(t, session.Query())
	assert.Empty(t, session.Suggestions())
	assert.Empty(t, session.Recommendations())
	assert.False(t, session.CatalogLoaded())
}

func TestSetQueryShortHidesSuggestions(t *testing.T) {
	t.Parallel()

	session := newLoadedSession()
	session.SetQuery("be")
	require.True(t, session.SuggestionsVisible())

	session.SetQuery("b")

	assert.False(t, session.SuggestionsVisible())
	assert.Empty(t, session.Suggestions())
	assert.Equal(t, StateIdle, session.State())
}

func TestSetQueryArtistScenario(t *testing.T) {
	t.Parallel()

	session := newLoadedSession()
	session.SetQuery("be")

	suggestions := session.Suggestions()
	require.Len(t, suggestions, 2)
	assert.Equal(t, "Yesterday", suggestions[0].TrackName)
	assert.Equal(t, "Let It Be", suggestions[1].TrackName)
	assert.Equal(t, StateSuggesting, session.State())
}

func TestSuggestionsHiddenWhenNothingMatches(t *testing.T) {
	t.Parallel()

	session := newLoadedSession()
	session.SetQuery("zz")

	assert.Empty(t, session.Suggestions())
	assert.False(t, session.SuggestionsVisible())
}

func TestCatalogLoadedOnce(t *testing.T) {
	t.Parallel()

	session := newLoadedSession()
	session.SetCatalog(domain.Catalog{{TrackID: "x", TrackName: "Other", TrackArtist: "Other"}})
	session.CatalogFailed(errors.New("late failure"))

	assert.Equal(t, beatles(), session.Catalog())
}

func TestCatalogFailureLeavesSuggestionsUnavailable(t *testing.T) {
	t.Parallel()

	session := NewSession()
	session.CatalogFailed(errors.New("connection refused"))

	session.SetQuery("be")

	assert.True(t, session.CatalogLoaded())
	assert.Empty(t, session.Catalog())
	assert.False(t, session.SuggestionsVisible())
	assert.Equal(t, StatusIdle, session.Status(), "catalog failures are not shown")
}

func TestSetCatalogRefreshesPendingQuery(t *testing.T) {
	t.Parallel()

	session := NewSession()
	session.SetQuery("yes")
	assert.False(t, session.SuggestionsVisible())

	session.SetCatalog(beatles())

	assert.Len(t, session.Suggestions(), 1)
	assert.True(t, session.SuggestionsVisible())
}

func TestFocusShowsSuggestions(t *testing.T) {
	t.Parallel()

	session := newLoadedSession()
	session.SetQuery("be")
	session.HideSuggestions()
	require.False(t, session.SuggestionsVisible())

	session.Focus()
	assert.True(t, session.SuggestionsVisible())

	session.SetQuery("b")
	session.Focus()
	assert.False(t, session.SuggestionsVisible())
}

func TestSearchBlankTermIsNoop(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ query, term string }{
		{"", ""},
		{"   ", ""},
		{"\t", ""},
		{"Yesterday", "   "},
	} {
		t.Run(fmt.Sprintf("query=%q term=%q", tc.query, tc.term), func(t *testing.T) {
			t.Parallel()

			session := newLoadedSession()
			session.SetQuery(tc.query)
			before := *session

			_, ok := session.Search(tc.term)

			assert.False(t, ok)
			assert.Equal(t, before, *session)
		})
	}
}

func TestSearchSideEffects(t *testing.T) {
	t.Parallel()

	session := newLoadedSession()

	first, ok := session.Search("Broken")
	require.True(t, ok)
	require.True(t, session.Complete(first, nil, errors.New("boom")))
	require.Equal(t, StatusError, session.Status())

	session.SetQuery("be")
	require.True(t, session.SuggestionsVisible())

	req, ok := session.Search("")
	require.True(t, ok)

	assert.Equal(t, "be", req.Term)
	assert.False(t, req.Explicit)
	assert.Equal(t, StatusLoading, session.Status())
	assert.Equal(t, StateLoading, session.State())
	assert.Empty(t, session.ErrorMessage())
	assert.Empty(t, session.Recommendations())
	assert.False(t, session.SuggestionsVisible())
}

func TestCompleteSuccessReplacesResults(t *testing.T) {
	t.Parallel()

	session := newLoadedSession()
	session.SetQuery("shape of")

	req, ok := session.Search("")
	require.True(t, ok)

	songs := []domain.Song{
		{TrackID: "b", TrackName: "Perfect", TrackArtist: "Ed Sheeran"},
		{TrackID: "a", TrackName: "Photograph", TrackArtist: "Ed Sheeran"},
	}

	require.True(t, session.Complete(req, songs, nil))

	assert.Equal(t, songs, session.Recommendations())
	assert.Equal(t, StatusIdle, session.Status())
	assert.Empty(t, session.ErrorMessage())
	assert.Equal(t, StateResults, session.State())
	assert.Equal(t, "shape of", session.Query(), "implicit searches keep the typed query")
}

func TestCompleteExplicitTermOverwritesQuery(t *testing.T) {
	t.Parallel()

	session := newLoadedSession()
	session.SetQuery("yest")

	req, ok := session.Search("Let It Be")
	require.True(t, ok)
	assert.True(t, req.Explicit)

	require.True(t, session.Complete(req, []domain.Song{{TrackID: "9"}}, nil))
	assert.Equal(t, "Let It Be", session.Query())
}

func TestCompleteFailureScenario(t *testing.T) {
	t.Parallel()

	session := newLoadedSession()
	session.SetQuery("Shape of You")

	req, ok := session.Search("")
	require.True(t, ok)

	err := domain.NewServiceError(404, "Música não encontrada. Tente outra!")
	require.True(t, session.Complete(req, nil, err))

	assert.Equal(t, StatusError, session.Status())
	assert.Equal(t, StateError, session.State())
	assert.Equal(t, "Música não encontrada. Tente outra!", session.ErrorMessage())
	assert.Empty(t, session.Recommendations())
	assert.Equal(t, "Shape of You", session.Query())
}

func TestCompleteDiscardsStaleResponses(t *testing.T) {
	t.Parallel()

	session := newLoadedSession()

	first, _ := session.Search("Yesterday")
	second, _ := session.Search("Let It Be")

	latest := []domain.Song{{TrackID: "latest"}}
	require.True(t, session.Complete(second, latest, nil))

	assert.False(t, session.Complete(first, []domain.Song{{TrackID: "stale"}}, nil))
	assert.False(t, session.Complete(first, nil, errors.New("stale failure")))

	assert.Equal(t, latest, session.Recommendations())
	assert.Equal(t, StatusIdle, session.Status())
	assert.Equal(t, "Let It Be", session.Query())
}

func TestStaleResponseDoesNotEndLoading(t *testing.T) {
	t.Parallel()

	session := newLoadedSession()

	first, _ := session.Search("Yesterday")
	_, _ = session.Search("Let It Be")

	assert.False(t, session.Complete(first, []domain.Song{{TrackID: "old"}}, nil))
	assert.True(t, session.Loading())
}

func TestChooseSuggestionScenario(t *testing.T) {
	t.Parallel()

	session := newLoadedSession()
	session.SetQuery("be")
	require.True(t, session.SuggestionsVisible())

	req, ok := session.ChooseSuggestion(1)
	require.True(t, ok)

	assert.Equal(t, "Let It Be", req.Term)
	assert.True(t, req.Explicit)
	assert.Equal(t, "Let It Be", session.Query())
	assert.False(t, session.SuggestionsVisible())
	assert.True(t, session.Loading())
}

func TestChooseSuggestionOutOfRange(t *testing.T) {
	t.Parallel()

	session := newLoadedSession()
	session.SetQuery("be")

	for _, i := range []int{-1, 2, 10} {
		_, ok := session.ChooseSuggestion(i)
		assert.False(t, ok)
	}

	assert.Equal(t, StatusIdle, session.Status())
}

func TestStatusAndStateStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "error", StatusError.String())
	assert.Equal(t, "suggesting", StateSuggesting.String())
	assert.Equal(t, "results", StateResults.String())
}
