// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Suggestion filter limits.
const (
	MaxSuggestions     = 8 // Upper bound on the suggestion set
	MinSuggestionQuery = 2 // Shortest query, in characters, that yields suggestions
)

// QualifiesForSuggestions reports whether query is long enough to be matched
// against the catalog.
func QualifiesForSuggestions(query string) bool {
	return utf8.RuneCountInString(query) >= MinSuggestionQuery
}

// Suggest returns the first MaxSuggestions songs whose name or artist contains
// query, ignoring case, in catalog order. Queries shorter than
// MinSuggestionQuery match nothing.
func (c Catalog) Suggest(query string) []Song {
	return c.SuggestN(query, MaxSuggestions)
}

// SuggestN is Suggest with a caller-chosen bound. A limit <= 0 means no bound.
func (c Catalog) SuggestN(query string, limit int) []Song {
	if !QualifiesForSuggestions(query) {
		return nil
	}

	lower := cases.Lower(language.Und)
	needle := lower.String(query)

	var matches []Song

	for _, song := range c {
		if strings.Contains(lower.String(song.TrackName), needle) ||
			strings.Contains(lower.String(song.TrackArtist), needle) {
			matches = append(matches, song)

			if limit > 0 && len(matches) == limit {
				break
			}
		}
	}

	return matches
}
