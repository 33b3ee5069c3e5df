// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

// Package domain holds the song model, the suggestion filter and the ports
// implemented by the service adapters.
package domain

import "strings"

// DefaultTrackURL is the playback page prefix a track id is appended to.
const DefaultTrackURL = "https://open.spotify.com/track/"

// Song is a single track as delivered by the recommendation service.
type Song struct {
	TrackID     string `json:"track_id"`
	TrackName   string `json:"track_name"`
	TrackArtist string `json:"track_artist"`
}

// String implements fmt.Stringer.
func (s Song) String() string {
	return s.TrackName + " • " + s.TrackArtist
}

// PlaybackURL builds the link to the playback page for the song.
// An empty base falls back to DefaultTrackURL.
func (s Song) PlaybackURL(base string) string {
	if base == "" {
		base = DefaultTrackURL
	}

	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	return base + s.TrackID
}

// Catalog is the ordered list of songs available for autocomplete.
// Duplicates are allowed.
type Catalog []Song

// Len returns the number of songs in the catalog.
func (c Catalog) Len() int {
	return len(c)
}
