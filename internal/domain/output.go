// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import "time"

// RecommendResult represents the outcome of a recommendation request.
type RecommendResult struct {
	Term            string        `json:"term"`
	Recommendations []SongInfo    `json:"recommendations"`
	Duration        time.Duration `json:"duration"`
	Timestamp       time.Time     `json:"timestamp"`
}

// SongsResult represents a catalog listing, optionally filtered.
type SongsResult struct {
	Filter    string     `json:"filter,omitempty"`
	Songs     []SongInfo `json:"songs"`
	Total     int        `json:"total"`
	Timestamp time.Time  `json:"timestamp"`
}

// SongInfo is a song with its playback link resolved.
type SongInfo struct {
	Song

	URL string `json:"url"`
}

// NewSongInfos resolves playback links for songs against trackURL.
func NewSongInfos(songs []Song, trackURL string) []SongInfo {
	infos := make([]SongInfo, 0, len(songs))
	for _, song := range songs {
		infos = append(infos, SongInfo{Song: song, URL: song.PlaybackURL(trackURL)})
	}

	return infos
}
