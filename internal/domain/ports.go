// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import "context"

// SongService defines the operations offered by the remote recommendation
// service. Implemented by adapters/network.
type SongService interface {
	// AllSongs returns the full catalog.
	AllSongs(ctx context.Context) (Catalog, error)

	// Recommend returns songs similar to term, in the order ranked by the service.
	Recommend(ctx context.Context, term string) ([]Song, error)
}

// OutputPort defines the interface for presenting command results.
type OutputPort interface {
	// Recommendations outputs the result of a recommendation request.
	Recommendations(result *RecommendResult) error

	// Songs outputs a catalog listing.
	Songs(result *SongsResult) error

	// Error outputs a failure message with the exit code it maps to.
	Error(message string, code int) error

	// Info outputs an informational message.
	Info(message string) error
}
