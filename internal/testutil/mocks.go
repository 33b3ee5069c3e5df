// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

// Package testutil provides test doubles for the domain ports.
package testutil

import (
	"context"

	"github.com/giovanamalaia/soundmatch/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockSongService mocks the SongService port for testing.
type MockSongService struct {
	mock.Mock
}

// AllSongs mocks the catalog fetch.
func (m *MockSongService) AllSongs(ctx context.Context) (domain.Catalog, error) {
	args := m.Called(ctx)
	if result := args.Get(0); result != nil {
		catalog, ok := result.(domain.Catalog)
		if !ok {
			return nil, args.Error(1)
		}

		return catalog, args.Error(1)
	}

	return nil, args.Error(1)
}

// Recommend mocks a recommendation request.
func (m *MockSongService) Recommend(ctx context.Context, term string) ([]domain.Song, error) {
	args := m.Called(ctx, term)
	if result := args.Get(0); result != nil {
		songs, ok := result.([]domain.Song)
		if !ok {
			return nil, args.Error(1)
		}

		return songs, args.Error(1)
	}

	return nil, args.Error(1)
}

// Beatles returns a small catalog used across tests.
func Beatles() domain.Catalog {
	return domain.Catalog{
		{TrackID: "1", TrackName: "Yesterday", TrackArtist: "Beatles"},
		{TrackID: "2", TrackName: "Let It Be", TrackArtist: "Beatles"},
		{TrackID: "3", TrackName: "Shallow", TrackArtist: "Lady Gaga"},
	}
}
