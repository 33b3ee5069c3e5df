// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/giovanamalaia/soundmatch/internal/domain"
	"github.com/giovanamalaia/soundmatch/internal/logging"
)

// RecommendHandler runs one recommendation request.
type RecommendHandler struct {
	*BaseHandler

	service domain.SongService
}

// NewRecommendHandler creates a handler asking service for recommendations.
func NewRecommendHandler(base *BaseHandler, service domain.SongService) *RecommendHandler {
	return &RecommendHandler{BaseHandler: base, service: service}
}

// Execute requests songs similar to term and writes them to the output.
func (h *RecommendHandler) Execute(ctx context.Context, term string) (*domain.RecommendResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.ErrEmptyTerm
	}

	ctx, cancel := h.WithTimeout(ctx)
	defer cancel()

	start := time.Now()

	songs, err := h.service.Recommend(ctx, term)
	if err != nil {
		logging.Debug().Err(err).Str("term", term).Msg("recommendation failed")

		return nil, fmt.Errorf("recommend %q: %w", term, err)
	}

	result := &domain.RecommendResult{
		Term:            term,
		Recommendations: domain.NewSongInfos(songs, h.TrackURL),
		Duration:        time.Since(start),
		Timestamp:       time.Now(),
	}

	logging.Debug().Str("term", term).Int("count", len(songs)).Dur("duration", result.Duration).Msg("recommendations received")

	if err := h.GetOutput().Recommendations(result); err != nil {
		return result, fmt.Errorf("failed to write recommendations: %w", err)
	}

	return result, nil
}

// SongsHandler lists the catalog.
type SongsHandler struct {
	*BaseHandler

	service domain.SongService
}

// NewSongsHandler creates a handler listing the catalog of service.
func NewSongsHandler(base *BaseHandler, service domain.SongService) *SongsHandler {
	return &SongsHandler{BaseHandler: base, service: service}
}

// Execute loads the catalog and writes the songs matching filter, at most
// limit of them. An empty filter lists everything; limit <= 0 means no limit.
// A non-empty filter uses the same matching as the interactive suggestions.
func (h *SongsHandler) Execute(ctx context.Context, filter string, limit int) (*domain.SongsResult, error) {
	ctx, cancel := h.WithTimeout(ctx)
	defer cancel()

	catalog, err := h.service.AllSongs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	songs := []domain.Song(catalog)

	filter = strings.TrimSpace(filter)
	if filter != "" {
		songs = catalog.SuggestN(filter, limit)
	} else if limit > 0 && len(songs) > limit {
		songs = songs[:limit]
	}

	result := &domain.SongsResult{
		Filter:    filter,
		Songs:     domain.NewSongInfos(songs, h.TrackURL),
		Total:     catalog.Len(),
		Timestamp: time.Now(),
	}

	if err := h.GetOutput().Songs(result); err != nil {
		return result, fmt.Errorf("failed to write songs: %w", err)
	}

	return result, nil
}
