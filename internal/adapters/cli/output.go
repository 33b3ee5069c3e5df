// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides output adapters for CLI operations.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/giovanamalaia/soundmatch/internal/domain"
	"github.com/goccy/go-json"
	"github.com/mattn/go-runewidth"
)

// maxColumnWidth bounds the name and artist columns of text tables.
const maxColumnWidth = 40

// OutputAdapter implements domain.OutputPort for CLI output.
type OutputAdapter struct {
	writer io.Writer
	format OutputFormat
	quiet  bool
}

// OutputFormat represents the output format type.
type OutputFormat int

const (
	// TextFormat outputs a human-readable table.
	TextFormat OutputFormat = iota
	// JSONFormat outputs machine-readable JSON.
	JSONFormat
	// PlainFormat outputs tab-separated lines for scripts.
	PlainFormat
)

// NewOutputAdapterWithWriter creates an output adapter writing to writer.
func NewOutputAdapterWithWriter(writer io.Writer, format OutputFormat, quiet bool) *OutputAdapter {
	return &OutputAdapter{
		writer: writer,
		format: format,
		quiet:  quiet,
	}
}

// Recommendations outputs the songs recommended for a term.
func (o *OutputAdapter) Recommendations(result *domain.RecommendResult) error {
	switch o.format {
	case JSONFormat:
		return o.outputJSON(result)
	case PlainFormat:
		return o.plainSongs(result.Recommendations)
	}

	if !o.quiet {
		_, _ = fmt.Fprintf(o.writer, "Songs like %q:\n\n", result.Term)
	}

	return o.table(result.Recommendations)
}

// Songs outputs a catalog listing.
func (o *OutputAdapter) Songs(result *domain.SongsResult) error {
	switch o.format {
	case JSONFormat:
		return o.outputJSON(result)
	case PlainFormat:
		return o.plainSongs(result.Songs)
	}

	if !o.quiet {
		heading := fmt.Sprintf("%d songs in the catalog", result.Total)
		if result.Filter != "" {
			heading = fmt.Sprintf("%d of %d songs match %q", len(result.Songs), result.Total, result.Filter)
		}

		_, _ = fmt.Fprintf(o.writer, "%s:\n\n", heading)
	}

	return o.table(result.Songs)
}

// Error outputs an error message. Errors are written even when quiet.
func (o *OutputAdapter) Error(message string, code int) error {
	if o.format == JSONFormat {
		return o.outputJSON(map[string]any{"status": "error", "error": message, "code": code})
	}

	_, _ = fmt.Fprintf(o.writer, "Error: %s\n", message)

	return nil
}

// Info outputs an informational message. Structured formats carry results
// only, so the message is dropped for them.
func (o *OutputAdapter) Info(message string) error {
	if o.quiet || o.format != TextFormat {
		return nil
	}

	_, _ = fmt.Fprintln(o.writer, message)

	return nil
}

// table writes songs as an aligned table, one numbered row per song.
func (o *OutputAdapter) table(songs []domain.SongInfo) error {
	if len(songs) == 0 {
		_, _ = fmt.Fprintln(o.writer, "No songs found.")

		return nil
	}

	w := tabwriter.NewWriter(o.writer, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, "#\tSONG\tARTIST\tLINK")
	_, _ = fmt.Fprintln(w, "-\t----\t------\t----")

	for i, song := range songs {
		row := []string{
			strconv.Itoa(i + 1),
			runewidth.Truncate(song.TrackName, maxColumnWidth, "…"),
			runewidth.Truncate(song.TrackArtist, maxColumnWidth, "…"),
			song.URL,
		}
		_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	return w.Flush()
}

func (o *OutputAdapter) plainSongs(songs []domain.SongInfo) error {
	for _, song := range songs {
		if _, err := fmt.Fprintf(o.writer, "%s\t%s\t%s\n", song.TrackName, song.TrackArtist, song.URL); err != nil {
			return fmt.Errorf("write song: %w", err)
		}
	}

	return nil
}

// outputJSON outputs data as JSON.
func (o *OutputAdapter) outputJSON(data any) error {
	encoder := json.NewEncoder(o.writer)
	encoder.SetIndent("", "  ")

	return encoder.Encode(data)
}

// OutputFromFlags creates an OutputAdapter writing to writer in the format
// selected by the global CLI flags. --json wins over --plain.
func OutputFromFlags(writer io.Writer, jsonFlag, plainFlag, quietFlag bool) *OutputAdapter {
	format := TextFormat

	switch {
	case jsonFlag:
		format = JSONFormat
	case plainFlag:
		format = PlainFormat
	}

	return NewOutputAdapterWithWriter(writer, format, quietFlag)
}
