// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

package network

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/giovanamalaia/soundmatch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewHTTPClient(server.URL, 5*time.Second)
}

func TestNewHTTPClient(t *testing.T) {
	t.Parallel()

	client := NewHTTPClient("", 30*time.Second)

	assert.Equal(t, DefaultBaseURL, client.BaseURL())
	assert.Equal(t, 30*time.Second, client.client.Timeout)

	transport, ok := client.client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.NotNil(t, transport.Proxy)
}

func TestNewHTTPClientDefaultHasNoTimeout(t *testing.T) {
	t.Parallel()

	client := NewHTTPClient("", DefaultTimeout)
	assert.Zero(t, client.client.Timeout)
}

func TestNewHTTPClientTrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	client := NewHTTPClient("http://example.com/api/", time.Second)
	assert.Equal(t, "http://example.com/api", client.BaseURL())
}

func TestAllSongs(t *testing.T) {
	t.Parallel()

	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/all_songs", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Empty(t, r.URL.RawQuery)

		_, _ = w.Write([]byte(`[
			{"track_id":"1","track_name":"Yesterday","track_artist":"Beatles"},
			{"track_id":"2","track_name":"Let It Be","track_artist":"Beatles"}
		]`))
	})

	catalog, err := client.AllSongs(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, domain.Song{TrackID: "1", TrackName: "Yesterday", TrackArtist: "Beatles"}, catalog[0])
	assert.Equal(t, "Let It Be", catalog[1].TrackName)
}

func TestAllSongsNonArrayBody(t *testing.T) {
	t.Parallel()

	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"songs": []}`))
	})

	catalog, err := client.AllSongs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, catalog)
}

func TestAllSongsServerError(t *testing.T) {
	t.Parallel()

	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"database offline"}`))
	})

	catalog, err := client.AllSongs(context.Background())
	require.Error(t, err)
	assert.Nil(t, catalog)
	assert.Contains(t, err.Error(), "database offline")
}

func TestAllSongsMalformed(t *testing.T) {
	t.Parallel()

	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"track_id": 1,`))
	})

	_, err := client.AllSongs(context.Background())
	require.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestRecommendEscapesTerm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		term        string
		wantEscaped string
		wantPath    string
	}{
		{name: "spaces", term: "Shape of You", wantEscaped: "/recommend/Shape%20of%20You", wantPath: "/recommend/Shape of You"},
		{name: "slash", term: "AC/DC", wantEscaped: "/recommend/AC%2FDC", wantPath: "/recommend/AC/DC"},
		{name: "accents", term: "Água", wantEscaped: "/recommend/%C3%81gua", wantPath: "/recommend/Água"},
		{name: "question mark", term: "Why?", wantEscaped: "/recommend/Why%3F", wantPath: "/recommend/Why?"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, testCase.wantEscaped, r.URL.EscapedPath())
				assert.Equal(t, testCase.wantPath, r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Accept"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				_, _ = w.Write([]byte(`[]`))
			})

			songs, err := client.Recommend(context.Background(), testCase.term)
			require.NoError(t, err)
			assert.Empty(t, songs)
		})
	}
}

func TestRecommendPreservesOrder(t *testing.T) {
	t.Parallel()

	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"track_id":"c","track_name":"C","track_artist":"x"},
			{"track_id":"a","track_name":"A","track_artist":"y"},
			{"track_id":"b","track_name":"B","track_artist":"z"}
		]`))
	})

	songs, err := client.Recommend(context.Background(), "anything")
	require.NoError(t, err)

	ids := []string{songs[0].TrackID, songs[1].TrackID, songs[2].TrackID}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestRecommendFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantStatus  int
		unavailable bool
	}{
		{
			name:        "not found with message",
			status:      http.StatusNotFound,
			body:        `{"error":"Música não encontrada. Tente outra!"}`,
			wantMessage: "Música não encontrada. Tente outra!",
			wantStatus:  http.StatusNotFound,
		},
		{
			name:        "server error with custom message",
			status:      http.StatusInternalServerError,
			body:        `{"error":"model not loaded"}`,
			wantMessage: "model not loaded",
			wantStatus:  http.StatusInternalServerError,
		},
		{
			name:        "no error field",
			status:      http.StatusNotFound,
			body:        `{}`,
			wantMessage: domain.FallbackNotFoundMessage,
			wantStatus:  http.StatusNotFound,
		},
		{
			name:        "html body",
			status:      http.StatusBadGateway,
			body:        `<html>bad gateway</html>`,
			wantMessage: domain.FallbackNotFoundMessage,
			wantStatus:  http.StatusBadGateway,
			unavailable: true,
		},
		{
			name:        "service unavailable keeps the service message",
			status:      http.StatusServiceUnavailable,
			body:        `{"error":"down for maintenance"}`,
			wantMessage: "down for maintenance",
			wantStatus:  http.StatusServiceUnavailable,
			unavailable: true,
		},
		{
			name:        "gateway timeout",
			status:      http.StatusGatewayTimeout,
			wantMessage: domain.FallbackNotFoundMessage,
			wantStatus:  http.StatusGatewayTimeout,
			unavailable: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(testCase.status)
				_, _ = w.Write([]byte(testCase.body))
			})

			songs, err := client.Recommend(context.Background(), "Shape of You")
			require.Error(t, err)
			assert.Nil(t, songs)
			assert.Equal(t, testCase.wantMessage, err.Error())

			var serviceErr *domain.ServiceError
			require.ErrorAs(t, err, &serviceErr)
			assert.Equal(t, testCase.wantStatus, serviceErr.Status)
			assert.Equal(t, testCase.unavailable, errors.Is(err, domain.ErrServiceUnavailable))
		})
	}
}

func TestRecommendMalformedSuccessBody(t *testing.T) {
	t.Parallel()

	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	})

	_, err := client.Recommend(context.Background(), "term")
	require.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestRecommendEmptyTermIssuesNoRequest(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`[]`))
	})

	for _, term := range []string{"", "   ", "\t\n"} {
		_, err := client.Recommend(context.Background(), term)
		require.ErrorIs(t, err, domain.ErrEmptyTerm)
	}

	assert.Zero(t, calls.Load())
}

func TestRecommendNetworkFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client := NewHTTPClient(server.URL, time.Second)
	server.Close()

	_, err := client.Recommend(context.Background(), "term")
	require.ErrorIs(t, err, domain.ErrNetworkFailure)
}

func TestRecommendHonoursContext(t *testing.T) {
	t.Parallel()

	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Recommend(ctx, "term")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNetworkFailure))
}
