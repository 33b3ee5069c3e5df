// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

// Package network implements domain.SongService over HTTP.
package network

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/giovanamalaia/soundmatch/internal/domain"
)

// DefaultBaseURL is the address of the public recommendation service.
const DefaultBaseURL = "https://giovanamalaia.pythonanywhere.com"

// DefaultTimeout is the request timeout used when none is configured. Zero
// means requests end only when their context does.
const DefaultTimeout time.Duration = 0

const (
	allSongsPath  = "/all_songs"
	recommendPath = "/recommend/"
	maxBodyBytes  = 32 << 20
)

// HTTPClient implements domain.SongService interface.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a new HTTP client with timeout against baseURL.
// An empty baseURL selects DefaultBaseURL.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return NewHTTPClientWith(baseURL, &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
		},
	})
}

// NewHTTPClientWith wraps an existing *http.Client.
func NewHTTPClientWith(baseURL string, client *http.Client) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// BaseURL returns the service address requests are sent to.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// AllSongs fetches the complete catalog. A 2xx body that is not a JSON array
// yields an empty catalog.
func (c *HTTPClient) AllSongs(ctx context.Context) (domain.Catalog, error) {
	status, body, err := c.get(ctx, c.baseURL+allSongsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	if !isSuccess(status) {
		return nil, fmt.Errorf("failed to fetch catalog: %w", decodeServiceError(status, body))
	}

	if !isJSONArray(body) {
		return domain.Catalog{}, nil
	}

	var catalog domain.Catalog
	if err := json.Unmarshal(body, &catalog); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w: %v", domain.ErrMalformedResponse, err)
	}

	return catalog, nil
}

// Recommend asks the service for songs similar to term.
func (c *HTTPClient) Recommend(ctx context.Context, term string) ([]domain.Song, error) {
	if strings.TrimSpace(term) == "" {
		return nil, domain.ErrEmptyTerm
	}

	status, body, err := c.get(ctx, c.baseURL+recommendPath+url.PathEscape(term))
	if err != nil {
		return nil, err
	}

	if !isSuccess(status) {
		return nil, decodeServiceError(status, body)
	}

	var songs []domain.Song
	if err := json.Unmarshal(body, &songs); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	if songs == nil {
		songs = []domain.Song{}
	}

	return songs, nil
}

func (c *HTTPClient) get(ctx context.Context, target string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", domain.ErrNetworkFailure, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%w: reading body: %w", domain.ErrNetworkFailure, err)
	}

	return resp.StatusCode, body, nil
}

// decodeServiceError extracts the "error" field of a failure body. Bodies that
// are not JSON objects fall back to the default message. Gateway and
// availability statuses are marked with domain.ErrServiceUnavailable.
func decodeServiceError(status int, body []byte) *domain.ServiceError {
	var payload struct {
		Error string `json:"error"`
	}

	_ = json.Unmarshal(body, &payload)

	serviceErr := domain.NewServiceError(status, payload.Error)

	switch status {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		serviceErr.Err = domain.ErrServiceUnavailable
	}

	return serviceErr
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

func isJSONArray(body []byte) bool {
	trimmed := bytes.TrimSpace(body)

	return len(trimmed) > 0 && trimmed[0] == '['
}
