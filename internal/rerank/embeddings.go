// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

package rerank

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/stylescout/stylescout/internal/metrics"
)

// Embedder turns a batch of texts into one vector per text, in order.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

// EmbeddingConfig configures the external embedding endpoint. The wire
// format is the OpenAI embeddings API shape.
type EmbeddingConfig struct {
	// BaseURL of the embedding service, without trailing slash.
	BaseURL string `koanf:"base_url"`

	// APIKey authorizes requests. Empty disables embedding entirely;
	// the rerank client falls back without attempting a call.
	APIKey string `koanf:"api_key"`

	// Model identifier sent with each request.
	Model string `koanf:"model"`

	// Timeout bounds the single embedding request.
	Timeout time.Duration `koanf:"timeout"`
}

// DefaultEmbeddingConfig returns production defaults.
func DefaultEmbeddingConfig() EmbeddingConfig {
	return EmbeddingConfig{
		BaseURL: "https://api.openai.com/v1",
		Model:   "text-embedding-3-small",
		Timeout: 10 * time.Second,
	}
}

// ErrNoCredentials is returned when no API key is configured.
var ErrNoCredentials = errors.New("embedding credentials not configured")

// HTTPEmbedder calls an OpenAI-compatible embeddings endpoint. A
// circuit breaker short-circuits calls while the upstream is failing;
// a single attempt is made per request, never retried.
type HTTPEmbedder struct {
	cfg     EmbeddingConfig
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[[][]float64]
	logger  zerolog.Logger
}

// NewHTTPEmbedder creates an embedder for the configured endpoint.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewHTTPEmbedder(cfg EmbeddingConfig, logger zerolog.Logger) *HTTPEmbedder {
	componentLogger := logger.With().Str("component", "embedder").Logger()

	breaker := gobreaker.NewCircuitBreaker[[][]float64](gobreaker.Settings{
		Name:        "embedding-api",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			componentLogger.Info().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
		},
	})

	return &HTTPEmbedder{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		breaker: breaker,
		logger:  componentLogger,
	}
}

// embeddingRequest is the OpenAI-compatible request body.
type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

// embeddingResponse is the OpenAI-compatible response body.
type embeddingResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

// Embed submits all texts in one request and returns one vector per
// input text, in input order.
func (e *HTTPEmbedder) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	if e.cfg.APIKey == "" {
		return nil, ErrNoCredentials
	}

	return e.breaker.Execute(func() ([][]float64, error) {
		return e.embed(ctx, texts)
	})
}

func (e *HTTPEmbedder) embed(ctx context.Context, texts []string) ([][]float64, error) {
	body, err := json.Marshal(embeddingRequest{Model: e.cfg.Model, Input: texts})
	if err != nil {
		return nil, fmt.Errorf("marshal embedding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		e.cfg.BaseURL+"/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build embedding request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.cfg.APIKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embedding request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("embedding endpoint returned status %d", resp.StatusCode)
	}

	var parsed embeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode embedding response: %w", err)
	}

	vectors := make([][]float64, len(texts))
	for _, item := range parsed.Data {
		if item.Index < 0 || item.Index >= len(texts) {
			return nil, fmt.Errorf("embedding index %d out of range", item.Index)
		}
		vectors[item.Index] = item.Embedding
	}
	for i, v := range vectors {
		if len(v) == 0 {
			return nil, fmt.Errorf("missing embedding for input %d", i)
		}
	}

	return vectors, nil
}

func breakerStateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 2
	}
}

var _ Embedder = (*HTTPEmbedder)(nil)
