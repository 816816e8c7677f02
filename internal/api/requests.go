// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/stylescout/stylescout/internal/catalog"
	"github.com/stylescout/stylescout/internal/feedback"
	"github.com/stylescout/stylescout/internal/match"
	"github.com/stylescout/stylescout/internal/rerank"
)

// maxRequestBody caps request bodies at 1 MiB. The largest legitimate
// payload is a rerank request for a full page of candidates.
const maxRequestBody = 1 << 20

// PreferencesRequest is the wire form of a preference profile.
type PreferencesRequest struct {
	Gender       string            `json:"gender" validate:"omitempty,oneof=mens womens unisex"`
	Categories   []string          `json:"categories" validate:"dive,required"`
	Styles       []string          `json:"styles" validate:"dive,required"`
	Brands       []string          `json:"brands"`
	Budget       float64           `json:"budget"`
	StrictBrands bool              `json:"strictBrands"`
	Occasion     string            `json:"occasion"`
	Sizes        map[string]string `json:"sizes"`
	MaxStores    int               `json:"maxStores"`
	Negatives    []string          `json:"negatives" validate:"dive,oneof=no-bright-colors no-slim-fit"`

	// UseFeedback applies the stored behavioral model to the ranking.
	UseFeedback bool `json:"useFeedback"`
}

// toPreferences converts the wire form into the engine's profile.
// Unknown categories are dropped rather than rejected; a negative
// budget or store count is clamped by the engine.
func (r *PreferencesRequest) toPreferences() match.Preferences {
	categories := make([]catalog.Category, 0, len(r.Categories))
	for _, c := range r.Categories {
		category := catalog.Category(c)
		if category.Valid() {
			categories = append(categories, category)
		}
	}

	negatives := make([]match.Negative, 0, len(r.Negatives))
	for _, n := range r.Negatives {
		negatives = append(negatives, match.Negative(n))
	}

	return match.Preferences{
		Gender:       catalog.Gender(r.Gender),
		Categories:   categories,
		Styles:       r.Styles,
		Brands:       r.Brands,
		Budget:       r.Budget,
		StrictBrands: r.StrictBrands,
		Occasion:     r.Occasion,
		Sizes:        r.Sizes,
		MaxStores:    r.MaxStores,
		Negatives:    negatives,
	}
}

// maxDiscoverLimit bounds the page size a caller may request, and the
// size of the candidate pool handed to the reranker.
const maxDiscoverLimit = 30

// DiscoverRequest extends the preference profile with per-request
// controls for the discover flow.
type DiscoverRequest struct {
	PreferencesRequest

	// Rerank overrides the configured rerank gate for this request.
	Rerank *bool `json:"rerank"`

	// Limit is the page size. Zero means the configured default.
	Limit int `json:"limit" validate:"omitempty,min=1,max=30"`
}

// RerankRequest is the wire contract of the rerank endpoint.
type RerankRequest struct {
	UserText   string             `json:"userText" validate:"required"`
	Candidates []rerank.Candidate `json:"candidates" validate:"required,min=1,dive"`
}

// RerankResponse is the rerank endpoint's payload.
type RerankResponse struct {
	OrderedIDs     []string `json:"orderedIds"`
	UsedEmbeddings bool     `json:"usedEmbeddings"`
	Reason         string   `json:"reason,omitempty"`
}

// FeedbackEventRequest records one user interaction.
type FeedbackEventRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=view save purchase handoff_open"`
}

// MatchResult is the wire form of one matched product.
type MatchResult struct {
	catalog.Product

	MatchScore  int    `json:"match_score"`
	Explanation string `json:"explanation"`
}

// DiscoverResponse is the discover endpoint's payload.
type DiscoverResponse struct {
	Results        []MatchResult `json:"results"`
	UsedEmbeddings bool          `json:"used_embeddings"`
	RerankReason   string        `json:"rerank_reason,omitempty"`
}

// FeedbackModelResponse exposes the rebuilt affinity model.
type FeedbackModelResponse struct {
	Model      *feedback.Model `json:"model"`
	EventCount int             `json:"event_count"`
}

// decodeJSON decodes and validates a request body into dst. Returns a
// client-facing error message when the body is unusable.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("malformed request body: %w", err)
	}

	if err := s.validate.Struct(dst); err != nil {
		return err
	}
	return nil
}

// validationDetails converts validator errors into a per-field map.
func validationDetails(err error) interface{} {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return nil
	}

	details := make(map[string]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		details[fe.Field()] = fe.Tag()
	}
	return details
}

// eventFromRequest denormalizes a catalog product into a feedback
// event at record time.
func eventFromRequest(req *FeedbackEventRequest, p *catalog.Product) feedback.Event {
	return feedback.Event{
		ProductID: p.ID,
		Brand:     p.BrandKey(),
		Store:     p.Store.ID,
		Category:  string(p.Category),
		TopStyles: p.TopStyles(2),
		Type:      feedback.EventType(req.Type),
		Timestamp: time.Now().UTC(),
	}
}
