// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

// Package rerank refines the rule-based order with semantic similarity
// from an external embedding endpoint. The client never fails: every
// error path degrades to the original order, reported through the
// outcome's UsedEmbeddings flag and Reason string.
package rerank

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/stylescout/stylescout/internal/match"
)

// Blend weights between semantic similarity and the rule score.
const (
	similarityWeight = 0.6
	ruleWeight       = 0.4
)

// Fallback reasons reported when embeddings were not used.
const (
	ReasonTooFewCandidates = "too_few_candidates"
	ReasonNoCredentials    = "missing_credentials"
	ReasonUpstreamFailure  = "upstream_failure"
	ReasonVectorMismatch   = "vector_count_mismatch"
)

// Candidate pairs an identifier and descriptive text with the
// rule-based score used as a prior.
type Candidate struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	RuleScore float64 `json:"ruleScore"`
}

// Outcome reports the reranked order and whether embeddings were used.
// Reason is set only on fallback paths, for observability; callers
// branch on UsedEmbeddings, never on errors.
type Outcome struct {
	OrderedIDs     []string
	UsedEmbeddings bool
	Reason         string
}

// Client performs the semantic rerank pass.
type Client struct {
	embedder Embedder
	logger   zerolog.Logger
}

// NewClient creates a rerank client over the given embedder.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewClient(embedder Embedder, logger zerolog.Logger) *Client {
	return &Client{
		embedder: embedder,
		logger:   logger.With().Str("component", "rerank").Logger(),
	}
}

// Rerank orders candidates by a blend of embedding similarity to the
// user taste text and the normalized rule score. All failures resolve
// to the original order; Rerank never returns an error.
func (c *Client) Rerank(ctx context.Context, userText string, candidates []Candidate) Outcome {
	original := candidateIDs(candidates)

	if len(candidates) < 2 {
		return Outcome{OrderedIDs: original, UsedEmbeddings: false, Reason: ReasonTooFewCandidates}
	}

	texts := make([]string, 0, len(candidates)+1)
	texts = append(texts, userText)
	for i := range candidates {
		texts = append(texts, candidates[i].Text)
	}

	vectors, err := c.embedder.Embed(ctx, texts)
	if err != nil {
		reason := ReasonUpstreamFailure
		if errors.Is(err, ErrNoCredentials) {
			reason = ReasonNoCredentials
		}
		c.logger.Warn().Err(err).Str("reason", reason).Msg("rerank falling back to rule order")
		return Outcome{OrderedIDs: original, UsedEmbeddings: false, Reason: reason}
	}

	if len(vectors) != len(candidates)+1 {
		c.logger.Warn().
			Int("got", len(vectors)).
			Int("want", len(candidates)+1).
			Msg("embedding vector count mismatch")
		return Outcome{OrderedIDs: original, UsedEmbeddings: false, Reason: ReasonVectorMismatch}
	}

	taste := vectors[0]
	normRule := normalizeRuleScores(candidates)

	type ranked struct {
		id    string
		score float64
	}
	scored := make([]ranked, len(candidates))
	for i := range candidates {
		similarity := (cosineSimilarity(taste, vectors[i+1]) + 1) / 2
		scored[i] = ranked{
			id:    candidates[i].ID,
			score: similarityWeight*similarity + ruleWeight*normRule[i],
		}
	}

	// Stable preserves input order on exact ties.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ordered := make([]string, len(scored))
	for i := range scored {
		ordered[i] = scored[i].id
	}
	return Outcome{OrderedIDs: ordered, UsedEmbeddings: true}
}

// RerankProducts reranks matched products against a preference profile,
// returning them reordered. A convenience wrapper used by the discover
// flow; the endpoint-level contract goes through Rerank directly.
func (c *Client) RerankProducts(ctx context.Context, results []match.Result, prefs *match.Preferences) ([]match.Result, Outcome) {
	candidates := make([]Candidate, len(results))
	for i := range results {
		candidates[i] = Candidate{
			ID:        results[i].ID,
			Text:      CandidateText(&results[i].Product),
			RuleScore: float64(results[i].MatchScore),
		}
	}

	outcome := c.Rerank(ctx, TasteText(prefs), candidates)

	byID := make(map[string]int, len(results))
	for i := range results {
		byID[results[i].ID] = i
	}
	reordered := make([]match.Result, 0, len(results))
	for _, id := range outcome.OrderedIDs {
		if idx, ok := byID[id]; ok {
			reordered = append(reordered, results[idx])
		}
	}
	return reordered, outcome
}

// normalizeRuleScores min-max scales rule scores to [0,1]. When every
// score is equal, all items get 0.5 so no candidate is favored.
func normalizeRuleScores(candidates []Candidate) []float64 {
	minScore := math.Inf(1)
	maxScore := math.Inf(-1)
	for i := range candidates {
		minScore = math.Min(minScore, candidates[i].RuleScore)
		maxScore = math.Max(maxScore, candidates[i].RuleScore)
	}

	out := make([]float64, len(candidates))
	if maxScore == minScore {
		for i := range out {
			out[i] = 0.5
		}
		return out
	}
	for i := range candidates {
		out[i] = (candidates[i].RuleScore - minScore) / (maxScore - minScore)
	}
	return out
}

// cosineSimilarity computes the cosine of the angle between two
// vectors. Mismatched lengths or zero vectors yield 0.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func candidateIDs(candidates []Candidate) []string {
	ids := make([]string, len(candidates))
	for i := range candidates {
		ids[i] = candidates[i].ID
	}
	return ids
}
