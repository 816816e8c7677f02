// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

package api

import (
	"net/http"
	"time"

	"github.com/stylescout/stylescout/internal/match"
	"github.com/stylescout/stylescout/internal/metrics"
	"github.com/stylescout/stylescout/internal/rerank"
)

// handleMatch runs the rule-based pipeline only and returns the full
// ranked list with scores and explanations.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	rw := newResponseWriter(w, r)

	var req PreferencesRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		rw.ValidationFailed(err.Error(), validationDetails(err))
		return
	}

	prefs := req.toPreferences()
	if req.UseFeedback {
		s.attachFeedback(&prefs)
	}

	results := s.runMatch(prefs)
	rw.Success(DiscoverResponse{Results: results})
}

// handleDiscover runs the full flow: rule-based match, optional
// semantic rerank over the top candidates, page-size truncation.
// Rerank degradation never fails the request.
func (s *Server) handleDiscover(w http.ResponseWriter, r *http.Request) {
	rw := newResponseWriter(w, r)

	var req DiscoverRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		rw.ValidationFailed(err.Error(), validationDetails(err))
		return
	}

	prefs := req.toPreferences()
	if req.UseFeedback {
		s.attachFeedback(&prefs)
	}

	start := time.Now()
	matched := s.engine.Match(s.products, prefs)
	metrics.RecordMatch(time.Since(start), len(matched))

	if len(matched) > maxDiscoverLimit {
		matched = matched[:maxDiscoverLimit]
	}

	outcome := rerank.Outcome{UsedEmbeddings: false}
	if s.rerankEnabled(req.Rerank) {
		rerankStart := time.Now()
		matched, outcome = s.reranker.RerankProducts(r.Context(), matched, &prefs)
		metrics.RecordRerank(rerankOutcomeLabel(outcome), time.Since(rerankStart))
	}

	limit := s.cfg.Limits.PageSize
	if req.Limit > 0 {
		limit = req.Limit
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}

	results := make([]MatchResult, len(matched))
	for i := range matched {
		results[i] = MatchResult{
			Product:     matched[i].Product,
			MatchScore:  matched[i].MatchScore,
			Explanation: match.Explain(&matched[i].Product, &prefs),
		}
	}

	rw.Success(DiscoverResponse{
		Results:        results,
		UsedEmbeddings: outcome.UsedEmbeddings,
		RerankReason:   outcome.Reason,
	})
}

// handleRerank exposes the rerank pass on pre-scored candidates. Soft
// failures (missing credentials, upstream errors) still return HTTP
// 200 with usedEmbeddings false; only invalid input is a 4xx.
func (s *Server) handleRerank(w http.ResponseWriter, r *http.Request) {
	rw := newResponseWriter(w, r)

	var req RerankRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		rw.ValidationFailed(err.Error(), validationDetails(err))
		return
	}

	start := time.Now()
	outcome := s.reranker.Rerank(r.Context(), req.UserText, req.Candidates)
	metrics.RecordRerank(rerankOutcomeLabel(outcome), time.Since(start))

	rw.Success(RerankResponse{
		OrderedIDs:     outcome.OrderedIDs,
		UsedEmbeddings: outcome.UsedEmbeddings,
		Reason:         outcome.Reason,
	})
}

// runMatch executes the engine and decorates results with explanations.
func (s *Server) runMatch(prefs match.Preferences) []MatchResult {
	start := time.Now()
	matched := s.engine.Match(s.products, prefs)
	metrics.RecordMatch(time.Since(start), len(matched))

	results := make([]MatchResult, len(matched))
	for i := range matched {
		results[i] = MatchResult{
			Product:     matched[i].Product,
			MatchScore:  matched[i].MatchScore,
			Explanation: match.Explain(&matched[i].Product, &prefs),
		}
	}
	return results
}

// attachFeedback loads the stored model onto the profile. Persistence
// problems only disable the boost; they never fail the request.
func (s *Server) attachFeedback(prefs *match.Preferences) {
	model, err := s.feedbackLog.Model()
	if err != nil {
		s.logger.Warn().Err(err).Msg("feedback model unavailable, ranking without boost")
		return
	}
	prefs.Feedback = model
}

// rerankEnabled resolves the per-request override against the
// configured default.
func (s *Server) rerankEnabled(override *bool) bool {
	if override != nil {
		return *override
	}
	return s.cfg.Rerank.Enabled
}

func rerankOutcomeLabel(outcome rerank.Outcome) string {
	if outcome.UsedEmbeddings {
		return "embeddings"
	}
	return outcome.Reason
}
