// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

package rerank

import (
	"context"
	"errors"
	"io"
	"math"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

// mockEmbedder returns canned vectors or a canned error.
type mockEmbedder struct {
	vectors [][]float64
	err     error
	calls   int
}

func (m *mockEmbedder) Embed(_ context.Context, texts []string) ([][]float64, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.vectors, nil
}

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func threeCandidates() []Candidate {
	return []Candidate{
		{ID: "a", Text: "candidate a", RuleScore: 90},
		{ID: "b", Text: "candidate b", RuleScore: 70},
		{ID: "c", Text: "candidate c", RuleScore: 50},
	}
}

func TestRerankTooFewCandidates(t *testing.T) {
	embedder := &mockEmbedder{}
	client := NewClient(embedder, testLogger())

	tests := []struct {
		name       string
		candidates []Candidate
		wantIDs    []string
	}{
		{"empty", nil, []string{}},
		{"single", []Candidate{{ID: "only"}}, []string{"only"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := client.Rerank(context.Background(), "taste", tt.candidates)

			if outcome.UsedEmbeddings {
				t.Error("embeddings must not be used below 2 candidates")
			}
			if outcome.Reason != ReasonTooFewCandidates {
				t.Errorf("reason = %q, want %q", outcome.Reason, ReasonTooFewCandidates)
			}
			if !reflect.DeepEqual(outcome.OrderedIDs, tt.wantIDs) {
				t.Errorf("ordered IDs = %v, want %v", outcome.OrderedIDs, tt.wantIDs)
			}
			if embedder.calls != 0 {
				t.Error("embedder must not be called")
			}
		})
	}
}

func TestRerankUpstreamFailureFallsBack(t *testing.T) {
	embedder := &mockEmbedder{err: errors.New("boom")}
	client := NewClient(embedder, testLogger())

	outcome := client.Rerank(context.Background(), "taste", threeCandidates())

	if outcome.UsedEmbeddings {
		t.Error("failed embed must not report embeddings used")
	}
	if outcome.Reason != ReasonUpstreamFailure {
		t.Errorf("reason = %q, want %q", outcome.Reason, ReasonUpstreamFailure)
	}
	if !reflect.DeepEqual(outcome.OrderedIDs, []string{"a", "b", "c"}) {
		t.Errorf("order = %v, want original", outcome.OrderedIDs)
	}
}

func TestRerankMissingCredentials(t *testing.T) {
	embedder := &mockEmbedder{err: ErrNoCredentials}
	client := NewClient(embedder, testLogger())

	outcome := client.Rerank(context.Background(), "taste", threeCandidates())

	if outcome.Reason != ReasonNoCredentials {
		t.Errorf("reason = %q, want %q", outcome.Reason, ReasonNoCredentials)
	}
	if outcome.UsedEmbeddings {
		t.Error("missing credentials must fall back")
	}
}

func TestRerankVectorCountMismatch(t *testing.T) {
	// 3 candidates need 4 vectors; return 3.
	embedder := &mockEmbedder{vectors: [][]float64{{1, 0}, {1, 0}, {1, 0}}}
	client := NewClient(embedder, testLogger())

	outcome := client.Rerank(context.Background(), "taste", threeCandidates())

	if outcome.UsedEmbeddings {
		t.Error("short response must fall back")
	}
	if outcome.Reason != ReasonVectorMismatch {
		t.Errorf("reason = %q, want %q", outcome.Reason, ReasonVectorMismatch)
	}
	if !reflect.DeepEqual(outcome.OrderedIDs, []string{"a", "b", "c"}) {
		t.Errorf("order = %v, want original", outcome.OrderedIDs)
	}
}

// Hand-computed blend: taste (1,0); a is orthogonal with top rule score,
// c is identical with bottom rule score. Similarity dominates at 0.6.
func TestRerankBlendedOrder(t *testing.T) {
	embedder := &mockEmbedder{vectors: [][]float64{
		{1, 0}, // taste
		{0, 1}, // a: cos 0  -> sim 0.5; rule 90 -> norm 1.0; blend 0.70
		{1, 1}, // b: cos ~0.707 -> sim ~0.854; rule 70 -> 0.5; blend ~0.712
		{1, 0}, // c: cos 1  -> sim 1.0; rule 50 -> 0.0; blend 0.60
	}}
	client := NewClient(embedder, testLogger())

	outcome := client.Rerank(context.Background(), "taste", threeCandidates())

	if !outcome.UsedEmbeddings {
		t.Fatalf("expected embeddings used, reason=%q", outcome.Reason)
	}
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(outcome.OrderedIDs, want) {
		t.Errorf("order = %v, want %v", outcome.OrderedIDs, want)
	}
}

func TestRerankDeterministicWithFixedVectors(t *testing.T) {
	embedder := &mockEmbedder{vectors: [][]float64{
		{1, 0}, {0.9, 0.1}, {0.5, 0.5}, {0.1, 0.9},
	}}
	client := NewClient(embedder, testLogger())

	first := client.Rerank(context.Background(), "taste", threeCandidates())
	for i := 0; i < 10; i++ {
		again := client.Rerank(context.Background(), "taste", threeCandidates())
		if !reflect.DeepEqual(again.OrderedIDs, first.OrderedIDs) {
			t.Fatal("rerank must be deterministic for fixed vectors")
		}
	}
}

func TestRerankEqualScoresPreserveOrderOnTies(t *testing.T) {
	// Identical vectors and identical rule scores: everything ties, the
	// stable sort must preserve input order.
	embedder := &mockEmbedder{vectors: [][]float64{
		{1, 0}, {1, 0}, {1, 0}, {1, 0},
	}}
	client := NewClient(embedder, testLogger())

	candidates := []Candidate{
		{ID: "x", RuleScore: 60}, {ID: "y", RuleScore: 60}, {ID: "z", RuleScore: 60},
	}
	outcome := client.Rerank(context.Background(), "taste", candidates)

	if !outcome.UsedEmbeddings {
		t.Fatalf("expected embeddings used, reason=%q", outcome.Reason)
	}
	if !reflect.DeepEqual(outcome.OrderedIDs, []string{"x", "y", "z"}) {
		t.Errorf("tied order = %v, want input order", outcome.OrderedIDs)
	}
}

func TestNormalizeRuleScores(t *testing.T) {
	t.Run("spread", func(t *testing.T) {
		got := normalizeRuleScores(threeCandidates())
		want := []float64{1, 0.5, 0}
		for i := range want {
			if math.Abs(got[i]-want[i]) > 1e-9 {
				t.Errorf("norm[%d] = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("all equal", func(t *testing.T) {
		candidates := []Candidate{{RuleScore: 42}, {RuleScore: 42}}
		got := normalizeRuleScores(candidates)
		if got[0] != 0.5 || got[1] != 0.5 {
			t.Errorf("equal scores must normalize to 0.5, got %v", got)
		}
	})
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2}, []float64{1, 2}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1},
		{"length mismatch", []float64{1}, []float64{1, 0}, 0},
		{"zero vector", []float64{0, 0}, []float64{1, 0}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cosineSimilarity(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("cosine = %v, want %v", got, tt.want)
			}
		})
	}
}
