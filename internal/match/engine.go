// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

package match

import (
	"math"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/stylescout/stylescout/internal/catalog"
)

// Scoring constants. The base plus the bounded components keeps
// plausible scores roughly within 0-100; the feedback boost is
// deliberately unbounded.
const (
	baseScore = 35

	styleWeight       = 35.0
	weakStyleCutoff   = 45.0
	weakStylePenalty  = 18.0
	occasionWeight    = 15.0
	budgetInBase      = 18.0
	budgetInRatio     = 12.0
	budgetNearBonus   = 10.0
	budgetStretchMax  = 4.0
	budgetOverPenalty = 15.0
	brandBonus        = 15.0

	// Confidence thresholds applied after scoring.
	minScoreWithStyles = 50
	minScoreNoStyles   = 40

	// DefaultMaxStores caps distinct retailer handoffs when the caller
	// does not ask for a specific limit.
	DefaultMaxStores = 3
)

// Engine ranks catalog products against a preference profile.
type Engine struct {
	logger zerolog.Logger
}

// NewEngine creates a match engine.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(logger zerolog.Logger) *Engine {
	return &Engine{logger: logger.With().Str("component", "match").Logger()}
}

// Match runs the full pipeline: hard filter, score, stable sort,
// confidence threshold with category diversification, store limit.
// Deterministic for fixed inputs and free of side effects. A negative
// budget is clamped to zero rather than rejected.
func (e *Engine) Match(products []catalog.Product, prefs Preferences) []Result {
	if prefs.Budget < 0 {
		e.logger.Warn().Float64("budget", prefs.Budget).Msg("negative budget clamped to zero")
		prefs.Budget = 0
	}
	if prefs.MaxStores < 0 {
		// Mirrors limitStores: a nonsense request still opens one store.
		prefs.MaxStores = 1
	}

	filtered := e.hardFilter(products, &prefs)

	scored := make([]Result, 0, len(filtered))
	for i := range filtered {
		scored = append(scored, Result{
			Product:    filtered[i],
			MatchScore: e.score(&filtered[i], &prefs),
		})
	}

	// Stable keeps catalog order on equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	diversified := diversify(scored, &prefs)
	limited := limitStores(diversified, prefs.MaxStores)

	e.logger.Debug().
		Int("candidates", len(products)).
		Int("filtered", len(filtered)).
		Int("returned", len(limited)).
		Msg("match pipeline complete")

	return limited
}

// hardFilter applies the conjunctive exclusion predicates.
func (e *Engine) hardFilter(products []catalog.Product, prefs *Preferences) []catalog.Product {
	noBright := prefs.HasNegative(NegativeNoBrightColors)
	noSlim := prefs.HasNegative(NegativeNoSlimFit)

	kept := make([]catalog.Product, 0, len(products))
	for i := range products {
		p := &products[i]

		if prefs.Gender != "" && p.Gender != catalog.GenderUnisex && p.Gender != prefs.Gender {
			continue
		}
		if len(prefs.Categories) > 0 && !containsCategory(prefs.Categories, p.Category) {
			continue
		}
		if prefs.StrictBrands && len(prefs.Brands) > 0 && !containsString(prefs.Brands, p.BrandKey()) {
			continue
		}
		if noBright && hasBrightColorName(p.Name) {
			continue
		}
		if noSlim && containsString(p.Metadata.FitTags, "slim") {
			continue
		}

		kept = append(kept, *p)
	}
	return kept
}

// score computes the rule score for one filtered product.
func (e *Engine) score(p *catalog.Product, prefs *Preferences) int {
	score := float64(baseScore)

	if len(prefs.Styles) > 0 {
		mean := meanStyleScore(p, prefs.Styles)
		score += (mean / 100) * styleWeight
		if mean < weakStyleCutoff {
			score -= weakStylePenalty
		}
	}

	if boostStyles, ok := occasionStyleBoost[prefs.Occasion]; ok && prefs.Occasion != "" {
		mean := meanStyleScore(p, boostStyles)
		score += (mean / 100) * occasionWeight
	}

	switch {
	case p.Price <= prefs.Budget:
		ratio := p.Price / math.Max(prefs.Budget, 1)
		score += budgetInBase + ratio*budgetInRatio
	case p.Price <= prefs.Budget*1.2:
		score += budgetNearBonus
	case p.Price <= prefs.Budget*1.5:
		score += budgetStretchMax
	default:
		score -= budgetOverPenalty
	}

	if len(prefs.Brands) > 0 && !prefs.StrictBrands && containsString(prefs.Brands, p.BrandKey()) {
		score += brandBonus
	}

	if fb := prefs.Feedback; fb != nil {
		for _, style := range p.TopStyles(2) {
			score += fb.StyleAffinity[style]
		}
		score += fb.BrandAffinity[p.BrandKey()]
		score += fb.StoreAffinity[p.Store.ID]
		score += fb.CategoryAffinity[string(p.Category)]
	}

	return int(math.Round(score))
}

// diversify applies the confidence threshold and surfaces one
// high-confidence item per selected category, in selection order,
// before pure score order takes over.
func diversify(scored []Result, prefs *Preferences) []Result {
	minScore := minScoreNoStyles
	if len(prefs.Styles) > 0 {
		minScore = minScoreWithStyles
	}

	high := make([]Result, 0, len(scored))
	for i := range scored {
		if scored[i].MatchScore >= minScore {
			high = append(high, scored[i])
		}
	}

	out := make([]Result, 0, len(high))
	used := make(map[string]bool, len(high))

	for _, category := range prefs.Categories {
		for i := range high {
			if high[i].Category == category && !used[high[i].ID] {
				out = append(out, high[i])
				used[high[i].ID] = true
				break
			}
		}
	}

	for i := range high {
		if !used[high[i].ID] {
			out = append(out, high[i])
			used[high[i].ID] = true
		}
	}

	return out
}

// limitStores caps the number of distinct stores. Items belonging to a
// store that is already open are never dropped.
func limitStores(results []Result, requested int) []Result {
	maxStores := requested
	if maxStores == 0 {
		maxStores = DefaultMaxStores
	}
	if maxStores < 1 {
		maxStores = 1
	}

	out := make([]Result, 0, len(results))
	opened := make(map[string]bool, maxStores)

	for i := range results {
		storeID := results[i].Store.ID
		if opened[storeID] {
			out = append(out, results[i])
			continue
		}
		if len(opened) < maxStores {
			opened[storeID] = true
			out = append(out, results[i])
		}
	}

	return out
}

// meanStyleScore averages the product's scores over the given styles,
// treating missing keys as zero.
func meanStyleScore(p *catalog.Product, styles []string) float64 {
	if len(styles) == 0 {
		return 0
	}
	sum := 0
	for _, style := range styles {
		sum += p.StyleScore(style)
	}
	return float64(sum) / float64(len(styles))
}

// hasBrightColorName reports whether the product name mentions a
// filtered bright color.
func hasBrightColorName(name string) bool {
	lower := strings.ToLower(name)
	for _, keyword := range catalog.BrightColorKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func containsCategory(haystack []catalog.Category, needle catalog.Category) bool {
	for _, c := range haystack {
		if c == needle {
			return true
		}
	}
	return false
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
