// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

// Package match implements the deterministic rule-based matching engine.
// Given the catalog and a preference profile it hard-filters, scores,
// diversifies, and store-limits the candidates. The pipeline is a pure
// function of its inputs, so identical requests always rank identically.
package match

import (
	"github.com/stylescout/stylescout/internal/catalog"
	"github.com/stylescout/stylescout/internal/feedback"
)

// Negative is a negative constraint the wizard lets the user assert.
type Negative string

// Supported negative constraints.
const (
	NegativeNoBrightColors Negative = "no-bright-colors"
	NegativeNoSlimFit      Negative = "no-slim-fit"
)

// Preferences is the full preference profile collected by the wizard.
type Preferences struct {
	// Gender restricts candidates to this gender plus unisex. Empty
	// means no restriction.
	Gender catalog.Gender `json:"gender"`

	// Categories the user selected, in selection order. Selection order
	// drives the diversification pass.
	Categories []catalog.Category `json:"categories"`

	// Styles the user selected from the style vocabulary.
	Styles []string `json:"styles"`

	// Brands holds normalized brand keys the user prefers.
	Brands []string `json:"brands"`

	// Budget is the per-item budget in whole currency units.
	Budget float64 `json:"budget"`

	// StrictBrands turns the brand preference into a hard filter.
	StrictBrands bool `json:"strict_brands"`

	// Occasion the user is shopping for, empty if unset.
	Occasion string `json:"occasion"`

	// Sizes maps category to the user's size in that category. Sizes
	// are carried for checkout handoff; they do not affect ranking.
	Sizes map[string]string `json:"sizes,omitempty"`

	// MaxStores caps the number of distinct retailer handoffs.
	// Zero means the default of 3.
	MaxStores int `json:"max_stores,omitempty"`

	// Negatives lists active negative constraints.
	Negatives []Negative `json:"negatives,omitempty"`

	// Feedback is the optional behavioral affinity model. Nil disables
	// the feedback boost.
	Feedback *feedback.Model `json:"feedback,omitempty"`
}

// HasNegative reports whether the given constraint is active.
func (p *Preferences) HasNegative(n Negative) bool {
	for _, active := range p.Negatives {
		if active == n {
			return true
		}
	}
	return false
}

// Result is a matched product with its rule score attached.
type Result struct {
	catalog.Product

	// MatchScore is the rounded rule-based score.
	MatchScore int `json:"match_score"`
}

// occasionStyleBoost maps an occasion to the styles it rewards.
var occasionStyleBoost = map[string][]string{
	"everyday":   {"casual", "minimalist", "classic"},
	"work":       {"business", "classic", "minimalist"},
	"date-night": {"romantic", "trendy"},
	"event":      {"trendy", "romantic", "classic"},
	"travel":     {"casual", "athleisure", "minimalist"},
	"workout":    {"athleisure", "casual"},
}

// Occasions lists the occasions the wizard offers, in display order.
var Occasions = []string{"everyday", "work", "date-night", "event", "travel", "workout"}
