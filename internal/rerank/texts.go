// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

package rerank

import (
	"fmt"
	"strings"

	"github.com/stylescout/stylescout/internal/catalog"
	"github.com/stylescout/stylescout/internal/match"
)

// TasteText flattens a preference profile into a single descriptive
// string for embedding. Field order is fixed so identical profiles
// always produce identical texts.
func TasteText(prefs *match.Preferences) string {
	fields := []string{
		orAny("gender", string(prefs.Gender)),
		orAny("categories", joinCategories(prefs.Categories)),
		orAny("styles", strings.Join(prefs.Styles, ", ")),
		orAny("occasion", prefs.Occasion),
		fmt.Sprintf("budget %.0f", prefs.Budget),
		orAny("brands", strings.Join(prefs.Brands, ", ")),
		orNone("avoid", joinNegatives(prefs.Negatives)),
	}
	return strings.Join(fields, catalog.DisplaySeparator)
}

// CandidateText flattens a product into its embedding text: name,
// brand, store, category, price, top-3 styles, and tag metadata.
func CandidateText(p *catalog.Product) string {
	fields := []string{
		p.Name,
		p.Brand,
		p.Store.Name,
		string(p.Category),
		fmt.Sprintf("price %.0f", p.Price),
		strings.Join(p.TopStyles(3), ", "),
		strings.Join(p.Metadata.OccasionTags, ", "),
		strings.Join(p.Metadata.FitTags, ", "),
		strings.Join(p.Metadata.SilhouetteTags, ", "),
	}
	return strings.Join(fields, catalog.DisplaySeparator)
}

func orAny(label, value string) string {
	if value == "" {
		return label + " any"
	}
	return label + " " + value
}

func orNone(label, value string) string {
	if value == "" {
		return label + " none"
	}
	return label + " " + value
}

func joinCategories(categories []catalog.Category) string {
	parts := make([]string, len(categories))
	for i, c := range categories {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

func joinNegatives(negatives []match.Negative) string {
	parts := make([]string, len(negatives))
	for i, n := range negatives {
		parts[i] = string(n)
	}
	return strings.Join(parts, ", ")
}
