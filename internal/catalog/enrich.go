// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

package catalog

import (
	"strings"

	"github.com/rs/zerolog"
)

// BrightColorKeywords are the name substrings the "no-bright-colors"
// negative constraint filters on. Matching is case-insensitive.
var BrightColorKeywords = []string{
	"neon", "lime", "yellow", "orange", "hot pink", "red", "bright", "fuchsia", "electric",
}

// logoHeavyBrands carry visible branding; everything else defaults to low.
var logoHeavyBrands = map[string]struct{}{
	"nike":   {},
	"adidas": {},
	"zara":   {},
}

// materialKeywords are matched as substrings of the lowercased product name.
var materialKeywords = []string{
	"cotton", "wool", "cashmere", "silk", "linen", "denim", "leather", "polyester", "nylon",
}

// categoryOccasions maps a category to its default occasion tags.
var categoryOccasions = map[Category][]string{
	CategoryDresses:     {"date-night", "event"},
	CategoryOuterwear:   {"everyday", "travel", "work"},
	CategoryShoes:       {"everyday", "travel"},
	CategoryTops:        {"everyday", "work"},
	CategoryBottoms:     {"everyday", "work"},
	CategoryAccessories: {"everyday", "event"},
}

// storeProfiles maps a normalized brand key to the store that carries
// the brand. Brands without a dedicated storefront fall back to the
// multi-brand retail partner.
var storeProfiles = map[string]Store{
	"uniqlo":      {ID: "uniqlo", Name: "Uniqlo", Capability: CheckoutAddToCart},
	"zara":        {ID: "zara", Name: "Zara", Capability: CheckoutAddToCart},
	"hm":          {ID: "hm", Name: "H&M", Capability: CheckoutAddToCart},
	"everlane":    {ID: "everlane", Name: "Everlane", Capability: CheckoutPrefill},
	"cos":         {ID: "cos", Name: "COS", Capability: CheckoutAddToCart},
	"aritzia":     {ID: "aritzia", Name: "Aritzia", Capability: CheckoutAddToCart},
	"reformation": {ID: "reformation", Name: "Reformation", Capability: CheckoutDeepLink},
	"lululemon":   {ID: "lululemon", Name: "Lululemon", Capability: CheckoutAddToCart},
	"vince":       {ID: "vince", Name: "Vince", Capability: CheckoutDeepLink},
	"toteme":      {ID: "toteme", Name: "Totême", Capability: CheckoutDeepLink},
	"the-row":     {ID: "the-row", Name: "The Row", Capability: CheckoutDeepLink},
	"agolde":      {ID: "agolde", Name: "Agolde", Capability: CheckoutDeepLink},
	"nike":        {ID: "nike", Name: "Nike", Capability: CheckoutAddToCart},
	"patagonia":   {ID: "patagonia", Name: "Patagonia", Capability: CheckoutAddToCart},
}

// defaultStore is used when no brand-specific storefront exists.
var defaultStore = Store{ID: "multi-brand", Name: "Retail Partner", Capability: CheckoutDeepLink}

// RawProduct is a seed record before enrichment.
type RawProduct struct {
	ID          string
	Name        string
	Brand       string
	Price       float64
	Category    Category
	Gender      Gender
	ProductURL  string
	StyleScores map[string]int
}

// Enrich constructs the immutable Product from a seed record: resolves
// the store profile, derives metadata from the name and category, and
// normalizes the style-score map against the closed vocabulary.
// Unknown style keys are dropped with a warning rather than silently
// scored as zero at read time.
//
//nolint:gocritic // hugeParam: raw passed by value; enrichment must not alias seed data
func Enrich(raw RawProduct, logger zerolog.Logger) Product {
	brandKey := NormalizeKey(raw.Brand)

	store, ok := storeProfiles[brandKey]
	if !ok {
		store = defaultStore
	}

	return Product{
		ID:          raw.ID,
		Name:        raw.Name,
		Brand:       raw.Brand,
		Price:       raw.Price,
		Category:    raw.Category,
		Gender:      raw.Gender,
		ProductURL:  raw.ProductURL,
		StyleScores: normalizeStyleScores(raw.ID, raw.StyleScores, logger),
		Store:       store,
		Metadata:    inferMetadata(raw, brandKey),
	}
}

// normalizeStyleScores keeps only vocabulary styles.
func normalizeStyleScores(productID string, scores map[string]int, logger zerolog.Logger) map[string]int {
	normalized := make(map[string]int, len(scores))
	for style, score := range scores {
		if !ValidStyle(style) {
			logger.Warn().
				Str("product", productID).
				Str("style", style).
				Msg("dropping unknown style key")
			continue
		}
		normalized[style] = score
	}
	return normalized
}

// inferMetadata derives tag metadata from the product name and category.
//
//nolint:gocritic // hugeParam: raw passed by value for immutability
func inferMetadata(raw RawProduct, brandKey string) Metadata {
	name := strings.ToLower(raw.Name)

	var materials []string
	for _, keyword := range materialKeywords {
		if strings.Contains(name, keyword) {
			materials = append(materials, keyword)
		}
	}
	if len(materials) == 0 {
		materials = []string{"cotton"}
	}

	var fits []string
	if strings.Contains(name, "oversized") || strings.Contains(name, "wide") {
		fits = append(fits, "relaxed")
	}
	if strings.Contains(name, "slim") || strings.Contains(name, "tailored") {
		fits = append(fits, "slim")
	}
	if strings.Contains(name, "straight") {
		fits = append(fits, "straight")
	}
	if strings.Contains(name, "box") {
		fits = append(fits, "boxy")
	}
	if len(fits) == 0 {
		fits = []string{"regular"}
	}

	var silhouettes []string
	if strings.Contains(name, "cropped") {
		silhouettes = append(silhouettes, "cropped")
	}
	if strings.Contains(name, "wide") {
		silhouettes = append(silhouettes, "wide-leg")
	}
	if strings.Contains(name, "midi") {
		silhouettes = append(silhouettes, "midi")
	}
	if strings.Contains(name, "maxi") {
		silhouettes = append(silhouettes, "maxi")
	}
	if strings.Contains(name, "structured") {
		silhouettes = append(silhouettes, "structured")
	}
	if len(silhouettes) == 0 {
		silhouettes = []string{"classic"}
	}

	occasions := categoryOccasions[raw.Category]
	if len(occasions) == 0 {
		occasions = []string{"everyday"}
	}

	logoLevel := LogoLow
	if _, heavy := logoHeavyBrands[brandKey]; heavy {
		logoLevel = LogoHigh
	}

	return Metadata{
		MaterialTags:   materials,
		FitTags:        fits,
		SilhouetteTags: silhouettes,
		OccasionTags:   occasions,
		LogoLevel:      logoLevel,
	}
}

// Load enriches a slice of seed records in order.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Load(raw []RawProduct, logger zerolog.Logger) []Product {
	products := make([]Product, 0, len(raw))
	for _, r := range raw {
		products = append(products, Enrich(r, logger))
	}
	return products
}
