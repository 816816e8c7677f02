// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

// Package catalog defines the product data model and the fixed in-memory
// catalog the matching engine ranks. Products are enriched once at load
// time and immutable afterwards.
package catalog

import (
	"sort"
	"strings"
)

// Category classifies a product. The set is closed.
type Category string

// Known product categories.
const (
	CategoryTops        Category = "tops"
	CategoryBottoms     Category = "bottoms"
	CategoryShoes       Category = "shoes"
	CategoryOuterwear   Category = "outerwear"
	CategoryAccessories Category = "accessories"
	CategoryDresses     Category = "dresses"
)

// Categories lists all known categories in display order.
var Categories = []Category{
	CategoryTops,
	CategoryBottoms,
	CategoryShoes,
	CategoryOuterwear,
	CategoryAccessories,
	CategoryDresses,
}

// Valid reports whether the category is a member of the closed set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Gender is a product's gender affinity.
type Gender string

// Gender affinities. Unisex products match any gender selection.
const (
	GenderMens   Gender = "mens"
	GenderWomens Gender = "womens"
	GenderUnisex Gender = "unisex"
)

// Checkout capability of a store's handoff integration.
type Checkout string

// Store checkout capabilities.
const (
	CheckoutPrefill   Checkout = "prefill"
	CheckoutAddToCart Checkout = "add_to_cart"
	CheckoutDeepLink  Checkout = "deep_link"
)

// StyleVocabulary is the closed set of style identifiers. Every style
// score key on every product must be a member; unknown keys are dropped
// at load time (see Normalize).
var StyleVocabulary = []string{
	"minimalist",
	"casual",
	"business",
	"trendy",
	"classic",
	"bohemian",
	"athleisure",
	"romantic",
}

// ValidStyle reports whether s is in the style vocabulary.
func ValidStyle(s string) bool {
	for _, known := range StyleVocabulary {
		if s == known {
			return true
		}
	}
	return false
}

// DisplaySeparator joins fields in flattened descriptive text (taste
// and candidate texts for the semantic reranker).
const DisplaySeparator = " | "

// LogoLevel indicates how prominently a product carries branding.
type LogoLevel string

// Logo intensity levels.
const (
	LogoLow  LogoLevel = "low"
	LogoHigh LogoLevel = "high"
)

// Store describes the retailer a product is bought from. Every product
// belongs to exactly one store.
type Store struct {
	// ID is the stable store identifier.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Capability is the checkout handoff mechanism the store supports.
	Capability Checkout `json:"capability"`
}

// Metadata holds tags derived deterministically from the raw product
// record at load time.
type Metadata struct {
	// MaterialTags lists materials detected in the product name.
	MaterialTags []string `json:"material_tags"`

	// FitTags lists fit descriptors (relaxed, slim, straight, boxy).
	FitTags []string `json:"fit_tags"`

	// SilhouetteTags lists silhouette descriptors.
	SilhouetteTags []string `json:"silhouette_tags"`

	// OccasionTags lists occasions the product suits, by category.
	OccasionTags []string `json:"occasion_tags"`

	// LogoLevel is the branding intensity.
	LogoLevel LogoLevel `json:"logo_level"`
}

// Product is a catalog entity. Constructed once via Enrich; immutable
// thereafter.
type Product struct {
	// ID is the stable product identifier.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Brand is the brand display name.
	Brand string `json:"brand"`

	// Price in whole currency units.
	Price float64 `json:"price"`

	// Category is the product's single category.
	Category Category `json:"category"`

	// Gender is the product's gender affinity.
	Gender Gender `json:"gender"`

	// ProductURL links to the retailer product page.
	ProductURL string `json:"product_url"`

	// StyleScores maps style identifiers to a 0-100 affinity score.
	// Keys are restricted to StyleVocabulary.
	StyleScores map[string]int `json:"style_scores"`

	// Store is the retailer descriptor.
	Store Store `json:"store"`

	// Metadata holds derived tags.
	Metadata Metadata `json:"metadata"`
}

// BrandKey returns the product's normalized brand key.
func (p *Product) BrandKey() string {
	return NormalizeKey(p.Brand)
}

// StyleScore returns the score for a style, 0 when absent.
func (p *Product) StyleScore(style string) int {
	return p.StyleScores[style]
}

// TopStyles returns the product's n highest-scoring styles, score
// descending, name ascending on equal scores so the result is
// deterministic.
func (p *Product) TopStyles(n int) []string {
	styles := make([]string, 0, len(p.StyleScores))
	for style := range p.StyleScores {
		styles = append(styles, style)
	}
	sort.Slice(styles, func(i, j int) bool {
		si, sj := p.StyleScores[styles[i]], p.StyleScores[styles[j]]
		if si != sj {
			return si > sj
		}
		return styles[i] < styles[j]
	})
	if n < len(styles) {
		styles = styles[:n]
	}
	return styles
}

// NormalizeKey lowercases a display name and collapses every run of
// non-alphanumeric characters into a single hyphen: "The Row" becomes
// "the-row", "H&M" becomes "h-m".
func NormalizeKey(value string) string {
	var b strings.Builder
	b.Grow(len(value))

	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(value) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// Brand is a selectable brand option presented by the wizard.
type Brand struct {
	// ID is the normalized brand key.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// PriceRange is a coarse $..$$$$ indicator.
	PriceRange string `json:"price_range"`

	// Aesthetic is a one-word positioning descriptor.
	Aesthetic string `json:"aesthetic,omitempty"`
}
