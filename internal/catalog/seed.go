// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

package catalog

import "github.com/rs/zerolog"

// PopularBrands lists the selectable brands across all price tiers, in
// wizard display order.
var PopularBrands = []Brand{
	{ID: "uniqlo", Name: "Uniqlo", PriceRange: "$", Aesthetic: "basics"},
	{ID: "zara", Name: "Zara", PriceRange: "$$", Aesthetic: "trendy"},
	{ID: "hm", Name: "H&M", PriceRange: "$", Aesthetic: "fast-fashion"},
	{ID: "muji", Name: "Muji", PriceRange: "$$", Aesthetic: "minimalist"},
	{ID: "target", Name: "Target", PriceRange: "$", Aesthetic: "casual"},
	{ID: "everlane", Name: "Everlane", PriceRange: "$$", Aesthetic: "transparent"},
	{ID: "cos", Name: "COS", PriceRange: "$$", Aesthetic: "minimalist"},
	{ID: "aritzia", Name: "Aritzia", PriceRange: "$$", Aesthetic: "contemporary"},
	{ID: "reformation", Name: "Reformation", PriceRange: "$$$", Aesthetic: "sustainable"},
	{ID: "madewell", Name: "Madewell", PriceRange: "$$", Aesthetic: "casual"},
	{ID: "jcrew", Name: "J.Crew", PriceRange: "$$", Aesthetic: "preppy"},
	{ID: "banana-republic", Name: "Banana Republic", PriceRange: "$$", Aesthetic: "business"},
	{ID: "nordstrom", Name: "Nordstrom", PriceRange: "$$-$$$", Aesthetic: "department"},
	{ID: "bloomingdales", Name: "Bloomingdale's", PriceRange: "$$-$$$", Aesthetic: "department"},
	{ID: "shopbop", Name: "Shopbop", PriceRange: "$$-$$$", Aesthetic: "curated"},
	{ID: "ssense", Name: "SSENSE", PriceRange: "$$-$$$$", Aesthetic: "designer"},
	{ID: "net-a-porter", Name: "Net-a-Porter", PriceRange: "$$$$", Aesthetic: "luxury"},
	{ID: "matches", Name: "Matches Fashion", PriceRange: "$$$$", Aesthetic: "luxury"},
	{ID: "farfetch", Name: "Farfetch", PriceRange: "$$-$$$$", Aesthetic: "boutique"},
	{ID: "mr-porter", Name: "Mr Porter", PriceRange: "$$$$", Aesthetic: "mens-luxury"},
	{ID: "mytheresa", Name: "Mytheresa", PriceRange: "$$$$", Aesthetic: "luxury"},
	{ID: "nike", Name: "Nike", PriceRange: "$$", Aesthetic: "athletic"},
	{ID: "adidas", Name: "Adidas", PriceRange: "$$", Aesthetic: "athletic"},
	{ID: "lululemon", Name: "Lululemon", PriceRange: "$$$", Aesthetic: "athleisure"},
	{ID: "alo", Name: "Alo Yoga", PriceRange: "$$$", Aesthetic: "athleisure"},
	{ID: "outdoor-voices", Name: "Outdoor Voices", PriceRange: "$$", Aesthetic: "active"},
	{ID: "patagonia", Name: "Patagonia", PriceRange: "$$$", Aesthetic: "outdoor"},
	{ID: "eileen-fisher", Name: "Eileen Fisher", PriceRange: "$$$", Aesthetic: "sustainable"},
	{ID: "kotn", Name: "Kotn", PriceRange: "$$", Aesthetic: "ethical"},
	{ID: "pact", Name: "Pact", PriceRange: "$$", Aesthetic: "organic"},
}

// StyleOption is a selectable style presented by the wizard.
type StyleOption struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// StyleOptions lists the wizard's style choices. IDs mirror
// StyleVocabulary exactly.
var StyleOptions = []StyleOption{
	{ID: "minimalist", Label: "Minimalist", Description: "Clean, simple, timeless"},
	{ID: "casual", Label: "Casual", Description: "Relaxed, comfortable"},
	{ID: "business", Label: "Business", Description: "Professional, polished"},
	{ID: "trendy", Label: "Trendy", Description: "Fashion-forward, current"},
	{ID: "classic", Label: "Classic", Description: "Traditional, enduring"},
	{ID: "bohemian", Label: "Bohemian", Description: "Free-spirited, artistic"},
	{ID: "athleisure", Label: "Athleisure", Description: "Sporty, comfortable"},
	{ID: "romantic", Label: "Romantic", Description: "Soft, feminine"},
}

// seedProducts is the curated catalog before enrichment, spanning every
// category and price tier so the wizard always has candidates.
var seedProducts = []RawProduct{
	{
		ID: "uniqlo-airism-tee", Name: "AIRism Cotton T-Shirt", Brand: "Uniqlo",
		Price: 29, Category: CategoryTops, Gender: GenderUnisex,
		ProductURL:  "https://uniqlo.com/airism-tee",
		StyleScores: map[string]int{"minimalist": 85, "casual": 90, "business": 30, "classic": 70, "trendy": 40, "bohemian": 20, "athleisure": 60, "romantic": 30},
	},
	{
		ID: "everlane-box-tee", Name: "Organic Cotton Box-Cut Tee", Brand: "Everlane",
		Price: 38, Category: CategoryTops, Gender: GenderWomens,
		ProductURL:  "https://everlane.com/box-cut-tee",
		StyleScores: map[string]int{"minimalist": 90, "casual": 85, "business": 35, "classic": 75, "trendy": 50, "bohemian": 30, "athleisure": 40, "romantic": 35},
	},
	{
		ID: "zara-basic-shirt", Name: "Basic Poplin Shirt", Brand: "Zara",
		Price: 49, Category: CategoryTops, Gender: GenderWomens,
		ProductURL:  "https://zara.com/basic-shirt",
		StyleScores: map[string]int{"minimalist": 75, "casual": 70, "business": 80, "classic": 85, "trendy": 60, "bohemian": 25, "athleisure": 20, "romantic": 40},
	},
	{
		ID: "cos-knit-sweater", Name: "Relaxed Wool Sweater", Brand: "COS",
		Price: 89, Category: CategoryTops, Gender: GenderWomens,
		ProductURL:  "https://cos.com/wool-sweater",
		StyleScores: map[string]int{"minimalist": 95, "casual": 80, "business": 65, "classic": 80, "trendy": 45, "bohemian": 35, "athleisure": 30, "romantic": 55},
	},
	{
		ID: "aritzia-babaton-blouse", Name: "Babaton Silk Blouse", Brand: "Aritzia",
		Price: 128, Category: CategoryTops, Gender: GenderWomens,
		ProductURL:  "https://aritzia.com/babaton-blouse",
		StyleScores: map[string]int{"minimalist": 70, "casual": 60, "business": 90, "classic": 85, "trendy": 70, "bohemian": 40, "athleisure": 20, "romantic": 75},
	},
	{
		ID: "reformation-cashmere", Name: "Cashmere Crew Sweater", Brand: "Reformation",
		Price: 168, Category: CategoryTops, Gender: GenderWomens,
		ProductURL:  "https://reformation.com/cashmere",
		StyleScores: map[string]int{"minimalist": 80, "casual": 85, "business": 60, "classic": 75, "trendy": 65, "bohemian": 50, "athleisure": 35, "romantic": 80},
	},
	{
		ID: "lululemon-define-jacket", Name: "Define Jacket", Brand: "Lululemon",
		Price: 128, Category: CategoryOuterwear, Gender: GenderWomens,
		ProductURL:  "https://lululemon.com/define-jacket",
		StyleScores: map[string]int{"minimalist": 60, "casual": 85, "business": 20, "classic": 50, "trendy": 75, "bohemian": 15, "athleisure": 100, "romantic": 20},
	},
	{
		ID: "vince-cashmere", Name: "Essential Cashmere Sweater", Brand: "Vince",
		Price: 345, Category: CategoryTops, Gender: GenderWomens,
		ProductURL:  "https://vince.com/cashmere",
		StyleScores: map[string]int{"minimalist": 95, "casual": 80, "business": 85, "classic": 90, "trendy": 40, "bohemian": 30, "athleisure": 25, "romantic": 70},
	},
	{
		ID: "toteme-ribbed-tee", Name: "Ribbed Modal T-Shirt", Brand: "Totême",
		Price: 150, Category: CategoryTops, Gender: GenderWomens,
		ProductURL:  "https://toteme-studio.com/ribbed-tee",
		StyleScores: map[string]int{"minimalist": 98, "casual": 85, "business": 50, "classic": 80, "trendy": 55, "bohemian": 25, "athleisure": 35, "romantic": 50},
	},
	{
		ID: "the-row-shirt", Name: "Silk Charmeuse Shirt", Brand: "The Row",
		Price: 890, Category: CategoryTops, Gender: GenderWomens,
		ProductURL:  "https://therow.com/silk-shirt",
		StyleScores: map[string]int{"minimalist": 100, "casual": 60, "business": 95, "classic": 90, "trendy": 30, "bohemian": 25, "athleisure": 10, "romantic": 60},
	},
	{
		ID: "uniqlo-wide-pants", Name: "Wide Fit Pleated Pants", Brand: "Uniqlo",
		Price: 49, Category: CategoryBottoms, Gender: GenderWomens,
		ProductURL:  "https://uniqlo.com/wide-pants",
		StyleScores: map[string]int{"minimalist": 80, "casual": 85, "business": 60, "classic": 75, "trendy": 70, "bohemian": 45, "athleisure": 40, "romantic": 35},
	},
	{
		ID: "everlane-jeans", Name: "The Way-High Jean", Brand: "Everlane",
		Price: 98, Category: CategoryBottoms, Gender: GenderWomens,
		ProductURL:  "https://everlane.com/way-high-jean",
		StyleScores: map[string]int{"minimalist": 75, "casual": 90, "business": 25, "classic": 80, "trendy": 80, "bohemian": 40, "athleisure": 30, "romantic": 30},
	},
	{
		ID: "zara-tailored-trousers", Name: "Tailored Straight Trousers", Brand: "Zara",
		Price: 69, Category: CategoryBottoms, Gender: GenderWomens,
		ProductURL:  "https://zara.com/tailored-trousers",
		StyleScores: map[string]int{"minimalist": 70, "casual": 65, "business": 85, "classic": 80, "trendy": 75, "bohemian": 25, "athleisure": 20, "romantic": 35},
	},
	{
		ID: "aritzia-effortless-pant", Name: "Effortless Pant", Brand: "Aritzia",
		Price: 148, Category: CategoryBottoms, Gender: GenderWomens,
		ProductURL:  "https://aritzia.com/effortless-pant",
		StyleScores: map[string]int{"minimalist": 85, "casual": 80, "business": 90, "classic": 85, "trendy": 70, "bohemian": 30, "athleisure": 35, "romantic": 40},
	},
	{
		ID: "agolde-jeans", Name: "90s Pinch Waist Jeans", Brand: "Agolde",
		Price: 188, Category: CategoryBottoms, Gender: GenderWomens,
		ProductURL:  "https://agolde.com/90s-jeans",
		StyleScores: map[string]int{"minimalist": 70, "casual": 95, "business": 20, "classic": 75, "trendy": 95, "bohemian": 50, "athleisure": 25, "romantic": 35},
	},
	{
		ID: "the-row-ginza-pants", Name: "Ginza Straight Pants", Brand: "The Row",
		Price: 990, Category: CategoryBottoms, Gender: GenderWomens,
		ProductURL:  "https://therow.com/ginza-pants",
		StyleScores: map[string]int{"minimalist": 100, "casual": 50, "business": 95, "classic": 90, "trendy": 40, "bohemian": 20, "athleisure": 10, "romantic": 35},
	},
	{
		ID: "reformation-dress", Name: "Juliette Dress", Brand: "Reformation",
		Price: 248, Category: CategoryDresses, Gender: GenderWomens,
		ProductURL:  "https://reformation.com/juliette-dress",
		StyleScores: map[string]int{"minimalist": 60, "casual": 70, "business": 50, "classic": 70, "trendy": 85, "bohemian": 80, "athleisure": 15, "romantic": 95},
	},
	{
		ID: "zara-slip-dress", Name: "Satin Slip Dress", Brand: "Zara",
		Price: 59, Category: CategoryDresses, Gender: GenderWomens,
		ProductURL:  "https://zara.com/slip-dress",
		StyleScores: map[string]int{"minimalist": 75, "casual": 65, "business": 40, "classic": 75, "trendy": 80, "bohemian": 60, "athleisure": 20, "romantic": 85},
	},
	{
		ID: "nike-air-force", Name: "Air Force 1", Brand: "Nike",
		Price: 110, Category: CategoryShoes, Gender: GenderUnisex,
		ProductURL:  "https://nike.com/air-force-1",
		StyleScores: map[string]int{"minimalist": 70, "casual": 100, "business": 10, "classic": 90, "trendy": 85, "bohemian": 30, "athleisure": 90, "romantic": 15},
	},
	{
		ID: "everlane-day-glove", Name: "The Day Glove", Brand: "Everlane",
		Price: 165, Category: CategoryShoes, Gender: GenderWomens,
		ProductURL:  "https://everlane.com/day-glove",
		StyleScores: map[string]int{"minimalist": 90, "casual": 80, "business": 85, "classic": 85, "trendy": 50, "bohemian": 40, "athleisure": 30, "romantic": 60},
	},
	{
		ID: "margiela-tabi", Name: "Tabi Ankle Boots", Brand: "Maison Margiela",
		Price: 1080, Category: CategoryShoes, Gender: GenderWomens,
		ProductURL:  "https://farfetch.com/margiela-tabi",
		StyleScores: map[string]int{"minimalist": 75, "casual": 70, "business": 60, "classic": 60, "trendy": 95, "bohemian": 45, "athleisure": 20, "romantic": 40},
	},
	{
		ID: "manolo-blahnik", Name: "Hangisi Pump", Brand: "Manolo Blahnik",
		Price: 995, Category: CategoryShoes, Gender: GenderWomens,
		ProductURL:  "https://manoloblahnik.com/hangisi",
		StyleScores: map[string]int{"minimalist": 70, "casual": 30, "business": 95, "classic": 95, "trendy": 60, "bohemian": 35, "athleisure": 5, "romantic": 90},
	},
	{
		ID: "muji-tote", Name: "Canvas Tote Bag", Brand: "Muji",
		Price: 25, Category: CategoryAccessories, Gender: GenderUnisex,
		ProductURL:  "https://muji.com/canvas-tote",
		StyleScores: map[string]int{"minimalist": 95, "casual": 90, "business": 40, "classic": 80, "trendy": 30, "bohemian": 50, "athleisure": 40, "romantic": 25},
	},
	{
		ID: "lemaire-croissant", Name: "Croissant Bag", Brand: "Lemaire",
		Price: 890, Category: CategoryAccessories, Gender: GenderUnisex,
		ProductURL:  "https://lemaire.fr/croissant",
		StyleScores: map[string]int{"minimalist": 95, "casual": 85, "business": 70, "classic": 75, "trendy": 80, "bohemian": 55, "athleisure": 30, "romantic": 75},
	},
	{
		ID: "uniqlo-ultra-light", Name: "Ultra Light Down Jacket", Brand: "Uniqlo",
		Price: 69, Category: CategoryOuterwear, Gender: GenderWomens,
		ProductURL:  "https://uniqlo.com/ultra-light-down",
		StyleScores: map[string]int{"minimalist": 80, "casual": 90, "business": 30, "classic": 75, "trendy": 50, "bohemian": 25, "athleisure": 60, "romantic": 20},
	},
	{
		ID: "toteme-coat", Name: "Signature Wool Coat", Brand: "Totême",
		Price: 990, Category: CategoryOuterwear, Gender: GenderWomens,
		ProductURL:  "https://toteme-studio.com/wool-coat",
		StyleScores: map[string]int{"minimalist": 98, "casual": 60, "business": 85, "classic": 90, "trendy": 40, "bohemian": 25, "athleisure": 15, "romantic": 50},
	},
	{
		ID: "patagonia-fleece", Name: "Retro Pile Fleece", Brand: "Patagonia",
		Price: 139, Category: CategoryOuterwear, Gender: GenderWomens,
		ProductURL:  "https://patagonia.com/retro-pile",
		StyleScores: map[string]int{"minimalist": 40, "casual": 95, "business": 10, "classic": 60, "trendy": 70, "bohemian": 60, "athleisure": 85, "romantic": 20},
	},
}

// Curated returns the enriched seed catalog. Enrichment is
// deterministic, so calling Curated twice yields equal catalogs.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Curated(logger zerolog.Logger) []Product {
	return Load(seedProducts, logger)
}
