// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

package match

import (
	"fmt"
	"sort"

	"github.com/stylescout/stylescout/internal/catalog"
)

// Explain produces a one-line human-readable reason why a product was
// matched. Returned alongside each result so the wizard can annotate
// the cart.
func Explain(p *catalog.Product, prefs *Preferences) string {
	if len(prefs.Styles) > 0 {
		styles := make([]string, len(prefs.Styles))
		copy(styles, prefs.Styles)
		sort.SliceStable(styles, func(i, j int) bool {
			return p.StyleScore(styles[i]) > p.StyleScore(styles[j])
		})

		top := styles[0]
		switch score := p.StyleScore(top); {
		case score >= 70:
			return fmt.Sprintf("Perfect for %s style", top)
		case score >= 50:
			return fmt.Sprintf("Good for %s looks", top)
		}
	}

	if len(prefs.Brands) > 0 && containsString(prefs.Brands, p.BrandKey()) {
		return "From your preferred brand"
	}

	return fmt.Sprintf("%s category match", p.Category)
}
