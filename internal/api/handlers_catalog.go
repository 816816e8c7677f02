// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

package api

import (
	"net/http"

	"github.com/stylescout/stylescout/internal/catalog"
	"github.com/stylescout/stylescout/internal/match"
)

// handleCatalog returns the full enriched catalog.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	newResponseWriter(w, r).Success(map[string]interface{}{
		"products": s.products,
		"count":    len(s.products),
	})
}

// handleStyles returns the wizard's selectable style options.
func (s *Server) handleStyles(w http.ResponseWriter, r *http.Request) {
	newResponseWriter(w, r).Success(catalog.StyleOptions)
}

// handleBrands returns the selectable brand list.
func (s *Server) handleBrands(w http.ResponseWriter, r *http.Request) {
	newResponseWriter(w, r).Success(catalog.PopularBrands)
}

// handleOccasions returns the selectable occasions.
func (s *Server) handleOccasions(w http.ResponseWriter, r *http.Request) {
	newResponseWriter(w, r).Success(match.Occasions)
}
