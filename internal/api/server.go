// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/stylescout/stylescout/internal/catalog"
	"github.com/stylescout/stylescout/internal/config"
	"github.com/stylescout/stylescout/internal/match"
	"github.com/stylescout/stylescout/internal/rerank"
	"github.com/stylescout/stylescout/internal/store"
)

// Server wires the HTTP handlers to the matching engine, rerank
// client, and persistence layer.
type Server struct {
	cfg      *config.Config
	products []catalog.Product
	byID     map[string]*catalog.Product

	engine      *match.Engine
	reranker    *rerank.Client
	feedbackLog *store.FeedbackLog
	snapshots   *store.Snapshots

	validate *validator.Validate
	logger   zerolog.Logger
}

// Deps collects the server's collaborators.
type Deps struct {
	Config      *config.Config
	Products    []catalog.Product
	Engine      *match.Engine
	Reranker    *rerank.Client
	FeedbackLog *store.FeedbackLog
	Snapshots   *store.Snapshots
	Logger      zerolog.Logger
}

// NewServer creates the API server.
func NewServer(deps Deps) *Server {
	byID := make(map[string]*catalog.Product, len(deps.Products))
	for i := range deps.Products {
		byID[deps.Products[i].ID] = &deps.Products[i]
	}

	return &Server{
		cfg:         deps.Config,
		products:    deps.Products,
		byID:        byID,
		engine:      deps.Engine,
		reranker:    deps.Reranker,
		feedbackLog: deps.FeedbackLog,
		snapshots:   deps.Snapshots,
		validate:    validator.New(),
		logger:      deps.Logger.With().Str("component", "api").Logger(),
	}
}
