// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

// Package main is the entry point for the StyleScout server.
//
// StyleScout is a guided product discovery service. A short wizard
// collects a shopper's profile (gender, categories, styles, budget,
// brands, occasion, negative constraints) and the server answers with
// scored, diversified product matches. Recorded feedback events sharpen
// future matches, and an optional embeddings-based reranker reorders
// the top results semantically.
//
// # Startup order
//
//  1. Configuration: Koanf v2 layered sources (env > config file > defaults)
//  2. Logging: zerolog, configured from the loaded settings
//  3. Store: BadgerDB for the feedback log and preference snapshot
//  4. Catalog: the curated seed catalog, enriched at load time
//  5. Engine, reranker, API server
//  6. Supervisor tree: storage GC loop and HTTP server under suture
//
// # Signal handling
//
// SIGINT and SIGTERM trigger graceful shutdown: the HTTP server drains
// in-flight requests within the configured timeout, then the store is
// closed.
//
// # Example usage
//
// Development, in-memory store, no reranking:
//
//	export STYLESCOUT_STORE_IN_MEMORY=true
//	export STYLESCOUT_RERANK_ENABLED=false
//	./stylescout
//
// Production with semantic reranking:
//
//	export STYLESCOUT_RERANK_API_KEY=sk-...
//	export STYLESCOUT_STORE_PATH=/var/lib/stylescout
//	./stylescout
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/stylescout/stylescout/internal/api"
	"github.com/stylescout/stylescout/internal/catalog"
	"github.com/stylescout/stylescout/internal/config"
	"github.com/stylescout/stylescout/internal/logging"
	"github.com/stylescout/stylescout/internal/match"
	"github.com/stylescout/stylescout/internal/metrics"
	"github.com/stylescout/stylescout/internal/rerank"
	"github.com/stylescout/stylescout/internal/store"
	"github.com/stylescout/stylescout/internal/supervisor"
	"github.com/stylescout/stylescout/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Bool("rerank_enabled", cfg.Rerank.Enabled).
		Msg("Starting StyleScout")

	db, err := store.Open(store.Options{
		Path:     cfg.Store.Path,
		InMemory: cfg.Store.InMemory,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open store")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close store")
		}
	}()

	logger := logging.Logger()

	products := catalog.Curated(logger)
	logging.Info().Int("products", len(products)).Msg("Catalog loaded")

	engine := match.NewEngine(logger)

	embedder := rerank.NewHTTPEmbedder(rerank.EmbeddingConfig{
		BaseURL: cfg.Rerank.BaseURL,
		APIKey:  cfg.Rerank.APIKey,
		Model:   cfg.Rerank.Model,
		Timeout: cfg.Rerank.Timeout,
	}, logger)
	reranker := rerank.NewClient(embedder, logger)

	feedbackLog := store.NewFeedbackLog(db, logger)
	snapshots := store.NewSnapshots(db, logger)

	if events, err := feedbackLog.All(); err == nil {
		metrics.FeedbackLogSize.Set(float64(len(events)))
	}

	server := api.NewServer(api.Deps{
		Config:      cfg,
		Products:    products,
		Engine:      engine,
		Reranker:    reranker,
		FeedbackLog: feedbackLog,
		Snapshots:   snapshots,
		Logger:      logger,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	treeCfg := supervisor.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree := supervisor.NewTree(logging.NewSlogLogger(), treeCfg)

	tree.AddStorageService(services.NewStoreGCService(func() { store.RunGC(db) }, store.GCInterval))
	tree.AddAPIService(services.NewHTTPServerService(httpServer, cfg.Server.ShutdownTimeout))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	logging.Info().Str("addr", httpServer.Addr).Msg("StyleScout ready")

	if err := <-errCh; err != nil && ctx.Err() == nil {
		logging.Error().Err(err).Msg("Supervisor tree stopped unexpectedly")
	}

	if report, err := tree.UnstoppedServiceReport(); err == nil && len(report) > 0 {
		for _, svc := range report {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop in time")
		}
	}

	logging.Info().Msg("StyleScout stopped")
}
