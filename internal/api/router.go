// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stylescout/stylescout/internal/middleware"
)

// Router builds the chi router with the full middleware stack and all
// API routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(s.recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(httprate.LimitByIP(s.cfg.Limits.RequestsPerMinute, time.Minute))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/discover", s.handleDiscover)
		r.Post("/match", s.handleMatch)
		r.Post("/rerank", s.handleRerank)

		r.Post("/feedback/events", s.handleRecordFeedback)
		r.Delete("/feedback/events", s.handleClearFeedback)
		r.Get("/feedback/model", s.handleFeedbackModel)

		r.Get("/preferences", s.handleGetPreferences)
		r.Put("/preferences", s.handlePutPreferences)
		r.Delete("/preferences", s.handleDeletePreferences)

		r.Get("/catalog", s.handleCatalog)
		r.Get("/catalog/styles", s.handleStyles)
		r.Get("/catalog/brands", s.handleBrands)
		r.Get("/catalog/occasions", s.handleOccasions)
	})

	r.Get("/health/live", s.handleLiveness)
	r.Get("/health/ready", s.handleReadiness)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// recoverer converts handler panics into a generic 500 without leaking
// internals.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error().Interface("panic", rec).Str("path", r.URL.Path).Msg("handler panic")
				newResponseWriter(w, r).InternalError()
			}
		}()
		next.ServeHTTP(w, r)
	})
}
