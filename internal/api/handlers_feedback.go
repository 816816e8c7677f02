// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

package api

import (
	"net/http"

	"github.com/stylescout/stylescout/internal/logging"
	"github.com/stylescout/stylescout/internal/metrics"
)

// handleRecordFeedback appends one interaction event to the log. The
// product attributes are denormalized from the catalog at record time.
func (s *Server) handleRecordFeedback(w http.ResponseWriter, r *http.Request) {
	rw := newResponseWriter(w, r)

	var req FeedbackEventRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		rw.ValidationFailed(err.Error(), validationDetails(err))
		return
	}

	product, ok := s.byID[req.ProductID]
	if !ok {
		rw.NotFound("unknown product")
		return
	}

	event := eventFromRequest(&req, product)
	if err := s.feedbackLog.Record(event); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to record feedback event")
		rw.InternalError()
		return
	}

	events, err := s.feedbackLog.All()
	if err == nil {
		metrics.RecordFeedbackEvent(string(event.Type), len(events))
	}

	rw.Created(map[string]string{"status": "recorded"})
}

// handleClearFeedback deletes the entire event log.
func (s *Server) handleClearFeedback(w http.ResponseWriter, r *http.Request) {
	rw := newResponseWriter(w, r)

	if err := s.feedbackLog.Clear(); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to clear feedback log")
		rw.InternalError()
		return
	}

	metrics.FeedbackLogSize.Set(0)
	rw.NoContent()
}

// handleFeedbackModel rebuilds and returns the affinity model.
func (s *Server) handleFeedbackModel(w http.ResponseWriter, r *http.Request) {
	rw := newResponseWriter(w, r)

	events, err := s.feedbackLog.All()
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to read feedback log")
		rw.InternalError()
		return
	}

	model, err := s.feedbackLog.Model()
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to build feedback model")
		rw.InternalError()
		return
	}

	rw.Success(FeedbackModelResponse{Model: model, EventCount: len(events)})
}
