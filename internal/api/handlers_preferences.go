// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

package api

import (
	"errors"
	"net/http"

	"github.com/stylescout/stylescout/internal/logging"
	"github.com/stylescout/stylescout/internal/store"
)

// handleGetPreferences returns the stored preference snapshot. A
// missing or corrupt snapshot is a 404, never a server error.
func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	rw := newResponseWriter(w, r)

	prefs, err := s.snapshots.Get()
	if errors.Is(err, store.ErrNoSnapshot) {
		rw.NotFound("no preference snapshot")
		return
	}
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to read preference snapshot")
		rw.InternalError()
		return
	}

	rw.Success(prefs)
}

// handlePutPreferences stores the profile as the new snapshot.
func (s *Server) handlePutPreferences(w http.ResponseWriter, r *http.Request) {
	rw := newResponseWriter(w, r)

	var req PreferencesRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		rw.ValidationFailed(err.Error(), validationDetails(err))
		return
	}

	prefs := req.toPreferences()
	if err := s.snapshots.Put(&prefs); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to store preference snapshot")
		rw.InternalError()
		return
	}

	rw.Success(prefs)
}

// handleDeletePreferences removes the snapshot.
func (s *Server) handleDeletePreferences(w http.ResponseWriter, r *http.Request) {
	rw := newResponseWriter(w, r)

	if err := s.snapshots.Delete(); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to delete preference snapshot")
		rw.InternalError()
		return
	}

	rw.NoContent()
}
