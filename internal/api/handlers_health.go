// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

package api

import (
	"net/http"

	"github.com/stylescout/stylescout/internal/logging"
)

// handleLiveness reports process liveness. Always healthy while the
// handler can run.
func (s *Server) handleLiveness(w http.ResponseWriter, r *http.Request) {
	newResponseWriter(w, r).Success(map[string]string{"status": "alive"})
}

// handleReadiness reports readiness: the catalog is loaded and the
// key-value store answers reads.
func (s *Server) handleReadiness(w http.ResponseWriter, r *http.Request) {
	rw := newResponseWriter(w, r)

	if len(s.products) == 0 {
		rw.Error(http.StatusServiceUnavailable, ErrCodeInternalError, "catalog not loaded")
		return
	}

	if _, err := s.feedbackLog.All(); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("store not ready")
		rw.Error(http.StatusServiceUnavailable, ErrCodeInternalError, "store unavailable")
		return
	}

	rw.Success(map[string]string{"status": "ready"})
}
