// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

// Package store persists the feedback event log and the preference
// snapshot in a local BadgerDB key-value store. Corrupt records are
// treated as absent, never as errors: the data is a convenience cache
// the wizard can always rebuild.
package store

import (
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/stylescout/stylescout/internal/logging"
)

// Options configures the local key-value store.
type Options struct {
	// Path is the on-disk directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps all data in memory. Used in tests and for
	// ephemeral deployments.
	InMemory bool
}

// Open opens the BadgerDB instance. The caller owns the returned DB
// and must Close it on shutdown.
func Open(opts Options) (*badger.DB, error) {
	badgerOpts := badger.DefaultOptions(opts.Path).
		WithInMemory(opts.InMemory).
		WithLogger(badgerLogger{logging.With().Str("component", "badger").Logger()})

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", opts.Path, err)
	}
	return db, nil
}

// RunGC runs Badger value-log garbage collection until no more space
// can be reclaimed. Called periodically by the supervisor; a no-op for
// in-memory databases.
func RunGC(db *badger.DB) {
	for {
		if err := db.RunValueLogGC(0.5); err != nil {
			return
		}
	}
}

// GCInterval is how often value-log garbage collection runs.
const GCInterval = 10 * time.Minute

// badgerLogger adapts zerolog to badger.Logger.
type badgerLogger struct {
	logger zerolog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error().Msgf(format, args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn().Msgf(format, args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

var _ badger.Logger = badgerLogger{}
