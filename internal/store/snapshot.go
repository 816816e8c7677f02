// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

package store

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/stylescout/stylescout/internal/match"
)

// Key for the single preference snapshot.
const snapshotKey = "preferences:snapshot"

// ErrNoSnapshot is returned when no preference snapshot is stored.
var ErrNoSnapshot = errors.New("no preference snapshot")

// Snapshots persists the last-known preference profile so a returning
// user can resume where they left off. Opaque convenience data: a
// corrupt snapshot reads as absent.
type Snapshots struct {
	db     *badger.DB
	logger zerolog.Logger
}

// NewSnapshots creates a snapshot store over an open database.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSnapshots(db *badger.DB, logger zerolog.Logger) *Snapshots {
	return &Snapshots{
		db:     db,
		logger: logger.With().Str("component", "snapshots").Logger(),
	}
}

// Put stores the preference profile, replacing any previous snapshot.
func (s *Snapshots) Put(prefs *match.Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("marshal preference snapshot: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(snapshotKey), data)
	})
}

// Get returns the stored snapshot, or ErrNoSnapshot when none exists
// or the stored record does not decode.
func (s *Snapshots) Get() (*match.Preferences, error) {
	var prefs match.Preferences
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(snapshotKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get preference snapshot: %w", err)
		}

		return item.Value(func(val []byte) error {
			if jsonErr := json.Unmarshal(val, &prefs); jsonErr != nil {
				s.logger.Warn().Err(jsonErr).Msg("ignoring corrupt preference snapshot")
				return nil
			}
			found = true
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, ErrNoSnapshot
	}
	return &prefs, nil
}

// Delete removes the snapshot.
func (s *Snapshots) Delete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(snapshotKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}
