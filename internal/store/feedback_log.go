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

	"github.com/stylescout/stylescout/internal/feedback"
)

// Key for the single feedback event log. The log is small (hard cap
// 400 events) so it is stored as one JSON document rather than one key
// per event; a record is a single read-modify-write.
const feedbackLogKey = "feedback:log"

// FeedbackLog persists the interaction event log most-recent-first.
type FeedbackLog struct {
	db     *badger.DB
	logger zerolog.Logger
}

// NewFeedbackLog creates a feedback log over an open database.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewFeedbackLog(db *badger.DB, logger zerolog.Logger) *FeedbackLog {
	return &FeedbackLog{
		db:     db,
		logger: logger.With().Str("component", "feedback_log").Logger(),
	}
}

// Record prepends the event to the log and truncates to the retention
// cap. The newest event is always at index zero.
func (l *FeedbackLog) Record(event feedback.Event) error {
	events, err := l.All()
	if err != nil {
		return err
	}

	updated := make([]feedback.Event, 0, len(events)+1)
	updated = append(updated, event)
	updated = append(updated, events...)
	if len(updated) > feedback.MaxLogSize {
		updated = updated[:feedback.MaxLogSize]
	}

	data, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("marshal feedback log: %w", err)
	}

	return l.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(feedbackLogKey), data)
	})
}

// All returns the stored log, newest first. A missing log yields an
// empty slice. A corrupt log is discarded and cleared so the next
// record starts clean.
func (l *FeedbackLog) All() ([]feedback.Event, error) {
	var events []feedback.Event
	corrupt := false

	err := l.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(feedbackLogKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get feedback log: %w", err)
		}

		return item.Value(func(val []byte) error {
			if jsonErr := json.Unmarshal(val, &events); jsonErr != nil {
				l.logger.Warn().Err(jsonErr).Msg("discarding corrupt feedback log")
				corrupt = true
				events = nil
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	if corrupt {
		if clearErr := l.Clear(); clearErr != nil {
			return nil, clearErr
		}
	}

	return events, nil
}

// Clear removes the entire log.
func (l *FeedbackLog) Clear() error {
	return l.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(feedbackLogKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}

// Model rebuilds the affinity model from the full stored log.
func (l *FeedbackLog) Model() (*feedback.Model, error) {
	events, err := l.All()
	if err != nil {
		return nil, err
	}
	return feedback.Build(events), nil
}
