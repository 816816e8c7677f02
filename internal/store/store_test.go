// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

package store

import (
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/stylescout/stylescout/internal/catalog"
	"github.com/stylescout/stylescout/internal/feedback"
	"github.com/stylescout/stylescout/internal/match"
)

func testDB(t *testing.T) *badger.DB {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("open in-memory badger: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Errorf("close badger: %v", closeErr)
		}
	})
	return db
}

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func testEvent(id string, eventType feedback.EventType) feedback.Event {
	return feedback.Event{
		ProductID: id,
		Brand:     "uniqlo",
		Store:     "uniqlo",
		Category:  "tops",
		TopStyles: []string{"casual", "minimalist"},
		Type:      eventType,
		Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestFeedbackLogRecordAndAll(t *testing.T) {
	log := NewFeedbackLog(testDB(t), testLogger())

	if err := log.Record(testEvent("a", feedback.EventView)); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := log.Record(testEvent("b", feedback.EventSave)); err != nil {
		t.Fatalf("record: %v", err)
	}

	events, err := log.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("log size = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].ProductID != "b" || events[1].ProductID != "a" {
		t.Errorf("log order = [%s %s], want [b a]", events[0].ProductID, events[1].ProductID)
	}
}

func TestFeedbackLogEviction(t *testing.T) {
	log := NewFeedbackLog(testDB(t), testLogger())

	for i := 0; i < feedback.MaxLogSize+1; i++ {
		event := testEvent(fmt.Sprintf("p%d", i), feedback.EventView)
		if err := log.Record(event); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	events, err := log.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(events) != feedback.MaxLogSize {
		t.Fatalf("log size = %d, want %d", len(events), feedback.MaxLogSize)
	}
	// The oldest event (p0) must have been evicted; the newest kept.
	if events[0].ProductID != fmt.Sprintf("p%d", feedback.MaxLogSize) {
		t.Errorf("newest event = %s, want p%d", events[0].ProductID, feedback.MaxLogSize)
	}
	for _, e := range events {
		if e.ProductID == "p0" {
			t.Error("oldest event should have been evicted")
		}
	}
}

func TestFeedbackLogEmptyAndClear(t *testing.T) {
	log := NewFeedbackLog(testDB(t), testLogger())

	events, err := log.All()
	if err != nil {
		t.Fatalf("all on empty: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("empty log returned %d events", len(events))
	}

	if err := log.Record(testEvent("a", feedback.EventView)); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := log.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	events, err = log.All()
	if err != nil {
		t.Fatalf("all after clear: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("cleared log returned %d events", len(events))
	}
}

func TestFeedbackLogCorruptDiscarded(t *testing.T) {
	db := testDB(t)
	log := NewFeedbackLog(db, testLogger())

	err := db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(feedbackLogKey), []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("seed corrupt value: %v", err)
	}

	events, err := log.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("corrupt log should read as empty, got %d events", len(events))
	}

	// After discard the log works normally again.
	if err := log.Record(testEvent("a", feedback.EventView)); err != nil {
		t.Fatalf("record after corruption: %v", err)
	}
	events, err = log.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("log size after recovery = %d, want 1", len(events))
	}
}

func TestFeedbackLogModel(t *testing.T) {
	log := NewFeedbackLog(testDB(t), testLogger())

	if err := log.Record(testEvent("a", feedback.EventPurchase)); err != nil {
		t.Fatalf("record: %v", err)
	}

	model, err := log.Model()
	if err != nil {
		t.Fatalf("model: %v", err)
	}
	if got := model.BrandAffinity["uniqlo"]; got != 2.5 {
		t.Errorf("brand affinity = %v, want 2.5", got)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	snaps := NewSnapshots(testDB(t), testLogger())

	prefs := &match.Preferences{
		Gender:     catalog.GenderWomens,
		Categories: []catalog.Category{catalog.CategoryTops},
		Styles:     []string{"minimalist"},
		Budget:     150,
		Sizes:      map[string]string{"tops": "M"},
	}

	if err := snaps.Put(prefs); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := snaps.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Gender != prefs.Gender || got.Budget != prefs.Budget {
		t.Errorf("snapshot round trip mismatch: %+v", got)
	}
	if got.Sizes["tops"] != "M" {
		t.Errorf("sizes not preserved: %+v", got.Sizes)
	}
}

func TestSnapshotMissing(t *testing.T) {
	snaps := NewSnapshots(testDB(t), testLogger())

	if _, err := snaps.Get(); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("get on empty store = %v, want ErrNoSnapshot", err)
	}
}

func TestSnapshotCorruptReadsAsAbsent(t *testing.T) {
	db := testDB(t)
	snaps := NewSnapshots(db, testLogger())

	err := db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(snapshotKey), []byte("garbage"))
	})
	if err != nil {
		t.Fatalf("seed corrupt value: %v", err)
	}

	if _, err := snaps.Get(); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("corrupt snapshot = %v, want ErrNoSnapshot", err)
	}
}

func TestSnapshotDelete(t *testing.T) {
	snaps := NewSnapshots(testDB(t), testLogger())

	if err := snaps.Delete(); err != nil {
		t.Fatalf("delete on empty store: %v", err)
	}

	if err := snaps.Put(&match.Preferences{Budget: 100}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := snaps.Delete(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := snaps.Get(); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("get after delete = %v, want ErrNoSnapshot", err)
	}
}
