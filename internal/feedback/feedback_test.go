// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

package feedback

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
	"time"
)

func TestEventTypeWeight(t *testing.T) {
	tests := []struct {
		eventType EventType
		want      float64
	}{
		{EventView, 0.2},
		{EventSave, 1.2},
		{EventPurchase, 2.5},
		{EventHandoffOpen, 0.8},
		{EventType("unknown"), 0},
		{EventType(""), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.eventType), func(t *testing.T) {
			if got := tt.eventType.Weight(); got != tt.want {
				t.Errorf("Weight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildEmptyLog(t *testing.T) {
	m := Build(nil)

	if len(m.StyleAffinity) != 0 || len(m.BrandAffinity) != 0 ||
		len(m.StoreAffinity) != 0 || len(m.CategoryAffinity) != 0 {
		t.Error("empty log must produce a neutral model with no affinities")
	}
}

func TestBuildAccumulates(t *testing.T) {
	events := []Event{
		{ProductID: "a", Brand: "uniqlo", Store: "uniqlo", Category: "tops",
			TopStyles: []string{"casual", "minimalist"}, Type: EventView},
		{ProductID: "a", Brand: "uniqlo", Store: "uniqlo", Category: "tops",
			TopStyles: []string{"casual", "minimalist"}, Type: EventSave},
		{ProductID: "b", Brand: "nike", Store: "nike", Category: "shoes",
			TopStyles: []string{"casual", "athleisure"}, Type: EventPurchase},
	}

	m := Build(events)

	// view 0.2 + save 1.2 on uniqlo; purchase 2.5 on nike.
	if got := m.BrandAffinity["uniqlo"]; math.Abs(got-1.4) > 1e-9 {
		t.Errorf("uniqlo brand affinity = %v, want 1.4", got)
	}
	if got := m.BrandAffinity["nike"]; got != 2.5 {
		t.Errorf("nike brand affinity = %v, want 2.5", got)
	}
	// casual appears in all three events.
	if got := m.StyleAffinity["casual"]; math.Abs(got-3.9) > 1e-9 {
		t.Errorf("casual style affinity = %v, want 3.9", got)
	}
	if got := m.CategoryAffinity["shoes"]; got != 2.5 {
		t.Errorf("shoes category affinity = %v, want 2.5", got)
	}
}

func TestBuildUnknownTypesIgnored(t *testing.T) {
	events := []Event{
		{ProductID: "a", Brand: "zara", Store: "zara", Category: "tops",
			TopStyles: []string{"trendy"}, Type: EventType("hover")},
	}

	m := Build(events)
	if len(m.BrandAffinity) != 0 {
		t.Error("unknown event types must contribute nothing")
	}
}

func TestBuildCommutative(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	events := []Event{
		{ProductID: "a", Brand: "cos", Store: "cos", Category: "tops", TopStyles: []string{"minimalist", "classic"}, Type: EventView, Timestamp: base},
		{ProductID: "b", Brand: "zara", Store: "zara", Category: "dresses", TopStyles: []string{"romantic", "trendy"}, Type: EventSave, Timestamp: base.Add(time.Minute)},
		{ProductID: "c", Brand: "nike", Store: "nike", Category: "shoes", TopStyles: []string{"casual", "athleisure"}, Type: EventPurchase, Timestamp: base.Add(2 * time.Minute)},
		{ProductID: "a", Brand: "cos", Store: "cos", Category: "tops", TopStyles: []string{"minimalist", "classic"}, Type: EventHandoffOpen, Timestamp: base.Add(3 * time.Minute)},
	}

	want := Build(events)

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 10; trial++ {
		shuffled := make([]Event, len(events))
		copy(shuffled, events)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		if got := Build(shuffled); !reflect.DeepEqual(got, want) {
			t.Fatalf("Build is order-sensitive: %+v vs %+v", got, want)
		}
	}
}
