// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

// Package feedback builds the behavioral affinity model from the user's
// interaction log. The model is a pure fold over the log: rebuilt in
// full every time it is used, never updated incrementally.
package feedback

import "time"

// EventType classifies one user interaction with a result item.
type EventType string

// Interaction event types.
const (
	EventView        EventType = "view"
	EventSave        EventType = "save"
	EventPurchase    EventType = "purchase"
	EventHandoffOpen EventType = "handoff_open"
)

// Weight returns the fixed affinity weight for the event type.
// Unknown types weigh zero and therefore do not affect the model.
func (t EventType) Weight() float64 {
	switch t {
	case EventView:
		return 0.2
	case EventSave:
		return 1.2
	case EventPurchase:
		return 2.5
	case EventHandoffOpen:
		return 0.8
	default:
		return 0
	}
}

// Valid reports whether the event type is one of the known kinds.
func (t EventType) Valid() bool {
	switch t {
	case EventView, EventSave, EventPurchase, EventHandoffOpen:
		return true
	default:
		return false
	}
}

// MaxLogSize is the hard cap on the retained event log. The log keeps
// the most recent events first; older ones are silently evicted.
const MaxLogSize = 400

// Event is one recorded interaction. The product attributes are
// denormalized at record time so the model can be rebuilt without
// consulting the catalog.
type Event struct {
	// ProductID identifies the product interacted with.
	ProductID string `json:"product_id"`

	// Brand is the product's normalized brand key.
	Brand string `json:"brand"`

	// Store is the product's store identifier.
	Store string `json:"store"`

	// Category is the product's category.
	Category string `json:"category"`

	// TopStyles holds the product's top-2 styles by score.
	TopStyles []string `json:"top_styles"`

	// Type is the interaction kind.
	Type EventType `json:"type"`

	// Timestamp is when the interaction happened.
	Timestamp time.Time `json:"timestamp"`
}

// Model is the derived affinity aggregate. Weights are unbounded
// running sums; no normalization or decay is applied.
type Model struct {
	StyleAffinity    map[string]float64 `json:"style_affinity"`
	BrandAffinity    map[string]float64 `json:"brand_affinity"`
	StoreAffinity    map[string]float64 `json:"store_affinity"`
	CategoryAffinity map[string]float64 `json:"category_affinity"`
}

// NewModel returns an empty model with all four maps allocated.
func NewModel() *Model {
	return &Model{
		StyleAffinity:    make(map[string]float64),
		BrandAffinity:    make(map[string]float64),
		StoreAffinity:    make(map[string]float64),
		CategoryAffinity: make(map[string]float64),
	}
}

// Build folds the event log into an affinity model. The fold is
// commutative, so event order never changes the result.
func Build(events []Event) *Model {
	m := NewModel()
	for i := range events {
		e := &events[i]
		w := e.Type.Weight()
		if w == 0 {
			continue
		}

		if e.Brand != "" {
			m.BrandAffinity[e.Brand] += w
		}
		if e.Store != "" {
			m.StoreAffinity[e.Store] += w
		}
		if e.Category != "" {
			m.CategoryAffinity[e.Category] += w
		}
		for _, style := range e.TopStyles {
			m.StyleAffinity[style] += w
		}
	}
	return m
}
