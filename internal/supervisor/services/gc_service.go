// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

package services

import (
	"context"
	"time"
)

// GCRunner is the store maintenance hook the ticker invokes. Satisfied
// by a closure over store.RunGC.
type GCRunner func()

// StoreGCService runs value-log garbage collection on a fixed interval
// until its context is canceled.
type StoreGCService struct {
	run      GCRunner
	interval time.Duration
}

// NewStoreGCService wraps a GC runner as a supervised ticker service.
func NewStoreGCService(run GCRunner, interval time.Duration) *StoreGCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &StoreGCService{run: run, interval: interval}
}

// Serve implements suture.Service.
func (s *StoreGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.run()
		}
	}
}

func (s *StoreGCService) String() string {
	return "store-gc"
}
