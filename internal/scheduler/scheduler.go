// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// RetentionSchedule runs the event-log cleanup once a day at 03:15.
const RetentionSchedule = "15 3 * * *"

// EventPruner deletes audit events older than a given age.
type EventPruner interface {
	DeleteOldEvents(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Scheduler handles periodic maintenance such as audit-log retention.
type Scheduler struct {
	cron      *cron.Cron
	pruner    EventPruner
	retention time.Duration
	logger    *slog.Logger
}

// New creates a scheduler that keeps retentionDays of audit events. A
// non-positive retention disables the cleanup job.
func New(pruner EventPruner, retentionDays int, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		pruner:    pruner,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		logger:    logger,
	}
}

// Start registers the jobs and starts the cron runner.
func (s *Scheduler) Start() error {
	if s.retention > 0 && s.pruner != nil {
		if _, err := s.cron.AddFunc(RetentionSchedule, s.pruneEvents); err != nil {
			return fmt.Errorf("adding retention job: %w", err)
		}
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) pruneEvents() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	removed, err := s.pruner.DeleteOldEvents(ctx, s.retention)
	if err != nil {
		s.logger.Error("failed to prune event log", "error", err)
		return
	}
	s.logger.Info("pruned event log", "removed", removed, "retention", s.retention.String())
}
