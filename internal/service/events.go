// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service holds the booking lifecycle, intake validation, calendar
// projection and the audit event log.
package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/eventdesk/internal/model"
	"github.com/olegiv/eventdesk/internal/store"
)

// EventService writes and reads the audit event log.
type EventService struct {
	queries *store.Queries
}

// NewEventService creates a new EventService.
func NewEventService(db *sql.DB) *EventService {
	return &EventService{queries: store.New(db)}
}

// LogEvent creates a new event log entry.
func (s *EventService) LogEvent(ctx context.Context, level, category, message, ipAddress string, metadata map[string]any) error {
	metadataJSON := "{}"
	if len(metadata) > 0 {
		if b, err := json.Marshal(metadata); err == nil {
			metadataJSON = string(b)
		}
	}

	_, err := s.queries.CreateEvent(ctx, store.CreateEventParams{
		Level:     level,
		Category:  category,
		Message:   message,
		Metadata:  metadataJSON,
		IpAddress: ipAddress,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		// Debug level: WARN+ would be written back into the events table.
		slog.Debug("failed to log event", "error", err, "message", message)
		return fmt.Errorf("creating event: %w", err)
	}
	return nil
}

// LogBookingEvent logs a booking-related event.
func (s *EventService) LogBookingEvent(ctx context.Context, level, message, ipAddress string, metadata map[string]any) error {
	return s.LogEvent(ctx, level, model.EventCategoryBooking, message, ipAddress, metadata)
}

// LogAuthEvent logs an authentication-related event.
func (s *EventService) LogAuthEvent(ctx context.Context, level, message, ipAddress string, metadata map[string]any) error {
	return s.LogEvent(ctx, level, model.EventCategoryAuth, message, ipAddress, metadata)
}

// LogNotificationEvent logs a confirmation-delivery event.
func (s *EventService) LogNotificationEvent(ctx context.Context, level, message string, metadata map[string]any) error {
	return s.LogEvent(ctx, level, model.EventCategoryNotify, message, "", metadata)
}

// RecentEvents returns at most limit events, newest first.
func (s *EventService) RecentEvents(ctx context.Context, limit int64) ([]store.Event, error) {
	events, err := s.queries.ListRecentEvents(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return events, nil
}

// DeleteOldEvents removes events older than the specified duration.
func (s *EventService) DeleteOldEvents(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	n, err := s.queries.DeleteEventsBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("deleting events before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return n, nil
}
