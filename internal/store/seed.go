// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// demoBookings are inserted by Seed when seeding is enabled and the table is empty.
var demoBookings = []CreateBookingParams{
	{Name: "Ana Silva", Email: "ana@example.com", Phone: "+15555550101", EventType: "wedding", EventTime: "14:00"},
	{Name: "Ben Okafor", Email: "ben@example.com", Phone: "+15555550102", EventType: "birthday", EventTime: "18:30"},
	{Name: "Clara Weiss", Email: "clara@example.com", Phone: "+15555550103", EventType: "corporate", EventTime: "09:00"},
	{Name: "Dev Patel", Email: "dev@example.com", Phone: "+15555550104", EventType: "other", EventTime: "11:15"},
}

// Seed inserts demo bookings spread over the coming weeks.
// It does nothing unless enabled, and never touches a table that already has rows.
func Seed(ctx context.Context, db *sql.DB, enabled bool) error {
	if !enabled {
		return nil
	}

	queries := New(db)

	count, err := queries.CountBookings(ctx)
	if err != nil {
		return fmt.Errorf("counting bookings: %w", err)
	}
	if count > 0 {
		slog.Info("bookings already present, skipping seed", "count", count)
		return nil
	}

	now := time.Now().UTC()
	for i, params := range demoBookings {
		params.EventDate = now.AddDate(0, 0, 7*(i+1)).Format("2006-01-02")
		params.CreatedAt = now
		if _, err := queries.CreateBooking(ctx, params); err != nil {
			return fmt.Errorf("creating demo booking %q: %w", params.Name, err)
		}
	}

	slog.Info("seeded demo bookings", "count", len(demoBookings))
	return nil
}
