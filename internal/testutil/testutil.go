// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package testutil provides shared test helpers for eventdesk packages.
package testutil

import (
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/eventdesk/internal/store"
)

// TestLogger creates a silent test logger that only outputs errors.
func TestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// TestDB creates a temporary migrated SQLite database that is closed when
// the test finishes.
func TestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := store.NewDB(filepath.Join(t.TempDir(), "eventdesk-test.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := store.Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return db
}

// SessionManager returns an in-memory session manager.
func SessionManager() *scs.SessionManager {
	sm := scs.New()
	sm.Lifetime = 24 * time.Hour
	return sm
}

// CreateBooking inserts a booking row directly through the store.
func CreateBooking(t *testing.T, db *sql.DB, name, eventType, date, tm string) store.Booking {
	t.Helper()

	b, err := store.New(db).CreateBooking(t.Context(), store.CreateBookingParams{
		Name:      name,
		Email:     "guest@example.com",
		Phone:     "555",
		EventType: eventType,
		EventDate: date,
		EventTime: tm,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	return b
}
