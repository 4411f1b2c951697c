// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

// testDB creates a temporary migrated test database.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "eventdesk-test.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return db
}

func createTestBooking(t *testing.T, q *Queries, name, date, tm string) Booking {
	t.Helper()

	b, err := q.CreateBooking(context.Background(), CreateBookingParams{
		Name:      name,
		Email:     "guest@example.com",
		Phone:     "555",
		EventType: "wedding",
		EventDate: date,
		EventTime: tm,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	return b
}

func TestMigrate_Idempotent(t *testing.T) {
	db := testDB(t)

	if err := Migrate(db); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestCreateBooking(t *testing.T) {
	db := testDB(t)
	q := New(db)

	b := createTestBooking(t, q, "Ana", "2024-06-01", "14:00")

	if b.ID == 0 {
		t.Error("expected generated ID")
	}
	if b.Name != "Ana" || b.EventDate != "2024-06-01" || b.EventTime != "14:00" {
		t.Errorf("unexpected booking: %+v", b)
	}

	got, err := q.GetBookingByID(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("GetBookingByID: %v", err)
	}
	if got.Email != "guest@example.com" || got.EventType != "wedding" {
		t.Errorf("GetBookingByID = %+v", got)
	}
}

func TestCreateBooking_UniqueIDs(t *testing.T) {
	db := testDB(t)
	q := New(db)

	seen := make(map[int64]bool)
	for i := 0; i < 5; i++ {
		b := createTestBooking(t, q, "Guest", "2024-06-01", "10:00")
		if seen[b.ID] {
			t.Fatalf("duplicate ID %d", b.ID)
		}
		seen[b.ID] = true
	}
}

func TestGetBookingByID_NotFound(t *testing.T) {
	db := testDB(t)
	q := New(db)

	_, err := q.GetBookingByID(context.Background(), 999)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("err = %v, want sql.ErrNoRows", err)
	}
}

func TestListBookingsByDate(t *testing.T) {
	db := testDB(t)
	q := New(db)

	createTestBooking(t, q, "Late", "2024-08-01", "10:00")
	createTestBooking(t, q, "Early", "2024-05-01", "10:00")
	createTestBooking(t, q, "Middle-evening", "2024-06-01", "19:00")
	createTestBooking(t, q, "Middle-morning", "2024-06-01", "08:00")

	bookings, err := q.ListBookingsByDate(context.Background())
	if err != nil {
		t.Fatalf("ListBookingsByDate: %v", err)
	}

	want := []string{"Early", "Middle-morning", "Middle-evening", "Late"}
	if len(bookings) != len(want) {
		t.Fatalf("len = %d, want %d", len(bookings), len(want))
	}
	for i, name := range want {
		if bookings[i].Name != name {
			t.Errorf("bookings[%d].Name = %q, want %q", i, bookings[i].Name, name)
		}
	}
}

func TestListBookings_InsertionOrder(t *testing.T) {
	db := testDB(t)
	q := New(db)

	first := createTestBooking(t, q, "First", "2024-08-01", "10:00")
	second := createTestBooking(t, q, "Second", "2024-05-01", "10:00")

	bookings, err := q.ListBookings(context.Background())
	if err != nil {
		t.Fatalf("ListBookings: %v", err)
	}
	if len(bookings) != 2 || bookings[0].ID != first.ID || bookings[1].ID != second.ID {
		t.Errorf("ListBookings = %+v", bookings)
	}
}

func TestListBookings_Empty(t *testing.T) {
	db := testDB(t)
	q := New(db)

	bookings, err := q.ListBookingsByDate(context.Background())
	if err != nil {
		t.Fatalf("ListBookingsByDate: %v", err)
	}
	if bookings == nil || len(bookings) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", bookings)
	}
}

func TestDeleteBooking(t *testing.T) {
	db := testDB(t)
	q := New(db)
	ctx := context.Background()

	keep := createTestBooking(t, q, "Keep", "2024-06-01", "10:00")
	drop := createTestBooking(t, q, "Drop", "2024-06-02", "10:00")

	affected, err := q.DeleteBooking(ctx, drop.ID)
	if err != nil {
		t.Fatalf("DeleteBooking: %v", err)
	}
	if affected != 1 {
		t.Errorf("affected = %d, want 1", affected)
	}

	affected, err = q.DeleteBooking(ctx, drop.ID)
	if err != nil {
		t.Fatalf("DeleteBooking again: %v", err)
	}
	if affected != 0 {
		t.Errorf("affected on missing row = %d, want 0", affected)
	}

	count, err := q.CountBookings(ctx)
	if err != nil {
		t.Fatalf("CountBookings: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if _, err := q.GetBookingByID(ctx, keep.ID); err != nil {
		t.Errorf("kept booking missing: %v", err)
	}
}

func TestEvents(t *testing.T) {
	db := testDB(t)
	q := New(db)
	ctx := context.Background()

	old := time.Now().UTC().Add(-48 * time.Hour)
	recent := time.Now().UTC()

	for _, at := range []time.Time{old, recent} {
		if _, err := q.CreateEvent(ctx, CreateEventParams{
			Level:     "info",
			Category:  "booking",
			Message:   "Booking created",
			Metadata:  "{}",
			CreatedAt: at,
		}); err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
	}

	events, err := q.ListRecentEvents(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	if !events[0].CreatedAt.After(events[1].CreatedAt) {
		t.Error("expected newest event first")
	}

	removed, err := q.DeleteEventsBefore(ctx, time.Now().UTC().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("DeleteEventsBefore: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
}

func TestSeed(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	if err := Seed(ctx, db, false); err != nil {
		t.Fatalf("Seed disabled: %v", err)
	}
	if count, _ := q.CountBookings(ctx); count != 0 {
		t.Fatalf("disabled seed inserted %d rows", count)
	}

	if err := Seed(ctx, db, true); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if err := Seed(ctx, db, true); err != nil {
		t.Fatalf("Seed again: %v", err)
	}

	count, err := q.CountBookings(ctx)
	if err != nil {
		t.Fatalf("CountBookings: %v", err)
	}
	if count != int64(len(demoBookings)) {
		t.Errorf("count = %d, want %d", count, len(demoBookings))
	}
}
