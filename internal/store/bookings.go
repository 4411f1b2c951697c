// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const bookingColumns = `id, name, email, phone, event_type, event_date, event_time, created_at`

const createBooking = `
INSERT INTO bookings (name, email, phone, event_type, event_date, event_time, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING ` + bookingColumns

// CreateBookingParams holds the column values of a new booking.
type CreateBookingParams struct {
	Name      string
	Email     string
	Phone     string
	EventType string
	EventDate string
	EventTime string
	CreatedAt time.Time
}

// CreateBooking inserts a booking and returns the stored row with its generated id.
func (q *Queries) CreateBooking(ctx context.Context, arg CreateBookingParams) (Booking, error) {
	row := q.db.QueryRowContext(ctx, createBooking,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.EventType,
		arg.EventDate,
		arg.EventTime,
		arg.CreatedAt,
	)
	var b Booking
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Email,
		&b.Phone,
		&b.EventType,
		&b.EventDate,
		&b.EventTime,
		&b.CreatedAt,
	)
	return b, err
}

const getBookingByID = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`

// GetBookingByID returns sql.ErrNoRows when the booking does not exist.
func (q *Queries) GetBookingByID(ctx context.Context, id int64) (Booking, error) {
	row := q.db.QueryRowContext(ctx, getBookingByID, id)
	var b Booking
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Email,
		&b.Phone,
		&b.EventType,
		&b.EventDate,
		&b.EventTime,
		&b.CreatedAt,
	)
	return b, err
}

const listBookingsByDate = `SELECT ` + bookingColumns + `
FROM bookings
ORDER BY event_date ASC, event_time ASC, id ASC`

// ListBookingsByDate returns every booking ordered ascending by event date.
func (q *Queries) ListBookingsByDate(ctx context.Context) ([]Booking, error) {
	return q.listBookings(ctx, listBookingsByDate)
}

const listBookings = `SELECT ` + bookingColumns + ` FROM bookings ORDER BY id ASC`

// ListBookings returns every booking in insertion order.
func (q *Queries) ListBookings(ctx context.Context) ([]Booking, error) {
	return q.listBookings(ctx, listBookings)
}

func (q *Queries) listBookings(ctx context.Context, query string) ([]Booking, error) {
	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	items := []Booking{}
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID,
			&b.Name,
			&b.Email,
			&b.Phone,
			&b.EventType,
			&b.EventDate,
			&b.EventTime,
			&b.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteBooking = `DELETE FROM bookings WHERE id = ?`

// DeleteBooking removes a booking and reports how many rows were deleted.
func (q *Queries) DeleteBooking(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteBooking, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const countBookings = `SELECT COUNT(*) FROM bookings`

// CountBookings returns the number of stored bookings.
func (q *Queries) CountBookings(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countBookings).Scan(&count)
	return count, err
}
