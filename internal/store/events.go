// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const createEvent = `
INSERT INTO events (level, category, message, metadata, ip_address, created_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, level, category, message, metadata, ip_address, created_at`

// CreateEventParams holds the column values of a new audit event.
type CreateEventParams struct {
	Level     string
	Category  string
	Message   string
	Metadata  string
	IpAddress string
	CreatedAt time.Time
}

// CreateEvent inserts an audit event.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) (Event, error) {
	row := q.db.QueryRowContext(ctx, createEvent,
		arg.Level,
		arg.Category,
		arg.Message,
		arg.Metadata,
		arg.IpAddress,
		arg.CreatedAt,
	)
	var e Event
	err := row.Scan(
		&e.ID,
		&e.Level,
		&e.Category,
		&e.Message,
		&e.Metadata,
		&e.IpAddress,
		&e.CreatedAt,
	)
	return e, err
}

const listRecentEvents = `
SELECT id, level, category, message, metadata, ip_address, created_at
FROM events
ORDER BY created_at DESC, id DESC
LIMIT ?`

// ListRecentEvents returns the newest events first.
func (q *Queries) ListRecentEvents(ctx context.Context, limit int64) ([]Event, error) {
	rows, err := q.db.QueryContext(ctx, listRecentEvents, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	items := []Event{}
	for rows.Next() {
		var e Event
		if err := rows.Scan(
			&e.ID,
			&e.Level,
			&e.Category,
			&e.Message,
			&e.Metadata,
			&e.IpAddress,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteEventsBefore = `DELETE FROM events WHERE created_at < ?`

// DeleteEventsBefore removes events created before cutoff and reports how many were removed.
func (q *Queries) DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteEventsBefore, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
