// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "time"

// Booking is a row of the bookings table.
// EventDate is stored as YYYY-MM-DD and EventTime as HH:MM.
type Booking struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	EventType string
	EventDate string
	EventTime string
	CreatedAt time.Time
}

// Event is a row of the events (audit log) table.
type Event struct {
	ID        int64
	Level     string
	Category  string
	Message   string
	Metadata  string
	IpAddress string
	CreatedAt time.Time
}
