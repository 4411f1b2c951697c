// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/olegiv/eventdesk/internal/model"
	"github.com/olegiv/eventdesk/internal/store"
)

// UnknownEventColor is used for event types outside the recognized set.
const UnknownEventColor = "#808080"

var eventColors = map[model.EventType]string{
	model.EventTypeWedding:   "#ff7f50",
	model.EventTypeBirthday:  "#1e90ff",
	model.EventTypeCorporate: "#32cd32",
	model.EventTypeOther:     "#ffa500",
}

// CalendarEvent is one entry of the FullCalendar event feed.
type CalendarEvent struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Start string `json:"start"`
	Color string `json:"color"`
}

// EventColor returns the display color for an event type.
func EventColor(eventType string) string {
	if c, ok := eventColors[model.EventType(eventType)]; ok {
		return c
	}
	return UnknownEventColor
}

// EventTitle composes "<Type> - <name>" with the type capitalized.
func EventTitle(eventType, name string) string {
	return capitalize(eventType) + " - " + name
}

// capitalize upper-cases the first rune of s and lower-cases the rest.
func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	// cases.Caser is stateful and not safe for concurrent use.
	return cases.Upper(language.Und).String(string(first)) + cases.Lower(language.Und).String(s[size:])
}

// BuildCalendarFeed projects bookings into calendar events, preserving order.
func BuildCalendarFeed(bookings []store.Booking) []CalendarEvent {
	events := make([]CalendarEvent, 0, len(bookings))
	for _, b := range bookings {
		events = append(events, CalendarEvent{
			ID:    b.ID,
			Title: EventTitle(b.EventType, b.Name),
			Start: b.EventDate + "T" + b.EventTime,
			Color: EventColor(b.EventType),
		})
	}
	return events
}
