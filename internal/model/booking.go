// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain constants shared by the store, service and
// handler layers.
package model

import "strings"

// EventType is the kind of event a visitor books.
type EventType string

// Recognized event types.
const (
	EventTypeWedding   EventType = "wedding"
	EventTypeBirthday  EventType = "birthday"
	EventTypeCorporate EventType = "corporate"
	EventTypeOther     EventType = "other"
)

// EventTypes lists the recognized event types in form display order.
var EventTypes = []EventType{
	EventTypeWedding,
	EventTypeBirthday,
	EventTypeCorporate,
	EventTypeOther,
}

var eventTypeLabels = map[EventType]string{
	EventTypeWedding:   "Wedding",
	EventTypeBirthday:  "Birthday Party",
	EventTypeCorporate: "Corporate Event",
	EventTypeOther:     "Other",
}

// ParseEventType normalizes s and reports whether it names a recognized event type.
func ParseEventType(s string) (EventType, bool) {
	t := EventType(strings.ToLower(strings.TrimSpace(s)))
	_, ok := eventTypeLabels[t]
	return t, ok
}

// Valid reports whether t is one of the recognized event types.
func (t EventType) Valid() bool {
	_, ok := eventTypeLabels[t]
	return ok
}

// Label returns the human readable form option for t.
func (t EventType) Label() string {
	if label, ok := eventTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Date and time layouts used for stored booking values.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)
