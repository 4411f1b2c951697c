// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging provides a slog handler that mirrors warnings and errors
// into the audit event table shown on the admin dashboard.
package logging

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/olegiv/eventdesk/internal/model"
	"github.com/olegiv/eventdesk/internal/store"
)

// Attribute keys with special meaning to EventLogHandler.
const (
	AttrCategory = "category"
	AttrIP       = "ip"
)

// eventWriter is the subset of store.Queries the handler needs.
type eventWriter interface {
	CreateEvent(ctx context.Context, arg store.CreateEventParams) (store.Event, error)
}

// EventLogHandler is a slog.Handler that wraps another handler and also
// writes records at or above its level to the events table.
type EventLogHandler struct {
	inner  slog.Handler
	events eventWriter
	level  slog.Level
	attrs  []slog.Attr
}

// NewEventLogHandler wraps inner; WARN and above are also persisted.
func NewEventLogHandler(inner slog.Handler, db *sql.DB) *EventLogHandler {
	return NewEventLogHandlerWithLevel(inner, db, slog.LevelWarn)
}

// NewEventLogHandlerWithLevel creates a new EventLogHandler with a custom minimum level.
func NewEventLogHandlerWithLevel(inner slog.Handler, db *sql.DB, level slog.Level) *EventLogHandler {
	return &EventLogHandler{
		inner:  inner,
		events: store.New(db),
		level:  level,
	}
}

// Enabled implements slog.Handler.
func (h *EventLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level) || level >= h.level
}

// Handle implements slog.Handler.
func (h *EventLogHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.inner.Enabled(ctx, r.Level) {
		if err := h.inner.Handle(ctx, r); err != nil {
			return err
		}
	}

	if r.Level >= h.level {
		h.writeToEventLog(ctx, r)
	}
	return nil
}

// WithAttrs implements slog.Handler.
func (h *EventLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &EventLogHandler{
		inner:  h.inner.WithAttrs(attrs),
		events: h.events,
		level:  h.level,
		attrs:  append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

// WithGroup implements slog.Handler.
func (h *EventLogHandler) WithGroup(name string) slog.Handler {
	return &EventLogHandler{
		inner:  h.inner.WithGroup(name),
		events: h.events,
		level:  h.level,
		attrs:  h.attrs,
	}
}

func (h *EventLogHandler) writeToEventLog(ctx context.Context, r slog.Record) {
	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})

	var category, ip string
	metadata := make(map[string]string, len(attrs))
	for _, a := range attrs {
		switch a.Key {
		case AttrCategory:
			category = a.Value.String()
		case AttrIP:
			ip = a.Value.String()
		default:
			metadata[a.Key] = a.Value.String()
		}
	}
	if category == "" {
		category = inferCategory(r.Message)
	}

	metaJSON := "{}"
	if len(metadata) > 0 {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	createdAt := r.Time
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	// Detached from the request so a cancelled request still gets audited.
	// Errors are dropped: logging them would recurse into this handler.
	_, _ = h.events.CreateEvent(context.WithoutCancel(ctx), store.CreateEventParams{
		Level:     eventLevel(r.Level),
		Category:  category,
		Message:   r.Message,
		Metadata:  metaJSON,
		IpAddress: ip,
		CreatedAt: createdAt.UTC(),
	})
}

func eventLevel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return model.EventLevelError
	case level >= slog.LevelWarn:
		return model.EventLevelWarning
	default:
		return model.EventLevelInfo
	}
}

func inferCategory(message string) string {
	msg := strings.ToLower(message)
	switch {
	case strings.Contains(msg, "login") || strings.Contains(msg, "logout") || strings.Contains(msg, "auth") || strings.Contains(msg, "admin access"):
		return model.EventCategoryAuth
	case strings.Contains(msg, "mail") || strings.Contains(msg, "notif") || strings.Contains(msg, "confirmation"):
		return model.EventCategoryNotify
	case strings.Contains(msg, "booking") || strings.Contains(msg, "submission"):
		return model.EventCategoryBooking
	default:
		return model.EventCategorySystem
	}
}
