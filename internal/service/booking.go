// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/eventdesk/internal/metrics"
	"github.com/olegiv/eventdesk/internal/model"
	"github.com/olegiv/eventdesk/internal/store"
)

// Notifier delivers the confirmation for a stored booking.
type Notifier interface {
	BookingCreated(ctx context.Context, b store.Booking) error
}

// AuditLogger records lifecycle events for the admin dashboard.
type AuditLogger interface {
	LogBookingEvent(ctx context.Context, level, message, ipAddress string, metadata map[string]any) error
	LogNotificationEvent(ctx context.Context, level, message string, metadata map[string]any) error
}

// BookingService creates, lists and deletes bookings.
type BookingService struct {
	queries  *store.Queries
	notifier Notifier
	audit    AuditLogger
	logger   *slog.Logger
	now      func() time.Time
}

// NewBookingService creates a BookingService. audit may be nil.
func NewBookingService(db *sql.DB, notifier Notifier, audit AuditLogger, logger *slog.Logger) *BookingService {
	return &BookingService{
		queries:  store.New(db),
		notifier: notifier,
		audit:    audit,
		logger:   logger,
		now:      time.Now,
	}
}

// Create stores the booking and then sends its confirmation exactly once.
// A delivery failure does not undo the insert: the stored record is returned
// together with an error wrapping ErrNotification.
func (s *BookingService) Create(ctx context.Context, nb NewBooking, clientIP string) (store.Booking, error) {
	b, err := s.queries.CreateBooking(ctx, store.CreateBookingParams{
		Name:      nb.Name,
		Email:     nb.Email,
		Phone:     nb.Phone,
		EventType: string(nb.EventType),
		EventDate: nb.Date,
		EventTime: nb.Time,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return store.Booking{}, fmt.Errorf("creating booking: %w", err)
	}

	metrics.IncBookingCreated(b.EventType)
	s.logger.Info("booking created", "booking_id", b.ID, "event_type", b.EventType, "date", b.EventDate)
	s.logAudit(ctx, func(a AuditLogger) error {
		return a.LogBookingEvent(ctx, model.EventLevelInfo, "Booking created", clientIP, map[string]any{
			"booking_id": b.ID,
			"event_type": b.EventType,
			"date":       b.EventDate,
		})
	})

	if err := s.notifier.BookingCreated(ctx, b); err != nil {
		metrics.IncNotification(metrics.OutcomeFailure)
		s.logAudit(ctx, func(a AuditLogger) error {
			return a.LogNotificationEvent(ctx, model.EventLevelError, "Booking confirmation failed", map[string]any{
				"booking_id": b.ID,
				"error":      err.Error(),
			})
		})
		return b, fmt.Errorf("%w for booking %d: %w", ErrNotification, b.ID, err)
	}

	metrics.IncNotification(metrics.OutcomeSuccess)
	return b, nil
}

// List returns all bookings ordered by event date, then time.
func (s *BookingService) List(ctx context.Context) ([]store.Booking, error) {
	bookings, err := s.queries.ListBookingsByDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}
	return bookings, nil
}

// ListAll returns all bookings in creation order.
func (s *BookingService) ListAll(ctx context.Context) ([]store.Booking, error) {
	bookings, err := s.queries.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}
	return bookings, nil
}

// Get returns one booking or ErrBookingNotFound.
func (s *BookingService) Get(ctx context.Context, id int64) (store.Booking, error) {
	b, err := s.queries.GetBookingByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Booking{}, ErrBookingNotFound
	}
	if err != nil {
		return store.Booking{}, fmt.Errorf("getting booking %d: %w", id, err)
	}
	return b, nil
}

// Delete removes the booking with id or returns ErrBookingNotFound.
func (s *BookingService) Delete(ctx context.Context, id int64, clientIP string) error {
	affected, err := s.queries.DeleteBooking(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting booking %d: %w", id, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	metrics.IncBookingDeleted()
	s.logger.Info("booking deleted", "booking_id", id)
	s.logAudit(ctx, func(a AuditLogger) error {
		return a.LogBookingEvent(ctx, model.EventLevelInfo, "Booking deleted", clientIP, map[string]any{
			"booking_id": id,
		})
	})
	return nil
}

// Count returns the number of stored bookings.
func (s *BookingService) Count(ctx context.Context) (int64, error) {
	n, err := s.queries.CountBookings(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting bookings: %w", err)
	}
	return n, nil
}

// logAudit runs fn when an audit logger is configured. Audit failures never
// fail the operation.
func (s *BookingService) logAudit(ctx context.Context, fn func(AuditLogger) error) {
	if s.audit == nil {
		return
	}
	if err := fn(s.audit); err != nil {
		s.logger.DebugContext(ctx, "audit event not recorded", "error", err)
	}
}
