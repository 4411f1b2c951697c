// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package notify sends booking confirmation messages.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/olegiv/eventdesk/internal/model"
	"github.com/olegiv/eventdesk/internal/store"
)

// ConfirmationSubject is the subject line of every booking confirmation.
const ConfirmationSubject = "Event Booking Confirmation"

// Message is a plain-text mail message.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers a message through some transport.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Dispatcher turns stored bookings into confirmation messages.
type Dispatcher struct {
	sender Sender
}

// NewDispatcher creates a Dispatcher that delivers through sender.
func NewDispatcher(sender Sender) *Dispatcher {
	return &Dispatcher{sender: sender}
}

// BookingCreated sends one confirmation for b. There is no retry; the
// transport error is returned as is.
func (d *Dispatcher) BookingCreated(ctx context.Context, b store.Booking) error {
	msg := ConfirmationMessage(b)
	if err := d.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("sending confirmation to %s: %w", msg.To, err)
	}
	return nil
}

// ConfirmationMessage builds the confirmation for b.
func ConfirmationMessage(b store.Booking) Message {
	return Message{
		To:      b.Email,
		Subject: ConfirmationSubject,
		Body: fmt.Sprintf("Hello %s,\n\nYour %s is booked for %s at %s.\n\nThank you!",
			b.Name, b.EventType, b.EventDate, b.EventTime),
	}
}

// LogSender writes messages to the log instead of sending them. It is used
// when no mail relay is configured.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send implements Sender.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.logger.InfoContext(ctx, "confirmation not sent, no mail relay configured",
		"to", msg.To,
		"subject", msg.Subject,
		"category", model.EventCategoryNotify,
	)
	return nil
}
