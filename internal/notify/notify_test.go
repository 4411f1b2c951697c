// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"github.com/olegiv/eventdesk/internal/store"
	"github.com/olegiv/eventdesk/internal/testutil"
)

type captureSender struct {
	msgs []Message
	err  error
}

func (c *captureSender) Send(_ context.Context, msg Message) error {
	c.msgs = append(c.msgs, msg)
	return c.err
}

var ana = store.Booking{
	ID:        1,
	Name:      "Ana",
	Email:     "ana@x.com",
	Phone:     "555",
	EventType: "wedding",
	EventDate: "2024-06-01",
	EventTime: "14:00",
}

func TestConfirmationMessage(t *testing.T) {
	msg := ConfirmationMessage(ana)

	assert.Equal(t, "ana@x.com", msg.To)
	assert.Equal(t, "Event Booking Confirmation", msg.Subject)
	assert.Equal(t, "Hello Ana,\n\nYour wedding is booked for 2024-06-01 at 14:00.\n\nThank you!", msg.Body)
}

func TestDispatcher_SendsOnce(t *testing.T) {
	sender := &captureSender{}
	d := NewDispatcher(sender)

	require.NoError(t, d.BookingCreated(context.Background(), ana))
	require.Len(t, sender.msgs, 1)
	assert.Equal(t, ConfirmationMessage(ana), sender.msgs[0])
}

func TestDispatcher_PropagatesFailure(t *testing.T) {
	transportErr := errors.New("535 authentication failed")
	sender := &captureSender{err: transportErr}
	d := NewDispatcher(sender)

	err := d.BookingCreated(context.Background(), ana)
	assert.ErrorIs(t, err, transportErr)
	assert.Len(t, sender.msgs, 1, "no retry")
}

func TestLogSender(t *testing.T) {
	s := NewLogSender(testutil.TestLogger())
	assert.NoError(t, s.Send(context.Background(), ConfirmationMessage(ana)))
}

func TestSMTPSender_Build(t *testing.T) {
	s, err := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: 587, From: "bookings@example.com", TLS: TLSMandatory})
	require.NoError(t, err)

	m, err := s.build(ConfirmationMessage(ana))
	require.NoError(t, err)
	assert.Equal(t, []string{"<bookings@example.com>"}, m.GetFromString())
	assert.Equal(t, []string{"<ana@x.com>"}, m.GetToString())
}

func TestSMTPSender_BadRecipient(t *testing.T) {
	s, err := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: 587, From: "bookings@example.com"})
	require.NoError(t, err)

	_, err = s.build(Message{To: "not an address", Subject: "x", Body: "y"})
	assert.Error(t, err)
}

func TestNewSMTPSender_EmptyHost(t *testing.T) {
	_, err := NewSMTPSender(SMTPConfig{Port: 587})
	assert.Error(t, err)
}

func TestTLSPolicy(t *testing.T) {
	assert.Equal(t, mail.TLSMandatory, tlsPolicy(TLSMandatory))
	assert.Equal(t, mail.TLSOpportunistic, tlsPolicy(TLSOpportunistic))
	assert.Equal(t, mail.NoTLS, tlsPolicy(TLSNone))
	assert.Equal(t, mail.TLSMandatory, tlsPolicy("bogus"))
}
