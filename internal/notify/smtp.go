// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package notify

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// TLS policies for SMTPConfig.TLS.
const (
	TLSMandatory     = "mandatory"
	TLSOpportunistic = "opportunistic"
	TLSNone          = "none"
)

// SMTPConfig describes the outbound mail relay.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	TLS      string
	From     string
}

// SMTPSender delivers messages through an SMTP relay.
type SMTPSender struct {
	client *mail.Client
	from   string
}

// NewSMTPSender creates an SMTPSender. No connection is made until Send.
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(tlsPolicy(cfg.TLS)),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating mail client: %w", err)
	}

	return &SMTPSender{client: client, from: cfg.From}, nil
}

// Send implements Sender.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m, err := s.build(msg)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("delivering mail: %w", err)
	}
	return nil
}

func (s *SMTPSender) build(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return nil, fmt.Errorf("setting sender %q: %w", s.from, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("setting recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}

func tlsPolicy(name string) mail.TLSPolicy {
	switch name {
	case TLSOpportunistic:
		return mail.TLSOpportunistic
	case TLSNone:
		return mail.NoTLS
	default:
		return mail.TLSMandatory
	}
}
