// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package session

import (
	"context"
	"fmt"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/eventdesk/internal/auth"
)

// Session keys for the admin principal.
const (
	KeyAdminUser     = "admin_user"
	KeyAdminLoggedIn = "admin_logged_in_at"
)

// Admin is the authenticated administrator for the current request.
type Admin struct {
	Username   string
	LoggedInAt time.Time
}

type adminContextKey struct{}

// WithAdmin returns a copy of ctx carrying admin.
func WithAdmin(ctx context.Context, admin Admin) context.Context {
	return context.WithValue(ctx, adminContextKey{}, admin)
}

// AdminFromContext returns the admin stored by WithAdmin, if any.
func AdminFromContext(ctx context.Context) (Admin, bool) {
	admin, ok := ctx.Value(adminContextKey{}).(Admin)
	return admin, ok
}

// AdminGate moves a client session between the anonymous and authenticated
// states.
type AdminGate struct {
	sm       *scs.SessionManager
	verifier auth.CredentialVerifier
	now      func() time.Time
}

// NewAdminGate creates an AdminGate.
func NewAdminGate(sm *scs.SessionManager, verifier auth.CredentialVerifier) *AdminGate {
	return &AdminGate{sm: sm, verifier: verifier, now: time.Now}
}

// Login verifies the credential pair and marks the session authenticated.
// The session token is renewed to prevent fixation. On failure the session
// is left untouched and auth.ErrInvalidCredentials (or a verifier error) is
// returned.
func (g *AdminGate) Login(ctx context.Context, username, password string) (Admin, error) {
	if err := g.verifier.Verify(username, password); err != nil {
		return Admin{}, err
	}

	if err := g.sm.RenewToken(ctx); err != nil {
		return Admin{}, fmt.Errorf("renewing session token: %w", err)
	}

	// Session values are gob encoded; keep them primitive.
	admin := Admin{Username: username, LoggedInAt: g.now().UTC().Truncate(time.Second)}
	g.sm.Put(ctx, KeyAdminUser, admin.Username)
	g.sm.Put(ctx, KeyAdminLoggedIn, admin.LoggedInAt.Unix())
	return admin, nil
}

// Logout returns the session to the anonymous state. The session itself
// survives so a flash message can be shown on the next page.
func (g *AdminGate) Logout(ctx context.Context) error {
	g.sm.Remove(ctx, KeyAdminUser)
	g.sm.Remove(ctx, KeyAdminLoggedIn)
	if err := g.sm.RenewToken(ctx); err != nil {
		return fmt.Errorf("renewing session token: %w", err)
	}
	return nil
}

// Current reports the authenticated admin for the session in ctx.
func (g *AdminGate) Current(ctx context.Context) (Admin, bool) {
	username := g.sm.GetString(ctx, KeyAdminUser)
	if username == "" {
		return Admin{}, false
	}
	return Admin{
		Username:   username,
		LoggedInAt: time.Unix(g.sm.GetInt64(ctx, KeyAdminLoggedIn), 0).UTC(),
	}, true
}
