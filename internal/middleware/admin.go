// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for admin gating, CSRF,
// security headers and request throttling.
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/olegiv/eventdesk/internal/session"
)

// LoginPath is where anonymous visitors are sent from admin-only routes.
const LoginPath = "/login"

// AdminLoginRequired is the notice shown when an admin-only route is denied.
const AdminLoginRequired = "Please login as admin to access this page."

// AdminSource reports the authenticated admin for a session.
type AdminSource interface {
	Current(ctx context.Context) (session.Admin, bool)
}

// Flasher stores a one-shot notice for the next rendered page.
type Flasher interface {
	SetFlash(r *http.Request, message, flashType string)
}

// LoadAdmin copies the session's admin principal, if any, into the request
// context. It never rejects a request.
func LoadAdmin(src AdminSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if admin, ok := src.Current(r.Context()); ok {
				r = r.WithContext(session.WithAdmin(r.Context(), admin))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin denies anonymous requests with a flash notice and a redirect
// to the login page. It must run after LoadAdmin.
func RequireAdmin(flasher Flasher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := session.AdminFromContext(r.Context()); !ok {
				slog.Info("admin access denied", "method", r.Method, "path", r.URL.Path, "ip", ClientIP(r))
				flasher.SetFlash(r, AdminLoginRequired, "error")
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
