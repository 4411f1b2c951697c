// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session configures the SQLite-backed session manager and the
// admin gate that sits on top of it.
package session

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

// Options controls cookie and lifetime settings for New.
type Options struct {
	Lifetime    time.Duration
	IdleTimeout time.Duration
	IsDev       bool
}

// New creates a new session manager configured with SQLite store.
func New(db *sql.DB, opts Options) *scs.SessionManager {
	sm := scs.New()
	sm.Store = sqlite3store.New(db)

	sm.Lifetime = opts.Lifetime
	if sm.Lifetime <= 0 {
		sm.Lifetime = 24 * time.Hour
	}
	sm.IdleTimeout = opts.IdleTimeout

	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Path = "/"
	sm.Cookie.Secure = !opts.IsDev
	if !opts.IsDev {
		// __Host- prefix requires Secure, Path=/ and no Domain.
		sm.Cookie.Name = "__Host-session"
	}

	return sm
}
