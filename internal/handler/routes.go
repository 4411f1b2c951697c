// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/eventdesk/internal/metrics"
	"github.com/olegiv/eventdesk/internal/middleware"
	"github.com/olegiv/eventdesk/internal/render"
	"github.com/olegiv/eventdesk/internal/seo"
	"github.com/olegiv/eventdesk/internal/service"
	"github.com/olegiv/eventdesk/internal/session"
)

// Dependencies are the services the routes are built from.
type Dependencies struct {
	DB        *sql.DB
	Renderer  *render.Renderer
	Gate      *session.AdminGate
	Validator *service.BookingValidator
	Bookings  *service.BookingService
	Events    *service.EventService

	// Limiter throttles booking submissions; nil disables throttling.
	Limiter *middleware.SubmissionLimiter
	// StaticFS is served under /static/ when set.
	StaticFS fs.FS
	// Metrics exposes /metrics when true.
	Metrics bool
	// DisallowCrawlers makes /robots.txt block the whole site.
	DisallowCrawlers bool
}

// RegisterRoutes mounts every route on r. Session loading must already be
// applied to r; health, metrics and static routes do not touch the session.
func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := NewHealthHandler(deps.DB)
	r.Get(RouteHealth, healthHandler.Health)
	r.Get(RouteHealthLive, healthHandler.Liveness)

	robots := seo.BuildRobots(seo.RobotsConfig{DisallowAll: deps.DisallowCrawlers})
	r.Get(RouteRobots, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(robots))
	})

	if deps.Metrics {
		r.Handle(RouteMetrics, metrics.Handler())
	}
	if deps.StaticFS != nil {
		r.Handle(RouteStatic, http.StripPrefix("/static/", http.FileServerFS(deps.StaticFS)))
	}

	pagesHandler := NewPagesHandler(deps.Renderer)
	bookingHandler := NewBookingHandler(deps.Renderer, deps.Validator, deps.Bookings)
	var authEvents AuthEventLogger
	if deps.Events != nil {
		authEvents = deps.Events
	}
	authHandler := NewAuthHandler(deps.Renderer, deps.Gate, authEvents)
	adminHandler := NewAdminHandler(deps.Renderer, deps.Bookings, deps.Events)
	apiHandler := NewAPIHandler(deps.Bookings)

	r.Group(func(r chi.Router) {
		r.Use(middleware.LoadAdmin(deps.Gate))

		// Public pages
		r.Get(RouteHome, pagesHandler.Home)
		r.Get(RouteAbout, pagesHandler.About)
		r.Get(RouteServices, pagesHandler.Services)
		r.Get(RouteContact, pagesHandler.Contact)

		r.Get(RouteBooking, bookingHandler.Form)
		if deps.Limiter != nil {
			r.With(deps.Limiter.Middleware).Post(RouteBooking, bookingHandler.Submit)
		} else {
			r.Post(RouteBooking, bookingHandler.Submit)
		}

		r.Get(RouteLogin, authHandler.LoginForm)
		r.Post(RouteLogin, authHandler.Login)
		r.Get(RouteLogout, authHandler.Logout)

		// Admin-only routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(deps.Renderer))

			r.Get(RouteAdmin, adminHandler.Dashboard)
			r.Get(RouteAdminExport, adminHandler.Export)
			r.Get(RouteDelete, adminHandler.Delete)
			r.Post(RouteDelete, adminHandler.Delete)
			r.Get(RouteAPIBookings, apiHandler.CalendarBookings)
		})
	})
}
