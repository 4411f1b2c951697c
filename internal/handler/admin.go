// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/olegiv/eventdesk/internal/export"
	"github.com/olegiv/eventdesk/internal/middleware"
	"github.com/olegiv/eventdesk/internal/render"
	"github.com/olegiv/eventdesk/internal/service"
	"github.com/olegiv/eventdesk/internal/store"
)

// AdminHandler handles the admin dashboard and booking management.
type AdminHandler struct {
	renderer *render.Renderer
	bookings *service.BookingService
	events   *service.EventService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(renderer *render.Renderer, bookings *service.BookingService, events *service.EventService) *AdminHandler {
	return &AdminHandler{
		renderer: renderer,
		bookings: bookings,
		events:   events,
	}
}

// DashboardData holds data for the dashboard template.
type DashboardData struct {
	Bookings     []store.Booking
	RecentEvents []store.Event
}

// Dashboard handles GET /admin.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.List(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list bookings", "error", err)
		return
	}

	var events []store.Event
	if h.events != nil {
		events, err = h.events.RecentEvents(r.Context(), recentEventsLimit)
		if err != nil {
			// The dashboard is still useful without the audit log.
			slog.Error("failed to load recent events", "error", err)
		}
	}

	renderPage(w, r, h.renderer, http.StatusOK, templateDashboard, render.TemplateData{
		Title: "Admin Dashboard",
		Data: DashboardData{
			Bookings:     bookings,
			RecentEvents: events,
		},
	})
}

// Delete handles GET and POST /delete/{id}.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}

	if err := h.bookings.Delete(r.Context(), id, middleware.ClientIP(r)); err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			http.Error(w, "Booking not found", http.StatusNotFound)
			return
		}
		logAndInternalError(w, "failed to delete booking", "error", err, "booking_id", id)
		return
	}

	flashSuccess(w, r, h.renderer, RouteAdmin, msgDeleted)
}

// Export handles GET /admin/export.
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.List(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list bookings", "error", err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteBookings(&buf, bookings); err != nil {
		logAndInternalError(w, "failed to export bookings", "error", err)
		return
	}

	filename := fmt.Sprintf("bookings-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("writing export", "error", err)
	}
}
