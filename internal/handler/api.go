// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/olegiv/eventdesk/internal/service"
)

// APIHandler serves the admin JSON endpoints.
type APIHandler struct {
	bookings *service.BookingService
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(bookings *service.BookingService) *APIHandler {
	return &APIHandler{bookings: bookings}
}

// CalendarBookings handles GET /api/bookings. The response is always a JSON
// array, empty when there are no bookings.
func (h *APIHandler) CalendarBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.ListAll(r.Context())
	if err != nil {
		slog.Error("failed to list bookings", "error", err)
		writeJSONError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, r, http.StatusOK, service.BuildCalendarFeed(bookings))
}
