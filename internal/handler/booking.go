// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/olegiv/eventdesk/internal/metrics"
	"github.com/olegiv/eventdesk/internal/middleware"
	"github.com/olegiv/eventdesk/internal/render"
	"github.com/olegiv/eventdesk/internal/service"
)

// BookingHandler handles the public booking form.
type BookingHandler struct {
	renderer  *render.Renderer
	validator *service.BookingValidator
	bookings  *service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(renderer *render.Renderer, validator *service.BookingValidator, bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{
		renderer:  renderer,
		validator: validator,
		bookings:  bookings,
	}
}

// Form handles GET /booking.
func (h *BookingHandler) Form(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, service.BookingInput{}, nil)
}

// Submit handles POST /booking.
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, RouteBooking, msgInvalidForm)
		return
	}

	input := service.BookingInput{
		Name:      r.PostFormValue("name"),
		Email:     r.PostFormValue("email"),
		Phone:     r.PostFormValue("phone"),
		EventType: r.PostFormValue("event_type"),
		Date:      r.PostFormValue("date"),
		Time:      r.PostFormValue("time"),
	}

	nb, err := h.validator.Validate(input)
	if err != nil {
		var validationErrs service.ValidationErrors
		if errors.As(err, &validationErrs) {
			metrics.IncBookingRejected(metrics.ReasonValidation)
			slog.Debug("booking rejected", "fields", len(validationErrs))
			h.renderForm(w, r, http.StatusUnprocessableEntity, input, validationErrs.Fields())
			return
		}
		logAndInternalError(w, "failed to validate booking", "error", err)
		return
	}

	booking, err := h.bookings.Create(r.Context(), nb, middleware.ClientIP(r))
	if err != nil {
		if errors.Is(err, service.ErrNotification) {
			// The record is already stored; only the confirmation failed.
			logAndInternalError(w, "booking confirmation failed", "booking_id", booking.ID, "error", err)
			return
		}
		logAndInternalError(w, "failed to create booking", "error", err)
		return
	}

	flashSuccess(w, r, h.renderer, RouteBooking, fmt.Sprintf(msgBooked, booking.Name))
}

func (h *BookingHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, input service.BookingInput, errs map[string]string) {
	renderPage(w, r, h.renderer, status, templateBooking, render.TemplateData{
		Title:  "Book an Event",
		Form:   input,
		Errors: errs,
	})
}
