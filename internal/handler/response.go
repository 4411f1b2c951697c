// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides HTTP handlers for the public booking pages, the
// admin dashboard and the JSON endpoints.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/eventdesk/internal/render"
)

// flashAndRedirect sets a flash message and redirects to the given URL.
// Uses http.StatusSeeOther (303) so a POST is never replayed.
func flashAndRedirect(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url, message, messageType string) {
	renderer.SetFlash(r, message, messageType)
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// flashError sets an error flash message and redirects to the given URL.
func flashError(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url, message string) {
	flashAndRedirect(w, r, renderer, url, message, render.FlashError)
}

// flashSuccess sets a success flash message and redirects to the given URL.
func flashSuccess(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url, message string) {
	flashAndRedirect(w, r, renderer, url, message, render.FlashSuccess)
}

// logAndHTTPError logs an error and writes an HTTP error response.
func logAndHTTPError(w http.ResponseWriter, message string, statusCode int, logMsg string, args ...any) {
	slog.Error(logMsg, args...)
	http.Error(w, message, statusCode)
}

// logAndInternalError logs an error and writes a 500 Internal Server Error response.
func logAndInternalError(w http.ResponseWriter, logMsg string, args ...any) {
	logAndHTTPError(w, "Internal Server Error", http.StatusInternalServerError, logMsg, args...)
}

// renderPage renders a template and turns a render failure into a 500.
func renderPage(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, status int, name string, data render.TemplateData) {
	if err := renderer.RenderStatus(w, r, status, name, data); err != nil {
		logAndInternalError(w, "render error", "template", name, "error", err)
	}
}

// parseIDParam reads the positive integer {id} URL parameter.
func parseIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
