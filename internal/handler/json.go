// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/go-chi/render"
)

// writeJSONError writes a JSON error response.
func writeJSONError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, map[string]any{
		"success": false,
		"error":   message,
	})
}

// writeJSON writes v as JSON with the given status.
func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, v any) {
	render.Status(r, statusCode)
	render.JSON(w, r, v)
}
