// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/olegiv/eventdesk/internal/render"
)

// PagesHandler serves the static informational pages.
type PagesHandler struct {
	renderer *render.Renderer
}

// NewPagesHandler creates a new PagesHandler.
func NewPagesHandler(renderer *render.Renderer) *PagesHandler {
	return &PagesHandler{renderer: renderer}
}

// Home handles GET /.
func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, http.StatusOK, templateHome, render.TemplateData{Title: "Home"})
}

// About handles GET /about.
func (h *PagesHandler) About(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, http.StatusOK, templateAbout, render.TemplateData{Title: "About"})
}

// Services handles GET /services.
func (h *PagesHandler) Services(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, http.StatusOK, templateServices, render.TemplateData{Title: "Services"})
}

// Contact handles GET /contact.
func (h *PagesHandler) Contact(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, http.StatusOK, templateContact, render.TemplateData{Title: "Contact"})
}
