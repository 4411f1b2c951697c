// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/olegiv/eventdesk/internal/auth"
	"github.com/olegiv/eventdesk/internal/metrics"
	"github.com/olegiv/eventdesk/internal/middleware"
	"github.com/olegiv/eventdesk/internal/model"
	"github.com/olegiv/eventdesk/internal/render"
	"github.com/olegiv/eventdesk/internal/session"
)

// AuthEventLogger records login activity in the audit log.
type AuthEventLogger interface {
	LogAuthEvent(ctx context.Context, level, message, ipAddress string, metadata map[string]any) error
}

// loginForm holds the submitted login fields for re-rendering.
type loginForm struct {
	Username string
}

// AuthHandler handles admin login and logout.
type AuthHandler struct {
	renderer *render.Renderer
	gate     *session.AdminGate
	events   AuthEventLogger
}

// NewAuthHandler creates a new AuthHandler. events may be nil.
func NewAuthHandler(renderer *render.Renderer, gate *session.AdminGate, events AuthEventLogger) *AuthHandler {
	return &AuthHandler{
		renderer: renderer,
		gate:     gate,
		events:   events,
	}
}

// LoginForm handles GET /login.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := session.AdminFromContext(r.Context()); ok {
		http.Redirect(w, r, RouteAdmin, http.StatusSeeOther)
		return
	}
	h.renderLogin(w, r, http.StatusOK, loginForm{}, nil)
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, RouteLogin, msgInvalidForm)
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	form := loginForm{Username: username}

	errs := make(map[string]string)
	if username == "" {
		errs["username"] = "Username is required"
	}
	if password == "" {
		errs["password"] = "Password is required"
	}
	if len(errs) > 0 {
		h.renderLogin(w, r, http.StatusUnprocessableEntity, form, errs)
		return
	}

	clientIP := middleware.ClientIP(r)
	meta := parseUserAgent(r.UserAgent()).metadata()
	meta["username"] = username

	admin, err := h.gate.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			metrics.IncAdminLogin(metrics.OutcomeFailure)
			slog.Info("admin login failed", "username", username, "ip", clientIP)
			h.logAuthEvent(r.Context(), model.EventLevelWarning, "Admin login failed", clientIP, meta)

			h.renderer.SetFlash(r, msgBadCredentials, render.FlashError)
			h.renderLogin(w, r, http.StatusUnauthorized, form, nil)
			return
		}
		logAndInternalError(w, "admin login error", "error", err)
		return
	}

	metrics.IncAdminLogin(metrics.OutcomeSuccess)
	slog.Info("admin logged in", "username", admin.Username, "ip", clientIP)
	h.logAuthEvent(r.Context(), model.EventLevelInfo, "Admin logged in", clientIP, meta)

	flashSuccess(w, r, h.renderer, RouteAdmin, msgLoggedIn)
}

// Logout handles GET /logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	admin, wasAdmin := session.AdminFromContext(r.Context())

	if err := h.gate.Logout(r.Context()); err != nil {
		slog.Error("session logout error", "error", err)
	}

	if wasAdmin {
		clientIP := middleware.ClientIP(r)
		slog.Info("admin logged out", "username", admin.Username, "ip", clientIP)
		h.logAuthEvent(r.Context(), model.EventLevelInfo, "Admin logged out", clientIP, map[string]any{
			"username": admin.Username,
		})
	}

	flashAndRedirect(w, r, h.renderer, RouteHome, msgLoggedOut, render.FlashInfo)
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, r *http.Request, status int, form loginForm, errs map[string]string) {
	renderPage(w, r, h.renderer, status, templateLogin, render.TemplateData{
		Title:  "Admin Login",
		Form:   form,
		Errors: errs,
	})
}

func (h *AuthHandler) logAuthEvent(ctx context.Context, level, message, ip string, meta map[string]any) {
	if h.events == nil {
		return
	}
	if err := h.events.LogAuthEvent(ctx, level, message, ip, meta); err != nil {
		slog.DebugContext(ctx, "audit event not recorded", "error", err, "message", message)
	}
}
