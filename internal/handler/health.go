// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/olegiv/eventdesk/internal/version"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler handles health check requests.
type HealthHandler struct {
	db        *sql.DB
	startTime time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{
		db:        db,
		startTime: time.Now(),
	}
}

// HealthStatus represents the overall health status.
type HealthStatus struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check represents a single health check result.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	dbCheck := h.checkDatabase(r.Context())

	status := HealthStatus{
		Status:    dbCheck.Status,
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   version.Get().Version,
		Checks:    map[string]Check{"database": dbCheck},
	}

	code := http.StatusOK
	if dbCheck.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, r, code, status)
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "alive"})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) Check {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.PingContext(ctx); err != nil {
		return Check{Status: "unhealthy", Message: "database ping failed"}
	}
	return Check{Status: "healthy", Latency: time.Since(start).String()}
}
