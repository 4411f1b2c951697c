// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package metrics exposes Prometheus counters for the booking lifecycle.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "eventdesk"

var (
	once sync.Once

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_created_total",
			Help:      "Count of bookings persisted, by event type.",
		},
		[]string{"event_type"},
	)

	bookingRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_rejected_total",
			Help:      "Count of booking submissions rejected before persistence, by reason.",
		},
		[]string{"reason"},
	)

	bookingDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_deleted_total",
			Help:      "Count of bookings deleted by the administrator.",
		},
	)

	notificationSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_total",
			Help:      "Count of confirmation messages by outcome.",
		},
		[]string{"outcome"},
	)

	adminLogin = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "admin_login_total",
			Help:      "Count of admin login attempts by outcome.",
		},
		[]string{"outcome"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern, method and status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)
)

// Rejection reasons for IncBookingRejected.
const (
	ReasonValidation = "validation"
	ReasonRateLimit  = "rate_limit"
)

// Outcomes for IncNotification and IncAdminLogin.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingRejected, bookingDeleted,
			notificationSent, adminLogin, httpDuration)
	})
}

// Handler serves the default registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}

func IncBookingCreated(eventType string) {
	bookingCreated.WithLabelValues(eventType).Inc()
}

func IncBookingRejected(reason string) {
	bookingRejected.WithLabelValues(reason).Inc()
}

func IncBookingDeleted() {
	bookingDeleted.Inc()
}

func IncNotification(outcome string) {
	notificationSent.WithLabelValues(outcome).Inc()
}

func IncAdminLogin(outcome string) {
	adminLogin.WithLabelValues(outcome).Inc()
}

// statusRecorder captures the status code written by the next handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Middleware observes request latency labelled by the chi route pattern, so
// /delete/{id} is one series regardless of id.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		httpDuration.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}
