// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// maxTrackedClients bounds the limiter map; it is reset when exceeded.
const maxTrackedClients = 10000

// limiterCache hands out one token bucket per key.
type limiterCache[K comparable] struct {
	limiters map[K]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
}

func newLimiterCache[K comparable](rps float64, burst int) *limiterCache[K] {
	return &limiterCache[K]{
		limiters: make(map[K]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

func (lc *limiterCache[K]) get(key K) *rate.Limiter {
	lc.mu.RLock()
	limiter, exists := lc.limiters[key]
	lc.mu.RUnlock()

	if exists {
		return limiter
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists = lc.limiters[key]; exists {
		return limiter
	}

	if len(lc.limiters) >= maxTrackedClients {
		lc.limiters = make(map[K]*rate.Limiter)
	}

	limiter = rate.NewLimiter(lc.rate, lc.burst)
	lc.limiters[key] = limiter
	return limiter
}

// SubmissionLimiter throttles form submissions per client IP. Safe methods
// pass through untouched.
type SubmissionLimiter struct {
	cache   *limiterCache[string]
	onLimit func(r *http.Request)
}

// NewSubmissionLimiter allows rps submissions per second per client with
// the given burst. onLimit, if non-nil, is called for each rejected request.
func NewSubmissionLimiter(rps float64, burst int, onLimit func(r *http.Request)) *SubmissionLimiter {
	return &SubmissionLimiter{
		cache:   newLimiterCache[string](rps, burst),
		onLimit: onLimit,
	}
}

// Middleware returns the throttling middleware. Rejected requests get 429.
func (l *SubmissionLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}

		ip := ClientIP(r)
		if !l.cache.get(ip).Allow() {
			slog.Warn("submission rate limit exceeded", "ip", ip, "path", r.URL.Path)
			if l.onLimit != nil {
				l.onLimit(r)
			}
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Too many requests. Please wait a moment and try again.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientIP returns the host part of r.RemoteAddr. chi's RealIP middleware
// has already replaced it with the proxy-supplied address when present.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
