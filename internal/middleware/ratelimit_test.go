// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmissionLimiter(t *testing.T) {
	rejected := 0
	limiter := NewSubmissionLimiter(0.001, 2, func(*http.Request) { rejected++ })
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	post := func(remote string) int {
		req := httptest.NewRequest(http.MethodPost, "/booking", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, post("10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, post("10.0.0.1:5678"))
	assert.Equal(t, http.StatusTooManyRequests, post("10.0.0.1:9999"))
	assert.Equal(t, 1, rejected)

	// a different client has its own bucket
	assert.Equal(t, http.StatusOK, post("10.0.0.2:1234"))
}

func TestSubmissionLimiter_IgnoresGet(t *testing.T) {
	limiter := NewSubmissionLimiter(0.001, 1, nil)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/booking", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.7:4321"
	assert.Equal(t, "192.0.2.7", ClientIP(req))

	req.RemoteAddr = "192.0.2.8"
	assert.Equal(t, "192.0.2.8", ClientIP(req))
}
