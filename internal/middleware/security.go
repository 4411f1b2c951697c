// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
)

// calendarCDN serves the FullCalendar bundle used on the admin dashboard.
const calendarCDN = "https://cdn.jsdelivr.net"

// SecurityHeadersConfig holds configuration for security headers.
type SecurityHeadersConfig struct {
	// IsDevelopment disables HSTS.
	IsDevelopment bool

	ContentSecurityPolicy string

	// HSTSMaxAge in seconds; 0 disables HSTS.
	HSTSMaxAge            int
	HSTSIncludeSubDomains bool

	FrameOptions      string
	ReferrerPolicy    string
	PermissionsPolicy string

	// ExcludePaths are path prefixes that skip security headers.
	ExcludePaths []string
}

// DefaultSecurityHeadersConfig returns a SecurityHeadersConfig with sensible defaults.
func DefaultSecurityHeadersConfig(isDev bool) SecurityHeadersConfig {
	cfg := SecurityHeadersConfig{
		IsDevelopment:  isDev,
		HSTSMaxAge:     31536000,
		FrameOptions:   "DENY",
		ReferrerPolicy: "strict-origin-when-cross-origin",
	}

	cfg.ContentSecurityPolicy = buildCSP(map[string]string{
		"default-src":     "'self'",
		"script-src":      "'self' " + calendarCDN,
		"style-src":       "'self' 'unsafe-inline' " + calendarCDN,
		"img-src":         "'self' data:",
		"font-src":        "'self' data:",
		"connect-src":     "'self'",
		"object-src":      "'none'",
		"base-uri":        "'self'",
		"form-action":     "'self'",
		"frame-ancestors": "'none'",
	})
	if !isDev {
		cfg.HSTSIncludeSubDomains = true
	}

	cfg.PermissionsPolicy = buildPermissionsPolicy(map[string]string{
		"camera":          "()",
		"geolocation":     "()",
		"microphone":      "()",
		"payment":         "()",
		"usb":             "()",
		"browsing-topics": "()",
	})

	return cfg
}

// cspOrder fixes directive order so the header is stable.
var cspOrder = []string{
	"default-src", "script-src", "style-src", "img-src", "font-src",
	"connect-src", "frame-src", "object-src", "base-uri", "form-action",
	"frame-ancestors",
}

func buildCSP(directives map[string]string) string {
	var parts []string
	seen := make(map[string]bool, len(directives))
	for _, key := range cspOrder {
		if value, ok := directives[key]; ok {
			parts = append(parts, key+" "+value)
			seen[key] = true
		}
	}

	var rest []string
	for key := range directives {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		parts = append(parts, key+" "+directives[key])
	}

	return strings.Join(parts, "; ")
}

func buildPermissionsPolicy(policies map[string]string) string {
	keys := make([]string, 0, len(policies))
	for key := range policies {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+"="+policies[key])
	}
	return strings.Join(parts, ", ")
}

// SecurityHeaders returns a middleware that adds security headers to responses.
func SecurityHeaders(cfg SecurityHeadersConfig) func(http.Handler) http.Handler {
	hsts := ""
	if !cfg.IsDevelopment && cfg.HSTSMaxAge > 0 {
		hsts = "max-age=" + strconv.Itoa(cfg.HSTSMaxAge)
		if cfg.HSTSIncludeSubDomains {
			hsts += "; includeSubDomains"
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, prefix := range cfg.ExcludePaths {
				if strings.HasPrefix(r.URL.Path, prefix) {
					next.ServeHTTP(w, r)
					return
				}
			}

			h := w.Header()
			if cfg.ContentSecurityPolicy != "" {
				h.Set("Content-Security-Policy", cfg.ContentSecurityPolicy)
			}
			if hsts != "" {
				h.Set("Strict-Transport-Security", hsts)
			}
			if cfg.FrameOptions != "" {
				h.Set("X-Frame-Options", cfg.FrameOptions)
			}
			h.Set("X-Content-Type-Options", "nosniff")
			if cfg.ReferrerPolicy != "" {
				h.Set("Referrer-Policy", cfg.ReferrerPolicy)
			}
			if cfg.PermissionsPolicy != "" {
				h.Set("Permissions-Policy", cfg.PermissionsPolicy)
			}

			next.ServeHTTP(w, r)
		})
	}
}
