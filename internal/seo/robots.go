// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo builds crawler directives for the public site.
package seo

import (
	"strings"
)

// privatePaths are never offered to crawlers.
var privatePaths = []string{
	"/admin",
	"/api/",
	"/delete/",
	"/login",
	"/logout",
}

// RobotsConfig holds configuration for robots.txt generation.
type RobotsConfig struct {
	DisallowAll   bool     // block every crawler, e.g. on a development instance
	DisallowPaths []string // extra paths appended to the private ones
}

// BuildRobots generates the robots.txt content.
func BuildRobots(cfg RobotsConfig) string {
	var sb strings.Builder

	sb.WriteString("User-agent: *\n")

	if cfg.DisallowAll {
		sb.WriteString("Disallow: /\n")
		return sb.String()
	}

	paths := append([]string{}, privatePaths...)
	paths = append(paths, cfg.DisallowPaths...)
	for _, path := range paths {
		sb.WriteString("Disallow: ")
		sb.WriteString(path)
		sb.WriteString("\n")
	}
	sb.WriteString("Allow: /\n")

	return sb.String()
}
