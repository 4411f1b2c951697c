// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"strings"
	"testing"
)

func TestBuildRobots_Default(t *testing.T) {
	content := BuildRobots(RobotsConfig{})

	for _, want := range []string{
		"User-agent: *\n",
		"Disallow: /admin\n",
		"Disallow: /api/\n",
		"Disallow: /delete/\n",
		"Disallow: /login\n",
		"Allow: /\n",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("robots.txt missing %q\n%s", want, content)
		}
	}
}

func TestBuildRobots_DisallowAll(t *testing.T) {
	content := BuildRobots(RobotsConfig{DisallowAll: true})

	if content != "User-agent: *\nDisallow: /\n" {
		t.Errorf("unexpected content:\n%s", content)
	}
}

func TestBuildRobots_ExtraPaths(t *testing.T) {
	content := BuildRobots(RobotsConfig{DisallowPaths: []string{"/health"}})

	if !strings.Contains(content, "Disallow: /health\n") {
		t.Errorf("extra path missing:\n%s", content)
	}
	if strings.Count(content, "Disallow:") != len(privatePaths)+1 {
		t.Errorf("unexpected disallow count:\n%s", content)
	}
}
