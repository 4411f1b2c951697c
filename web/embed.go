// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package web embeds the HTML templates and static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var templates embed.FS

//go:embed all:static
var static embed.FS

// Templates returns the template tree rooted at templates/.
func Templates() fs.FS {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err) // embedded path is fixed at compile time
	}
	return sub
}

// Static returns the asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
