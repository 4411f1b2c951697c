// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package render parses the embedded HTML templates once at startup and
// renders them with flash messages and the current admin filled in.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/eventdesk/internal/model"
	"github.com/olegiv/eventdesk/internal/session"
)

// Session keys for flash messages.
const (
	sessionKeyFlash     = "flash"
	sessionKeyFlashType = "flash_type"
)

// Flash types understood by the base layout.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

const baseLayout = "layouts/base.html"

// pageDirs are the template directories rendered inside the base layout.
// A template is addressed as "<dir>/<file name without .html>".
var pageDirs = []string{"pages", "auth", "admin"}

// Renderer handles template rendering with caching.
type Renderer struct {
	templates      map[string]*template.Template
	sessionManager *scs.SessionManager
	isDev          bool
}

// Config holds renderer configuration.
type Config struct {
	TemplatesFS    fs.FS
	SessionManager *scs.SessionManager
	IsDev          bool
}

// New creates a new Renderer with parsed templates.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		templates:      make(map[string]*template.Template),
		sessionManager: cfg.SessionManager,
		isDev:          cfg.IsDev,
	}

	if err := r.parseTemplates(cfg.TemplatesFS); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Renderer) parseTemplates(templatesFS fs.FS) error {
	partials, err := templateFiles(templatesFS, "partials")
	if err != nil {
		return fmt.Errorf("getting partials: %w", err)
	}

	for _, dir := range pageDirs {
		pages, err := templateFiles(templatesFS, dir)
		if err != nil {
			return fmt.Errorf("getting %s templates: %w", dir, err)
		}

		for _, tmplPath := range pages {
			name := dir + "/" + strings.TrimSuffix(path.Base(tmplPath), ".html")

			// base layout, partials, then the page so its blocks win
			files := append([]string{baseLayout}, partials...)
			files = append(files, tmplPath)

			tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(templatesFS, files...)
			if err != nil {
				return fmt.Errorf("parsing template %s: %w", name, err)
			}
			r.templates[name] = tmpl
		}
	}

	if len(r.templates) == 0 {
		return fmt.Errorf("no templates found")
	}
	return nil
}

// templateFiles returns all .html files in dir. A missing directory yields
// no files.
func templateFiles(templatesFS fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(templatesFS, dir)
	if err != nil {
		return nil, nil
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".html") {
			files = append(files, path.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDateTime": func(t time.Time) string {
			return t.Local().Format("Jan 2, 2006 3:04 PM")
		},
		"eventLabel": func(s string) string {
			return model.EventType(s).Label()
		},
		"eventTypes": func() []model.EventType {
			return model.EventTypes
		},
		"truncate": truncate,
	}
}

// TemplateData holds data passed to templates.
type TemplateData struct {
	Title       string
	Data        any
	Form        any               // submitted values to re-fill a form
	Errors      map[string]string // per-field validation messages
	Flash       string
	FlashType   string
	Admin       *session.Admin
	CurrentYear int
	IsDev       bool
}

// Render renders a template with status 200.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, name string, data TemplateData) error {
	return r.RenderStatus(w, req, http.StatusOK, name, data)
}

// RenderStatus renders a template with the given status code. Output is
// buffered so a template error never produces a half-written page.
func (r *Renderer) RenderStatus(w http.ResponseWriter, req *http.Request, status int, name string, data TemplateData) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}

	data.CurrentYear = time.Now().Year()
	data.IsDev = r.isDev

	if admin, ok := session.AdminFromContext(req.Context()); ok {
		data.Admin = &admin
	}

	if r.sessionManager != nil {
		if flash := r.sessionManager.PopString(req.Context(), sessionKeyFlash); flash != "" {
			data.Flash = flash
			data.FlashType = r.sessionManager.PopString(req.Context(), sessionKeyFlashType)
			if data.FlashType == "" {
				data.FlashType = FlashInfo
			}
		}
	}

	buf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(buf, "base", data); err != nil {
		return fmt.Errorf("executing template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("writing response", "template", name, "error", err)
	}
	return nil
}

// SetFlash sets a flash message in the session.
func (r *Renderer) SetFlash(req *http.Request, message, flashType string) {
	if r.sessionManager != nil {
		r.sessionManager.Put(req.Context(), sessionKeyFlash, message)
		r.sessionManager.Put(req.Context(), sessionKeyFlashType, flashType)
	}
}

// HasTemplate reports whether name was parsed.
func (r *Renderer) HasTemplate(name string) bool {
	_, ok := r.templates[name]
	return ok
}

// truncate shortens s to at most length runes, appending "..." when cut.
func truncate(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	return string(runes[:length]) + "..."
}
