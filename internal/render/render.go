// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render executes the embedded page templates for the editor shell.
// Both pages are standalone documents: the editor once the service is ready,
// the self-refreshing loading page before that.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
)

//go:embed templates/*.html
var pageFS embed.FS

// PageData holds everything the page templates need.
type PageData struct {
	Title       string
	Text        string        // current markdown, pre-filled into the textarea
	Preview     template.HTML // current sanitized preview fragment
	Scripts     []string      // external script URLs in load order
	Stylesheets []string      // external stylesheet URLs
	TutorialURL string
	DocsURL     string
}

// Renderer handles template parsing and execution for the editor pages.
type Renderer struct {
	templates map[string]*template.Template
}

// New parses the embedded page templates. Every page owns its full HTML
// document, so each template is parsed on its own.
func New() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template)}

	entries, err := pageFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".html") {
			continue
		}
		tmpl, err := template.New(e.Name()).ParseFS(pageFS, "templates/"+e.Name())
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", e.Name(), err)
		}
		r.templates[strings.TrimSuffix(e.Name(), ".html")] = tmpl
	}
	return r, nil
}

// Page renders a full page template by name.
func (rn *Renderer) Page(w http.ResponseWriter, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, name+".html", data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// Fragment writes a rendered preview fragment.
func Fragment(w http.ResponseWriter, html []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}
