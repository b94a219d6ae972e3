// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"markpad/internal/editor"
	"markpad/internal/render"
)

// loadingFragment is the preview body served while the editor is not ready.
const loadingFragment = `<p class="preview-loading">The editor is still loading. Hang on a moment.</p>`

// Update replaces the document with the posted text field and responds with
// the rendered preview fragment. The placeholder for a failed render is
// itself a valid fragment, so this never errors on bad markdown.
func (e *Editor) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.Warn("document update with unreadable form", "error", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	html, err := e.svc.SetText(r.Context(), r.PostFormValue("text"))
	if errors.Is(err, editor.ErrNotReady) {
		e.notReady(w)
		return
	}
	if err != nil {
		slog.Error("document update failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	render.Fragment(w, html)
}

// Document returns the current raw markdown text.
func (e *Editor) Document(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, e.svc.Text())
}

// Preview returns the current rendered preview fragment.
func (e *Editor) Preview(w http.ResponseWriter, r *http.Request) {
	render.Fragment(w, e.svc.Rendered())
}

// notReady answers a document mutation attempted before the gate opened.
func (e *Editor) notReady(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Retry-After", "2")
	w.WriteHeader(http.StatusServiceUnavailable)
	io.WriteString(w, loadingFragment)
}
