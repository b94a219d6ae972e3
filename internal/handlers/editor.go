// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the editor shell: the two
// pages, the document API, file transfer, and notifications.
package handlers

import (
	"fmt"
	"html/template"
	"net/http"

	"markpad/internal/assets"
	"markpad/internal/editor"
	"markpad/internal/notify"
	"markpad/internal/render"
)

// Outbound links shown in the editor header. Both open a new browsing
// context.
const (
	TutorialURL = "https://commonmark.org/help/tutorial/"
	DocsURL     = "https://www.markdownguide.org/basic-syntax/"
)

const pageTitle = "MarkPad"

// Editor groups the handlers around the editing service. Until the service
// reports ready it serves only the loading page and refuses document
// updates.
type Editor struct {
	svc            *editor.Service
	renderer       *render.Renderer
	notifier       *notify.Center
	maxUploadBytes int64
}

// NewEditor creates the handler group.
func NewEditor(svc *editor.Service, renderer *render.Renderer, notifier *notify.Center, maxUploadBytes int64) *Editor {
	return &Editor{
		svc:            svc,
		renderer:       renderer,
		notifier:       notifier,
		maxUploadBytes: maxUploadBytes,
	}
}

// Home serves the editor page once the service is ready, and the
// self-refreshing loading page before that.
func (e *Editor) Home(w http.ResponseWriter, r *http.Request) {
	if !e.svc.Ready() {
		e.renderer.Page(w, "loading", &render.PageData{Title: pageTitle})
		return
	}

	text, preview := e.svc.Snapshot()
	e.renderer.Page(w, "editor", &render.PageData{
		Title:       pageTitle,
		Text:        text,
		Preview:     template.HTML(preview),
		Scripts:     assets.Scripts(),
		Stylesheets: assets.Stylesheets(),
		TutorialURL: TutorialURL,
		DocsURL:     DocsURL,
	})
}

// Status reports readiness as JSON.
func (e *Editor) Status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"ready":%t}`, e.svc.Ready())
}
