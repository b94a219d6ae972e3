// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"unicode/utf8"

	"markpad/internal/editor"
	"markpad/internal/notify"
	"markpad/internal/render"
)

// downloadName is the fixed attachment name, regardless of what was loaded.
const downloadName = "document.md"

// Download sends the current document as a markdown attachment and posts a
// notification about the outcome. The document itself is never touched.
func (e *Editor) Download(w http.ResponseWriter, r *http.Request) {
	text := e.svc.Text()

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	w.Header().Set("Content-Length", strconv.Itoa(len(text)))

	if _, err := io.WriteString(w, text); err != nil {
		slog.Warn("document download aborted", "error", err)
		e.notifier.Post("Saving "+downloadName+" failed.", notify.SeverityError)
		return
	}

	e.notifier.Post("Saved "+downloadName+".", notify.SeveritySuccess)
}

// Upload replaces the document with an uploaded text file and responds with
// the rendered preview fragment. The picker suggests markdown extensions but
// the server accepts any filename; content that is not valid UTF-8 text is
// ignored without feedback, matching a picker that filed the wrong file
// type.
func (e *Editor) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, e.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		slog.Warn("document upload rejected", "error", err)
		e.notifier.Post("Loading the file failed.", notify.SeverityError)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Warn("document upload read failed", "filename", header.Filename, "error", err)
		e.notifier.Post("Loading the file failed.", notify.SeverityError)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if !utf8.Valid(data) {
		// Not a text file. No state change, no notification.
		slog.Debug("document upload ignored, not text", "filename", header.Filename)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	html, err := e.svc.SetText(r.Context(), string(data))
	if errors.Is(err, editor.ErrNotReady) {
		e.notReady(w)
		return
	}
	if err != nil {
		slog.Error("document upload failed", "error", err)
		e.notifier.Post("Loading the file failed.", notify.SeverityError)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	e.notifier.Post(fmt.Sprintf("Loaded %s.", header.Filename), notify.SeveritySuccess)
	render.Fragment(w, html)
}
