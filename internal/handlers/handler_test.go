// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Everything runs in-process: the concrete pipeline, a memory-only render
// cache, and a stub asset fetcher.
package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"markpad/internal/cache"
	"markpad/internal/document"
	"markpad/internal/editor"
	"markpad/internal/markdown"
	"markpad/internal/notify"
	"markpad/internal/preview"
	"markpad/internal/render"
	"markpad/internal/sanitize"
	"markpad/internal/typeset"
)

// okFetcher pretends every external asset is reachable.
type okFetcher struct{}

func (okFetcher) FetchAll(ctx context.Context) error { return nil }

// testEnv holds all dependencies for handler tests.
type testEnv struct {
	handlers *Editor
	svc      *editor.Service
	notifier *notify.Center
}

// newTestEnv builds an editor handler group around the concrete pipeline.
// When start is true the service runs its full startup and becomes ready.
func newTestEnv(t *testing.T, start bool) *testEnv {
	t.Helper()

	p := preview.New(markdown.New(), sanitize.New(), typeset.New())
	store := document.NewStore()
	rc := cache.NewRenderCache(cache.NewMemory(16), nil)
	svc := editor.NewService(okFetcher{}, p, store, rc)

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	notifier := notify.NewCenter(time.Minute)
	h := NewEditor(svc, renderer, notifier, 1<<20)

	if start {
		svc.Start(context.Background())
		if !svc.Ready() {
			t.Fatal("service failed to become ready")
		}
	}

	return &testEnv{handlers: h, svc: svc, notifier: notifier}
}

// postText sends a form-encoded document update straight to the handler.
func (env *testEnv) postText(t *testing.T, text string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"text": {text}}
	req := httptest.NewRequest(http.MethodPost, "/api/document", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	env.handlers.Update(rr, req)
	return rr
}

// uploadFile sends a multipart upload with a single file field.
func (env *testEnv) uploadFile(t *testing.T, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write multipart content: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/document/file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	env.handlers.Upload(rr, req)
	return rr
}
