// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestUpdate_RendersFragment verifies the edit round trip: post text, get
// the rendered fragment back, and read the same state from the API.
func TestUpdate_RendersFragment(t *testing.T) {
	env := newTestEnv(t, true)

	rr := env.postText(t, "# Hi\n\nH~2~O\n")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `<h1 id="hi">Hi</h1>`) {
		t.Errorf("fragment missing heading:\n%s", body)
	}
	if !strings.Contains(body, "<sub>2</sub>") {
		t.Errorf("fragment missing subscript:\n%s", body)
	}

	// The document endpoint returns the raw text.
	docRR := httptest.NewRecorder()
	env.handlers.Document(docRR, httptest.NewRequest(http.MethodGet, "/api/document", nil))
	if got := docRR.Body.String(); got != "# Hi\n\nH~2~O\n" {
		t.Errorf("Document body: got %q", got)
	}
	if ct := docRR.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("Document Content-Type: got %q", ct)
	}

	// The preview endpoint returns the same fragment.
	prevRR := httptest.NewRecorder()
	env.handlers.Preview(prevRR, httptest.NewRequest(http.MethodGet, "/api/preview", nil))
	if prevRR.Body.String() != body {
		t.Error("preview endpoint differs from the update response")
	}
}

// TestUpdate_NotReady verifies that edits are refused with 503 before the
// gate opens.
func TestUpdate_NotReady(t *testing.T) {
	env := newTestEnv(t, false)

	rr := env.postText(t, "# too early")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status: got %d, want 503", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "still loading") {
		t.Errorf("503 body should carry the loading fragment, got %q", rr.Body.String())
	}
	if env.svc.Text() != "" {
		t.Error("document changed before readiness")
	}
}

// TestUpdate_LatestWins posts two edits and verifies only the second
// remains.
func TestUpdate_LatestWins(t *testing.T) {
	env := newTestEnv(t, true)

	env.postText(t, "# First")
	env.postText(t, "# Second")

	if got := env.svc.Text(); got != "# Second" {
		t.Errorf("Text: got %q, want the last edit", got)
	}
	if !strings.Contains(string(env.svc.Rendered()), "Second") {
		t.Error("preview does not reflect the last edit")
	}
}

// TestUpdate_BadMarkupStillResponds posts markup-hostile input and verifies
// the handler still answers 200 with sanitized output.
func TestUpdate_BadMarkupStillResponds(t *testing.T) {
	env := newTestEnv(t, true)

	rr := env.postText(t, "<script>alert(1)</script>\n\n# ok\n")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	lower := strings.ToLower(rr.Body.String())
	if strings.Contains(lower, "<script") {
		t.Errorf("script survived sanitization:\n%s", rr.Body.String())
	}
	if !strings.Contains(lower, "<h1") {
		t.Error("legitimate markup missing from the fragment")
	}
}

// TestUpdate_EmptyText clears the document.
func TestUpdate_EmptyText(t *testing.T) {
	env := newTestEnv(t, true)

	env.postText(t, "# something")
	rr := env.postText(t, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	if env.svc.Text() != "" {
		t.Errorf("Text: got %q, want empty", env.svc.Text())
	}
}
