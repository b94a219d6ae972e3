// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package editor owns the editing lifecycle: asset verification, the
// readiness gate, and every replacement of the shared document.
package editor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"markpad/internal/cache"
	"markpad/internal/document"
)

// ErrNotReady is returned by SetText before the readiness gate opens.
var ErrNotReady = errors.New("editor: not ready")

// Renderer turns markdown into publishable HTML. Implementations return
// displayable HTML even when they report an error, so the result can always
// be shown.
type Renderer interface {
	Render(src []byte) ([]byte, error)
}

// Fetcher verifies that the external assets are reachable.
type Fetcher interface {
	FetchAll(ctx context.Context) error
}

// Service coordinates readiness and document replacement. All writes to the
// document go through SetText; nothing renders before the gate opens.
type Service struct {
	gate     *Gate
	loader   Fetcher
	pipeline Renderer
	store    *document.Store
	cache    *cache.RenderCache
}

// NewService wires the service. The gate starts closed; Start opens it.
func NewService(loader Fetcher, pipeline Renderer, store *document.Store, renderCache *cache.RenderCache) *Service {
	return &Service{
		gate:     NewGate(),
		loader:   loader,
		pipeline: pipeline,
		store:    store,
		cache:    renderCache,
	}
}

// Ready reports whether the editor accepts edits.
func (s *Service) Ready() bool {
	return s.gate.Ready()
}

// Done returns a channel that is closed once the editor is ready.
func (s *Service) Done() <-chan struct{} {
	return s.gate.Done()
}

// Start prepares the editor: it verifies the external assets, probes the
// rendering pipeline, opens the gate, and seeds the welcome document, in
// that order. On any failure it logs and returns with the gate still
// closed, leaving the editor in its loading state.
func (s *Service) Start(ctx context.Context) {
	if err := s.loader.FetchAll(ctx); err != nil {
		slog.Error("asset verification failed, editor stays in loading state", "error", err)
		return
	}

	if err := s.probe(); err != nil {
		slog.Error("pipeline probe failed, editor stays in loading state", "error", err)
		return
	}

	s.gate.Open()
	slog.Info("editor ready")

	if _, err := s.SetText(ctx, seedDocument); err != nil {
		slog.Warn("seeding initial document", "error", err)
	}
}

// probeSource exercises conversion, sanitization, and math annotation in one
// pass.
const probeSource = "**ready** H~2~O $x$\n\n<script>probe</script>\n"

// probe renders the probe source and checks that each stage left its mark.
func (s *Service) probe() error {
	out, err := s.pipeline.Render([]byte(probeSource))
	if err != nil {
		return fmt.Errorf("probe render: %w", err)
	}
	for _, want := range []string{"<strong>", "<sub>", `class="math inline"`} {
		if !bytes.Contains(out, []byte(want)) {
			return fmt.Errorf("probe output missing %s", want)
		}
	}
	if bytes.Contains(bytes.ToLower(out), []byte("<script")) {
		return errors.New("probe output kept a script element")
	}
	return nil
}

// SetText replaces the document with text and publishes its rendered
// preview, consulting the render cache first. Before the gate opens it
// returns ErrNotReady and renders nothing. A pipeline failure is not an
// error here: the text is stored untouched, paired with the placeholder the
// pipeline produced, and the placeholder is returned.
func (s *Service) SetText(ctx context.Context, text string) ([]byte, error) {
	if !s.gate.Ready() {
		return nil, ErrNotReady
	}

	key := cache.Key(text)
	if html, ok := s.cache.Get(ctx, key); ok {
		s.store.Set(text, html)
		return html, nil
	}

	html, err := s.pipeline.Render([]byte(text))
	if err != nil {
		slog.Debug("publishing placeholder after pipeline failure", "error", err)
		s.store.Set(text, html)
		return html, nil
	}

	s.cache.Set(ctx, key, html)
	s.store.Set(text, html)
	return html, nil
}

// Text returns the current document text.
func (s *Service) Text() string {
	return s.store.Text()
}

// Rendered returns the current published preview.
func (s *Service) Rendered() []byte {
	return s.store.Rendered()
}

// Snapshot returns the current text and preview from the same update.
func (s *Service) Snapshot() (string, []byte) {
	return s.store.Snapshot()
}
