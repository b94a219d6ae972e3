// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package preview runs document text through the rendering pipeline:
// convert, sanitize, annotate math, strictly in that order. The three
// stages are injected interfaces so tests can substitute fakes and the
// editor never depends on a concrete engine.
package preview

import (
	"fmt"
	"log/slog"
)

// Converter turns markdown source into HTML.
type Converter interface {
	Convert(src []byte) ([]byte, error)
}

// Sanitizer filters HTML down to the allow-list. It cannot fail; hostile
// markup comes back reduced.
type Sanitizer interface {
	Sanitize(html []byte) []byte
}

// Typesetter annotates math expressions in sanitized HTML.
type Typesetter interface {
	Typeset(html []byte) ([]byte, error)
}

// ErrorPlaceholder is the fixed fragment published when conversion or
// sanitization fails. The document text itself is never touched by a
// pipeline failure.
const ErrorPlaceholder = `<p class="preview-error">The preview could not be rendered. Your text is untouched, keep editing.</p>`

// Pipeline composes the three stages.
type Pipeline struct {
	converter  Converter
	sanitizer  Sanitizer
	typesetter Typesetter
}

// New creates a pipeline from the given stages.
func New(c Converter, s Sanitizer, ts Typesetter) *Pipeline {
	return &Pipeline{converter: c, sanitizer: s, typesetter: ts}
}

// Render produces the publishable preview for src. The returned HTML is
// always usable: on conversion or sanitization failure it is the fixed
// placeholder and the error says why (callers use it to skip caching).
// Math annotation failures are swallowed; the sanitized HTML is published
// unannotated. For a fixed configuration Render is deterministic: equal
// input yields byte-equal output.
func (p *Pipeline) Render(src []byte) ([]byte, error) {
	sanitized, err := p.convertAndSanitize(src)
	if err != nil {
		return []byte(ErrorPlaceholder), err
	}
	return p.annotate(sanitized), nil
}

// convertAndSanitize runs the two stages that may fail the preview. Panics
// are contained here so a hostile document cannot take the process down.
func (p *Pipeline) convertAndSanitize(src []byte) (out []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("preview pipeline panic", "panic", rec)
			out = nil
			err = fmt.Errorf("preview: pipeline panic: %v", rec)
		}
	}()

	converted, err := p.converter.Convert(src)
	if err != nil {
		slog.Error("markdown conversion failed", "error", err)
		return nil, fmt.Errorf("preview: convert: %w", err)
	}

	return p.sanitizer.Sanitize(converted), nil
}

// annotate runs the math pass. Failures of any kind degrade to the
// sanitized input.
func (p *Pipeline) annotate(sanitized []byte) (out []byte) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Debug("math annotation panic, publishing unannotated preview", "panic", rec)
			out = sanitized
		}
	}()

	annotated, err := p.typesetter.Typeset(sanitized)
	if err != nil {
		slog.Debug("math annotation failed, publishing unannotated preview", "error", err)
		return sanitized
	}
	return annotated
}
