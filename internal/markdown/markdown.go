// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown converts Markdown source text into HTML using goldmark.
// The converter is assembled once with GitHub-flavored extensions, smart
// punctuation, auto heading anchors, hard line breaks, syntax highlighting,
// and two in-house inline extensions: ~subscript~/^superscript^ spans and
// [^id] footnote references numbered per render pass.
//
// Raw HTML passes through unchanged (WithUnsafe); the sanitizer downstream
// owns the decision of what survives, so stripping here would only hide
// markup from the allow-list.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Converter turns markdown source into HTML. It is safe for concurrent use:
// the goldmark instance is immutable after construction and all per-render
// state (the footnote counter, the used heading anchors) lives in the
// per-call parse context.
type Converter struct {
	md goldmark.Markdown
}

// New builds the configured converter.
func New() *Converter {
	return &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,         // GitHub-Flavored Markdown: tables, strikethrough, autolinks, task lists
				extension.Typographer, // Smart quotes, dashes, ellipses
				highlighting.NewHighlighting( // Syntax highlighting for fenced code blocks
					highlighting.WithStyle("monokai"),
					highlighting.WithFormatOptions(),
				),
				SubSuper,     // ~subscript~ and ^superscript^
				FootnoteRefs, // [^id] references numbered left to right
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(), // Auto-generate heading IDs for anchors
			),
			goldmark.WithRendererOptions(
				html.WithHardWraps(), // Single newlines become <br>
				html.WithUnsafe(),    // Raw HTML flows through to the sanitizer
			),
		),
	}
}

// Convert renders markdown source into HTML. The output is not sanitized;
// callers are expected to run it through the sanitizer before serving.
//
// Each call gets a fresh parse context: the footnote counter restarts at 1
// and heading anchors deduplicate within this document only.
func (c *Converter) Convert(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	ctx := parser.NewContext(parser.WithIDs(newAnchorIDs()))
	if err := c.md.Convert(source, &buf, parser.WithContext(ctx)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
