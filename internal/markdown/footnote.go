// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// footnote.go implements [^id] footnote references. Each reference becomes
// an ascending integer anchor <sup class="footnote-ref"><a href="#fn<N>">N</a></sup>,
// numbered left to right across the document. The counter is stored in the
// per-call parse context, so every render pass starts again at 1 and equal
// input always yields equal output.
package markdown

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// FootnoteRef is an inline node for a single [^id] reference.
type FootnoteRef struct {
	ast.BaseInline

	// Index is the 1-based position of this reference in the render pass.
	Index int

	// Label is the raw id between [^ and ], kept for dumps and debugging.
	Label []byte
}

// KindFootnoteRef is the node kind for FootnoteRef.
var KindFootnoteRef = ast.NewNodeKind("FootnoteRef")

// Kind implements ast.Node.
func (n *FootnoteRef) Kind() ast.NodeKind { return KindFootnoteRef }

// Dump implements ast.Node.
func (n *FootnoteRef) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Index": fmt.Sprintf("%d", n.Index),
		"Label": string(n.Label),
	}, nil)
}

// footnoteIndexKey holds the per-render reference counter in parser.Context.
var footnoteIndexKey = parser.NewContextKey()

// footnoteRefParser parses [^id] sequences. Registered between the code-span
// parser and the link parser, so code spans stay literal and plain [text]
// links are untouched.
type footnoteRefParser struct{}

// Trigger implements parser.InlineParser.
func (p *footnoteRefParser) Trigger() []byte {
	return []byte{'['}
}

// Parse matches [^id] on the current line. The id must be non-empty and
// contain no whitespace, '[' or ']'. Anything else is left to the link
// parser or rendered literally.
func (p *footnoteRefParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if len(line) < 4 || line[1] != '^' {
		return nil
	}

	end := -1
	for i := 2; i < len(line); i++ {
		c := line[i]
		if c == ']' {
			end = i
			break
		}
		if c == '[' || util.IsSpace(c) {
			return nil
		}
	}
	if end < 3 {
		return nil
	}

	label := make([]byte, end-2)
	copy(label, line[2:end])
	block.Advance(end + 1)

	index := 1
	if v := pc.Get(footnoteIndexKey); v != nil {
		index = v.(int) + 1
	}
	pc.Set(footnoteIndexKey, index)

	return &FootnoteRef{Index: index, Label: label}
}

// footnoteRefHTMLRenderer renders FootnoteRef nodes.
type footnoteRefHTMLRenderer struct{}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *footnoteRefHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindFootnoteRef, r.render)
}

func (r *footnoteRefHTMLRenderer) render(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*FootnoteRef)
	_, _ = fmt.Fprintf(w, `<sup class="footnote-ref"><a href="#fn%d">%d</a></sup>`, n.Index, n.Index)
	return ast.WalkContinue, nil
}

type footnoteRefs struct{}

// FootnoteRefs is the goldmark extension wiring the footnote reference
// parser and renderer.
var FootnoteRefs goldmark.Extender = &footnoteRefs{}

// Extend implements goldmark.Extender.
func (e *footnoteRefs) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&footnoteRefParser{}, 101),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&footnoteRefHTMLRenderer{}, 500),
	))
}
