// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// subsup.go implements the ~subscript~ / ^superscript^ inline extension.
// A run between single delimiters becomes <sub> or <sup>; the run must be
// non-empty, stay on one line, and contain neither whitespace nor the
// delimiter itself, otherwise the text is left literal. Double tildes are
// not consumed here so GFM strikethrough keeps working.
package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Subscript is an inline node rendered as <sub>…</sub>.
type Subscript struct {
	ast.BaseInline
}

// KindSubscript is the node kind for Subscript.
var KindSubscript = ast.NewNodeKind("Subscript")

// Kind implements ast.Node.
func (n *Subscript) Kind() ast.NodeKind { return KindSubscript }

// Dump implements ast.Node.
func (n *Subscript) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// Superscript is an inline node rendered as <sup>…</sup>.
type Superscript struct {
	ast.BaseInline
}

// KindSuperscript is the node kind for Superscript.
var KindSuperscript = ast.NewNodeKind("Superscript")

// Kind implements ast.Node.
func (n *Superscript) Kind() ast.NodeKind { return KindSuperscript }

// Dump implements ast.Node.
func (n *Superscript) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// wrapParser parses a single-delimiter inline span for one delimiter byte.
type wrapParser struct {
	delim   byte
	newNode func() ast.Node
}

// Trigger implements parser.InlineParser.
func (p *wrapParser) Trigger() []byte {
	return []byte{p.delim}
}

// Parse scans for the closing delimiter on the current line. The reader is
// positioned at the opening delimiter. Returning nil leaves the text to the
// next parser (for '~' that is a literal tilde; '~~' is rejected up front so
// the strikethrough parser at higher priority already claimed real runs).
func (p *wrapParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, seg := block.PeekLine()
	if len(line) < 3 || line[1] == p.delim {
		return nil
	}

	end := -1
	for i := 1; i < len(line); i++ {
		c := line[i]
		if c == p.delim {
			end = i
			break
		}
		if util.IsSpace(c) {
			return nil
		}
	}
	if end < 0 {
		return nil
	}

	node := p.newNode()
	node.AppendChild(node, ast.NewTextSegment(text.NewSegment(seg.Start+1, seg.Start+end)))
	block.Advance(end + 1)
	return node
}

// subSuperHTMLRenderer renders Subscript and Superscript nodes. Child text
// goes through the default text renderer, so escaping is preserved.
type subSuperHTMLRenderer struct{}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *subSuperHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindSubscript, r.renderSubscript)
	reg.Register(KindSuperscript, r.renderSuperscript)
}

func (r *subSuperHTMLRenderer) renderSubscript(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<sub>")
	} else {
		_, _ = w.WriteString("</sub>")
	}
	return ast.WalkContinue, nil
}

func (r *subSuperHTMLRenderer) renderSuperscript(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<sup>")
	} else {
		_, _ = w.WriteString("</sup>")
	}
	return ast.WalkContinue, nil
}

type subSuper struct{}

// SubSuper is the goldmark extension wiring the subscript and superscript
// parsers and their renderer. Parsers register after GFM strikethrough (500)
// so '~~' runs are claimed by strikethrough first.
var SubSuper goldmark.Extender = &subSuper{}

// Extend implements goldmark.Extender.
func (e *subSuper) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&wrapParser{delim: '~', newNode: func() ast.Node { return &Subscript{} }}, 550),
		util.Prioritized(&wrapParser{delim: '^', newNode: func() ast.Node { return &Superscript{} }}, 551),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&subSuperHTMLRenderer{}, 500),
	))
}
