// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package typeset annotates math expressions inside sanitized HTML so the
// browser's MathJax pass can typeset them. Text nodes are scanned for
// display math first ($$...$$ by default), then inline math ($...$); each
// match becomes a span MathJax recognizes without extra configuration:
//
//	<span class="math display">\[...\]</span>
//	<span class="math inline">\(...\)</span>
//
// code, pre, script, style, and textarea subtrees are never touched, the
// same set MathJax itself skips. Fragments without any math come back
// byte-identical.
package typeset

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Delimiters configures the delimiter pairs scanned in text nodes. Both are
// literal strings, not patterns.
type Delimiters struct {
	Inline  string
	Display string
}

// DefaultDelimiters returns the fixed editor configuration: $ for inline
// math, $$ for display math.
func DefaultDelimiters() Delimiters {
	return Delimiters{Inline: "$", Display: "$$"}
}

// skipElements are subtrees whose text is never scanned for math.
var skipElements = map[atom.Atom]bool{
	atom.Code:     true,
	atom.Pre:      true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Textarea: true,
}

// Engine performs the math annotation pass. Safe for concurrent use.
type Engine struct {
	delims    Delimiters
	displayRe *regexp.Regexp
	inlineRe  *regexp.Regexp
}

// New builds an engine with the default delimiter configuration.
func New() *Engine {
	return &Engine{
		delims:    DefaultDelimiters(),
		displayRe: regexp.MustCompile(`(?s)\$\$(.+?)\$\$`),
		inlineRe:  regexp.MustCompile(`\$([^$\n]+)\$`),
	}
}

// NewWith builds an engine for custom delimiters.
func NewWith(d Delimiters) (*Engine, error) {
	if d.Inline == "" || d.Display == "" {
		return nil, fmt.Errorf("typeset: delimiters must be non-empty")
	}
	if d.Inline == d.Display {
		return nil, fmt.Errorf("typeset: inline and display delimiters must differ")
	}
	display, err := regexp.Compile(`(?s)` + regexp.QuoteMeta(d.Display) + `(.+?)` + regexp.QuoteMeta(d.Display))
	if err != nil {
		return nil, fmt.Errorf("typeset: compile display pattern: %w", err)
	}
	inline, err := regexp.Compile(regexp.QuoteMeta(d.Inline) + `([^` + classEscape(d.Inline) + "\n]+)" + regexp.QuoteMeta(d.Inline))
	if err != nil {
		return nil, fmt.Errorf("typeset: compile inline pattern: %w", err)
	}
	return &Engine{delims: d, displayRe: display, inlineRe: inline}, nil
}

// Typeset scans the fragment's text nodes and wraps math expressions in
// annotation spans. Fragments without math are returned unchanged, so the
// common no-math path never reserializes.
func (e *Engine) Typeset(fragment []byte) ([]byte, error) {
	if !bytes.Contains(fragment, []byte(e.delims.Inline)) &&
		!bytes.Contains(fragment, []byte(e.delims.Display)) {
		return fragment, nil
	}

	parsed, err := html.ParseFragment(bytes.NewReader(fragment), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return nil, fmt.Errorf("typeset: parse fragment: %w", err)
	}

	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	for _, n := range parsed {
		root.AppendChild(n)
	}

	if !e.walk(root) {
		return fragment, nil
	}

	var buf bytes.Buffer
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return nil, fmt.Errorf("typeset: render fragment: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// walk annotates text nodes below n, skipping protected subtrees. Returns
// true if anything changed.
func (e *Engine) walk(n *html.Node) bool {
	if n.Type == html.ElementNode && skipElements[n.DataAtom] {
		return false
	}

	changed := false
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling // capture before the child list is mutated
		if c.Type == html.TextNode {
			if e.annotate(n, c) {
				changed = true
			}
		} else if e.walk(c) {
			changed = true
		}
		c = next
	}
	return changed
}

// annotate replaces one text node with a text/math-span sequence. Returns
// false when the node holds no complete math expression.
func (e *Engine) annotate(parent, tn *html.Node) bool {
	pieces := e.split(tn.Data)
	if pieces == nil {
		return false
	}
	for _, piece := range pieces {
		parent.InsertBefore(piece, tn)
	}
	parent.RemoveChild(tn)
	return true
}

// split cuts a text run into plain-text and math-span nodes. Display math
// is matched before inline math. Returns nil when no math is found.
func (e *Engine) split(text string) []*html.Node {
	var out []*html.Node
	found := false

	emitText := func(s string) {
		if s != "" {
			out = append(out, &html.Node{Type: html.TextNode, Data: s})
		}
	}
	emitMath := func(content string, display bool) {
		class, opening, closing := "math inline", `\(`, `\)`
		if display {
			class, opening, closing = "math display", `\[`, `\]`
		}
		span := &html.Node{
			Type:     html.ElementNode,
			Data:     "span",
			DataAtom: atom.Span,
			Attr:     []html.Attribute{{Key: "class", Val: class}},
		}
		span.AppendChild(&html.Node{Type: html.TextNode, Data: opening + content + closing})
		out = append(out, span)
		found = true
	}
	emitInline := func(s string) {
		pos := 0
		for _, m := range e.inlineRe.FindAllStringSubmatchIndex(s, -1) {
			emitText(s[pos:m[0]])
			emitMath(s[m[2]:m[3]], false)
			pos = m[1]
		}
		emitText(s[pos:])
	}

	pos := 0
	for _, m := range e.displayRe.FindAllStringSubmatchIndex(text, -1) {
		emitInline(text[pos:m[0]])
		emitMath(text[m[2]:m[3]], true)
		pos = m[1]
	}
	emitInline(text[pos:])

	if !found {
		return nil
	}
	return out
}

// classEscape escapes a literal string for use inside a regexp character
// class.
func classEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\', ']', '^', '-':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
