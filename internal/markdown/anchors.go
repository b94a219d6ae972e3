// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"fmt"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"

	"markpad/internal/anchor"
)

// anchorIDs implements parser.IDs on top of the anchor package, so heading
// fragments come out the way GitHub writes them. Duplicate headings get an
// ascending numeric suffix. One instance serves one render pass.
type anchorIDs struct {
	used map[string]bool
}

func newAnchorIDs() parser.IDs {
	return &anchorIDs{used: make(map[string]bool)}
}

func (a *anchorIDs) Generate(value []byte, kind ast.NodeKind) []byte {
	base := anchor.Generate(string(value))
	if base == "" {
		base = "heading"
	}
	id := base
	for n := 1; a.used[id]; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	a.used[id] = true
	return []byte(id)
}

func (a *anchorIDs) Put(value []byte) {
	a.used[string(value)] = true
}
