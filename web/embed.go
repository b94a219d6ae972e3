// Package web provides the embedded static assets served at /static/.
// The five external assets (htmx, Alpine, Tailwind, MathJax, the markdown
// stylesheet) stay CDN-served; only the local editor stylesheet lives here.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree.
//
//go:embed all:static
var StaticFS embed.FS
