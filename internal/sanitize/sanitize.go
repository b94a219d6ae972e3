// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sanitize filters converted HTML through a bluemonday policy before
// anything is published. The policy starts from the user-generated-content
// defaults and adds an explicit allow-list: iframe embeds with their four
// presentation attributes, sub/sup (the converter emits them), the footnote
// anchor class, and the bounded style properties that inline syntax
// highlighting produces. Everything else is stripped.
package sanitize

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var (
	footnoteClass = regexp.MustCompile(`^footnote-ref$`)
	languageClass = regexp.MustCompile(`^language-[a-zA-Z0-9+-]+$`)
)

// Sanitizer applies the editor's HTML policy. Safe for concurrent use once
// constructed.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// New builds the sanitizer policy.
func New() *Sanitizer {
	p := bluemonday.UGCPolicy()

	// Explicit allow-list beyond UGC defaults.
	p.AllowElements("sub", "sup", "iframe")
	p.AllowAttrs("allow", "allowfullscreen", "frameborder", "scrolling").OnElements("iframe")
	// An iframe without src is dead weight; the UGC URL policy (http/https,
	// parseable) still applies to it.
	p.AllowAttrs("src").OnElements("iframe")

	// Classes the converter emits.
	p.AllowAttrs("class").Matching(footnoteClass).OnElements("sup")
	p.AllowAttrs("class").Matching(languageClass).OnElements("code")

	// Inline highlight styles from chroma. Bounded property set; values are
	// checked by bluemonday's per-property handlers.
	p.AllowStyles(
		"color", "background-color",
		"font-weight", "font-style",
		"text-decoration", "white-space",
	).OnElements("span", "pre", "code")

	return &Sanitizer{policy: p}
}

// Sanitize filters the given HTML fragment. The policy never fails; invalid
// markup comes back reduced, not rejected.
func (s *Sanitizer) Sanitize(html []byte) []byte {
	return s.policy.SanitizeBytes(html)
}
