// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package anchor derives URL fragment identifiers from heading text, close
// to what GitHub produces for the same heading.
package anchor

import (
	"regexp"
	"strings"
)

var (
	// stripped matches anything that cannot appear in a fragment: everything
	// except lowercase letters, digits, underscores, whitespace, and hyphens.
	stripped = regexp.MustCompile(`[^a-z0-9_\s-]`)
	// whitespaceRuns turns each run of whitespace into a single hyphen.
	whitespaceRuns = regexp.MustCompile(`\s+`)
	// hyphenRuns collapses consecutive hyphens into one.
	hyphenRuns = regexp.MustCompile(`-{2,}`)
)

// Generate derives the fragment identifier for a heading.
// Example: "Saving & Loading Files" → "saving-loading-files"
func Generate(text string) string {
	result := strings.ToLower(strings.TrimSpace(text))
	result = stripped.ReplaceAllString(result, "")
	result = whitespaceRuns.ReplaceAllString(result, "-")
	result = hyphenRuns.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
