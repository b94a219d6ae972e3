// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"markpad/internal/assets"
)

// cspHeader is assembled once from the asset manifest so the policy and the
// script tags on the editor page cannot drift apart.
var cspHeader = buildCSP(cdnOrigins())

// SecureHeaders adds security-related HTTP headers to every response.
// The preview pane may embed third-party iframes, but the editor itself must
// not be framed by other origins.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		// Prevent the browser from MIME-sniffing the Content-Type.
		h.Set("X-Content-Type-Options", "nosniff")

		// Prevent embedding the editor in iframes from other origins.
		h.Set("X-Frame-Options", "SAMEORIGIN")

		// Disable the legacy XSS filter; sanitization happens server-side.
		h.Set("X-XSS-Protection", "0")

		// Control what information is sent in the Referer header.
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		h.Set("Content-Security-Policy", cspHeader)

		next.ServeHTTP(w, r)
	})
}

// buildCSP writes the policy for the editor page. The inline bootstrap
// scripts configure MathJax and register the notification poller, Alpine
// evaluates its expressions with the Function constructor, and Tailwind and
// chroma both write inline styles, so those allowances are not optional.
func buildCSP(cdn []string) string {
	hosts := strings.Join(cdn, " ")
	directives := []string{
		"default-src 'self'",
		"script-src 'self' 'unsafe-inline' 'unsafe-eval' " + hosts,
		"style-src 'self' 'unsafe-inline' " + hosts,
		// MathJax pulls its web fonts from its own CDN.
		"font-src 'self' data: " + hosts,
		// Markdown may reference images anywhere.
		"img-src * data:",
		// Mirrors the sanitizer's iframe src allowance.
		"frame-src http: https:",
		"connect-src 'self'",
		"object-src 'none'",
		"base-uri 'self'",
		"form-action 'self'",
	}
	return strings.Join(directives, "; ")
}

// cdnOrigins extracts the distinct origins of the external assets, in
// manifest order.
func cdnOrigins() []string {
	seen := make(map[string]bool)
	var origins []string
	for _, raw := range append(assets.Scripts(), assets.Stylesheets()...) {
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" {
			continue
		}
		origin := u.Scheme + "://" + u.Host
		if !seen[origin] {
			seen[origin] = true
			origins = append(origins, origin)
		}
	}
	return origins
}
