// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package assets declares the external browser assets the editor shell needs
// and verifies they are reachable before the editor opens.
package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// Kind classifies how a resource is included in the page.
type Kind string

const (
	KindScript     Kind = "script"
	KindStylesheet Kind = "stylesheet"
)

// Resource is one external asset, addressed by its pinned CDN URL.
type Resource struct {
	URL  string
	Kind Kind
}

// Pinned CDN URLs. These are constants of the product, not configuration.
const (
	htmxURL        = "https://unpkg.com/htmx.org@1.9.12"
	alpineURL      = "https://unpkg.com/alpinejs@3.14.1/dist/cdn.min.js"
	tailwindURL    = "https://cdn.tailwindcss.com"
	mathjaxURL     = "https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-chtml.js"
	markdownCSSURL = "https://cdn.jsdelivr.net/npm/github-markdown-css@5.5.1/github-markdown.min.css"
)

// Manifest returns the assets the editor page includes, in load order: four
// scripts and one stylesheet.
func Manifest() []Resource {
	return []Resource{
		{URL: htmxURL, Kind: KindScript},
		{URL: alpineURL, Kind: KindScript},
		{URL: tailwindURL, Kind: KindScript},
		{URL: mathjaxURL, Kind: KindScript},
		{URL: markdownCSSURL, Kind: KindStylesheet},
	}
}

// Scripts returns the script URLs from the manifest in load order.
func Scripts() []string {
	var urls []string
	for _, res := range Manifest() {
		if res.Kind == KindScript {
			urls = append(urls, res.URL)
		}
	}
	return urls
}

// Stylesheets returns the stylesheet URLs from the manifest in load order.
func Stylesheets() []string {
	var urls []string
	for _, res := range Manifest() {
		if res.Kind == KindStylesheet {
			urls = append(urls, res.URL)
		}
	}
	return urls
}

const fetchTimeout = 20 * time.Second

// Loader verifies that a set of resources is reachable.
type Loader struct {
	client    *http.Client
	resources []Resource
}

// NewLoader returns a loader for the given resources.
func NewLoader(resources []Resource) *Loader {
	return &Loader{
		client:    &http.Client{Timeout: fetchTimeout},
		resources: resources,
	}
}

// FetchAll fetches every resource concurrently. It returns nil only when all
// of them respond with HTTP 200 and a non-empty body; otherwise it returns an
// error naming the first resource that failed.
func (l *Loader) FetchAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, res := range l.resources {
		res := res
		g.Go(func() error {
			return l.fetch(ctx, res)
		})
	}
	return g.Wait()
}

func (l *Loader) fetch(ctx context.Context, res Resource) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, res.URL, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", res.URL, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s %s: %w", res.Kind, res.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s %s: unexpected status %d", res.Kind, res.URL, resp.StatusCode)
	}

	n, err := io.Copy(io.Discard, resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s %s: %w", res.Kind, res.URL, err)
	}
	if n == 0 {
		return fmt.Errorf("fetching %s %s: empty body", res.Kind, res.URL)
	}
	return nil
}
