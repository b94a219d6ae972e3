// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"log/slog"
)

// RenderCache layers the in-process cache over an optional Valkey tier. Only
// successful renders belong here; error placeholders are recomputed each
// time so a transient failure never sticks.
type RenderCache struct {
	memory *Memory
	valkey *PreviewCache
}

// NewRenderCache combines the two tiers. valkey may be nil when no Valkey is
// configured, leaving the in-process tier on its own.
func NewRenderCache(memory *Memory, valkey *PreviewCache) *RenderCache {
	return &RenderCache{memory: memory, valkey: valkey}
}

// Get looks the key up in the in-process tier first, then in Valkey. A Valkey
// hit is copied back into the in-process tier.
func (rc *RenderCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if html, ok := rc.memory.Get(key); ok {
		slog.Debug("render cache hit", "tier", "memory", "key", key)
		return html, true
	}
	if rc.valkey != nil {
		if html, ok := rc.valkey.Get(ctx, key); ok {
			rc.memory.Set(key, html)
			return html, true
		}
	}
	return nil, false
}

// Set stores rendered HTML in every configured tier.
func (rc *RenderCache) Set(ctx context.Context, key string, html []byte) {
	rc.memory.Set(key, html)
	if rc.valkey != nil {
		rc.valkey.Set(ctx, key, html)
	}
}
