// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Notification returns the current transient notification as JSON, or 204
// when none is visible.
func (e *Editor) Notification(w http.ResponseWriter, r *http.Request) {
	n := e.notifier.Current()
	if n == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(n); err != nil {
		slog.Warn("notification encode failed", "error", err)
	}
}
