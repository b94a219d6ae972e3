// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package notify manages the single transient status notification shown in
// the editor shell.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severities understood by the editor shell.
const (
	SeveritySuccess = "success"
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Notification is a transient status message. At most one is visible at any
// time; posting replaces the previous one immediately.
type Notification struct {
	ID       uuid.UUID `json:"id"`
	Message  string    `json:"message"`
	Severity string    `json:"severity"`
	PostedAt time.Time `json:"posted_at"`
}

// Center holds the current notification and expires it after a fixed TTL.
//
// Every Post arms its own expiry timer, and a timer clears whatever is
// current when it fires. A timer armed by an earlier notification is not
// cancelled by a later Post, so an earlier expiry can clear a newer
// notification before its own TTL elapses.
type Center struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Notification
}

// NewCenter returns a center whose notifications live for ttl.
func NewCenter(ttl time.Duration) *Center {
	return &Center{ttl: ttl}
}

// Post replaces the current notification and schedules its expiry. It returns
// the posted notification.
func (c *Center) Post(message, severity string) Notification {
	n := &Notification{
		ID:       uuid.New(),
		Message:  message,
		Severity: severity,
		PostedAt: time.Now(),
	}

	c.mu.Lock()
	c.current = n
	c.mu.Unlock()

	time.AfterFunc(c.ttl, func() {
		c.mu.Lock()
		c.current = nil
		c.mu.Unlock()
	})

	return *n
}

// Current returns a copy of the visible notification, or nil when none is
// visible.
func (c *Center) Current() *Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	n := *c.current
	return &n
}
