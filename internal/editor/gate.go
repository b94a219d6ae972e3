// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import "sync"

// Gate is the one-time readiness signal. It starts closed, opens exactly
// once, and never closes again.
type Gate struct {
	once sync.Once
	done chan struct{}
}

// NewGate returns a closed gate.
func NewGate() *Gate {
	return &Gate{done: make(chan struct{})}
}

// Open opens the gate. Calling it again is a no-op.
func (g *Gate) Open() {
	g.once.Do(func() { close(g.done) })
}

// Ready reports whether the gate has opened.
func (g *Gate) Ready() bool {
	select {
	case <-g.done:
		return true
	default:
		return false
	}
}

// Done returns a channel that is closed once the gate opens.
func (g *Gate) Done() <-chan struct{} {
	return g.done
}
