// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package document holds the single shared document and its rendered preview.
package document

import "sync"

// Store owns the document text and its rendered HTML. The two values swap
// together under one lock, so a reader never observes text from one update
// paired with HTML from another. Writes replace the whole pair and the last
// writer wins.
type Store struct {
	mu       sync.RWMutex
	text     string
	rendered []byte
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Set replaces the document text and rendered HTML as one pair.
func (s *Store) Set(text string, rendered []byte) {
	buf := append([]byte(nil), rendered...)
	s.mu.Lock()
	s.text = text
	s.rendered = buf
	s.mu.Unlock()
}

// Text returns the current document text.
func (s *Store) Text() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.text
}

// Rendered returns a copy of the current rendered HTML. Callers may keep or
// modify the slice freely.
func (s *Store) Rendered() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]byte(nil), s.rendered...)
}

// Snapshot returns the text and rendered HTML from the same update.
func (s *Store) Snapshot() (string, []byte) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.text, append([]byte(nil), s.rendered...)
}
