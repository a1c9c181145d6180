// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"maps"
	"sync"
)

// AnswerBuffer holds the latest answers of an exam page between saves. The
// UI writes to it on every edit and the autosave job reads from it, so it
// is safe for concurrent use.
type AnswerBuffer struct {
	mu      sync.Mutex
	answers map[string]string
	version uint64
	saved   uint64
}

func NewAnswerBuffer() *AnswerBuffer {
	return &AnswerBuffer{answers: make(map[string]string)}
}

// Put records value as the answer for field.
func (b *AnswerBuffer) Put(field, value string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.answers[field]; ok && old == value {
		return
	}
	b.answers[field] = value
	b.version++
}

// Pending returns a copy of the answers and their version. ok is false when
// nothing changed since the last MarkSaved.
func (b *AnswerBuffer) Pending() (answers map[string]string, version uint64, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.version == b.saved {
		return nil, b.version, false
	}
	return maps.Clone(b.answers), b.version, true
}

// MarkSaved records that the answers of version reached the server. Older
// versions finishing late do not roll the mark back.
func (b *AnswerBuffer) MarkSaved(version uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if version > b.saved {
		b.saved = version
	}
}

// All returns a copy of every answer.
func (b *AnswerBuffer) All() map[string]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return maps.Clone(b.answers)
}
