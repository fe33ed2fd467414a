package handle

import "sync"

// Token is the opaque, word-sized reference to a live sequence. It is the
// only thing the foreign side holds onto between calls; everything it refers
// to lives in the package table below.
type Token uint64

// table is the single live-handle registry. It is the one place ownership of
// a wrapped sequence is parked between trampoline calls, and the one place it
// is released from. Tokens are never reused within a process.
type table struct {
	entries map[Token]any
	next    Token
	mu      sync.Mutex
}

var live = &table{entries: make(map[Token]any)}

func (t *table) put(s any) Token {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	tok := t.next
	t.entries[tok] = s
	return tok
}

func (t *table) get(tok Token) any {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.entries[tok]
}

func (t *table) remove(tok Token) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, tok)
}

func (t *table) size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Live returns the number of handles that have been formed but have not yet
// reported exhaustion. Abandoned handles count forever; the foreign side has
// no dispose entry point, so a caller that stops pulling leaks its sequence.
func Live() int {
	return live.size()
}
