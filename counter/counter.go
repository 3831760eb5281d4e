package counter

import "sync"

// OtherKey is the fallback bucket used by HitOrOther.
const OtherKey = "other"

// Tally is a bounded-key counter map. Keys are fixed at construction and
// counts only ever go up. Safe for concurrent use.
type Tally struct {
	mu     sync.Mutex
	counts map[string]int
}

// New creates a tally with the given keys, each starting at zero.
func New(keys ...string) *Tally {
	counts := make(map[string]int, len(keys))
	for _, k := range keys {
		counts[k] = 0
	}
	return &Tally{counts: counts}
}

// Hit increments the counter for a known key and returns the new count.
// Unknown keys are rejected.
func (t *Tally) Hit(key string) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, ok := t.counts[key]
	if !ok {
		return 0, false
	}
	n++
	t.counts[key] = n
	return n, true
}

// HitOrOther increments the counter for the key, folding unknown keys into
// the "other" bucket. The tally must have been constructed with OtherKey.
func (t *Tally) HitOrOther(key string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.counts[key]; !ok {
		key = OtherKey
	}
	n := t.counts[key] + 1
	t.counts[key] = n
	return n
}

// Count returns the current count for a key.
func (t *Tally) Count(key string) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, ok := t.counts[key]
	return n, ok
}
