package index

import (
	"sort"
	"strings"
)

// Suggest returns every dictionary word starting with prefix, in
// lexicographic order. The prefix goes through the shared case policy.
// An empty or whitespace-only prefix yields an empty result. The
// sorted key snapshot is rebuilt only when a mutation invalidated it;
// a lower-bound binary search locates the first candidate and the
// contiguous run of matching keys follows it.
func (ix *Index) Suggest(prefix string) []string {
	var out []string
	if strings.TrimSpace(prefix) != "" {
		p := ix.normalize(prefix)
		ix.mu.Lock() // the snapshot rebuild mutates cached state
		keys := ix.sortedKeysLocked()
		start := sort.SearchStrings(keys, p)
		for _, key := range keys[start:] {
			if !strings.HasPrefix(key, p) {
				break
			}
			out = append(out, key)
		}
		ix.mu.Unlock()
	}
	ix.fire(EventSuggest, len(out))
	return out
}

// sortedKeysLocked rebuilds the sorted key snapshot if it is absent.
// The snapshot is a pure cache: dropping it never changes results,
// only the cost of the next call.
func (ix *Index) sortedKeysLocked() []string {
	if ix.sortedKeys != nil {
		return ix.sortedKeys
	}
	keys := make([]string, 0, len(ix.dictionary))
	for key := range ix.dictionary {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	ix.sortedKeys = keys
	return keys
}
