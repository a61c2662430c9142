package index

// MergeOptions adjust how a source index is folded in.
type MergeOptions struct {
	// Deduplicate skips source sentences whose exact text already
	// exists in the receiving collection. Equality is on sentence
	// text, not token sets.
	Deduplicate bool
}

// Merge appends another index's sentences to this one. Retained
// sentences are re-tokenized with the receiving index's tokenizer and
// case policy, never copied from the source's structures, so the two
// indexes may disagree on configuration. Positions are rebased past
// the current collection and compacted: skipped duplicates leave no
// gaps. The suggestion snapshot is invalidated unconditionally. The
// merge notification reports the source collection's raw sentence
// count, not the post-dedup added count.
func (ix *Index) Merge(other *Index, opts MergeOptions) error {
	if other == nil {
		return ErrNilIndex
	}

	// Snapshot first so merging an index into itself stays safe.
	other.mu.RLock()
	source := append([]string(nil), other.sentences...)
	other.mu.RUnlock()

	ix.mu.Lock()
	next := len(ix.sentences)
	for _, text := range source {
		if opts.Deduplicate {
			// The lookup grows as sentences land, so duplicates
			// within the source itself are suppressed too.
			if _, exists := ix.textIndex[text]; exists {
				continue
			}
		}
		ix.addSentenceLocked(next, text)
		next++
	}
	ix.sortedKeys = nil
	ix.mu.Unlock()
	ix.fire(EventMerge, len(source))
	return nil
}
