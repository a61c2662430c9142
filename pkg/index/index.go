// Package index implements an in-memory sentence index: a word to
// sentence-position dictionary built from a fixed collection of short
// text entries, answering token search, ranked retrieval and prefix
// word suggestion.
//
// The collection is replaced wholesale by Initialize, extended by
// Merge and cleared by Reset; there are no single-sentence updates. A
// sentence's position in the collection is its identity everywhere:
// dictionary postings, the text lookup and search results all refer to
// it.
package index

import (
	"errors"
	"strings"
	"sync"

	"github.com/sentserve/sentserve/pkg/tokenizer"
)

var (
	// ErrInvalidInput is returned when Initialize is handed no sentence
	// collection at all.
	ErrInvalidInput = errors.New("index: sentences must be a non-nil string slice")
	// ErrNilIndex is returned when Merge is handed something that is
	// not a usable index.
	ErrNilIndex = errors.New("index: merge source is not a valid index")
)

// Config holds index construction options.
type Config struct {
	// MinMatchCount is the default number of distinct query tokens a
	// sentence must match before it appears in search results. Values
	// below 1 fall back to the builtin default.
	MinMatchCount int
	// CaseSensitive disables the shared lower-casing normalization.
	CaseSensitive bool
	// StrictTokens selects the strict builtin tokenizer (hyphens and
	// apostrophes kept) when no custom Tokenizer is given.
	StrictTokens bool
	// Tokenizer substitutes a caller-supplied tokenizer wholesale. Its
	// output still goes through the shared case normalization.
	Tokenizer tokenizer.Tokenizer
}

// DefaultConfig returns the standard construction options. The default
// minimum match count is deliberately conservative to suppress
// single-token noise.
func DefaultConfig() Config {
	return Config{MinMatchCount: 3}
}

// Index owns the sentence collection and every structure derived from
// it. All mutating operations run to completion before returning,
// leaving the index fully consistent; the sorted suggestion snapshot
// is the only derived state that can go stale and every mutator
// invalidates it. A single RWMutex guards the whole aggregate since
// searches read the same structures mutations modify.
type Index struct {
	mu  sync.RWMutex
	cfg Config
	tok tokenizer.Tokenizer

	sentences  []string
	dictionary map[string][]int
	wordFreq   map[string]int
	textIndex  map[string]int

	// sortedKeys is the lazily built suggestion snapshot; nil means it
	// must be rebuilt before use.
	sortedKeys []string

	listeners map[EventKind][]Listener
}

// New creates an empty index with the given options.
func New(cfg Config) *Index {
	if cfg.MinMatchCount < 1 {
		cfg.MinMatchCount = DefaultConfig().MinMatchCount
	}
	tok := cfg.Tokenizer
	if tok == nil {
		if cfg.StrictTokens {
			tok = tokenizer.Strict{}
		} else {
			tok = tokenizer.Default{}
		}
	}
	ix := &Index{
		cfg:       cfg,
		tok:       tok,
		listeners: make(map[EventKind][]Listener),
	}
	ix.clearLocked()
	return ix
}

// Initialize replaces the whole collection: prior state is fully
// discarded, each sentence is tokenized and recorded at its position.
// A nil slice is rejected before any mutation happens.
func (ix *Index) Initialize(sentences []string) error {
	if sentences == nil {
		return ErrInvalidInput
	}
	ix.mu.Lock()
	ix.clearLocked()
	for i, text := range sentences {
		ix.addSentenceLocked(i, text)
	}
	ix.mu.Unlock()
	ix.fire(EventInit, len(sentences))
	return nil
}

// Reset clears the collection and every derived structure.
func (ix *Index) Reset() {
	ix.mu.Lock()
	ix.clearLocked()
	ix.mu.Unlock()
	ix.fire(EventReset, 0)
}

// Len returns the number of indexed sentences.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.sentences)
}

// Config returns the construction options the index was built with.
func (ix *Index) Config() Config {
	return ix.cfg
}

// Dictionary returns the live token to sentence-position mapping. A
// position repeats when the token occurs multiple times in the same
// sentence. Callers must treat the map as read-only.
func (ix *Index) Dictionary() map[string][]int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.dictionary
}

// WordFrequency returns the live token to total-occurrence-count
// mapping. Callers must treat the map as read-only.
func (ix *Index) WordFrequency() map[string]int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.wordFreq
}

// addSentenceLocked records one sentence at position i: appends it to
// the collection, adds i to every token's postings (once per
// occurrence), bumps frequencies and records the text lookup entry
// (last write wins on duplicate text).
func (ix *Index) addSentenceLocked(i int, text string) {
	ix.sentences = append(ix.sentences, text)
	for _, token := range ix.tokens(text) {
		ix.dictionary[token] = append(ix.dictionary[token], i)
		ix.wordFreq[token]++
	}
	ix.textIndex[text] = i
}

func (ix *Index) clearLocked() {
	ix.sentences = nil
	ix.dictionary = make(map[string][]int)
	ix.wordFreq = make(map[string]int)
	ix.textIndex = make(map[string]int)
	ix.sortedKeys = nil
}

// normalize applies the shared case policy to a single token or
// prefix.
func (ix *Index) normalize(token string) string {
	if ix.cfg.CaseSensitive {
		return token
	}
	return strings.ToLower(token)
}

// tokens tokenizes text and applies the shared normalization, so
// indexing and queries always agree on token identity.
func (ix *Index) tokens(text string) []string {
	raw := ix.tok.Tokenize(text)
	if ix.cfg.CaseSensitive || len(raw) == 0 {
		return raw
	}
	out := make([]string, len(raw))
	for i, t := range raw {
		out[i] = strings.ToLower(t)
	}
	return out
}
