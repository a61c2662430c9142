package index

import (
	"sort"
	"strings"

	"github.com/RoaringBitmap/roaring"
)

// Scoring weights: an exact token equality beats a prefix hit beats
// bare substring containment, per occurrence.
const (
	scoreExact     = 10
	scorePrefix    = 2
	scoreSubstring = 1
)

// SearchOptions adjust a single search call.
type SearchOptions struct {
	// Ranked scores the results and sorts them by relevance.
	Ranked bool
	// Partial switches token resolution to substring containment over
	// every dictionary key.
	Partial bool
	// MinMatch overrides the configured minimum number of distinct
	// matched query tokens; zero keeps the configured default.
	MinMatch int
}

// Match is a single search hit.
type Match struct {
	// Text is the sentence text.
	Text string
	// Index is the sentence's position in the collection.
	Index int
	// Score is the relevance score, zero unless the search was ranked.
	Score int
}

// Search resolves a multi-token query against the index. Each query
// token contributes the sentences it reaches (exact dictionary hit,
// prefix fallback on a miss, or substring sweep in partial mode); a
// sentence survives when enough distinct query tokens reached it. A
// token that matches nothing contributes nothing and never
// disqualifies a sentence matched by other tokens. Unranked results
// come back in ascending collection order; ranked results are sorted
// by score descending, then earliest match position, then collection
// order. An empty or whitespace-only query yields an empty result, and
// the search notification still fires with a zero count.
func (ix *Index) Search(query string, opts SearchOptions) []Match {
	ix.mu.RLock()
	matches := ix.searchLocked(query, opts)
	ix.mu.RUnlock()
	ix.fire(EventSearch, len(matches))
	return matches
}

// SearchTexts is a convenience wrapper returning only the ordered
// sentence texts.
func (ix *Index) SearchTexts(query string, opts SearchOptions) []string {
	matches := ix.Search(query, opts)
	if len(matches) == 0 {
		return nil
	}
	texts := make([]string, len(matches))
	for i, m := range matches {
		texts[i] = m.Text
	}
	return texts
}

func (ix *Index) searchLocked(query string, opts SearchOptions) []Match {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	queryTokens := distinctTokens(ix.tokens(query))
	if len(queryTokens) == 0 {
		return nil
	}

	minMatch := opts.MinMatch
	if minMatch < 1 {
		minMatch = ix.cfg.MinMatchCount
	}

	// One candidate set per query token: the sentences this token
	// reached under the active resolution mode. The bitmaps collapse
	// repeated posting entries, which is exactly what the
	// distinct-token filter needs.
	candidates := make([]*roaring.Bitmap, len(queryTokens))
	union := roaring.NewBitmap()
	for k, qt := range queryTokens {
		candidates[k] = ix.resolveToken(qt, opts.Partial)
		union.Or(candidates[k])
	}

	var matches []Match
	it := union.Iterator()
	for it.HasNext() {
		idx := int(it.Next())
		distinct := 0
		for _, bm := range candidates {
			if bm.Contains(uint32(idx)) {
				distinct++
			}
		}
		if distinct < minMatch {
			continue
		}
		matches = append(matches, Match{Text: ix.sentences[idx], Index: idx})
	}

	if opts.Ranked {
		ix.rank(matches, queryTokens)
	}
	return matches
}

// resolveToken collects the sentence positions a single query token
// contributes. An exact dictionary hit wins outright; a miss falls
// back to a prefix sweep over the keys; partial mode sweeps every key
// for substring containment instead.
func (ix *Index) resolveToken(token string, partial bool) *roaring.Bitmap {
	bm := roaring.NewBitmap()
	if partial {
		for key, postings := range ix.dictionary {
			if strings.Contains(key, token) {
				addPostings(bm, postings)
			}
		}
		return bm
	}
	if postings, ok := ix.dictionary[token]; ok {
		addPostings(bm, postings)
		return bm
	}
	for key, postings := range ix.dictionary {
		if strings.HasPrefix(key, token) {
			addPostings(bm, postings)
		}
	}
	return bm
}

// distinctTokens drops repeated query tokens, keeping first-seen
// order. A repeated token must not count twice toward the distinct
// match minimum or the score.
func distinctTokens(tokens []string) []string {
	if len(tokens) < 2 {
		return tokens
	}
	seen := make(map[string]struct{}, len(tokens))
	out := tokens[:0]
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func addPostings(bm *roaring.Bitmap, postings []int) {
	for _, idx := range postings {
		bm.Add(uint32(idx))
	}
}

type scoredMatch struct {
	m Match
	// earliest is the first position within the sentence's own tokens
	// at which any query token matched.
	earliest int
}

// rank scores each match and sorts: score descending, earliest match
// position ascending, collection order ascending. The keys make the
// order fully deterministic, never dependent on map iteration.
func (ix *Index) rank(matches []Match, queryTokens []string) {
	ranked := make([]scoredMatch, len(matches))
	for i, m := range matches {
		score, earliest := ix.scoreSentence(m.Text, queryTokens)
		m.Score = score
		ranked[i] = scoredMatch{m: m, earliest: earliest}
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.m.Score != b.m.Score {
			return a.m.Score > b.m.Score
		}
		if a.earliest != b.earliest {
			return a.earliest < b.earliest
		}
		return a.m.Index < b.m.Index
	})
	for i := range ranked {
		matches[i] = ranked[i].m
	}
}

// scoreSentence scans the sentence's own tokens, awarding points per
// occurrence for every query token, and reports the earliest token
// position at which any query token matched (the token count when none
// did).
func (ix *Index) scoreSentence(text string, queryTokens []string) (score, earliest int) {
	sentenceTokens := ix.tokens(text)
	earliest = len(sentenceTokens)
	for pos, st := range sentenceTokens {
		for _, qt := range queryTokens {
			points := 0
			switch {
			case st == qt:
				points = scoreExact
			case strings.HasPrefix(st, qt):
				points = scorePrefix
			case strings.Contains(st, qt):
				points = scoreSubstring
			}
			if points == 0 {
				continue
			}
			score += points
			if pos < earliest {
				earliest = pos
			}
		}
	}
	return score, earliest
}
