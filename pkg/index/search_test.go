package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchExactMatch(t *testing.T) {
	ix := newTestIndex(t, []string{"The quick brown fox", "Quick foxes run"})

	// "fox" exists verbatim, so only its own postings contribute.
	assert.Equal(t, []string{"The quick brown fox"}, ix.SearchTexts("fox", SearchOptions{}))
}

func TestSearchPrefixFallback(t *testing.T) {
	ix := newTestIndex(t, []string{"The quick brown fox", "Quick foxes run"})

	// "foxe" misses the dictionary, so every key starting with it
	// contributes instead.
	assert.Equal(t, []string{"Quick foxes run"}, ix.SearchTexts("foxe", SearchOptions{}))
}

func TestSearchPartial(t *testing.T) {
	ix := newTestIndex(t, []string{"The quick brown fox", "Quick foxes run"})

	// Substring mode sweeps every key containing the token, so both
	// "fox" and "foxes" contribute.
	got := ix.SearchTexts("fox", SearchOptions{Partial: true})
	assert.Equal(t, []string{"The quick brown fox", "Quick foxes run"}, got)
}

func TestSearchMinMatchFilter(t *testing.T) {
	ix := newTestIndex(t, []string{"The quick brown fox", "Quick foxes run"})

	// Both sentences match "quick"; only the first also matches "fox".
	got := ix.SearchTexts("quick fox", SearchOptions{MinMatch: 2})
	assert.Equal(t, []string{"The quick brown fox"}, got)

	got = ix.SearchTexts("quick fox", SearchOptions{MinMatch: 1})
	assert.Equal(t, []string{"The quick brown fox", "Quick foxes run"}, got)
}

func TestSearchDuplicateOccurrencesCountOnce(t *testing.T) {
	ix := newTestIndex(t, []string{"fox fox fox"})

	// Three occurrences of one token are still one distinct match.
	assert.Empty(t, ix.SearchTexts("fox", SearchOptions{MinMatch: 2}))
	assert.Len(t, ix.SearchTexts("fox", SearchOptions{MinMatch: 1}), 1)
}

func TestSearchRepeatedQueryTokenCountsOnce(t *testing.T) {
	ix := newTestIndex(t, []string{"The quick brown fox"})

	// Repeating a query token must not satisfy a higher minimum.
	assert.Empty(t, ix.SearchTexts("fox fox", SearchOptions{MinMatch: 2}))

	got := ix.Search("fox fox", SearchOptions{Ranked: true, MinMatch: 1})
	require.Len(t, got, 1)
	assert.Equal(t, 10, got[0].Score, "Repeated query token must not double the score")
}

func TestSearchUnmatchedTokenDoesNotDisqualify(t *testing.T) {
	ix := newTestIndex(t, []string{"The quick brown fox"})

	got := ix.SearchTexts("fox zzzzz", SearchOptions{})
	assert.Equal(t, []string{"The quick brown fox"}, got)
}

func TestSearchEmptyQuery(t *testing.T) {
	ix := newTestIndex(t, []string{"some text"})

	var events []Event
	ix.On(EventSearch, func(e Event) { events = append(events, e) })

	assert.Empty(t, ix.Search("", SearchOptions{}))
	assert.Empty(t, ix.Search("   \t ", SearchOptions{}))

	// The empty case still fires a zero-count notification.
	require.Len(t, events, 2)
	assert.Equal(t, Event{Kind: EventSearch, Count: 0}, events[0])
	assert.Equal(t, Event{Kind: EventSearch, Count: 0}, events[1])
}

func TestSearchNoMatchesIsNotAnError(t *testing.T) {
	ix := newTestIndex(t, []string{"alpha beta"})
	assert.Empty(t, ix.SearchTexts("gamma", SearchOptions{}))
}

func TestSearchConservativeDefault(t *testing.T) {
	ix := New(DefaultConfig())
	require.NoError(t, ix.Initialize([]string{"The quick brown fox"}))

	// A single-token query cannot reach the default minimum of 3.
	assert.Empty(t, ix.SearchTexts("fox", SearchOptions{}))
	assert.Len(t, ix.SearchTexts("fox", SearchOptions{MinMatch: 1}), 1)
}

func TestRankedScoring(t *testing.T) {
	ix := newTestIndex(t, []string{
		"fox fox fox",
		"the fox",
		"foxes everywhere",
	})

	got := ix.Search("fox", SearchOptions{Ranked: true})
	require.Len(t, got, 2, "Exact dictionary hit keeps 'foxes' out of the candidates")
	assert.Equal(t, "fox fox fox", got[0].Text)
	assert.Equal(t, 30, got[0].Score, "Three exact occurrences at 10 points each")
	assert.Equal(t, "the fox", got[1].Text)
	assert.Equal(t, 10, got[1].Score)
}

func TestRankedScoringPartial(t *testing.T) {
	ix := newTestIndex(t, []string{
		"fox fox fox",
		"the fox",
		"foxes everywhere",
	})

	got := ix.Search("fox", SearchOptions{Ranked: true, Partial: true})
	require.Len(t, got, 3)
	assert.Equal(t, []string{"fox fox fox", "the fox", "foxes everywhere"},
		[]string{got[0].Text, got[1].Text, got[2].Text})
	// "foxes" starts with the query token: a prefix occurrence.
	assert.Equal(t, 2, got[2].Score)
}

func TestRankedTieBreakEarliestPosition(t *testing.T) {
	ix := newTestIndex(t, []string{"burrow fox", "fox burrow"})

	got := ix.Search("fox", SearchOptions{Ranked: true})
	require.Len(t, got, 2)
	// Equal scores; the sentence whose match comes earlier wins.
	assert.Equal(t, "fox burrow", got[0].Text)
	assert.Equal(t, "burrow fox", got[1].Text)
}

func TestRankedTieBreakInsertionOrder(t *testing.T) {
	ix := newTestIndex(t, []string{"fox alpha", "fox beta"})

	got := ix.Search("fox", SearchOptions{Ranked: true})
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Index)
	assert.Equal(t, 1, got[1].Index)
}

func TestRankedSearchIsStable(t *testing.T) {
	ix := newTestIndex(t, []string{
		"fox den", "fox hole", "fox trot", "a fox", "foxes", "red fox red",
	})

	first := ix.SearchTexts("fox red", SearchOptions{Ranked: true})
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ix.SearchTexts("fox red", SearchOptions{Ranked: true}))
	}
}

func TestUnrankedOrderIsInsertionOrder(t *testing.T) {
	ix := newTestIndex(t, []string{"fox c", "fox a", "fox b"})

	got := ix.Search("fox", SearchOptions{})
	require.Len(t, got, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{got[0].Index, got[1].Index, got[2].Index})
}

func TestStrictVersusDefaultTokens(t *testing.T) {
	sentences := []string{"hi-tech solution", "high tech answer"}

	strict := New(Config{MinMatchCount: 1, StrictTokens: true})
	require.NoError(t, strict.Initialize(sentences))
	assert.Equal(t, []string{"hi-tech solution"}, strict.SearchTexts("hi-tech", SearchOptions{}),
		"Strict tokens keep the compound whole")

	loose := New(Config{MinMatchCount: 1})
	require.NoError(t, loose.Initialize(sentences))
	assert.Equal(t, sentences, loose.SearchTexts("hi-tech", SearchOptions{}),
		"Default tokens split the compound and match both sentences")
	assert.Equal(t, []string{"hi-tech solution"}, loose.SearchTexts("hi-tech", SearchOptions{MinMatch: 2}))
}

func TestSearchCaseSensitivity(t *testing.T) {
	insensitive := newTestIndex(t, []string{"The Fox"})
	assert.Len(t, insensitive.SearchTexts("FOX", SearchOptions{}), 1)

	sensitive := New(Config{MinMatchCount: 1, CaseSensitive: true})
	require.NoError(t, sensitive.Initialize([]string{"The Fox"}))
	assert.Empty(t, sensitive.SearchTexts("fox", SearchOptions{}))
	assert.Len(t, sensitive.SearchTexts("Fox", SearchOptions{}), 1)
}

func TestEverySentenceRetrievable(t *testing.T) {
	sentences := []string{
		"The quick brown fox jumps over the lazy dog",
		"Pack my box with five dozen liquor jugs",
		"Sphinx of black quartz judge my vow",
	}
	ix := newTestIndex(t, sentences)

	for _, sentence := range sentences {
		tokens := ix.tokens(sentence)
		require.NotEmpty(t, tokens)
		for _, token := range tokens {
			assert.Contains(t, ix.SearchTexts(token, SearchOptions{MinMatch: 1}), sentence,
				"Sentence must be retrievable via its own token %q", token)
		}
	}
}

func BenchmarkSearch(b *testing.B) {
	ix := New(Config{MinMatchCount: 1})
	sentences := make([]string, 0, 1000)
	words := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta"}
	for i := 0; i < 1000; i++ {
		sentences = append(sentences, words[i%len(words)]+" "+words[(i+3)%len(words)]+" "+words[(i+5)%len(words)])
	}
	if err := ix.Initialize(sentences); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ix.Search("alpha gamma", SearchOptions{Ranked: true})
	}
}

func BenchmarkSuggest(b *testing.B) {
	ix := New(Config{MinMatchCount: 1})
	sentences := make([]string, 0, 1000)
	words := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta"}
	for i := 0; i < 1000; i++ {
		sentences = append(sentences, words[i%len(words)]+" "+words[(i+3)%len(words)])
	}
	if err := ix.Initialize(sentences); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ix.Suggest("al")
	}
}
