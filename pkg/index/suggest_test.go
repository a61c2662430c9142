package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestPrefixes(t *testing.T) {
	ix := newTestIndex(t, []string{"the quick brown fox", "the quiet queen"})

	testCases := []struct {
		prefix      string
		expected    []string
		description string
	}{
		{"qu", []string{"queen", "quick", "quiet"}, "Lexicographic order"},
		{"qui", []string{"quick", "quiet"}, "Longer prefix narrows"},
		{"the", []string{"the"}, "Whole word is its own prefix"},
		{"z", nil, "No matches"},
		{"", nil, "Empty prefix"},
		{"   ", nil, "Whitespace prefix"},
	}

	for _, tc := range testCases {
		got := ix.Suggest(tc.prefix)
		if tc.expected == nil {
			assert.Empty(t, got, tc.description)
			continue
		}
		assert.Equal(t, tc.expected, got, tc.description)
	}
}

func TestSuggestExactSetProperty(t *testing.T) {
	ix := newTestIndex(t, []string{"banana band bandit", "bank banner ban"})

	got := ix.Suggest("ban")
	assert.Equal(t, []string{"ban", "banana", "band", "bandit", "bank", "banner"}, got)
}

func TestSuggestCaseFolding(t *testing.T) {
	ix := newTestIndex(t, []string{"Quick Queen"})

	assert.Equal(t, ix.Suggest("qu"), ix.Suggest("QU"))
	assert.Equal(t, []string{"queen", "quick"}, ix.Suggest("Qu"))
}

func TestSuggestCacheInvalidation(t *testing.T) {
	ix := newTestIndex(t, []string{"apple apricot"})

	assert.Equal(t, []string{"apple", "apricot"}, ix.Suggest("ap"))

	other := newTestIndex(t, []string{"apex arena"})
	require.NoError(t, ix.Merge(other, MergeOptions{}))
	assert.Equal(t, []string{"apex", "apple", "apricot"}, ix.Suggest("ap"),
		"Merge must invalidate the sorted snapshot")

	require.NoError(t, ix.Initialize([]string{"anchor"}))
	assert.Equal(t, []string{"anchor"}, ix.Suggest("a"),
		"Initialize must invalidate the sorted snapshot")

	ix.Reset()
	assert.Empty(t, ix.Suggest("a"), "Reset must leave nothing to suggest")
}

func TestSuggestReusesSnapshot(t *testing.T) {
	ix := newTestIndex(t, []string{"stone star stair"})

	ix.Suggest("st")
	first := ix.sortedKeys
	require.NotNil(t, first)

	ix.Suggest("sta")
	assert.Same(t, &first[0], &ix.sortedKeys[0], "Reads between mutations reuse the snapshot")
}

func TestSuggestNotification(t *testing.T) {
	ix := newTestIndex(t, []string{"alpha beta"})

	var events []Event
	ix.On(EventSuggest, func(e Event) { events = append(events, e) })

	ix.Suggest("a")
	ix.Suggest("nope")

	require.Len(t, events, 2)
	assert.Equal(t, Event{Kind: EventSuggest, Count: 1}, events[0])
	assert.Equal(t, Event{Kind: EventSuggest, Count: 0}, events[1])
}
