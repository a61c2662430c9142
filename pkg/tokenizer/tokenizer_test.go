package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTokenize(t *testing.T) {
	testCases := []struct {
		input       string
		expected    []string
		description string
	}{
		{"The quick brown fox", []string{"The", "quick", "brown", "fox"}, "Plain words"},
		{"hi-tech solution", []string{"hi", "tech", "solution"}, "Hyphen splits"},
		{"I'm here", []string{"I", "m", "here"}, "Apostrophe splits"},
		{"user@email.com", []string{"user", "email", "com"}, "Punctuation splits"},
		{"price: $9.99", []string{"price", "9", "99"}, "Symbols and digits"},
		{"  spaced   out  ", []string{"spaced", "out"}, "Runs of whitespace"},
		{"café au lait", []string{"café", "au", "lait"}, "Unicode letters preserved"},
		{"", nil, "Empty input"},
		{"!!! ---", nil, "Separators only"},
	}

	var tok Default
	for _, tc := range testCases {
		got := tok.Tokenize(tc.input)
		if tc.expected == nil {
			assert.Empty(t, got, tc.description)
			continue
		}
		assert.Equal(t, tc.expected, got, tc.description)
	}
}

func TestStrictTokenize(t *testing.T) {
	testCases := []struct {
		input       string
		expected    []string
		description string
	}{
		{"hi-tech solution", []string{"hi-tech", "solution"}, "Hyphenated compound kept"},
		{"I'm here", []string{"I'm", "here"}, "Contraction kept"},
		{"The quick, brown fox!", []string{"The", "quick", "brown", "fox"}, "Punctuation dropped"},
		{"state-of-the-art", []string{"state-of-the-art"}, "Multiple hyphens"},
		{"tabs\tand\nnewlines", []string{"tabs", "and", "newlines"}, "Whitespace variants"},
		{"", nil, "Empty input"},
		{" .,;: ", nil, "Separators only"},
	}

	var tok Strict
	for _, tc := range testCases {
		got := tok.Tokenize(tc.input)
		if tc.expected == nil {
			assert.Empty(t, got, tc.description)
			continue
		}
		assert.Equal(t, tc.expected, got, tc.description)
	}
}

func TestFuncAdapter(t *testing.T) {
	tok := Func(func(text string) []string {
		return strings.Split(text, "|")
	})
	assert.Equal(t, []string{"a", "b", "c"}, tok.Tokenize("a|b|c"))
}
