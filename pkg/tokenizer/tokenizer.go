// Package tokenizer turns raw sentence text into word tokens.
//
// Tokenizers are pure splitters: they never fold case and never filter
// by length. Case normalization is a single policy owned by the index,
// applied identically to indexed tokens and query tokens.
package tokenizer

import (
	"strings"
	"unicode"
)

// Tokenizer splits text into an ordered sequence of tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Func adapts a plain function into a Tokenizer.
type Func func(text string) []string

// Tokenize calls f.
func (f Func) Tokenize(text string) []string { return f(text) }

// Default splits on runs of characters that are neither letters nor
// digits (Unicode-aware). "hi-tech" becomes ["hi", "tech"] and "I'm"
// becomes ["I", "m"].
type Default struct{}

// Tokenize implements Tokenizer.
func (Default) Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// Strict keeps hyphenated compounds and contractions intact: a token
// is a run of letters, digits, apostrophes and hyphens, and separator
// runs are dropped. "hi-tech" and "I'm" survive as single tokens.
type Strict struct{}

// Tokenize implements Tokenizer.
func (Strict) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder
	for _, r := range text {
		if isWordRune(r) {
			current.WriteRune(r)
			continue
		}
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '\'' || r == '-'
}
