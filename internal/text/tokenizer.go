package text

import (
	"unicode"
	"unicode/utf8"
)

// WordToken is one word of a document in order of appearance
type WordToken struct {
	Text    string
	Ordinal int // 0-based position in the token sequence
}

// Tokenize splits text into its words. Separator-only or empty input yields
// an empty (nil) sequence.
func Tokenize(text string) []WordToken {
	var tokens []WordToken

	start := -1
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, WordToken{Text: text[start:i], Ordinal: len(tokens)})
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, WordToken{Text: text[start:], Ordinal: len(tokens)})
	}

	return tokens
}

// Words returns the plain word strings of a token sequence
func Words(tokens []WordToken) []string {
	words := make([]string, len(tokens))
	for i, tok := range tokens {
		words[i] = tok.Text
	}
	return words
}

// isWordRune reports whether r belongs to a word. The tokenizer and the
// cursor must agree on this predicate or the cursor loses tokens.
func isWordRune(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
