package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "separators only", input: " ,.!? \n\t--", want: nil},
		{name: "simple sentence", input: "The cat sat.", want: []string{"The", "cat", "sat"}},
		{name: "apostrophe splits", input: "don't stop", want: []string{"don", "t", "stop"}},
		{name: "digits and underscore", input: "item_42 costs 3.50", want: []string{"item_42", "costs", "3", "50"}},
		{name: "keeps casing", input: "Hello HELLO hello", want: []string{"Hello", "HELLO", "hello"}},
		{name: "cyrillic", input: "Ябълка и круша.", want: []string{"Ябълка", "и", "круша"}},
		{name: "invalid utf8 separates", input: "ab\xffcd", want: []string{"ab", "cd"}},
		{name: "trailing word", input: "...end", want: []string{"end"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if tt.want == nil {
				assert.Empty(t, tokens)
				return
			}
			assert.Equal(t, tt.want, Words(tokens))
		})
	}
}

func TestTokenize_Ordinals(t *testing.T) {
	tokens := Tokenize("one two, three; four")
	require.Len(t, tokens, 4)
	for i, tok := range tokens {
		assert.Equal(t, i, tok.Ordinal)
	}
}
