package stopwords

import (
	"bufio"
	"io"
	"strings"
)

// Set is a set of lowercase stop words
type Set map[string]struct{}

// NewSet builds a set from words, lower-casing each
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			s[strings.ToLower(w)] = struct{}{}
		}
	}
	return s
}

// ParseSet reads a word list. Blank lines and lines starting with '#' are
// skipped.
func ParseSet(r io.Reader) (Set, error) {
	s := make(Set)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// Contains reports whether word, case-insensitively, is in the set
func (s Set) Contains(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

// Len returns the number of words in the set
func (s Set) Len() int {
	return len(s)
}
