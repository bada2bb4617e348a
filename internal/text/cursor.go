package text

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrNotFound is returned when a token has no whole-word occurrence at or
// after the search position.
var ErrNotFound = errors.New("word not found")

// Span is a byte range [Start, End) into a document
type Span struct {
	Start int
	End   int
}

// Len returns the span length in bytes
func (s Span) Len() int {
	return s.End - s.Start
}

// LocateNext finds the first whole-word occurrence of word in doc that starts
// at or after from. A match inside a longer word does not count.
func LocateNext(doc, word string, from int) (Span, error) {
	if word == "" || from < 0 || from > len(doc) {
		return Span{}, ErrNotFound
	}

	pos := from
	for pos <= len(doc)-len(word) {
		i := strings.Index(doc[pos:], word)
		if i < 0 {
			break
		}
		start := pos + i
		end := start + len(word)
		if atWordStart(doc, start) && atWordEnd(doc, end) {
			return Span{Start: start, End: end}, nil
		}
		// Skip past the rune that started this rejected match
		_, size := utf8.DecodeRuneInString(doc[start:])
		pos = start + size
	}

	return Span{}, ErrNotFound
}

func atWordStart(doc string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(doc[:i])
	return !isWordRune(r)
}

func atWordEnd(doc string, i int) bool {
	if i >= len(doc) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(doc[i:])
	return !isWordRune(r)
}

// Cursor walks a document forward, locating tokens strictly in order. Its
// position never moves backwards until Reset.
type Cursor struct {
	doc string
	pos int
}

// NewCursor creates a cursor at the start of doc
func NewCursor(doc string) *Cursor {
	return &Cursor{doc: doc}
}

// Pos returns the offset the next search starts from
func (c *Cursor) Pos() int {
	return c.pos
}

// Next locates tok at or after the cursor position and moves the cursor to
// the end of the match. On failure the position is left unchanged.
func (c *Cursor) Next(tok WordToken) (Span, error) {
	span, err := LocateNext(c.doc, tok.Text, c.pos)
	if err != nil {
		return Span{}, err
	}
	c.pos = span.End
	return span, nil
}

// Reset moves the cursor back to the start of the document
func (c *Cursor) Reset() {
	c.pos = 0
}
