package document

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// MaxSize is the largest document accepted
const MaxSize = 16 << 20

// ErrTooLarge is returned for documents over MaxSize bytes
var ErrTooLarge = errors.New("document too large")

const bom = "\ufeff"

// ReadFile reads the document at path
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open document: %w", err)
	}
	defer func() { _ = f.Close() }()

	doc, err := Read(f)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return doc, nil
}

// Read reads a whole document from r
func Read(r io.Reader) (string, error) {
	content, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return "", err
	}
	if len(content) > MaxSize {
		return "", ErrTooLarge
	}
	return Normalize(string(content)), nil
}

// Normalize strips a byte order mark, converts CRLF and lone CR line endings
// to LF and replaces invalid UTF-8 with U+FFFD
func Normalize(s string) string {
	s = strings.TrimPrefix(s, bom)
	if strings.IndexByte(s, '\r') >= 0 {
		s = strings.ReplaceAll(s, "\r\n", "\n")
		s = strings.ReplaceAll(s, "\r", "\n")
	}
	return strings.ToValidUTF8(s, "\ufffd")
}
