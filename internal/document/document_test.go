package document

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "one two", want: "one two"},
		{name: "bom", input: "\ufeffhello", want: "hello"},
		{name: "crlf", input: "a\r\nb\r\n", want: "a\nb\n"},
		{name: "lone cr", input: "a\rb", want: "a\nb"},
		{name: "invalid utf8", input: "ok\xffgo", want: "ok\ufffdgo"},
		{name: "cyrillic", input: "ябълка и круша", want: "ябълка и круша"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "story.txt")
	if err := os.WriteFile(path, []byte("\ufeffOnce upon\r\na time."), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if want := "Once upon\na time."; got != want {
		t.Errorf("ReadFile() = %q, want %q", got, want)
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadFile() error = %v, want os.ErrNotExist", err)
	}
}

func TestRead_TooLarge(t *testing.T) {
	_, err := Read(strings.NewReader(strings.Repeat("a", MaxSize+1)))
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("Read() error = %v, want ErrTooLarge", err)
	}

	doc, err := Read(bytes.NewReader(bytes.Repeat([]byte("a"), 10)))
	if err != nil || len(doc) != 10 {
		t.Errorf("Read() = %d bytes, %v", len(doc), err)
	}
}
