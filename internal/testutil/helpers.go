package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// CreateTestDocument writes text to a file named name in a fresh temporary
// directory and returns its path
func CreateTestDocument(t *testing.T, name, text string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	CreateTestFile(t, path, []byte(text))
	return path
}

// CreateStopWordsDir creates a directory of NLTK-style stop-word files, one
// per language
func CreateStopWordsDir(t *testing.T, lists map[string][]string) string {
	t.Helper()

	dir := t.TempDir()
	for lang, words := range lists {
		CreateTestFile(t, filepath.Join(dir, lang), []byte(strings.Join(words, "\n")+"\n"))
	}
	return dir
}
