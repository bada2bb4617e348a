package stopwords

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_Bundled(t *testing.T) {
	p := NewProvider("", nil)

	set, err := p.Lookup("English")
	require.NoError(t, err)
	assert.True(t, set.Contains("the"))
	assert.True(t, set.Contains("and"))
	assert.False(t, set.Contains("reading"))

	bg, err := p.Lookup("bulgarian")
	require.NoError(t, err)
	assert.True(t, bg.Contains("и"))
}

func TestProvider_UnknownLanguage(t *testing.T) {
	p := NewProvider("", nil)

	for _, lang := range []string{"klingon", "", "  ", "../english", "data/english"} {
		_, err := p.Lookup(lang)
		assert.ErrorIs(t, err, ErrUnknownLanguage, "language %q", lang)
	}
}

func TestProvider_DirectoryOverridesBundled(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "english"), []byte("zebra\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "elvish"), []byte("mae\ngovannen\n"), 0644))

	p := NewProvider(dir, nil)

	en, err := p.Lookup("english")
	require.NoError(t, err)
	assert.True(t, en.Contains("zebra"))
	assert.False(t, en.Contains("the"))

	elvish, err := p.Lookup("Elvish")
	require.NoError(t, err)
	assert.Equal(t, 2, elvish.Len())

	// Falls back to the bundled list when the directory lacks the language
	de, err := p.Lookup("german")
	require.NoError(t, err)
	assert.True(t, de.Contains("und"))

	assert.Contains(t, p.Languages(), "elvish")
	assert.Contains(t, p.Languages(), "german")
}

func TestProvider_CachesSets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom")
	require.NoError(t, os.WriteFile(path, []byte("one\n"), 0644))

	p := NewProvider(dir, nil)
	first, err := p.Lookup("custom")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("two\n"), 0644))
	second, err := p.Lookup("custom")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, second.Contains("one"))
}

func TestProvider_Languages(t *testing.T) {
	langs := NewProvider("", nil).Languages()
	assert.Contains(t, langs, "english")
	assert.Contains(t, langs, "russian")
	assert.IsNonDecreasing(t, langs)
}
