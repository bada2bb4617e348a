package stopwords

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gocache "github.com/patrickmn/go-cache"
)

//go:embed data/*
var bundled embed.FS

// ErrUnknownLanguage is returned when no word list exists for a language
var ErrUnknownLanguage = errors.New("unknown stop-word language")

// Lookup resolves a language name to its stop-word set
type Lookup interface {
	Lookup(language string) (Set, error)
}

// Provider loads stop-word sets, preferring a word list in Dir over the
// bundled one. Loaded sets are cached for the life of the provider.
type Provider struct {
	dir    string
	cache  *gocache.Cache
	logger *slog.Logger
}

// NewProvider creates a provider. dir may be empty to use only the bundled
// lists.
func NewProvider(dir string, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		dir:    dir,
		cache:  gocache.New(gocache.NoExpiration, 0),
		logger: logger,
	}
}

// Lookup returns the stop-word set for language. Language names are matched
// case-insensitively ("English" and "english" are the same list).
func (p *Provider) Lookup(language string) (Set, error) {
	key := normalize(language)
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
	}

	if cached, found := p.cache.Get(key); found {
		if set, ok := cached.(Set); ok {
			return set, nil
		}
	}

	set, source, err := p.load(key)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("loaded stop words", "language", key, "words", set.Len(), "source", source)
	p.cache.Set(key, set, gocache.NoExpiration)
	return set, nil
}

func (p *Provider) load(key string) (Set, string, error) {
	if p.dir != "" {
		path := filepath.Join(p.dir, key)
		f, err := os.Open(path)
		switch {
		case err == nil:
			defer f.Close()
			set, err := ParseSet(f)
			if err != nil {
				return nil, "", fmt.Errorf("failed to read stop words %s: %w", path, err)
			}
			return set, path, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, "", fmt.Errorf("failed to open stop words %s: %w", path, err)
		}
	}

	f, err := bundled.Open("data/" + key)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrUnknownLanguage, key)
	}
	defer f.Close()

	set, err := ParseSet(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read bundled stop words for %s: %w", key, err)
	}
	return set, "bundled", nil
}

// Languages lists every language the provider can resolve, sorted
func (p *Provider) Languages() []string {
	seen := make(map[string]struct{})

	if entries, err := fs.ReadDir(bundled, "data"); err == nil {
		for _, e := range entries {
			seen[e.Name()] = struct{}{}
		}
	}
	if p.dir != "" {
		if entries, err := os.ReadDir(p.dir); err == nil {
			for _, e := range entries {
				if !e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
					seen[e.Name()] = struct{}{}
				}
			}
		}
	}

	langs := make([]string, 0, len(seen))
	for l := range seen {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}

func normalize(language string) string {
	return strings.ToLower(strings.TrimSpace(language))
}
