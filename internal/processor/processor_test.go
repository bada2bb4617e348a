package processor

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/speedreader/internal/cli"
	"codeberg.org/snonux/speedreader/internal/generate"
	"codeberg.org/snonux/speedreader/internal/palette"
	"codeberg.org/snonux/speedreader/internal/testutil"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestProcessor(t *testing.T, flags *cli.Flags) (*Processor, *testutil.MockGenerator) {
	t.Helper()

	yellow, err := palette.Lookup("Yellow")
	require.NoError(t, err)

	settings := cli.Settings{
		WPMValues:      cli.DefaultWPMValues,
		WPM:            6000,
		Languages:      cli.DefaultLanguages,
		Language:       "English",
		HighlightColor: yellow,
		SoundPath:      "/sounds/rain.mp3",
		Generator:      generate.Config{Provider: generate.ProviderOpenAI},
	}

	gen := &testutil.MockGenerator{}
	p := NewProcessor(flags, settings, quietLogger())
	p.SetGeneratorFactory(func(context.Context, generate.Config, *slog.Logger) (generate.Generator, error) {
		return gen, nil
	})
	p.SetSoundPlayer(&testutil.MockSoundPlayer{})
	return p, gen
}

func TestNewProcessor(t *testing.T) {
	flags := cli.NewFlags()
	p := NewProcessor(flags, cli.Settings{}, nil)

	require.NotNil(t, p)
	assert.Same(t, flags, p.flags)
	assert.NotNil(t, p.lookup)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.newGenerator)
	assert.NotNil(t, p.player)
}

func TestLoadDocument_Sources(t *testing.T) {
	argPath := testutil.CreateTestDocument(t, "arg.txt", "from the argument")
	filePath := testutil.CreateTestDocument(t, "file.txt", "from the flag")

	tests := []struct {
		name     string
		args     []string
		file     string
		prompt   string
		wantDoc  string
		wantPath string
	}{
		{"argument wins", []string{argPath}, filePath, "dragons", "from the argument", argPath},
		{"file flag", nil, filePath, "dragons", "from the flag", filePath},
		{"prompt", nil, "", "dragons", "A short story about dragons.", ""},
		{"nothing", nil, "", "  ", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := cli.NewFlags()
			flags.File = tt.file
			flags.Prompt = tt.prompt
			p, _ := newTestProcessor(t, flags)

			doc, path, err := p.LoadDocument(context.Background(), tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDoc, doc)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestLoadDocument_MissingFile(t *testing.T) {
	p, _ := newTestProcessor(t, cli.NewFlags())

	_, _, err := p.LoadDocument(context.Background(), []string{"/does/not/exist.txt"})
	assert.Error(t, err)
}

func TestLoadDocument_GeneratorErrors(t *testing.T) {
	flags := cli.NewFlags()
	flags.Prompt = "dragons"

	t.Run("factory", func(t *testing.T) {
		p, _ := newTestProcessor(t, flags)
		p.SetGeneratorFactory(func(context.Context, generate.Config, *slog.Logger) (generate.Generator, error) {
			return nil, generate.ErrNoAPIKey
		})

		_, _, err := p.LoadDocument(context.Background(), nil)
		assert.ErrorIs(t, err, generate.ErrNoAPIKey)
	})

	t.Run("generate", func(t *testing.T) {
		p, gen := newTestProcessor(t, flags)
		boom := errors.New("boom")
		gen.Errors = map[string]error{"dragons": boom}

		_, _, err := p.LoadDocument(context.Background(), nil)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, gen.CallCount())
	})
}

func TestLoadDocument_NormalizesGeneratedText(t *testing.T) {
	flags := cli.NewFlags()
	flags.Prompt = "crlf"
	p, gen := newTestProcessor(t, flags)
	gen.Responses = map[string]string{"crlf": "one\r\ntwo"}

	doc, _, err := p.LoadDocument(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo", doc)
}

func TestRunTerminal_NoDocument(t *testing.T) {
	p, _ := newTestProcessor(t, cli.NewFlags())

	err := p.RunTerminal(context.Background(), "", "", io.Discard)
	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestRunTerminal_PrintsStats(t *testing.T) {
	p, _ := newTestProcessor(t, cli.NewFlags())
	var out bytes.Buffer

	err := p.RunTerminal(context.Background(), "the quick brown fox", "", &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Processed 4/4 words")
}

func TestRunTerminal_Sound(t *testing.T) {
	flags := cli.NewFlags()
	flags.PlaySound = true
	p, _ := newTestProcessor(t, flags)
	player := &testutil.MockSoundPlayer{}
	p.SetSoundPlayer(player)

	err := p.RunTerminal(context.Background(), "one two", "", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, []string{"LOAD /sounds/rain.mp3", "PLAY", "STOP"}, player.Calls)
}

func TestRunTerminal_WatchMissingDirectory(t *testing.T) {
	flags := cli.NewFlags()
	flags.Watch = true
	p, _ := newTestProcessor(t, flags)

	err := p.RunTerminal(context.Background(), "one two", "/does/not/exist/doc.txt", io.Discard)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "failed to watch"))
}

func TestListModels_NoKey(t *testing.T) {
	p, _ := newTestProcessor(t, cli.NewFlags())
	assert.ErrorIs(t, p.ListModels(context.Background()), generate.ErrNoAPIKey)

	p.settings.Generator.Provider = generate.ProviderGemini
	assert.ErrorIs(t, p.ListModels(context.Background()), generate.ErrNoAPIKey)
}

func TestRunTerminal_LongerDocument(t *testing.T) {
	p, _ := newTestProcessor(t, cli.NewFlags())
	doc := (&testutil.TestDataGenerator{}).GenerateDocument(24)
	var out bytes.Buffer

	err := p.RunTerminal(context.Background(), doc, "", &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Processed 24/24 words")
}
