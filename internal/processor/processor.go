package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"codeberg.org/snonux/speedreader/internal/cli"
	"codeberg.org/snonux/speedreader/internal/document"
	"codeberg.org/snonux/speedreader/internal/generate"
	"codeberg.org/snonux/speedreader/internal/gui"
	"codeberg.org/snonux/speedreader/internal/models"
	"codeberg.org/snonux/speedreader/internal/sound"
	"codeberg.org/snonux/speedreader/internal/stopwords"
	"codeberg.org/snonux/speedreader/internal/terminal"
	"codeberg.org/snonux/speedreader/internal/watch"
)

// ErrNoDocument is returned when the terminal reader has nothing to read
var ErrNoDocument = errors.New("no document: pass a file, --file or --prompt")

// GeneratorFactory creates the text generator for a configuration
type GeneratorFactory func(ctx context.Context, cfg generate.Config, logger *slog.Logger) (generate.Generator, error)

// Processor runs the reader for one invocation
type Processor struct {
	flags    *cli.Flags
	settings cli.Settings
	logger   *slog.Logger
	lookup   *stopwords.Provider

	newGenerator GeneratorFactory
	player       gui.SoundPlayer
}

// NewProcessor creates a processor for the parsed flags and settings
func NewProcessor(flags *cli.Flags, settings cli.Settings, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		flags:        flags,
		settings:     settings,
		logger:       logger,
		lookup:       stopwords.NewProvider(settings.StopWordsDir, logger),
		newGenerator: generate.New,
		player:       sound.NewPlayer(logger),
	}
}

// SetGeneratorFactory replaces how the text generator is created
func (p *Processor) SetGeneratorFactory(f GeneratorFactory) {
	p.newGenerator = f
}

// SetSoundPlayer replaces the background sound player
func (p *Processor) SetSoundPlayer(player gui.SoundPlayer) {
	p.player = player
}

// Generator creates the configured text generator
func (p *Processor) Generator(ctx context.Context) (generate.Generator, error) {
	return p.newGenerator(ctx, p.settings.Generator, p.logger)
}

// LoadDocument resolves the document named on the command line. A file
// argument wins over --file, which wins over --prompt. path is empty for
// generated text; doc and path are both empty when nothing was given.
func (p *Processor) LoadDocument(ctx context.Context, args []string) (doc, path string, err error) {
	switch {
	case len(args) > 0:
		path = args[0]
	case p.flags.File != "":
		path = p.flags.File
	case strings.TrimSpace(p.flags.Prompt) != "":
		return p.generateDocument(ctx, p.flags.Prompt)
	default:
		return "", "", nil
	}

	doc, err = document.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	p.logger.Info("document read", "path", path, "bytes", len(doc))
	return doc, path, nil
}

func (p *Processor) generateDocument(ctx context.Context, prompt string) (string, string, error) {
	gen, err := p.Generator(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to create text generator: %w", err)
	}

	p.logger.Info("generating text", "provider", p.settings.Generator.Provider, "prompt", prompt)
	doc, err := gen.Generate(ctx, prompt)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate text: %w", err)
	}
	return document.Normalize(doc), "", nil
}

// ListModels prints the models of the configured provider
func (p *Processor) ListModels(ctx context.Context) error {
	cfg := p.settings.Generator
	if strings.EqualFold(cfg.Provider, generate.ProviderGemini) {
		if cfg.GeminiKey == "" {
			return generate.ErrNoAPIKey
		}
		return models.ListGeminiModels(ctx, cfg.GeminiKey, os.Stdout)
	}

	if cfg.OpenAIKey == "" && cfg.BaseURL == "" {
		return generate.ErrNoAPIKey
	}
	return models.NewLister(cfg.OpenAIKey, cfg.BaseURL).ListAvailableModels(ctx)
}

// RunTerminal reads doc in the terminal and prints the session statistics
// to out
func (p *Processor) RunTerminal(ctx context.Context, doc, path string, out io.Writer) error {
	if doc == "" {
		return ErrNoDocument
	}

	cfg := terminal.Config{
		Document: doc,
		WPM:      p.settings.WPM,
		Language: p.settings.Language,
		Lookup:   p.lookup,
		Color:    p.settings.HighlightColor,
		Out:      out,
		Logger:   p.logger,
	}
	if p.flags.PlaySound && p.player != nil {
		cfg.Sound = p.player
		cfg.SoundPath = p.settings.SoundPath
	}

	if p.flags.Watch && path != "" {
		changes, stop, err := p.startWatch(path)
		if err != nil {
			return err
		}
		defer stop()
		cfg.Changes = changes
		cfg.WatchPath = path
	}

	stats, err := terminal.Run(ctx, cfg)
	if err != nil {
		return err
	}
	if stats.Elapsed > 0 {
		fmt.Fprintf(out, "\n%s\n", stats)
	}
	return nil
}

// RunGUIMode opens the reader window and blocks until it is closed
func (p *Processor) RunGUIMode(ctx context.Context, doc, path string) error {
	guiConfig := &gui.Config{
		Settings:     p.settings,
		Lookup:       p.lookup,
		Sound:        p.player,
		PlaySound:    p.flags.PlaySound,
		Document:     doc,
		DocumentPath: path,
		LogLevel:     cli.LogLevel(p.flags.Debug),
	}

	gen, err := p.Generator(ctx)
	if err != nil {
		p.logger.Warn("text generation unavailable", "error", err)
		guiConfig.GeneratorErr = err
	} else {
		guiConfig.Generator = gen
	}

	if p.flags.Watch && path != "" {
		changes, stop, err := p.startWatch(path)
		if err != nil {
			return err
		}
		defer stop()
		guiConfig.Changes = changes
	}

	app := gui.New(guiConfig)
	app.Run()

	return nil
}

func (p *Processor) startWatch(path string) (<-chan struct{}, func(), error) {
	w, err := watch.New(path, watch.DefaultDebounce, p.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}
	changes, err := w.Start()
	if err != nil {
		_ = w.Stop()
		return nil, nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}
	p.logger.Info("watching document", "path", path)

	return changes, func() {
		if err := w.Stop(); err != nil {
			p.logger.Warn("failed to stop watcher", "error", err)
		}
	}, nil
}
