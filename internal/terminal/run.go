package terminal

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"codeberg.org/snonux/speedreader/internal/document"
	"codeberg.org/snonux/speedreader/internal/palette"
	"codeberg.org/snonux/speedreader/internal/playback"
	"codeberg.org/snonux/speedreader/internal/stopwords"
	"codeberg.org/snonux/speedreader/internal/text"
)

var (
	// ErrNoSession is returned when the reader was interrupted before a
	// session was running
	ErrNoSession = errors.New("no reading session")

	// ErrNoWords is returned for a document without words
	ErrNoWords = errors.New("document has no words to read")
)

// SoundPlayer plays background sound during the session
type SoundPlayer interface {
	Load(path string) error
	PlayLoop() error
	Stop()
}

// Config configures a terminal session
type Config struct {
	Document string
	WPM      int
	Language string
	Lookup   stopwords.Lookup
	Color    palette.Option
	Out      io.Writer
	Logger   *slog.Logger

	// Changes, when set, signals that WatchPath changed on disk; the document
	// is re-read and the session restarts
	Changes   <-chan struct{}
	WatchPath string

	Sound     SoundPlayer
	SoundPath string
}

type outcome struct {
	stats playback.SessionStats
	err   error
}

// Run plays cfg.Document until every word was shown or ctx is cancelled,
// and returns the session statistics. A halted session returns the halt
// error.
func Run(ctx context.Context, cfg Config) (playback.SessionStats, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// The loop outlives ctx so an interrupted session can still be stopped
	// and measured
	loopCtx, stopLoop := context.WithCancel(context.WithoutCancel(ctx))
	defer stopLoop()

	g, gctx := errgroup.WithContext(loopCtx)
	loop := playback.NewLoop()
	g.Go(func() error { return loop.Run(gctx) })

	renderer := NewRenderer(cfg.Out, cfg.Color)
	results := make(chan outcome, 1)

	engine := playback.New(loop,
		playback.WithLogger(logger),
		playback.WithWPM(cfg.WPM),
		playback.WithHighlight(cfg.Color.Enabled()),
		playback.WithStopWords(cfg.Lookup, cfg.Language),
	)
	engine.SetCallbacks(playback.Callbacks{
		OnHighlight: renderer.Highlight,
		OnScroll: func(span text.Span) {
			renderer.Scroll(engine.Document()[span.Start:span.End], engine.Index()-1)
		},
		OnTick: renderer.Tick,
		OnSessionEnd: func(stats playback.SessionStats) {
			deliver(results, outcome{stats: stats})
		},
		OnHalt: func(err error) {
			deliver(results, outcome{err: err})
		},
		OnReset: renderer.Clear,
	})

	if cfg.Sound != nil && cfg.SoundPath != "" {
		if err := cfg.Sound.Load(cfg.SoundPath); err != nil {
			logger.Warn("background sound unavailable", "error", err)
		} else if err := cfg.Sound.PlayLoop(); err != nil {
			logger.Warn("background sound unavailable", "error", err)
		} else {
			defer cfg.Sound.Stop()
		}
	}

	load := func(doc string) {
		engine.Load(doc)
		renderer.SetTotal(engine.Total())
		engine.Start()
	}
	total := 0
	if !loop.Call(func() {
		load(cfg.Document)
		total = engine.Total()
	}) {
		return playback.SessionStats{}, ErrNoSession
	}
	if total == 0 {
		return playback.SessionStats{}, ErrNoWords
	}

	if cfg.Changes != nil {
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return nil
				case <-cfg.Changes:
					doc, err := document.ReadFile(cfg.WatchPath)
					if err != nil {
						logger.Warn("reload failed", "path", cfg.WatchPath, "error", err)
						continue
					}
					loop.Do(func() {
						renderer.Notice("Document changed, restarting")
						load(doc)
						if engine.Total() == 0 {
							deliver(results, outcome{err: ErrNoWords})
						}
					})
				}
			}
		})
	}

	var res outcome
	select {
	case res = <-results:
	case <-ctx.Done():
		var ok bool
		loop.Call(func() { _, ok = engine.Stop() })
		select {
		case res = <-results:
		default:
			if !ok {
				res.err = ErrNoSession
			}
		}
	case <-gctx.Done():
		res.err = context.Cause(gctx)
	}

	loop.Call(renderer.Clear)
	stopLoop()
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) && res.err == nil {
		res.err = err
	}
	return res.stats, res.err
}

// deliver keeps the first outcome; later ones are dropped
func deliver(results chan<- outcome, o outcome) {
	select {
	case results <- o:
	default:
	}
}
