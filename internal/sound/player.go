package sound

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"sync"
	"time"
)

// ErrNoPlayer is returned when no command line audio player is installed
var ErrNoPlayer = errors.New("no audio player found. Install mpg123, ffplay, sox, paplay, or aplay")

// ErrNotLoaded is returned by PlayLoop before a file was loaded
var ErrNotLoaded = errors.New("no sound loaded")

// minRunTime is how long a play run must last to be restarted; a player that
// exits faster than this is treated as broken
const minRunTime = 200 * time.Millisecond

// CommandFunc builds the command that plays path once
type CommandFunc func(ctx context.Context, path string) (*exec.Cmd, error)

// Player loops a sound file through an external player process
type Player struct {
	logger  *slog.Logger
	command CommandFunc

	// OnFailure is called from the playback goroutine when the player keeps
	// failing and looping has given up
	OnFailure func(error)

	mu     sync.Mutex
	path   string
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPlayer creates a player using the platform's audio player
func NewPlayer(logger *slog.Logger) *Player {
	return NewPlayerWithCommand(PlatformCommand, logger)
}

// NewPlayerWithCommand creates a player that runs the commands built by
// command
func NewPlayerWithCommand(command CommandFunc, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{logger: logger, command: command}
}

// Load selects the sound file. A playing sound keeps playing until the next
// PlayLoop.
func (p *Player) Load(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to load sound: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("failed to load sound: %s is a directory", path)
	}

	p.mu.Lock()
	p.path = path
	p.mu.Unlock()
	return nil
}

// Path returns the loaded file
func (p *Player) Path() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.path
}

// PlayLoop starts playing the loaded file over and over. Any previous loop
// is stopped first.
func (p *Player) PlayLoop() error {
	p.Stop()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.path == "" {
		return ErrNotLoaded
	}

	ctx, cancel := context.WithCancel(context.Background())
	cmd, err := p.command(ctx, p.path)
	if err != nil {
		cancel()
		return err
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return fmt.Errorf("failed to start audio player: %w", err)
	}

	p.cancel = cancel
	p.done = make(chan struct{})
	p.logger.Info("sound playing", "path", p.path, "player", cmd.Path)

	go p.loop(ctx, p.path, cmd, p.done)
	return nil
}

func (p *Player) loop(ctx context.Context, path string, cmd *exec.Cmd, done chan struct{}) {
	err := p.run(ctx, path, cmd)
	close(done)

	if err != nil {
		p.logger.Error("sound playback failed", "path", path, "error", err)
		if p.OnFailure != nil {
			p.OnFailure(err)
		}
	}
}

// run waits for cmd and restarts it until ctx is cancelled or the player
// fails
func (p *Player) run(ctx context.Context, path string, cmd *exec.Cmd) error {
	for {
		started := time.Now()
		err := cmd.Wait()
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return fmt.Errorf("audio player failed: %w", err)
		}
		if time.Since(started) < minRunTime {
			return errors.New("audio player exited immediately")
		}

		cmd, err = p.command(ctx, path)
		if err != nil {
			return err
		}
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("failed to restart audio player: %w", err)
		}
	}
}

// Stop ends playback and waits for the player process to exit
func (p *Player) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	p.logger.Info("sound stopped")
}

// IsPlaying reports whether a loop is running
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()

	if done == nil {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}

// PlatformCommand returns a command playing path once with the first
// available player
func PlatformCommand(ctx context.Context, path string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.CommandContext(ctx, "afplay", path), nil
	case "linux", "freebsd", "openbsd":
		// mpg123 first since it handles MP3 files best
		for _, candidate := range []struct {
			name string
			args []string
		}{
			{"mpg123", []string{"-q", path}},
			{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}},
			{"play", []string{"-q", path}},
			{"paplay", []string{path}},
			{"aplay", []string{"-q", path}},
		} {
			if _, err := exec.LookPath(candidate.name); err == nil {
				return exec.CommandContext(ctx, candidate.name, candidate.args...), nil
			}
		}
		return nil, ErrNoPlayer
	default:
		return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}
