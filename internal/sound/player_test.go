package sound

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/speedreader/internal/testutil"
)

func shellCommand(t *testing.T, script string, runs *atomic.Int32) CommandFunc {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("Skipping: sh not available")
	}
	return func(ctx context.Context, path string) (*exec.Cmd, error) {
		if runs != nil {
			runs.Add(1)
		}
		return exec.CommandContext(ctx, "sh", "-c", script), nil
	}
}

func soundFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rain.mp3")
	testutil.CreateTestFile(t, path, (&testutil.TestDataGenerator{}).GenerateAudioData())
	return path
}

func TestPlayer_Load(t *testing.T) {
	p := NewPlayerWithCommand(nil, nil)

	err := p.Load(filepath.Join(t.TempDir(), "missing.mp3"))
	assert.Error(t, err)
	assert.Empty(t, p.Path())

	assert.Error(t, p.Load(t.TempDir()), "directories are rejected")

	path := soundFile(t)
	require.NoError(t, p.Load(path))
	assert.Equal(t, path, p.Path())
}

func TestPlayer_PlayLoopNotLoaded(t *testing.T) {
	p := NewPlayerWithCommand(nil, nil)
	assert.ErrorIs(t, p.PlayLoop(), ErrNotLoaded)
	assert.False(t, p.IsPlaying())
}

func TestPlayer_NoPlayer(t *testing.T) {
	p := NewPlayerWithCommand(func(context.Context, string) (*exec.Cmd, error) {
		return nil, ErrNoPlayer
	}, nil)
	require.NoError(t, p.Load(soundFile(t)))

	assert.ErrorIs(t, p.PlayLoop(), ErrNoPlayer)
	assert.False(t, p.IsPlaying())
}

func TestPlayer_PlayAndStop(t *testing.T) {
	p := NewPlayerWithCommand(shellCommand(t, "sleep 30", nil), nil)
	require.NoError(t, p.Load(soundFile(t)))

	require.NoError(t, p.PlayLoop())
	assert.True(t, p.IsPlaying())

	stopped := make(chan struct{})
	go func() {
		p.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not kill the player")
	}
	assert.False(t, p.IsPlaying())

	// Stopping twice is harmless
	p.Stop()
}

func TestPlayer_Restarts(t *testing.T) {
	var runs atomic.Int32
	p := NewPlayerWithCommand(shellCommand(t, "sleep 0.3", &runs), nil)
	require.NoError(t, p.Load(soundFile(t)))

	require.NoError(t, p.PlayLoop())
	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, 5*time.Second, 20*time.Millisecond)
	assert.True(t, p.IsPlaying())
	p.Stop()
}

func TestPlayer_ReportsFailure(t *testing.T) {
	failures := make(chan error, 1)
	p := NewPlayerWithCommand(shellCommand(t, "exit 3", nil), nil)
	p.OnFailure = func(err error) {
		p.Stop()
		failures <- err
	}
	require.NoError(t, p.Load(soundFile(t)))
	require.NoError(t, p.PlayLoop())

	select {
	case err := <-failures:
		var exitErr *exec.ExitError
		assert.True(t, errors.As(err, &exitErr))
	case <-time.After(5 * time.Second):
		t.Fatal("failure was not reported")
	}
	assert.False(t, p.IsPlaying())
}
