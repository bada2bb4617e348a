package gui

import (
	"log/slog"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// SoundPlayer loops background sound while reading
type SoundPlayer interface {
	Load(path string) error
	PlayLoop() error
	Stop()
	IsPlaying() bool
}

// SoundControl is the background sound toggle
type SoundControl struct {
	widget.BaseWidget

	container   *fyne.Container
	check       *widget.Check
	statusLabel *widget.Label

	player  SoundPlayer
	path    string
	logger  *slog.Logger
	onError func(error)
}

// NewSoundControl creates the toggle for player. Without a player or a
// sound file the toggle is disabled.
func NewSoundControl(player SoundPlayer, path string, logger *slog.Logger) *SoundControl {
	c := &SoundControl{
		player: player,
		path:   path,
		logger: logger,
	}

	c.check = widget.NewCheck("Play sound", c.onToggle)
	c.statusLabel = widget.NewLabel("")
	c.statusLabel.TextStyle = fyne.TextStyle{Italic: true}

	switch {
	case player == nil:
		c.check.Disable()
		c.statusLabel.SetText("No sound player")
	case path == "":
		c.check.Disable()
		c.statusLabel.SetText("No sound file configured")
	default:
		if err := player.Load(path); err != nil {
			logger.Warn("background sound unavailable", "path", path, "error", err)
			c.check.Disable()
			c.statusLabel.SetText("Sound file unavailable")
		} else {
			c.statusLabel.SetText(filepath.Base(path))
		}
	}

	c.container = container.NewHBox(
		c.check,
		layout.NewSpacer(),
		c.statusLabel,
	)

	c.ExtendBaseWidget(c)
	return c
}

// CreateRenderer implements fyne.Widget
func (c *SoundControl) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.container)
}

// SetOnError sets the callback for playback failures
func (c *SoundControl) SetOnError(f func(error)) {
	c.onError = f
}

// Enabled reports whether the sound is switched on
func (c *SoundControl) Enabled() bool {
	return c.check.Checked
}

// SetChecked switches the sound on or off
func (c *SoundControl) SetChecked(checked bool) {
	if c.check.Disabled() {
		return
	}
	c.check.SetChecked(checked)
}

// Toggle flips the sound state
func (c *SoundControl) Toggle() {
	c.SetChecked(!c.check.Checked)
}

func (c *SoundControl) onToggle(bool) {
	c.apply()
}

func (c *SoundControl) apply() {
	if c.player == nil || c.check.Disabled() {
		return
	}

	if !c.check.Checked {
		c.player.Stop()
		c.statusLabel.SetText(filepath.Base(c.path))
		return
	}
	if c.player.IsPlaying() {
		return
	}

	if err := c.player.PlayLoop(); err != nil {
		c.logger.Warn("background sound failed", "error", err)
		c.check.SetChecked(false)
		if c.onError != nil {
			c.onError(err)
		}
		return
	}
	c.statusLabel.SetText("Playing " + filepath.Base(c.path))
}

// Close stops the sound for good, e.g. when the window closes
func (c *SoundControl) Close() {
	if c.player != nil {
		c.player.Stop()
	}
}
