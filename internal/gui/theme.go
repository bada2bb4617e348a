package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"codeberg.org/snonux/speedreader/internal/palette"
)

// Theme colour names used by the reader view
const (
	colorNameHighlight     fyne.ThemeColorName = "speedreaderHighlight"
	colorNameStopHighlight fyne.ThemeColorName = "speedreaderStopHighlight"
)

// readerTheme adds the highlight colours to a base theme
type readerTheme struct {
	fyne.Theme
	content color.Color
	stop    color.Color
}

func newReaderTheme(base fyne.Theme, option palette.Option) *readerTheme {
	t := &readerTheme{Theme: base}
	t.setOption(option)
	return t
}

func (t *readerTheme) setOption(option palette.Option) {
	if !option.Enabled() {
		t.content, t.stop = nil, nil
		return
	}
	t.content, t.stop = option.Color(), option.StopColor()
}

// Color implements fyne.Theme
func (t *readerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case colorNameHighlight:
		if t.content != nil {
			return t.content
		}
		return t.Theme.Color(theme.ColorNameForeground, variant)
	case colorNameStopHighlight:
		if t.stop != nil {
			return t.stop
		}
		return t.Theme.Color(theme.ColorNameForeground, variant)
	}
	return t.Theme.Color(name, variant)
}
