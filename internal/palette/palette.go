// Package palette defines the highlight colours a reader can choose and how
// the stop-word shade is derived from them.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// StopWordFactor is how far toward white the stop-word shade is moved
const StopWordFactor = 0.8

// ErrUnknownColor is returned for a colour name not in Options
var ErrUnknownColor = errors.New("unknown highlight colour")

// Option is a selectable highlight colour. The None option disables
// highlighting.
type Option struct {
	Name string
	Hex  string
}

// Options lists the selectable colours in display order
var Options = []Option{
	{Name: "None"},
	{Name: "Green", Hex: "#20FF20"},
	{Name: "Yellow", Hex: "#FFFF00"},
	{Name: "Magenta", Hex: "#FF00FF"},
	{Name: "Cyan", Hex: "#00FFFF"},
}

// Names returns the option names in display order
func Names() []string {
	names := make([]string, len(Options))
	for i, o := range Options {
		names[i] = o.Name
	}
	return names
}

// Lookup finds an option by case-insensitive name
func Lookup(name string) (Option, error) {
	for _, o := range Options {
		if strings.EqualFold(o.Name, strings.TrimSpace(name)) {
			return o, nil
		}
	}
	return Option{}, fmt.Errorf("%w: %q (choose one of %s)", ErrUnknownColor, name, strings.Join(Names(), ", "))
}

// Enabled reports whether the option highlights at all
func (o Option) Enabled() bool {
	return o.Hex != ""
}

// Color returns the content-word colour
func (o Option) Color() color.NRGBA {
	c, _ := ParseHex(o.Hex)
	return c
}

// StopColor returns the stop-word colour
func (o Option) StopColor() color.NRGBA {
	return Lighten(o.Color(), StopWordFactor)
}

// ParseHex parses "#RRGGBB"
func ParseHex(hex string) (color.NRGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.TrimPrefix(hex, "#"), "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Hex formats c as "#rrggbb"
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lighten moves each channel of c toward white by factor (0 keeps c, 1 gives
// white)
func Lighten(c color.NRGBA, factor float64) color.NRGBA {
	lift := func(v uint8) uint8 {
		return uint8(min(float64(v)+(255-float64(v))*factor, 255))
	}
	return color.NRGBA{R: lift(c.R), G: lift(c.G), B: lift(c.B), A: c.A}
}
