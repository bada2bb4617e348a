package terminal

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"codeberg.org/snonux/speedreader/internal/palette"
	"codeberg.org/snonux/speedreader/internal/playback"
)

const clearLine = "\r\x1b[2K"

// Renderer draws the current word and the timer on one terminal line
type Renderer struct {
	out     io.Writer
	content lipgloss.Style
	stop    lipgloss.Style
	plain   lipgloss.Style
	status  lipgloss.Style

	word    string
	style   playback.Style
	styled  bool
	ordinal int
	total   int
	elapsed time.Duration
}

// NewRenderer creates a renderer writing to out. With a colour option that
// does not highlight, words are shown unstyled.
func NewRenderer(out io.Writer, color palette.Option) *Renderer {
	r := lipgloss.NewRenderer(out)
	black := lipgloss.Color("#000000")

	return &Renderer{
		out:     out,
		content: r.NewStyle().Bold(true).Foreground(black).Background(lipgloss.Color(color.Hex)).Padding(0, 1),
		stop:    r.NewStyle().Foreground(black).Background(lipgloss.Color(palette.Hex(color.StopColor()))).Padding(0, 1),
		plain:   r.NewStyle().Padding(0, 1),
		status:  r.NewStyle().Faint(true),
	}
}

// SetTotal sets the word count shown in the progress
func (r *Renderer) SetTotal(total int) {
	r.total = total
}

// Highlight shows a styled word
func (r *Renderer) Highlight(h playback.Highlight) {
	r.word, r.style, r.styled, r.ordinal = h.Word.Text, h.Style, true, h.Word.Ordinal
	r.draw()
}

// Scroll shows an unstyled word
func (r *Renderer) Scroll(word string, ordinal int) {
	r.word, r.styled, r.ordinal = word, false, ordinal
	r.draw()
}

// Tick updates the timer
func (r *Renderer) Tick(elapsed time.Duration) {
	r.elapsed = elapsed
	r.draw()
}

// Clear blanks the line
func (r *Renderer) Clear() {
	r.word = ""
	fmt.Fprint(r.out, clearLine)
}

// Notice prints msg on its own line
func (r *Renderer) Notice(msg string) {
	fmt.Fprintf(r.out, "%s%s\n", clearLine, msg)
	r.draw()
}

func (r *Renderer) draw() {
	if r.word == "" {
		return
	}

	var word string
	switch {
	case !r.styled:
		word = r.plain.Render(r.word)
	case r.style == playback.StyleStop:
		word = r.stop.Render(r.word)
	default:
		word = r.content.Render(r.word)
	}

	status := fmt.Sprintf("%s  %d/%d", playback.FormatElapsed(r.elapsed), r.ordinal+1, r.total)
	pad := max(0, 24-lipgloss.Width(word))
	fmt.Fprintf(r.out, "%s%s%s%s", clearLine, word, strings.Repeat(" ", pad), r.status.Render(status))
}
