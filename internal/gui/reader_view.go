package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/speedreader/internal/playback"
	"codeberg.org/snonux/speedreader/internal/text"
)

// ReaderView shows the document and the highlighted word
type ReaderView struct {
	widget.BaseWidget

	richText   *widget.RichText
	scrollView *container.Scroll
	run        *highlightRun
	doc        string
}

// NewReaderView creates an empty reader view
func NewReaderView() *ReaderView {
	v := &ReaderView{run: newHighlightRun()}

	v.richText = widget.NewRichText(v.run.segments()...)
	v.richText.Wrapping = fyne.TextWrapWord

	v.scrollView = container.NewVScroll(v.richText)
	v.scrollView.SetMinSize(fyne.NewSize(0, 300))

	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget
func (v *ReaderView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.scrollView)
}

// SetDocument replaces the text and scrolls to the top
func (v *ReaderView) SetDocument(doc string) {
	v.doc = doc
	v.run.clear(doc)
	v.richText.Refresh()
	v.scrollView.Offset = fyne.NewPos(0, 0)
	v.scrollView.Refresh()
}

// Highlight marks span, replacing any previous highlight
func (v *ReaderView) Highlight(span text.Span, style playback.Style) {
	v.run.set(v.doc, span, style)
	v.richText.Refresh()
	v.ScrollTo(span)
}

// ClearHighlight removes the highlight
func (v *ReaderView) ClearHighlight() {
	v.run.clear(v.doc)
	v.richText.Refresh()
}

// ScrollTo brings span into view
func (v *ReaderView) ScrollTo(span text.Span) {
	contentHeight := v.richText.Size().Height
	viewHeight := v.scrollView.Size().Height
	y, ok := scrollTarget(span.Start, len(v.doc), contentHeight, viewHeight, v.scrollView.Offset.Y)
	if !ok {
		return
	}
	v.scrollView.Offset = fyne.NewPos(0, y)
	v.scrollView.Refresh()
}

// highlightRun is the fixed three-segment layout of the view: the text
// before the word, the word, and the text after it. Moving the highlight
// re-slices the document into the same segments; nothing is allocated per
// word.
type highlightRun struct {
	before, word, after *widget.TextSegment
}

func newHighlightRun() *highlightRun {
	return &highlightRun{
		before: &widget.TextSegment{Style: widget.RichTextStyleInline},
		word:   &widget.TextSegment{Style: widget.RichTextStyleInline},
		after:  &widget.TextSegment{Style: widget.RichTextStyleInline},
	}
}

func (r *highlightRun) segments() []widget.RichTextSegment {
	return []widget.RichTextSegment{r.before, r.word, r.after}
}

func (r *highlightRun) clear(doc string) {
	r.before.Text, r.word.Text, r.after.Text = doc, "", ""
	r.word.Style = widget.RichTextStyleInline
}

func (r *highlightRun) set(doc string, span text.Span, style playback.Style) {
	if span.Start < 0 || span.End > len(doc) || span.Start >= span.End {
		r.clear(doc)
		return
	}

	r.before.Text = doc[:span.Start]
	r.word.Text = doc[span.Start:span.End]
	r.after.Text = doc[span.End:]

	r.word.Style = widget.RichTextStyleInline
	r.word.Style.ColorName = colorNameHighlight
	r.word.Style.TextStyle = fyne.TextStyle{Bold: true}
	if style == playback.StyleStop {
		r.word.Style.ColorName = colorNameStopHighlight
	}
}

// scrollTarget estimates the offset that centres byte offset start of a
// document of docLen bytes. ok is false while the word is already inside
// the middle of the viewport.
func scrollTarget(start, docLen int, contentHeight, viewHeight, current float32) (y float32, ok bool) {
	if docLen == 0 || contentHeight <= viewHeight || viewHeight <= 0 {
		return 0, false
	}

	wordY := contentHeight * float32(start) / float32(docLen)
	if wordY >= current+viewHeight/4 && wordY <= current+viewHeight*3/4 {
		return 0, false
	}

	y = wordY - viewHeight/2
	y = max(0, min(y, contentHeight-viewHeight))
	return y, y != current
}
