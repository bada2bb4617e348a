package playback

import "codeberg.org/snonux/speedreader/internal/text"

// SetCursorDocument points the engine's cursor at a different text than the
// one it tokenized, so tests can provoke a cursor inconsistency
func SetCursorDocument(e *Engine, doc string) {
	e.cursor = text.NewCursor(doc)
}
