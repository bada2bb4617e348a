package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

func (a *Application) setupKeyboardShortcuts() {
	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			a.window.Canvas().Unfocus()
			return
		}

		// Keys typed into the prompt belong to the prompt
		if a.window.Canvas().Focused() == a.promptEntry {
			return
		}

		a.handleShortcutKey(ev.Name)
	})
}

// handleShortcutKey handles the actual shortcut action
func (a *Application) handleShortcutKey(key fyne.KeyName) {
	switch key {
	case fyne.KeySpace: // Start, pause or resume
		if a.startButton.Disabled() && a.pauseButton.Disabled() {
			return
		}
		a.togglePlayback()

	case fyne.KeyS: // Stop
		if a.stopButton.Disabled() {
			return
		}
		a.onStop()

	case fyne.KeyR: // Reset
		if a.resetButton.Disabled() {
			return
		}
		a.onReset()

	case fyne.KeyO: // Open file
		a.onLoadFile()

	case fyne.KeyG: // Focus the prompt
		a.window.Canvas().Focus(a.promptEntry)

	case fyne.KeyW: // Next WPM preset
		a.cycleWPM()

	case fyne.KeyM: // Toggle sound
		a.sound.Toggle()

	case fyne.KeyH: // Show hotkeys
		a.onShowHotkeys()

	case fyne.KeyQ: // Quit application
		a.window.Close()
	}
}

func (a *Application) onShowHotkeys() {
	hotkeys := `[Project Page: https://codeberg.org/snonux/speedreader](https://codeberg.org/snonux/speedreader)

---

## Reading
**Space** Start, pause or resume  
**s** Stop and show stats  
**r** Reset to the beginning  
**w** Next WPM preset  
**m** Toggle background sound  

## Text
**o** Open a text file  
**g** Focus the prompt  
**Enter** Generate text from the prompt  
**Esc** Unfocus field  

## Help
**h** Show hotkeys  
**c** Close dialog  
**q** Quit application  

---
Press **c** to close this dialog`

	content := widget.NewRichTextFromMarkdown(hotkeys)
	content.Wrapping = fyne.TextWrapWord

	scroll := container.NewScroll(container.NewPadded(content))
	scroll.SetMinSize(fyne.NewSize(500, 420))

	d := dialog.NewCustom("Keyboard Shortcuts", "Close", scroll, a.window)

	dialogOpen := true
	originalKeyHandler := a.window.Canvas().OnTypedKey()

	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if dialogOpen && ev.Name == fyne.KeyC {
			d.Hide()
			return
		}
		if originalKeyHandler != nil {
			originalKeyHandler(ev)
		}
	})

	d.SetOnClosed(func() {
		dialogOpen = false
		a.setupKeyboardShortcuts()
	})
	d.Show()
}
