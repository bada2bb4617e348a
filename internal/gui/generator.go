package gui

import (
	"context"
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"codeberg.org/snonux/speedreader/internal/document"
)

// errNoGenerator is shown when text generation was requested but no
// backend is configured
var errNoGenerator = errors.New("text generation is not configured")

// onGenerate asks the configured model for a text and loads it
func (a *Application) onGenerate() {
	if a.generator == nil {
		err := errNoGenerator
		if a.config.GeneratorErr != nil {
			err = errors.Join(err, a.config.GeneratorErr)
		}
		a.showError(err)
		return
	}

	prompt := strings.TrimSpace(a.promptEntry.Text)
	a.generateButton.Disable()
	a.promptEntry.Disable()
	a.updateStatus("Generating text...")

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		doc, err := a.generator.Generate(a.ctx, prompt)
		if errors.Is(err, context.Canceled) {
			return
		}

		fyne.Do(func() {
			a.generateButton.Enable()
			a.promptEntry.Enable()
			if err != nil {
				a.logger.Error("text generation failed", "error", err)
				a.showError(err)
				return
			}
			a.loadDocument(document.Normalize(doc), "generated text")
		})
	}()
}

// onLoadFile lets the user pick a text file to read
func (a *Application) onLoadFile() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			a.showError(err)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		doc, err := document.Read(reader)
		if err != nil {
			a.showError(err)
			return
		}
		a.loadDocument(doc, reader.URI().Name())
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".txt", ".text", ".md"}))
	d.Show()
}

// watchDocument reloads the startup file whenever changes signals
func (a *Application) watchDocument(changes <-chan struct{}) {
	path := a.config.DocumentPath

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		for {
			select {
			case <-a.ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
				doc, err := document.ReadFile(path)
				if err != nil {
					a.logger.Warn("reload failed", "path", path, "error", err)
					continue
				}
				fyne.Do(func() {
					a.loadDocument(doc, path)
					a.updateStatus("Document changed on disk, reloaded " + path)
				})
			}
		}
	}()
}
