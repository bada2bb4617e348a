package gui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/speedreader/internal"
	"codeberg.org/snonux/speedreader/internal/cli"
	"codeberg.org/snonux/speedreader/internal/generate"
	"codeberg.org/snonux/speedreader/internal/palette"
	"codeberg.org/snonux/speedreader/internal/playback"
	"codeberg.org/snonux/speedreader/internal/stopwords"
	"codeberg.org/snonux/speedreader/internal/text"
)

// Application represents the GUI application
type Application struct {
	app    fyne.App
	window fyne.Window
	theme  *readerTheme

	// Document and generation
	promptEntry    *CustomEntry
	generateButton *ttwidget.Button
	loadButton     *ttwidget.Button
	reader         *ReaderView

	// Settings
	colorSelect    *widget.Select
	languageSelect *widget.Select
	wpmSelect      *widget.Select
	sound          *SoundControl

	// Transport
	startButton *ttwidget.Button
	pauseButton *ttwidget.Button
	stopButton  *ttwidget.Button
	resetButton *ttwidget.Button

	timerLabel  *widget.Label
	wordsLabel  *widget.Label
	statusLabel *widget.Label
	logViewer   *LogViewer

	engine    *playback.Engine
	config    *Config
	logger    *slog.Logger
	generator generate.Generator

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Config holds what the GUI needs from the command line
type Config struct {
	Settings cli.Settings
	Lookup   stopwords.Lookup

	// Generator is nil when no backend could be configured; GeneratorErr
	// then says why
	Generator    generate.Generator
	GeneratorErr error

	Sound SoundPlayer
	// PlaySound turns background sound on at startup
	PlaySound bool

	// Document is shown on startup. DocumentPath names its file, if any.
	Document     string
	DocumentPath string

	// Changes signals that DocumentPath changed on disk
	Changes <-chan struct{}

	LogLevel slog.Leveler
}

// New creates a new GUI application
func New(config *Config) *Application {
	if config == nil {
		config = &Config{}
	}
	if len(config.Settings.WPMValues) == 0 {
		config.Settings.WPMValues = cli.DefaultWPMValues
	}
	if config.Settings.WPM <= 0 {
		config.Settings.WPM = config.Settings.WPMValues[0]
	}
	if len(config.Settings.Languages) == 0 {
		config.Settings.Languages = cli.DefaultLanguages
	}
	if config.Settings.Language == "" {
		config.Settings.Language = config.Settings.Languages[0]
	}
	if config.Settings.HighlightColor.Name == "" {
		config.Settings.HighlightColor, _ = palette.Lookup(cli.DefaultHighlightColor)
	}

	ctx, cancel := context.WithCancel(context.Background())

	myApp := app.NewWithID("org.codeberg.snonux.speedreader")
	myApp.SetIcon(GetAppIcon())

	a := &Application{
		app:       myApp,
		config:    config,
		generator: config.Generator,
		ctx:       ctx,
		cancel:    cancel,
	}

	// Log records go to stderr and to the log viewer
	a.logViewer = NewLogViewer()
	a.logger = slog.New(slog.NewTextHandler(io.MultiWriter(os.Stderr, a.logViewer), &slog.HandlerOptions{
		Level: config.LogLevel,
	}))
	slog.SetDefault(a.logger)

	a.theme = newReaderTheme(myApp.Settings().Theme(), config.Settings.HighlightColor)
	myApp.Settings().SetTheme(a.theme)

	a.engine = playback.New(fyneHost{},
		playback.WithLogger(a.logger),
		playback.WithWPM(config.Settings.WPM),
		playback.WithHighlight(config.Settings.HighlightColor.Enabled()),
		playback.WithStopWords(config.Lookup, config.Settings.Language),
	)
	a.engine.SetCallbacks(playback.Callbacks{
		OnHighlight:  a.onHighlight,
		OnScroll:     a.onScroll,
		OnTick:       a.onTick,
		OnSessionEnd: a.onSessionEnd,
		OnHalt:       a.onHalt,
		OnReset:      a.onResetView,
	})

	a.setupUI()

	if config.Document != "" {
		a.loadDocument(config.Document, config.DocumentPath)
	}
	if config.Changes != nil {
		a.watchDocument(config.Changes)
	}

	return a
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("SpeedReader v%s", internal.Version))
	a.window.SetIcon(GetAppIcon())
	a.window.Resize(fyne.NewSize(900, 700))

	// Prompt row (tooltips will be set after tooltip layer is created)
	a.promptEntry = NewCustomEntry()
	a.promptEntry.SetPlaceHolder("Describe a text to generate...")
	a.promptEntry.OnSubmitted = func(string) {
		a.onGenerate()
		a.window.Canvas().Unfocus()
	}
	a.promptEntry.SetOnEscape(func() {
		a.window.Canvas().Unfocus()
	})

	a.generateButton = ttwidget.NewButtonWithIcon("", theme.ConfirmIcon(), a.onGenerate)
	a.loadButton = ttwidget.NewButtonWithIcon("", theme.FolderOpenIcon(), a.onLoadFile)
	if a.generator == nil {
		a.generateButton.Disable()
	}

	promptSection := container.NewBorder(
		nil, nil,
		nil,
		container.NewHBox(a.generateButton, a.loadButton),
		a.promptEntry,
	)

	// Settings row; the selects start on the configured values without
	// firing their callbacks
	a.colorSelect = widget.NewSelect(palette.Names(), a.onColorChanged)
	a.colorSelect.Selected = a.config.Settings.HighlightColor.Name

	a.languageSelect = widget.NewSelect(a.config.Settings.Languages, a.onLanguageChanged)
	a.languageSelect.Selected = a.config.Settings.Language

	a.wpmSelect = widget.NewSelect(wpmOptions(a.config.Settings.WPMValues), a.onWPMChanged)
	a.wpmSelect.Selected = strconv.Itoa(a.config.Settings.WPM)

	a.sound = NewSoundControl(a.config.Sound, a.config.Settings.SoundPath, a.logger)
	a.sound.SetOnError(a.showError)
	a.sound.SetChecked(a.config.PlaySound)

	settingsSection := container.NewHBox(
		widget.NewLabel("Highlight:"), a.colorSelect,
		widget.NewLabel("Language:"), a.languageSelect,
		widget.NewLabel("WPM:"), a.wpmSelect,
		widget.NewSeparator(),
		a.sound,
	)

	a.reader = NewReaderView()

	// Transport
	a.startButton = ttwidget.NewButtonWithIcon("", theme.MediaPlayIcon(), a.onStart)
	a.startButton.Importance = widget.HighImportance
	a.pauseButton = ttwidget.NewButtonWithIcon("", theme.MediaPauseIcon(), a.onPause)
	a.stopButton = ttwidget.NewButtonWithIcon("", theme.MediaStopIcon(), a.onStop)
	a.resetButton = ttwidget.NewButtonWithIcon("", theme.MediaReplayIcon(), a.onReset)
	helpButton := ttwidget.NewButtonWithIcon("", theme.HelpIcon(), a.onShowHotkeys)

	a.timerLabel = widget.NewLabel(playback.FormatElapsed(0))
	a.timerLabel.TextStyle = fyne.TextStyle{Monospace: true}
	a.wordsLabel = widget.NewLabel(wordsText(0, 0))

	toolbar := container.NewHBox(
		a.startButton,
		a.pauseButton,
		a.stopButton,
		a.resetButton,
		widget.NewSeparator(),
		a.timerLabel,
		a.wordsLabel,
		widget.NewSeparator(),
		helpButton,
	)

	// Status and logs
	a.statusLabel = widget.NewLabel("Ready")
	logs := widget.NewAccordion(widget.NewAccordionItem("Logs", a.logViewer))

	statusSection := container.NewVBox(
		widget.NewSeparator(),
		a.statusLabel,
		logs,
	)

	content := container.NewBorder(
		container.NewVBox(
			toolbar,
			widget.NewSeparator(),
			promptSection,
			settingsSection,
		),
		statusSection,
		nil, nil,
		a.reader,
	)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))

	// Now that tooltip layer is created, set all tooltips
	a.setupTooltips()
	helpButton.SetToolTip("Show hotkeys (h)")

	a.window.SetOnClosed(func() {
		a.engine.Reset()
		a.sound.Close()
		a.cancel()
		a.wg.Wait()
	})

	a.updateControls()
	a.setupKeyboardShortcuts()
}

// setupTooltips sets up all tooltips after the tooltip layer has been created
func (a *Application) setupTooltips() {
	a.generateButton.SetToolTip("Generate text (Enter)")
	a.loadButton.SetToolTip("Load text file (o)")
	a.startButton.SetToolTip("Start reading (Space)")
	a.pauseButton.SetToolTip("Pause reading (Space)")
	a.stopButton.SetToolTip("Stop and show stats (s)")
	a.resetButton.SetToolTip("Reset to the beginning (r)")
}

// Run starts the GUI application
func (a *Application) Run() {
	a.window.ShowAndRun()
}

// loadDocument replaces the text being read. source names it for the
// status line.
func (a *Application) loadDocument(doc, source string) {
	a.engine.Load(doc)
	a.reader.SetDocument(doc)
	a.wordsLabel.SetText(wordsText(0, a.engine.Total()))
	a.timerLabel.SetText(playback.FormatElapsed(0))
	a.updateControls()

	if source == "" {
		source = "document"
	}
	a.updateStatus(fmt.Sprintf("Loaded %s (%d words)", source, a.engine.Total()))
}

func (a *Application) onStart() {
	a.engine.Start()
	a.updateControls()
}

func (a *Application) onPause() {
	a.engine.Pause()
	a.updateControls()
}

func (a *Application) onStop() {
	a.engine.Stop()
	a.updateControls()
}

func (a *Application) onReset() {
	a.engine.Reset()
	a.updateControls()
	a.updateStatus("Ready")
}

// togglePlayback starts, pauses or resumes depending on the state
func (a *Application) togglePlayback() {
	if a.engine.State() == playback.Running {
		a.onPause()
		return
	}
	a.onStart()
}

func (a *Application) onHighlight(h playback.Highlight) {
	a.reader.Highlight(h.Span, h.Style)
	a.wordsLabel.SetText(wordsText(a.engine.Index(), a.engine.Total()))
}

func (a *Application) onScroll(span text.Span) {
	a.reader.ScrollTo(span)
	a.wordsLabel.SetText(wordsText(a.engine.Index(), a.engine.Total()))
}

func (a *Application) onTick(elapsed time.Duration) {
	a.timerLabel.SetText(playback.FormatElapsed(elapsed))
}

func (a *Application) onSessionEnd(stats playback.SessionStats) {
	a.updateControls()
	a.updateStatus(fmt.Sprintf("Read %d of %d words", stats.WordsProcessed, stats.WordsTotal))

	// A session stopped before its first tick has nothing worth reporting
	if stats.Elapsed > 0 {
		dialog.ShowInformation("Reading Stats", stats.String(), a.window)
	}
}

func (a *Application) onHalt(err error) {
	a.updateControls()
	a.showError(err)
}

// onResetView drops the highlight when the engine returns to the start
func (a *Application) onResetView() {
	a.reader.ClearHighlight()
	a.timerLabel.SetText(playback.FormatElapsed(0))
	a.wordsLabel.SetText(wordsText(0, a.engine.Total()))
	a.updateControls()
}

func (a *Application) onColorChanged(name string) {
	option, err := palette.Lookup(name)
	if err != nil {
		a.showError(err)
		return
	}
	a.theme.setOption(option)
	a.app.Settings().SetTheme(a.theme)
	a.engine.SetHighlightEnabled(option.Enabled())
	if !option.Enabled() {
		a.reader.ClearHighlight()
	}
}

func (a *Application) onLanguageChanged(language string) {
	if language == a.engine.Language() {
		return
	}
	if err := a.engine.SetLanguage(language); err != nil {
		a.showError(err)
		a.languageSelect.SetSelected(a.engine.Language())
		return
	}
	a.updateStatus("Stop words: " + language)
}

func (a *Application) onWPMChanged(value string) {
	wpm, err := strconv.Atoi(value)
	if err == nil {
		err = a.engine.SetWPM(wpm)
	}
	if err != nil {
		a.showError(err)
		a.wpmSelect.SetSelected(strconv.Itoa(a.engine.WPM()))
	}
}

// cycleWPM moves the rate to the next preset, wrapping around
func (a *Application) cycleWPM() {
	a.wpmSelect.SetSelected(strconv.Itoa(nextWPM(a.config.Settings.WPMValues, a.engine.WPM())))
}

func (a *Application) updateStatus(message string) {
	a.statusLabel.SetText(message)
}

func (a *Application) showError(err error) {
	dialog.ShowError(err, a.window)
	a.updateStatus("Error: " + err.Error())
}

func wpmOptions(values []int) []string {
	options := make([]string, len(values))
	for i, v := range values {
		options[i] = strconv.Itoa(v)
	}
	return options
}

func nextWPM(values []int, current int) int {
	if len(values) == 0 {
		return current
	}
	i := slices.Index(values, current)
	return values[(i+1)%len(values)]
}

func wordsText(index, total int) string {
	return fmt.Sprintf("Words: %d/%d", index, total)
}
