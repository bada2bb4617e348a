package cli

import (
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/viper"

	"codeberg.org/snonux/speedreader/internal/generate"
	"codeberg.org/snonux/speedreader/internal/palette"
	"codeberg.org/snonux/speedreader/internal/playback"
)

// Defaults for configuration keys
var (
	DefaultWPMValues = []int{150, 200, 250, 300, 350, 400}
	DefaultLanguages = []string{"English"}
)

const (
	DefaultHighlightColor = "Yellow"
	DefaultMaxTokens      = 1024
)

// Settings is the validated reader configuration
type Settings struct {
	WPMValues      []int
	WPM            int
	Languages      []string
	Language       string
	StopWordsDir   string
	HighlightColor palette.Option
	SoundPath      string
	Generator      generate.Config
}

// SetDefaults registers the default value of every configuration key
func SetDefaults() {
	viper.SetDefault("reader.wpm_values", DefaultWPMValues)
	viper.SetDefault("reader.languages", DefaultLanguages)
	viper.SetDefault("reader.highlight_color", DefaultHighlightColor)
	viper.SetDefault("generator.provider", generate.ProviderOpenAI)
	viper.SetDefault("generator.max_tokens", DefaultMaxTokens)
}

// LoadSettings reads and validates the configuration. Invalid values are
// reported as *playback.ConfigError.
func LoadSettings() (Settings, error) {
	s := Settings{
		WPMValues:    viper.GetIntSlice("reader.wpm_values"),
		Languages:    viper.GetStringSlice("reader.languages"),
		StopWordsDir: viper.GetString("reader.stopwords_dir"),
		SoundPath:    viper.GetString("sound.path"),
		Generator: generate.Config{
			Provider:  viper.GetString("generator.provider"),
			Model:     viper.GetString("generator.model"),
			BaseURL:   viper.GetString("generator.base_url"),
			MaxTokens: viper.GetInt("generator.max_tokens"),
			OpenAIKey: GetOpenAIKey(),
			GeminiKey: GetGeminiKey(),
		},
	}

	if len(s.WPMValues) == 0 {
		s.WPMValues = slices.Clone(DefaultWPMValues)
	}
	for _, wpm := range s.WPMValues {
		if wpm <= 0 {
			return Settings{}, &playback.ConfigError{Field: "reader.wpm_values", Value: wpm, Err: playback.ErrInvalidRate}
		}
	}

	s.WPM = s.WPMValues[0]
	if viper.IsSet("reader.wpm") {
		s.WPM = viper.GetInt("reader.wpm")
	}
	if s.WPM <= 0 {
		return Settings{}, &playback.ConfigError{Field: "reader.wpm", Value: s.WPM, Err: playback.ErrInvalidRate}
	}
	if !slices.Contains(s.WPMValues, s.WPM) {
		s.WPMValues = append(s.WPMValues, s.WPM)
		slices.Sort(s.WPMValues)
	}

	if len(s.Languages) == 0 {
		s.Languages = slices.Clone(DefaultLanguages)
	}
	s.Language = s.Languages[0]
	if viper.IsSet("reader.language") {
		if lang := viper.GetString("reader.language"); lang != "" {
			s.Language = lang
		}
	}

	color, err := palette.Lookup(viper.GetString("reader.highlight_color"))
	if err != nil {
		return Settings{}, &playback.ConfigError{Field: "reader.highlight_color", Value: viper.GetString("reader.highlight_color"), Err: err}
	}
	s.HighlightColor = color

	return s, nil
}

// SetupLogging installs the default slog logger, at debug level when debug
// is set
func SetupLogging(debug bool) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: LogLevel(debug)}))
	slog.SetDefault(logger)
	return logger
}

// LogLevel is the level for the --debug flag
func LogLevel(debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
