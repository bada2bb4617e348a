package cli

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/speedreader/internal/palette"
	"codeberg.org/snonux/speedreader/internal/playback"
)

func TestLoadSettings_Defaults(t *testing.T) {
	resetViper(t)
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	SetDefaults()

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}

	if s.WPM != 150 {
		t.Errorf("WPM = %d, want 150", s.WPM)
	}
	if len(s.WPMValues) != 6 {
		t.Errorf("WPMValues = %v, want the six presets", s.WPMValues)
	}
	if s.Language != "English" {
		t.Errorf("Language = %q, want English", s.Language)
	}
	if s.HighlightColor.Name != "Yellow" {
		t.Errorf("HighlightColor = %q, want Yellow", s.HighlightColor.Name)
	}
	if s.Generator.Provider != "openai" || s.Generator.MaxTokens != DefaultMaxTokens {
		t.Errorf("Generator = %+v, want openai defaults", s.Generator)
	}
}

func TestLoadSettings_FromConfig(t *testing.T) {
	resetViper(t)
	SetDefaults()

	viper.Set("reader.wpm_values", []int{300, 500})
	viper.Set("reader.languages", []string{"German", "English"})
	viper.Set("reader.highlight_color", "cyan")
	viper.Set("generator.provider", "gemini")
	viper.Set("generator.gemini_key", "g-key")
	t.Setenv("GEMINI_API_KEY", "")

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}

	if s.WPM != 300 {
		t.Errorf("WPM = %d, want first preset 300", s.WPM)
	}
	if s.Language != "German" {
		t.Errorf("Language = %q, want first configured language", s.Language)
	}
	if s.HighlightColor != (palette.Option{Name: "Cyan", Hex: "#00FFFF"}) {
		t.Errorf("HighlightColor = %+v", s.HighlightColor)
	}
	if s.Generator.GeminiKey != "g-key" {
		t.Errorf("GeminiKey = %q, want g-key", s.Generator.GeminiKey)
	}
}

func TestLoadSettings_FlagOverrides(t *testing.T) {
	resetViper(t)
	SetDefaults()
	viper.Set("reader.languages", []string{"German"})

	cmd := &cobra.Command{}
	setupFlags(cmd, NewFlags())

	// Unchanged flags do not override the configuration
	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.Language != "German" || s.WPM != 150 {
		t.Errorf("Language = %q, WPM = %d; want German, 150", s.Language, s.WPM)
	}

	_ = cmd.Flags().Set("wpm", "275")
	_ = cmd.Flags().Set("language", "French")
	s, err = LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.WPM != 275 || s.Language != "French" {
		t.Errorf("Language = %q, WPM = %d; want French, 275", s.Language, s.WPM)
	}
	if s.WPMValues[len(s.WPMValues)-1] != 400 || len(s.WPMValues) != 7 {
		t.Errorf("WPMValues = %v, want the presets plus 275", s.WPMValues)
	}
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   interface{}
		field   string
		wantErr error
	}{
		{name: "zero wpm", key: "reader.wpm", value: 0, field: "reader.wpm", wantErr: playback.ErrInvalidRate},
		{name: "negative preset", key: "reader.wpm_values", value: []int{150, -5}, field: "reader.wpm_values", wantErr: playback.ErrInvalidRate},
		{name: "unknown colour", key: "reader.highlight_color", value: "purple", field: "reader.highlight_color", wantErr: palette.ErrUnknownColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)
			SetDefaults()
			viper.Set(tt.key, tt.value)

			_, err := LoadSettings()
			var cfgErr *playback.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("LoadSettings() error = %v, want *playback.ConfigError", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.field)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLogLevel(t *testing.T) {
	if got := LogLevel(false); got != slog.LevelInfo {
		t.Errorf("LogLevel(false) = %v, want %v", got, slog.LevelInfo)
	}
	if got := LogLevel(true); got != slog.LevelDebug {
		t.Errorf("LogLevel(true) = %v, want %v", got, slog.LevelDebug)
	}
}
