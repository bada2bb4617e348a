package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/speedreader/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "speedreader [file]",
		Short: "Speed reading trainer with paced word highlighting",
		Long: `speedreader highlights the words of a text one at a time at a fixed
words-per-minute pace and reports the reading speed you achieved.

Text can be loaded from a file or generated from a prompt by a language
model. Stop words are shaded differently from content words.

Examples:
  speedreader                               # Launch the GUI (default)
  speedreader story.txt                     # Open a file in the GUI
  speedreader --no-gui --file story.txt     # Read in the terminal
  speedreader --no-gui --prompt "the moon"  # Generate a text and read it`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.speedreader.yaml)")
	cmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")

	// Local flags
	cmd.Flags().StringVarP(&flags.File, "file", "f", "", "Text file to read")
	cmd.Flags().StringVarP(&flags.Prompt, "prompt", "p", "", "Generate the text to read from this prompt")
	cmd.Flags().BoolVar(&flags.NoGUI, "no-gui", false, "Read in the terminal instead of opening a window")
	cmd.Flags().BoolVarP(&flags.Watch, "watch", "w", false, "Reload the file when it changes on disk")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available chat models for the current API key")
	cmd.Flags().BoolVar(&flags.PlaySound, "play-sound", false, "Play the background sound while reading in the terminal")

	// Reader flags
	cmd.Flags().IntVar(&flags.WPM, "wpm", flags.WPM, "Target reading speed in words per minute")
	cmd.Flags().StringVarP(&flags.Language, "language", "l", flags.Language, "Stop-word language")
	cmd.Flags().StringVar(&flags.HighlightColor, "highlight-color", flags.HighlightColor, "Highlight colour: none, green, yellow, magenta, cyan")
	cmd.Flags().StringVar(&flags.StopWordsDir, "stopwords-dir", "", "Directory with additional stop-word lists (one file per language)")
	cmd.Flags().StringVar(&flags.SoundPath, "sound", "", "Background sound file")

	// Generator flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Text generator: openai or gemini")
	cmd.Flags().StringVar(&flags.Model, "model", "", "Text generator model (default depends on provider)")
	cmd.Flags().StringVar(&flags.BaseURL, "base-url", "", "OpenAI compatible endpoint, e.g. a local llama.cpp server")
	cmd.Flags().IntVar(&flags.MaxTokens, "max-tokens", flags.MaxTokens, "Maximum length of generated texts in tokens")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	bindings := map[string]string{
		"reader.wpm":             "wpm",
		"reader.language":        "language",
		"reader.highlight_color": "highlight-color",
		"reader.stopwords_dir":   "stopwords-dir",
		"sound.path":             "sound",
		"generator.provider":     "provider",
		"generator.model":        "model",
		"generator.base_url":     "base-url",
		"generator.max_tokens":   "max-tokens",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding flag %s: %v\n", flag, err)
		}
	}
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	SetDefaults()

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".speedreader" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".speedreader")
	}

	// Environment variables
	viper.SetEnvPrefix("SPEEDREADER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("generator.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("generator.gemini_key")
}
