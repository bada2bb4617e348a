package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	File       string
	Prompt     string
	NoGUI      bool
	Watch      bool
	ListModels bool
	Debug      bool
	PlaySound  bool

	// Reader flags
	WPM            int
	Language       string
	HighlightColor string
	StopWordsDir   string
	SoundPath      string

	// Generator flags
	Provider  string
	Model     string
	BaseURL   string
	MaxTokens int
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		WPM:            DefaultWPMValues[0],
		Language:       DefaultLanguages[0],
		HighlightColor: DefaultHighlightColor,
		Provider:       "openai",
		MaxTokens:      DefaultMaxTokens,
	}
}
