package stopwords

// Classifier answers stop-word membership for one language
type Classifier struct {
	language string
	set      Set
}

// NewClassifier creates a classifier for language backed by set
func NewClassifier(language string, set Set) *Classifier {
	if set == nil {
		set = Set{}
	}
	return &Classifier{language: language, set: set}
}

// Language returns the language the classifier was built for
func (c *Classifier) Language() string {
	return c.language
}

// IsStopWord reports whether word is a stop word in the classifier's language
func (c *Classifier) IsStopWord(word string) bool {
	if c == nil {
		return false
	}
	return IsStopWord(word, c.set)
}

// IsStopWord reports whether word is in set, ignoring case
func IsStopWord(word string, set Set) bool {
	return set.Contains(word)
}
