// Package stopwords provides per-language stop-word sets and the classifier
// that marks words as stop words for lighter highlighting. Sets come from
// NLTK-style word lists: one lowercase word per line, one file per language,
// either bundled with the binary or read from a configured directory.
package stopwords
