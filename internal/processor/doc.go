// Package processor wires the command line to the reader. It resolves the
// document to read from a file or a generated text, sets up stop words,
// background sound and file watching, and runs either the terminal reader
// or the GUI.
package processor
