// Package terminal plays a document in the terminal, flashing one word at a
// time on a single line together with the elapsed reading time.
package terminal
