// Package document loads reading material from files and readers into the
// plain string the playback engine tokenizes.
package document
