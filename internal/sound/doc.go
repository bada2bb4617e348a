// Package sound plays a background sound file in a loop while reading.
//
// Playback is delegated to whatever command line player the platform has
// (afplay on macOS, mpg123/ffplay/sox/paplay/aplay on Linux), restarted each
// time it finishes until Stop is called.
package sound
