// Package models lists the chat models available to the configured text
// generator, so users can pick one for generator.model.
package models
