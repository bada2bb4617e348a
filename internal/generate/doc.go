// Package generate turns a short prompt into reading material using a large
// language model.
//
// Two backends are supported: any OpenAI compatible chat completion endpoint
// (the OpenAI API itself or a local llama.cpp/Ollama server through
// Config.BaseURL) and Google Gemini. Both are wrapped in a circuit breaker so
// a failing backend is not hammered from the UI.
package generate
