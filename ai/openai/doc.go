// Package openai implements the ai package interfaces against
// OpenAI-compatible APIs (OpenAI, Ollama, LocalAI, vLLM).
//
// The embedder wraps langchaingo's embeddings client; the insight generator
// drives a chat model in JSON mode and recovers from malformed responses via
// repair and marker-based fallback parsing.
package openai
