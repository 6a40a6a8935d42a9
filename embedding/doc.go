// Package embedding turns text into fixed-dimension vectors.
//
// The store itself never embeds text; the rag and substitute pipelines
// depend on a Provider from this package to do so. HTTP talks to an
// OpenAI-compatible or Ollama-style endpoint, RateLimited wraps any
// provider with a token-bucket limiter, and Deterministic produces
// stable hash-derived vectors for tests and offline seeding.
package embedding
