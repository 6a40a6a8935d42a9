// Package distance provides similarity calculations for embedding vectors.
//
// Cosine is the primary metric. All functions accumulate in float64 for
// numerical stability and never panic on degenerate input: the similarity of a
// zero-magnitude vector is defined as 0.
package distance
