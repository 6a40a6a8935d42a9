// Package testutil provides seeded, reproducible fixtures for store and
// pipeline tests: a thread-safe RNG, random embedding generators and a
// small pre-embedded ingredient corpus.
package testutil
