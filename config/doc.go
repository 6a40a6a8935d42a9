// Package config holds the compile-time presets shared by the store,
// substitution and retrieval layers: per-collection dimension and index
// settings, similarity threshold tiers and default limits.
package config
