// Package metadata provides typed metadata documents and the filter engine
// used by vector search.
//
// Metadata is a typed model (map[string]Value) rather than map[string]any so
// that filter evaluation stays predictable: no reflection, explicit coercion
// rules per predicate. A Filter is a conjunction of predicate groups; Matches
// is a pure function over a document and never mutates either side.
package metadata
