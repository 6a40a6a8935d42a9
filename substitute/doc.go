// Package substitute ranks ingredient substitutions by merging three
// independent candidate strategies: static cooking-role rules, semantic
// search over the ingredient collection, and an external knowledge-graph
// lookup. Candidates flow through a fixed post-processing pipeline
// (dietary filtering, availability boosting, quantity adjustment,
// dedup, ranking) before being returned.
package substitute
