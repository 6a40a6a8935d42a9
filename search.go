package platewise

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/platewise/platewise/distance"
	"github.com/platewise/platewise/metadata"
)

// DefaultTopK is the number of results returned when a query does not set
// TopK.
const DefaultTopK = 10

// SearchQuery describes a similarity search against one collection.
//
// Exactly one of Vector or Text must be supplied. Text queries require an
// external embedding step: the store itself rejects them, and the rag and
// substitute pipelines are the layers that embed text before searching.
type SearchQuery struct {
	// Vector is the query embedding. Its length must equal the collection
	// dimension.
	Vector []float32

	// Text is an unembedded text query. The store rejects it; see above.
	Text string

	// Filter restricts candidates before similarity scoring.
	Filter *metadata.Filter

	// TopK caps the number of results. Defaults to DefaultTopK.
	TopK int

	// Threshold drops results scoring below the given minimum similarity.
	Threshold *float64

	// IncludeEmbeddings copies document embeddings into the results.
	IncludeEmbeddings bool
}

// SearchResult is one ranked search hit.
type SearchResult[T any] struct {
	ID       string
	Score    float64
	Distance float64
	Document Document[T]
}

// Search performs a similarity search over the collection.
//
// Every stored document is evaluated against the filter first; survivors
// are scored with the collection metric, thresholded, sorted by descending
// score (ties keep insertion order) and truncated to TopK.
func (s *Store[T]) Search(ctx context.Context, collection string, query SearchQuery) ([]SearchResult[T], error) {
	start := time.Now()
	results, err := s.search(ctx, collection, query)
	s.opts.metrics.RecordSearch(query.TopK, time.Since(start), err)
	s.opts.logger.LogSearch(ctx, collection, query.TopK, len(results), err)
	return results, err
}

func (s *Store[T]) search(ctx context.Context, collection string, query SearchQuery) ([]SearchResult[T], error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	col, err := s.collection(collection)
	if err != nil {
		return nil, err
	}

	if len(query.Vector) == 0 {
		if query.Text != "" {
			return nil, fmt.Errorf("%w: text queries require an external embedding step", ErrInvalidQuery)
		}
		return nil, fmt.Errorf("%w: either vector or text is required", ErrInvalidQuery)
	}
	if len(query.Vector) != col.dimension {
		return nil, &ErrDimensionMismatch{Expected: col.dimension, Actual: len(query.Vector)}
	}

	simFn, err := distance.Provider(col.metric)
	if err != nil {
		return nil, err
	}

	topK := query.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}

	var results []SearchResult[T]
	for doc := range col.backend.All() {
		if !query.Filter.Matches(doc.Metadata) {
			continue
		}
		score := simFn(query.Vector, doc.Embedding)
		if query.Threshold != nil && score < *query.Threshold {
			continue
		}
		results = append(results, SearchResult[T]{
			ID:       doc.ID,
			Score:    score,
			Distance: 1 - score,
			Document: doc.clone(query.IncludeEmbeddings),
		})
	}

	slices.SortStableFunc(results, func(a, b SearchResult[T]) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})
	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// Query creates a fluent search builder for the given query vector.
//
// Example:
//
//	results, err := store.Query("ingredients", vec).
//	    TopK(10).
//	    Threshold(0.7).
//	    Filter(&metadata.Filter{Equals: map[string]metadata.Value{
//	        "category": metadata.String("protein"),
//	    }}).
//	    Execute(ctx)
func (s *Store[T]) Query(collection string, vector []float32) *QueryBuilder[T] {
	return &QueryBuilder[T]{
		store:      s,
		collection: collection,
		query:      SearchQuery{Vector: vector},
	}
}

// QueryBuilder is a fluent builder for constructing search queries.
type QueryBuilder[T any] struct {
	store      *Store[T]
	collection string
	query      SearchQuery
}

// TopK sets the maximum number of results to return.
func (qb *QueryBuilder[T]) TopK(k int) *QueryBuilder[T] {
	qb.query.TopK = k
	return qb
}

// Threshold sets the minimum similarity score.
func (qb *QueryBuilder[T]) Threshold(min float64) *QueryBuilder[T] {
	qb.query.Threshold = &min
	return qb
}

// Filter sets the metadata filter.
func (qb *QueryBuilder[T]) Filter(f *metadata.Filter) *QueryBuilder[T] {
	qb.query.Filter = f
	return qb
}

// IncludeEmbeddings copies document embeddings into the results.
func (qb *QueryBuilder[T]) IncludeEmbeddings() *QueryBuilder[T] {
	qb.query.IncludeEmbeddings = true
	return qb
}

// Execute runs the search and returns the results.
func (qb *QueryBuilder[T]) Execute(ctx context.Context) ([]SearchResult[T], error) {
	return qb.store.Search(ctx, qb.collection, qb.query)
}

// First returns only the best-scoring result, or ErrDocumentNotFound if
// the search matched nothing.
func (qb *QueryBuilder[T]) First(ctx context.Context) (SearchResult[T], error) {
	qb.query.TopK = 1
	results, err := qb.Execute(ctx)
	if err != nil {
		return SearchResult[T]{}, err
	}
	if len(results) == 0 {
		return SearchResult[T]{}, ErrDocumentNotFound
	}
	return results[0], nil
}
