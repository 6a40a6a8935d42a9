package platewise

import (
	"context"
	"time"
)

// BatchError records a single failed item within a batch operation.
type BatchError struct {
	ID      string
	Message string
}

// BatchResult summarizes a batch upsert. Partial failure is first-class:
// a failing item is recorded by ID and message and does not abort its
// siblings.
type BatchResult struct {
	Succeeded int
	Failed    int
	Errors    []BatchError
	Took      time.Duration
}

// BatchUpsert upserts documents sequentially. Per-item failures are
// captured in the result; the call itself fails only on lifecycle errors,
// a missing collection, or context cancellation.
func (s *Store[T]) BatchUpsert(ctx context.Context, collection string, docs []Document[T]) (BatchResult, error) {
	start := time.Now()

	if err := s.ready(); err != nil {
		return BatchResult{}, err
	}
	if _, err := s.collection(collection); err != nil {
		return BatchResult{}, err
	}

	var result BatchResult
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			result.Took = time.Since(start)
			return result, err
		}
		id, err := s.upsert(ctx, collection, doc)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, BatchError{ID: id, Message: err.Error()})
			continue
		}
		result.Succeeded++
	}
	result.Took = time.Since(start)

	s.opts.metrics.RecordBatchUpsert(len(docs), result.Failed, result.Took)
	s.opts.logger.LogBatchUpsert(ctx, collection, len(docs), result.Failed)
	return result, nil
}
