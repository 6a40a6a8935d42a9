package rag

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/platewise/platewise"
	"github.com/platewise/platewise/config"
	"github.com/platewise/platewise/embedding"
)

// maxConfidence caps reported confidence; retrieval never claims full
// certainty.
const maxConfidence = 0.95

// Options configure a Pipeline.
type Options struct {
	// TopK is the default result budget per retrieval.
	TopK int

	// Threshold is the minimum similarity for a result to count as
	// relevant.
	Threshold float64

	// MaxContextLength is the character budget for BuildContext.
	MaxContextLength int

	// AvailabilityBonus is added to a recommendation score per available
	// ingredient matched by substring. A relative weighting, not a
	// calibrated constant.
	AvailabilityBonus float64
}

// Retrieved is one cross-collection retrieval hit.
type Retrieved[T any] struct {
	platewise.SearchResult[T]
	Collection string
}

// RetrievalResult is the outcome of one Retrieve call.
type RetrievalResult[T any] struct {
	Results    []Retrieved[T]
	Context    string
	Confidence float64
	Sources    []Source
}

// Pipeline retrieves and assembles context from the vector store.
type Pipeline[T any] struct {
	store    *platewise.Store[T]
	embedder embedding.Provider
	opts     Options
}

// NewPipeline creates a retrieval pipeline over the given store and
// embedding provider.
func NewPipeline[T any](store *platewise.Store[T], embedder embedding.Provider, optFns ...func(o *Options)) *Pipeline[T] {
	opts := Options{
		TopK:              config.DefaultTopK,
		Threshold:         config.ThresholdMinimal,
		MaxContextLength:  config.DefaultMaxContextLength,
		AvailabilityBonus: 0.05,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Pipeline[T]{store: store, embedder: embedder, opts: opts}
}

// Retrieve embeds the query once and searches each named collection
// concurrently for its share of the budget: ceil(topK / len(collections))
// results at the relevance threshold. Shares are not redistributed when a
// collection returns fewer results than its quota. The merged hits are
// sorted by descending score and truncated to topK.
func (p *Pipeline[T]) Retrieve(ctx context.Context, query string, collections []string, topK int) (RetrievalResult[T], error) {
	if topK <= 0 {
		topK = p.opts.TopK
	}
	if len(collections) == 0 {
		return RetrievalResult[T]{}, fmt.Errorf("rag: no collections to search")
	}

	vector, err := p.embedder.Embed(ctx, query)
	if err != nil {
		return RetrievalResult[T]{}, fmt.Errorf("rag: embed query: %w", err)
	}

	perCollection := (topK + len(collections) - 1) / len(collections)
	threshold := p.opts.Threshold

	merged := make([][]Retrieved[T], len(collections))
	g, gctx := errgroup.WithContext(ctx)
	for i, collection := range collections {
		g.Go(func() error {
			hits, err := p.store.Search(gctx, collection, platewise.SearchQuery{
				Vector:    vector,
				TopK:      perCollection,
				Threshold: &threshold,
			})
			if err != nil {
				return fmt.Errorf("rag: search %s: %w", collection, err)
			}
			retrieved := make([]Retrieved[T], len(hits))
			for j, hit := range hits {
				retrieved[j] = Retrieved[T]{SearchResult: hit, Collection: collection}
			}
			merged[i] = retrieved
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return RetrievalResult[T]{}, err
	}

	var results []Retrieved[T]
	for _, part := range merged {
		results = append(results, part...)
	}
	slices.SortStableFunc(results, func(a, b Retrieved[T]) int {
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

	return RetrievalResult[T]{
		Results:    results,
		Context:    p.BuildContext(results),
		Confidence: confidence(results),
		Sources:    sources(results),
	}, nil
}

// confidence is the mean result score, capped below full certainty.
func confidence[T any](results []Retrieved[T]) float64 {
	if len(results) == 0 {
		return 0
	}
	var sum float64
	for _, result := range results {
		sum += result.Score
	}
	return min(sum/float64(len(results)), maxConfidence)
}
