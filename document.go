package platewise

import (
	"slices"
	"time"

	"github.com/platewise/platewise/distance"
	"github.com/platewise/platewise/metadata"
)

// Document is a stored vector document.
//
// The embedding length must equal the collection dimension; T is the
// caller-typed payload carried alongside the typed metadata.
type Document[T any] struct {
	ID        string
	Embedding []float32
	Metadata  metadata.Document
	Data      T
	CreatedAt time.Time
	UpdatedAt time.Time
}

// clone returns a copy that shares no mutable state with the receiver.
// The embedding is omitted unless includeEmbedding is set.
func (d *Document[T]) clone(includeEmbedding bool) Document[T] {
	out := Document[T]{
		ID:        d.ID,
		Metadata:  d.Metadata.Clone(),
		Data:      d.Data,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if includeEmbedding {
		out.Embedding = slices.Clone(d.Embedding)
	}
	return out
}

// Collection is a named, dimension-fixed partition of the document store.
// The dimension and metric are immutable after creation.
type Collection[T any] struct {
	name      string
	dimension int
	metric    distance.Metric
	backend   Backend[T]
	createdAt time.Time
	updatedAt time.Time
}

// Name returns the collection name.
func (c *Collection[T]) Name() string { return c.name }

// Dimension returns the fixed embedding dimension.
func (c *Collection[T]) Dimension() int { return c.dimension }

// Metric returns the similarity metric.
func (c *Collection[T]) Metric() distance.Metric { return c.metric }

// CollectionStats is a snapshot of collection state.
type CollectionStats struct {
	Name          string
	DocumentCount int
	Dimension     int
	Metric        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Health is the result of a store health check.
type Health struct {
	Status      string
	Collections int
	Documents   int
}
