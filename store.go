package platewise

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

const (
	stateUninitialized int32 = iota
	stateInitialized
	stateClosed
)

// Store is an embedded vector store holding named collections of documents.
//
// Lifecycle: a Store starts uninitialized, becomes usable after Initialize
// and permanently unusable after Close. All other operations fail with
// ErrNotInitialized or ErrClosed outside the initialized state.
type Store[T any] struct {
	mu          sync.RWMutex
	state       atomic.Int32
	collections map[string]*Collection[T]
	newBackend  func() Backend[T]
	opts        options
}

// New creates a new uninitialized Store using the in-memory MapBackend.
func New[T any](optFns ...Option) *Store[T] {
	return NewWithBackend(func() Backend[T] { return NewMapBackend[T]() }, optFns...)
}

// NewWithBackend creates a new uninitialized Store whose collections use
// backends produced by the given factory.
func NewWithBackend[T any](factory func() Backend[T], optFns ...Option) *Store[T] {
	return &Store[T]{
		collections: make(map[string]*Collection[T]),
		newBackend:  factory,
		opts:        applyOptions(optFns),
	}
}

// Initialize transitions the store into the initialized state.
// It is an error to initialize a closed store; initializing twice is a no-op.
func (s *Store[T]) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch s.state.Load() {
	case stateClosed:
		return ErrClosed
	case stateInitialized:
		return nil
	}
	s.state.Store(stateInitialized)
	s.opts.logger.InfoContext(ctx, "vector store initialized")
	return nil
}

// Close transitions the store into the closed state and releases its
// collections. Close is idempotent; operations issued after Close fail
// with ErrClosed.
func (s *Store[T]) Close() error {
	if s.state.Swap(stateClosed) == stateClosed {
		return nil
	}
	s.mu.Lock()
	s.collections = make(map[string]*Collection[T])
	s.mu.Unlock()
	s.opts.logger.Info("vector store closed")
	return nil
}

func (s *Store[T]) ready() error {
	switch s.state.Load() {
	case stateInitialized:
		return nil
	case stateClosed:
		return ErrClosed
	default:
		return ErrNotInitialized
	}
}

// CreateCollection creates a collection with the given name and embedding
// dimension. Creation is idempotent: if the collection already exists the
// call succeeds and reports created=false. The name must be non-blank and
// the dimension positive.
func (s *Store[T]) CreateCollection(ctx context.Context, name string, dimension int) (created bool, err error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if strings.TrimSpace(name) == "" {
		return false, ErrInvalidCollectionName
	}
	if dimension <= 0 {
		return false, &ErrInvalidDimension{Dimension: dimension}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[name]; ok {
		return false, nil
	}

	now := time.Now().UTC()
	s.collections[name] = &Collection[T]{
		name:      name,
		dimension: dimension,
		metric:    s.opts.metric,
		backend:   s.newBackend(),
		createdAt: now,
		updatedAt: now,
	}
	s.opts.logger.InfoContext(ctx, "collection created",
		"collection", name,
		"dimension", dimension,
		"metric", s.opts.metric.String(),
	)
	return true, nil
}

// DeleteCollection destroys a collection and all its documents.
func (s *Store[T]) DeleteCollection(ctx context.Context, name string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[name]; !ok {
		return fmt.Errorf("%w: %q", ErrCollectionNotFound, name)
	}
	delete(s.collections, name)
	s.opts.logger.InfoContext(ctx, "collection deleted", "collection", name)
	return nil
}

func (s *Store[T]) collection(name string) (*Collection[T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	col, ok := s.collections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCollectionNotFound, name)
	}
	return col, nil
}

// Upsert inserts or overwrites a document by ID and returns the ID.
// A document without an ID is assigned a generated one. The embedding
// length must equal the collection dimension.
func (s *Store[T]) Upsert(ctx context.Context, collection string, doc Document[T]) (string, error) {
	start := time.Now()
	id, err := s.upsert(ctx, collection, doc)
	s.opts.metrics.RecordUpsert(time.Since(start), err)
	s.opts.logger.LogUpsert(ctx, collection, id, err)
	return id, err
}

func (s *Store[T]) upsert(ctx context.Context, collection string, doc Document[T]) (string, error) {
	if err := s.ready(); err != nil {
		return doc.ID, err
	}
	if err := ctx.Err(); err != nil {
		return doc.ID, err
	}

	col, err := s.collection(collection)
	if err != nil {
		return doc.ID, err
	}
	if len(doc.Embedding) != col.dimension {
		return doc.ID, &ErrDimensionMismatch{Expected: col.dimension, Actual: len(doc.Embedding)}
	}

	if doc.ID == "" {
		doc.ID = s.opts.newID()
	}

	now := time.Now().UTC()
	stored := doc.clone(true)
	stored.UpdatedAt = now
	stored.CreatedAt = now
	if prev, ok := col.backend.Get(doc.ID); ok {
		stored.CreatedAt = prev.CreatedAt
	}

	col.backend.Put(&stored)
	col.updatedAt = now
	return doc.ID, nil
}

// Delete removes a document by ID.
// It fails with ErrDocumentNotFound if the ID does not exist.
func (s *Store[T]) Delete(ctx context.Context, collection, id string) error {
	start := time.Now()
	err := s.delete(ctx, collection, id)
	s.opts.metrics.RecordDelete(time.Since(start), err)
	s.opts.logger.LogDelete(ctx, collection, id, err)
	return err
}

func (s *Store[T]) delete(ctx context.Context, collection, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	col, err := s.collection(collection)
	if err != nil {
		return err
	}
	if !col.backend.Delete(id) {
		return fmt.Errorf("%w: %q", ErrDocumentNotFound, id)
	}
	col.updatedAt = time.Now().UTC()
	return nil
}

// Get retrieves a document by ID, including its embedding.
// A missing document is not an error: Get returns (nil, nil).
func (s *Store[T]) Get(ctx context.Context, collection, id string) (*Document[T], error) {
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
	doc, ok := col.backend.Get(id)
	if !ok {
		return nil, nil
	}
	out := doc.clone(true)
	return &out, nil
}

// Clear removes all documents from a collection, keeping the collection.
func (s *Store[T]) Clear(ctx context.Context, collection string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	col, err := s.collection(collection)
	if err != nil {
		return err
	}
	col.backend.Clear()
	col.updatedAt = time.Now().UTC()
	s.opts.logger.InfoContext(ctx, "collection cleared", "collection", collection)
	return nil
}

// ListCollections returns the names of all collections, sorted.
func (s *Store[T]) ListCollections(ctx context.Context) ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Stats returns a snapshot of collection state.
// It fails if the collection is unknown.
func (s *Store[T]) Stats(ctx context.Context, collection string) (CollectionStats, error) {
	if err := s.ready(); err != nil {
		return CollectionStats{}, err
	}

	col, err := s.collection(collection)
	if err != nil {
		return CollectionStats{}, err
	}
	return CollectionStats{
		Name:          col.name,
		DocumentCount: col.backend.Len(),
		Dimension:     col.dimension,
		Metric:        col.metric.String(),
		CreatedAt:     col.createdAt,
		UpdatedAt:     col.updatedAt,
	}, nil
}

// HealthCheck reports store state and aggregate document counts.
// Unlike the other operations it never fails: it is the way to observe
// lifecycle state from the outside.
func (s *Store[T]) HealthCheck(ctx context.Context) Health {
	h := Health{}
	switch s.state.Load() {
	case stateInitialized:
		h.Status = "healthy"
	case stateClosed:
		h.Status = "closed"
	default:
		h.Status = "uninitialized"
		return h
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	h.Collections = len(s.collections)
	for _, col := range s.collections {
		h.Documents += col.backend.Len()
	}
	return h
}
