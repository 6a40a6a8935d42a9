package platewise

import (
	"iter"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// Backend is the per-collection document storage contract.
//
// The default implementation is the in-memory MapBackend; a persistent or
// indexed backend can be substituted without touching search, filter or
// pipeline logic. All returns documents in insertion order, which search
// relies on for stable tie-breaking.
//
// Implementations must be safe for concurrent readers. Writers are
// serialized by the backend itself, but the store offers no snapshot
// isolation: a search running concurrently with writes may observe a
// partially-updated collection, and logical read-modify-write sequences
// must be serialized by the caller.
type Backend[T any] interface {
	// Get retrieves the document with the given ID.
	Get(id string) (*Document[T], bool)

	// Put inserts or overwrites the document by ID.
	Put(doc *Document[T])

	// Delete removes the document with the given ID, reporting whether
	// it existed.
	Delete(id string) bool

	// Len returns the number of stored documents.
	Len() int

	// Clear removes all documents.
	Clear()

	// All iterates over all documents in insertion order.
	All() iter.Seq[*Document[T]]
}

// MapBackend is an in-memory implementation of Backend using Go maps plus a
// roaring bitmap of live slots. Each document is assigned a monotonically
// increasing slot on first insert; overwrites keep the original slot, so
// iteration order reflects first insertion.
type MapBackend[T any] struct {
	mu       sync.RWMutex
	slots    *roaring.Bitmap
	nextSlot uint32
	byID     map[string]uint32
	docs     map[uint32]*Document[T]
}

// NewMapBackend creates a new in-memory map-based backend.
func NewMapBackend[T any]() *MapBackend[T] {
	return &MapBackend[T]{
		slots: roaring.New(),
		byID:  make(map[string]uint32),
		docs:  make(map[uint32]*Document[T]),
	}
}

// Get retrieves the document with the given ID.
func (m *MapBackend[T]) Get(id string) (*Document[T], bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	slot, ok := m.byID[id]
	if !ok {
		return nil, false
	}
	return m.docs[slot], true
}

// Put inserts or overwrites the document by ID.
func (m *MapBackend[T]) Put(doc *Document[T]) {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot, ok := m.byID[doc.ID]
	if !ok {
		slot = m.nextSlot
		m.nextSlot++
		m.byID[doc.ID] = slot
		m.slots.Add(slot)
	}
	m.docs[slot] = doc
}

// Delete removes the document with the given ID.
func (m *MapBackend[T]) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot, ok := m.byID[id]
	if !ok {
		return false
	}
	delete(m.byID, id)
	delete(m.docs, slot)
	m.slots.Remove(slot)
	return true
}

// Len returns the number of stored documents.
func (m *MapBackend[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int(m.slots.GetCardinality())
}

// Clear removes all documents. Slot numbering is not reset, so documents
// inserted after a Clear still iterate after any surviving readers' view.
func (m *MapBackend[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots.Clear()
	m.byID = make(map[string]uint32)
	m.docs = make(map[uint32]*Document[T])
}

// All iterates over all documents in insertion order.
// The iteration works on a snapshot of the live slots taken at call time.
func (m *MapBackend[T]) All() iter.Seq[*Document[T]] {
	m.mu.RLock()
	snapshot := make([]*Document[T], 0, m.slots.GetCardinality())
	it := m.slots.Iterator()
	for it.HasNext() {
		if doc, ok := m.docs[it.Next()]; ok {
			snapshot = append(snapshot, doc)
		}
	}
	m.mu.RUnlock()

	return func(yield func(*Document[T]) bool) {
		for _, doc := range snapshot {
			if !yield(doc) {
				return
			}
		}
	}
}
