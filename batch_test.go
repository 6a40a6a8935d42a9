package platewise

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("AllSucceed", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.CreateCollection(ctx, "ingredients", 2)
		require.NoError(t, err)

		result, err := store.BatchUpsert(ctx, "ingredients", []Document[string]{
			{ID: "a", Embedding: []float32{1, 0}},
			{ID: "b", Embedding: []float32{0, 1}},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Succeeded)
		assert.Equal(t, 0, result.Failed)
		assert.Empty(t, result.Errors)
	})

	t.Run("PartialFailure", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.CreateCollection(ctx, "ingredients", 2)
		require.NoError(t, err)

		result, err := store.BatchUpsert(ctx, "ingredients", []Document[string]{
			{ID: "a", Embedding: []float32{1, 0}},
			{ID: "bad", Embedding: []float32{1, 0, 0}},
			{ID: "b", Embedding: []float32{0, 1}},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Succeeded)
		assert.Equal(t, 1, result.Failed)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "bad", result.Errors[0].ID)
		assert.Contains(t, result.Errors[0].Message, "dimension")

		// The failing item must not abort its siblings.
		doc, err := store.Get(ctx, "ingredients", "b")
		require.NoError(t, err)
		assert.NotNil(t, doc)
	})

	t.Run("UnknownCollectionFailsWholeCall", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.BatchUpsert(ctx, "nope", []Document[string]{
			{ID: "a", Embedding: []float32{1, 0}},
		})
		assert.ErrorIs(t, err, ErrCollectionNotFound)
	})

	t.Run("EmptyBatch", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.CreateCollection(ctx, "ingredients", 2)
		require.NoError(t, err)

		result, err := store.BatchUpsert(ctx, "ingredients", nil)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Succeeded)
		assert.Equal(t, 0, result.Failed)
	})
}
