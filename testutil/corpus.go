package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/platewise/platewise"
	"github.com/platewise/platewise/embedding"
	"github.com/platewise/platewise/metadata"
	"github.com/platewise/platewise/substitute"
)

// CorpusDimension is the embedding dimension used by seeded test stores.
// Small enough to keep tests fast, large enough that hash collisions in
// the deterministic embedder stay rare.
const CorpusDimension = 64

// SeedStore creates an initialized store holding the built-in ingredient
// database embedded with the deterministic provider. The store is closed
// via t.Cleanup.
func SeedStore(t *testing.T) (*platewise.Store[any], embedding.Provider) {
	t.Helper()
	ctx := context.Background()

	store := platewise.New[any]()
	require.NoError(t, store.Initialize(ctx))
	t.Cleanup(func() { _ = store.Close() })

	embedder := embedding.NewDeterministic(CorpusDimension)

	_, err := store.CreateCollection(ctx, "ingredients", CorpusDimension)
	require.NoError(t, err)

	for _, item := range substitute.DefaultIngredients() {
		text := fmt.Sprintf("%s %s %s", item.Name, item.Category, strings.Join(item.Tags, " "))
		vector, err := embedder.Embed(ctx, text)
		require.NoError(t, err)

		_, err = store.Upsert(ctx, "ingredients", platewise.Document[any]{
			Embedding: vector,
			Metadata: metadata.Document{
				"name":          metadata.String(item.Name),
				"category":      metadata.String(item.Category),
				"description":   metadata.String(item.Name + ", " + item.PortionSize),
				"calories":      metadata.Float(item.Nutrition.Calories),
				"protein":       metadata.Float(item.Nutrition.Protein),
				"tags":          metadata.Strings(item.Tags...),
				"ingredient_id": metadata.String(item.Name),
			},
		})
		require.NoError(t, err)
	}
	return store, embedder
}
