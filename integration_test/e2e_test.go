package integration_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/platewise"
	"github.com/platewise/platewise/config"
	"github.com/platewise/platewise/rag"
	"github.com/platewise/platewise/substitute"
	"github.com/platewise/platewise/testutil"
)

func TestSearchOverSeededCorpus(t *testing.T) {
	ctx := context.Background()
	store, embedder := testutil.SeedStore(t)

	vector, err := embedder.Embed(ctx, "lean protein quick-cooking")
	require.NoError(t, err)

	results, err := store.Search(ctx, "ingredients", platewise.SearchQuery{
		Vector: vector,
		TopK:   5,
	})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), 5)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}

	// Shared tokens should surface a protein over produce.
	assert.Equal(t, "protein", results[0].Document.Metadata["category"].Text())
}

func TestSubstitutionEndToEnd(t *testing.T) {
	ctx := context.Background()
	store, embedder := testutil.SeedStore(t)
	engine := substitute.NewEngine(store, embedder,
		func(o *substitute.Options) { o.Collection = "ingredients" })

	result, err := engine.GetSubstitutions(ctx, substitute.Request{
		Ingredient:          "chicken breast",
		Quantity:            6,
		Unit:                "oz",
		DietaryRestrictions: []string{"vegan"},
		Context:             &substitute.CookingContext{IngredientRole: substitute.RoleProtein},
	})
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.LessOrEqual(t, len(result.Suggestions), substitute.DefaultMaxSuggestions)

	names := make([]string, len(result.Suggestions))
	for i, suggestion := range result.Suggestions {
		names[i] = suggestion.Substitute
		assert.LessOrEqual(t, suggestion.Confidence, 1.0)
		if i > 0 {
			assert.GreaterOrEqual(t, result.Suggestions[i-1].Confidence, suggestion.Confidence)
		}
	}
	// Context rules fire for the protein role and survive the vegan filter.
	assert.Contains(t, names, "firm tofu")
	assert.Contains(t, names, "chickpeas")
}

func TestRetrievalEndToEnd(t *testing.T) {
	ctx := context.Background()
	store, embedder := testutil.SeedStore(t)
	pipeline := rag.NewPipeline(store, embedder)

	result, err := pipeline.Retrieve(ctx, "grain complete-protein", []string{"ingredients"}, 3)
	require.NoError(t, err)
	require.NotEmpty(t, result.Results)

	assert.NotEmpty(t, result.Context)
	assert.Greater(t, result.Confidence, 0.0)
	assert.LessOrEqual(t, result.Confidence, 0.95)
	require.Len(t, result.Sources, len(result.Results))
	for _, source := range result.Sources {
		assert.Equal(t, rag.SourceIngredient, source.Type)
	}
}

func TestSearchPropertiesOnRandomCorpus(t *testing.T) {
	ctx := context.Background()

	store := platewise.New[any]()
	require.NoError(t, store.Initialize(ctx))
	t.Cleanup(func() { _ = store.Close() })

	const dim = 32
	_, err := store.CreateCollection(ctx, "random", dim)
	require.NoError(t, err)

	embeddings := testutil.RandomEmbeddings(200, dim, 4711)
	for i, vec := range embeddings {
		_, err := store.Upsert(ctx, "random", platewise.Document[any]{
			ID:        fmt.Sprintf("doc-%d", i),
			Embedding: vec,
		})
		require.NoError(t, err)
	}

	queries := testutil.RandomEmbeddings(10, dim, 1337)
	threshold := config.ThresholdMedium
	for _, query := range queries {
		results, err := store.Search(ctx, "random", platewise.SearchQuery{
			Vector:    query,
			TopK:      20,
			Threshold: &threshold,
		})
		require.NoError(t, err)
		assert.LessOrEqual(t, len(results), 20)
		for i, result := range results {
			assert.GreaterOrEqual(t, result.Score, threshold)
			if i > 0 {
				assert.GreaterOrEqual(t, results[i-1].Score, result.Score)
			}
		}
	}
}
