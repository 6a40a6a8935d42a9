package substitute

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/platewise"
	"github.com/platewise/platewise/embedding"
	"github.com/platewise/platewise/metadata"
)

// fixedEmbedder always returns the same vector, so tests control semantic
// scores through the seeded document embeddings alone.
type fixedEmbedder struct {
	vec []float32
}

func (e *fixedEmbedder) Embed(ctx context.Context, text string, optFns ...func(o *embedding.Options)) ([]float32, error) {
	return e.vec, nil
}

func (e *fixedEmbedder) BatchEmbed(ctx context.Context, texts []string, optFns ...func(o *embedding.Options)) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = e.vec
	}
	return out, nil
}

func (e *fixedEmbedder) Dimension() int { return len(e.vec) }

type fakeGraph struct {
	substitutions []GraphSubstitution
	err           error
}

func (g *fakeGraph) GetSubstitutions(ctx context.Context, ingredient string) ([]GraphSubstitution, error) {
	return g.substitutions, g.err
}

func (g *fakeGraph) GetPairings(ctx context.Context, ingredient string) ([]string, error) {
	return nil, nil
}

func (g *fakeGraph) FindPath(ctx context.Context, from, to string) ([]string, error) {
	return nil, nil
}

func (g *fakeGraph) CreateNode(ctx context.Context, node GraphNode) error { return nil }
func (g *fakeGraph) CreateEdge(ctx context.Context, edge GraphEdge) error { return nil }
func (g *fakeGraph) GetStats(ctx context.Context) (GraphStats, error)     { return GraphStats{}, nil }

func seedIngredientStore(t *testing.T, docs ...platewise.Document[any]) *platewise.Store[any] {
	t.Helper()
	ctx := context.Background()

	store := platewise.New[any]()
	require.NoError(t, store.Initialize(ctx))
	t.Cleanup(func() { _ = store.Close() })

	_, err := store.CreateCollection(ctx, "ingredients", 4)
	require.NoError(t, err)
	for _, doc := range docs {
		_, err := store.Upsert(ctx, "ingredients", doc)
		require.NoError(t, err)
	}
	return store
}

func namedDoc(id, name string, embedding []float32, tags ...string) platewise.Document[any] {
	return platewise.Document[any]{
		ID:        id,
		Embedding: embedding,
		Metadata: metadata.Document{
			"name": metadata.String(name),
			"tags": metadata.Strings(tags...),
		},
	}
}

func TestGetSubstitutions(t *testing.T) {
	ctx := context.Background()

	t.Run("BindingRoleSuggestsFlaxEgg", func(t *testing.T) {
		store := seedIngredientStore(t)
		engine := NewEngine(store, &fixedEmbedder{vec: []float32{1, 0, 0, 0}})

		result, err := engine.GetSubstitutions(ctx, Request{
			Ingredient: "egg",
			Context:    &CookingContext{IngredientRole: RoleBinding},
		})
		require.NoError(t, err)
		assert.True(t, result.Found)

		var flax *Suggestion
		for i := range result.Suggestions {
			if result.Suggestions[i].Substitute == "flax egg (1 tbsp ground flax + 3 tbsp water)" {
				flax = &result.Suggestions[i]
			}
		}
		require.NotNil(t, flax)
		assert.InDelta(t, 0.9, flax.Confidence, 1e-9)
		assert.InDelta(t, 1.0, flax.Ratio, 1e-9)
		assert.Contains(t, flax.Tags, "context-rule")
	})

	t.Run("SemanticScoresScaled", func(t *testing.T) {
		store := seedIngredientStore(t,
			namedDoc("skyr", "Icelandic skyr", []float32{1, 0, 0, 0}, "dairy"),
		)
		engine := NewEngine(store, &fixedEmbedder{vec: []float32{1, 0, 0, 0}})

		result, err := engine.GetSubstitutions(ctx, Request{Ingredient: "Greek yogurt"})
		require.NoError(t, err)
		require.Len(t, result.Suggestions, 1)
		assert.Equal(t, "Icelandic skyr", result.Suggestions[0].Substitute)
		assert.InDelta(t, 0.8, result.Suggestions[0].Confidence, 1e-9)
		assert.Contains(t, result.Suggestions[0].Tags, "semantic")
	})

	t.Run("SemanticExcludesOriginal", func(t *testing.T) {
		store := seedIngredientStore(t,
			namedDoc("gy", "Greek yogurt (plain)", []float32{1, 0, 0, 0}),
			namedDoc("skyr", "Icelandic skyr", []float32{1, 0, 0, 0}),
		)
		engine := NewEngine(store, &fixedEmbedder{vec: []float32{1, 0, 0, 0}})

		result, err := engine.GetSubstitutions(ctx, Request{Ingredient: "Greek yogurt"})
		require.NoError(t, err)
		require.Len(t, result.Suggestions, 1)
		assert.Equal(t, "Icelandic skyr", result.Suggestions[0].Substitute)
	})

	t.Run("VeganRestrictionRemovesDairy", func(t *testing.T) {
		store := seedIngredientStore(t,
			namedDoc("gy", "Greek yogurt", []float32{1, 0, 0, 0}, "dairy"),
			namedDoc("tofu", "Silken tofu", []float32{1, 0, 0, 0}, "plant"),
		)
		engine := NewEngine(store, &fixedEmbedder{vec: []float32{1, 0, 0, 0}})

		result, err := engine.GetSubstitutions(ctx, Request{
			Ingredient:          "sour cream",
			DietaryRestrictions: []string{"vegan"},
		})
		require.NoError(t, err)
		require.Len(t, result.Suggestions, 1)
		assert.Equal(t, "Silken tofu", result.Suggestions[0].Substitute)
		assert.NotEmpty(t, result.Warnings)
		assert.Contains(t, result.Suggestions[0].Notes, "Plant-based alternative")
	})

	t.Run("AvailabilityBoostsAndTags", func(t *testing.T) {
		store := seedIngredientStore(t,
			namedDoc("tofu", "Firm tofu", []float32{1, 0, 0, 0}),
			namedDoc("tempeh", "Tempeh", []float32{0.8, 0.6, 0, 0}),
		)
		engine := NewEngine(store, &fixedEmbedder{vec: []float32{1, 0, 0, 0}})

		result, err := engine.GetSubstitutions(ctx, Request{
			Ingredient:           "chicken",
			AvailableIngredients: []string{"tempeh"},
		})
		require.NoError(t, err)
		require.Len(t, result.Suggestions, 2)

		// Tempeh scores 0.8 semantically (0.64 scaled) then gets the 1.2
		// availability boost; tofu stays at 0.8.
		assert.Equal(t, "Firm tofu", result.Suggestions[0].Substitute)
		tempeh := result.Suggestions[1]
		assert.Equal(t, "Tempeh", tempeh.Substitute)
		assert.InDelta(t, 0.8*0.8*1.2, tempeh.Confidence, 1e-6)
		assert.Contains(t, tempeh.Tags, "available")
	})

	t.Run("BoostedConfidenceClampedAtMerge", func(t *testing.T) {
		store := seedIngredientStore(t)
		engine := NewEngine(store, &fixedEmbedder{vec: []float32{1, 0, 0, 0}})

		result, err := engine.GetSubstitutions(ctx, Request{
			Ingredient:           "egg",
			Context:              &CookingContext{IngredientRole: RoleBinding},
			AvailableIngredients: []string{"flax egg (1 tbsp ground flax + 3 tbsp water)"},
		})
		require.NoError(t, err)
		require.True(t, result.Found)
		for _, suggestion := range result.Suggestions {
			assert.LessOrEqual(t, suggestion.Confidence, 1.0)
		}
	})

	t.Run("AdjustedQuantity", func(t *testing.T) {
		store := seedIngredientStore(t)
		engine := NewEngine(store, &fixedEmbedder{vec: []float32{1, 0, 0, 0}})

		result, err := engine.GetSubstitutions(ctx, Request{
			Ingredient: "butter",
			Quantity:   2,
			Unit:       "cup",
			Context:    &CookingContext{IngredientRole: RoleFat},
		})
		require.NoError(t, err)
		require.True(t, result.Found)

		for _, suggestion := range result.Suggestions {
			if suggestion.Substitute == "olive oil" {
				assert.InDelta(t, 1.5, suggestion.AdjustedQuantity, 1e-9)
			}
		}
	})

	t.Run("GraphCandidatesMergedIn", func(t *testing.T) {
		store := seedIngredientStore(t)
		graph := &fakeGraph{substitutions: []GraphSubstitution{
			{Substitute: "cashew cream", Confidence: 0.7, Ratio: 1, Notes: "Blend soaked cashews"},
		}}
		engine := NewEngine(store, &fixedEmbedder{vec: []float32{1, 0, 0, 0}},
			func(o *Options) { o.Graph = graph })

		result, err := engine.GetSubstitutions(ctx, Request{Ingredient: "heavy cream"})
		require.NoError(t, err)
		require.Len(t, result.Suggestions, 1)
		assert.Equal(t, "cashew cream", result.Suggestions[0].Substitute)
		assert.InDelta(t, 0.7, result.Suggestions[0].Confidence, 1e-9)
		assert.Contains(t, result.Suggestions[0].Tags, "graph-based")
	})

	t.Run("GraphFailureIsWarningNotError", func(t *testing.T) {
		store := seedIngredientStore(t)
		graph := &fakeGraph{err: errors.New("graph offline")}
		engine := NewEngine(store, &fixedEmbedder{vec: []float32{1, 0, 0, 0}},
			func(o *Options) { o.Graph = graph })

		result, err := engine.GetSubstitutions(ctx, Request{
			Ingredient: "egg",
			Context:    &CookingContext{IngredientRole: RoleBinding},
		})
		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.NotEmpty(t, result.Warnings)
	})

	t.Run("EmptyIngredientRejected", func(t *testing.T) {
		store := seedIngredientStore(t)
		engine := NewEngine(store, &fixedEmbedder{vec: []float32{1, 0, 0, 0}})

		_, err := engine.GetSubstitutions(ctx, Request{Ingredient: "  "})
		assert.ErrorIs(t, err, ErrEmptyIngredient)
	})

	t.Run("NotFoundWhenNothingMatches", func(t *testing.T) {
		store := seedIngredientStore(t)
		engine := NewEngine(store, &fixedEmbedder{vec: []float32{1, 0, 0, 0}})

		result, err := engine.GetSubstitutions(ctx, Request{Ingredient: "saffron"})
		require.NoError(t, err)
		assert.False(t, result.Found)
		assert.Empty(t, result.Suggestions)
	})
}

func TestDedupe(t *testing.T) {
	t.Run("KeepsHighestConfidence", func(t *testing.T) {
		merged := dedupe([]Suggestion{
			{Substitute: "Tofu", Confidence: 0.6, Tags: []string{"semantic"}},
			{Substitute: "tofu", Confidence: 0.9, Tags: []string{"graph-based"}},
		})
		require.Len(t, merged, 1)
		assert.InDelta(t, 0.9, merged[0].Confidence, 1e-9)
		assert.Contains(t, merged[0].Tags, "graph-based")
	})

	t.Run("TiesKeepFirstSeen", func(t *testing.T) {
		merged := dedupe([]Suggestion{
			{Substitute: "tofu", Confidence: 0.7, Reason: "first"},
			{Substitute: "tofu", Confidence: 0.7, Reason: "second"},
		})
		require.Len(t, merged, 1)
		assert.Equal(t, "first", merged[0].Reason)
	})

	t.Run("ClampsAboveOne", func(t *testing.T) {
		merged := dedupe([]Suggestion{{Substitute: "tofu", Confidence: 1.08}})
		require.Len(t, merged, 1)
		assert.InDelta(t, 1.0, merged[0].Confidence, 1e-9)
	})
}

func TestQuickSubstitution(t *testing.T) {
	t.Run("KnownIngredient", func(t *testing.T) {
		suggestion := QuickSubstitution("Buttermilk")
		require.NotNil(t, suggestion)
		assert.Equal(t, "milk + 1 tbsp lemon juice", suggestion.Substitute)
	})

	t.Run("UnknownIngredient", func(t *testing.T) {
		assert.Nil(t, QuickSubstitution("saffron"))
	})

	t.Run("ExactMatchOnly", func(t *testing.T) {
		assert.Nil(t, QuickSubstitution("buttermilk powder"))
	})
}

func TestSuggestForMacros(t *testing.T) {
	ingredients := DefaultIngredients()

	t.Run("ClosestMacrosFirst", func(t *testing.T) {
		suggestions := SuggestForMacros(ingredients, MacroTarget{Calories: 280, Protein: 52}, 3)
		require.NotEmpty(t, suggestions)
		assert.Equal(t, "Chicken Breast (6oz)", suggestions[0].Ingredient.Name)
		assert.InDelta(t, 0, suggestions[0].Score, 1e-9)
	})

	t.Run("CategoryFilter", func(t *testing.T) {
		suggestions := SuggestForMacros(ingredients, MacroTarget{Calories: 220, Protein: 5, Category: "carb"}, 10)
		require.NotEmpty(t, suggestions)
		for _, suggestion := range suggestions {
			assert.Equal(t, "carb", suggestion.Ingredient.Category)
		}
	})

	t.Run("NotesDescribeDifference", func(t *testing.T) {
		suggestions := SuggestForMacros(ingredients, MacroTarget{Calories: 280, Protein: 52}, 1)
		require.Len(t, suggestions, 1)
		assert.Contains(t, suggestions[0].Notes, "Nearly identical calories")
		assert.Contains(t, suggestions[0].Notes, "Similar protein content")
	})
}
