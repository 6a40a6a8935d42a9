package rag

// SourceType labels where a retrieval hit came from, inferred from its
// metadata rather than stored explicitly.
type SourceType string

const (
	SourceMealPattern SourceType = "meal_pattern"
	SourceIngredient  SourceType = "ingredient"
	SourceRecipeStep  SourceType = "recipe_step"
	SourceMealLog     SourceType = "meal_log"
	SourceTechnique   SourceType = "technique"
)

// Source is one citation attached to a retrieval result.
type Source struct {
	ID    string
	Type  SourceType
	Name  string
	Score float64
}

// sourceTypeOf infers the source type from metadata field presence, in
// priority order. Documents matching nothing are treated as technique
// notes.
func sourceTypeOf(metaHas func(key string) bool) SourceType {
	switch {
	case metaHas("pattern_id"):
		return SourceMealPattern
	case metaHas("ingredient_id"):
		return SourceIngredient
	case metaHas("step_id"):
		return SourceRecipeStep
	case metaHas("log_id"):
		return SourceMealLog
	default:
		return SourceTechnique
	}
}

func sources[T any](results []Retrieved[T]) []Source {
	out := make([]Source, 0, len(results))
	for _, result := range results {
		meta := result.Document.Metadata
		name := meta["name"].Text()
		if name == "" {
			name = result.ID
		}
		out = append(out, Source{
			ID:   result.ID,
			Type: sourceTypeOf(func(key string) bool { _, ok := meta[key]; return ok }),
			Name: name,
			Score: result.Score,
		})
	}
	return out
}
