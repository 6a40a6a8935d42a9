package config

// Similarity threshold tiers. Scores are cosine similarities of normalized
// embeddings, so the tiers live in [0,1].
const (
	ThresholdExact   = 0.95
	ThresholdHigh    = 0.85
	ThresholdMedium  = 0.70
	ThresholdLow     = 0.50
	ThresholdMinimal = 0.30
)

const (
	// DefaultTopK is the result cap applied when a caller does not set one.
	DefaultTopK = 10

	// DefaultMaxContextLength is the character budget for assembled
	// retrieval context.
	DefaultMaxContextLength = 4000

	// DefaultDimension is the embedding dimension of the standard
	// sentence-transformer models the collections are sized for.
	DefaultDimension = 384
)

// IndexKind names the index layout of a collection. Only flat scan is
// implemented; the other kinds are reserved configuration values.
type IndexKind string

const (
	IndexFlat IndexKind = "flat"
	IndexHNSW IndexKind = "hnsw"
	IndexIVF  IndexKind = "ivf"
)

// CollectionPreset describes one logical collection.
type CollectionPreset struct {
	Name      string
	Dimension int
	Metric    string
	Index     IndexKind
}

// Collections lists the logical collections of the meal-planning domain,
// in the order they are provisioned.
var Collections = []CollectionPreset{
	{Name: "ingredients", Dimension: DefaultDimension, Metric: "cosine", Index: IndexFlat},
	{Name: "meals", Dimension: DefaultDimension, Metric: "cosine", Index: IndexFlat},
	{Name: "meal_patterns", Dimension: DefaultDimension, Metric: "cosine", Index: IndexFlat},
	{Name: "recipe_steps", Dimension: DefaultDimension, Metric: "cosine", Index: IndexFlat},
	{Name: "meal_logs", Dimension: DefaultDimension, Metric: "cosine", Index: IndexFlat},
	{Name: "techniques", Dimension: DefaultDimension, Metric: "cosine", Index: IndexFlat},
}

// Collection returns the preset for a logical collection name.
func Collection(name string) (CollectionPreset, bool) {
	for _, preset := range Collections {
		if preset.Name == name {
			return preset, true
		}
	}
	return CollectionPreset{}, false
}
