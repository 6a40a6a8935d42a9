// Package platewise provides an embedded vector-similarity store for
// meal-planning applications.
//
// The store keeps named collections of documents, each holding an embedding
// of a fixed per-collection dimension plus typed metadata. Search is exact
// cosine-similarity over the collection with an optional metadata filter.
//
// # Quick Start
//
//	ctx := context.Background()
//	store := platewise.New[string]()
//	if err := store.Initialize(ctx); err != nil {
//	    panic(err)
//	}
//	defer store.Close()
//
//	store.CreateCollection(ctx, "ingredients", 384)
//
//	store.Upsert(ctx, "ingredients", platewise.Document[string]{
//	    ID:        "quinoa",
//	    Embedding: vec,
//	    Metadata: metadata.Document{
//	        "name":     metadata.String("Quinoa"),
//	        "category": metadata.String("carb"),
//	    },
//	})
//
//	results, err := store.Query("ingredients", queryVec).
//	    TopK(10).
//	    Threshold(0.7).
//	    Execute(ctx)
//
// Collections are in-memory only; the Backend interface allows an
// alternative storage implementation to be plugged in without touching
// search or filter logic.
//
// Higher-level pipelines live in the subpackages: substitute (ingredient
// substitution), rag (multi-collection retrieval and recommendations),
// embedding (embedding provider clients) and config (collection and
// threshold presets).
package platewise
