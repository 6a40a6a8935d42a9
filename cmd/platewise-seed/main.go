// Command platewise-seed provisions the demo collections, indexes the
// built-in ingredient database with a deterministic offline embedder, and
// runs a sample substitution lookup and retrieval so a fresh checkout can
// be exercised without any external embedding service.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/platewise/platewise"
	"github.com/platewise/platewise/config"
	"github.com/platewise/platewise/embedding"
	"github.com/platewise/platewise/metadata"
	"github.com/platewise/platewise/rag"
	"github.com/platewise/platewise/substitute"
)

var (
	dimension  = flag.Int("dimension", config.DefaultDimension, "Embedding dimension for the seeded collections")
	ingredient = flag.String("ingredient", "chicken breast", "Ingredient to find substitutions for")
	restrict   = flag.String("restrict", "", "Comma-separated dietary restrictions (e.g. vegan,nut-free)")
	query      = flag.String("query", "high protein quick dinner", "Sample retrieval query")
	topK       = flag.Int("topk", config.DefaultTopK, "Result budget for the sample queries")
	verbose    = flag.Bool("v", false, "Log store operations to stderr")
)

func main() {
	flag.Parse()

	if err := run(context.Background()); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var storeOpts []platewise.Option
	if *verbose {
		storeOpts = append(storeOpts, platewise.WithLogLevel(slog.LevelDebug))
	}

	store := platewise.New[any](storeOpts...)
	if err := store.Initialize(ctx); err != nil {
		return err
	}
	defer store.Close()

	embedder := embedding.NewDeterministic(*dimension)

	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	fmt.Println(bold("platewise demo corpus"))

	for _, preset := range config.Collections {
		if _, err := store.CreateCollection(ctx, preset.Name, *dimension); err != nil {
			return err
		}
	}

	indexed, err := seedIngredients(ctx, store, embedder)
	if err != nil {
		return err
	}
	fmt.Printf("indexed %s ingredients into %s\n", cyan(indexed), cyan("ingredients"))

	if err := sampleSubstitution(ctx, store, embedder); err != nil {
		return err
	}
	return sampleRetrieval(ctx, store, embedder)
}

func seedIngredients(ctx context.Context, store *platewise.Store[any], embedder embedding.Provider) (int, error) {
	ingredients := substitute.DefaultIngredients()

	docs := make([]platewise.Document[any], 0, len(ingredients))
	for _, item := range ingredients {
		text := fmt.Sprintf("%s %s %s", item.Name, item.Category, strings.Join(item.Tags, " "))
		vector, err := embedder.Embed(ctx, text)
		if err != nil {
			return 0, fmt.Errorf("embed %s: %w", item.Name, err)
		}
		docs = append(docs, platewise.Document[any]{
			Embedding: vector,
			Metadata: metadata.Document{
				"name":          metadata.String(item.Name),
				"category":      metadata.String(item.Category),
				"description":   metadata.String(item.Name + ", " + item.PortionSize),
				"calories":      metadata.Float(item.Nutrition.Calories),
				"protein":       metadata.Float(item.Nutrition.Protein),
				"tags":          metadata.Strings(item.Tags...),
				"ingredient_id": metadata.String(slug(item.Name)),
			},
		})
	}

	result, err := store.BatchUpsert(ctx, "ingredients", docs)
	if err != nil {
		return 0, err
	}
	if result.Failed > 0 {
		for _, item := range result.Errors {
			color.Yellow("skipped %s: %s", item.ID, item.Message)
		}
	}
	return result.Succeeded, nil
}

func sampleSubstitution(ctx context.Context, store *platewise.Store[any], embedder embedding.Provider) error {
	engine := substitute.NewEngine(store, embedder)

	req := substitute.Request{
		Ingredient:     *ingredient,
		MaxSuggestions: *topK,
		Context:        &substitute.CookingContext{IngredientRole: substitute.RoleProtein},
	}
	if *restrict != "" {
		req.DietaryRestrictions = strings.Split(*restrict, ",")
	}

	result, err := engine.GetSubstitutions(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s %q\n", color.New(color.Bold).Sprint("substitutions for"), result.Original)
	if !result.Found {
		color.Yellow("  no substitutions found")
	}
	for _, suggestion := range result.Suggestions {
		fmt.Printf("  %-45s confidence %.2f  [%s]\n",
			suggestion.Substitute, suggestion.Confidence, strings.Join(suggestion.Tags, ","))
	}
	for _, warning := range result.Warnings {
		color.Yellow("  warning: %s", warning)
	}
	return nil
}

func sampleRetrieval(ctx context.Context, store *platewise.Store[any], embedder embedding.Provider) error {
	pipeline := rag.NewPipeline(store, embedder)

	result, err := pipeline.Retrieve(ctx, *query, []string{"ingredients"}, *topK)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s %q (confidence %.2f)\n",
		color.New(color.Bold).Sprint("retrieval for"), *query, result.Confidence)
	for _, source := range result.Sources {
		fmt.Printf("  %-45s score %.3f  (%s)\n", source.Name, source.Score, source.Type)
	}
	return nil
}

func slug(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ', r == '/', r == '-':
			return '-'
		default:
			return -1
		}
	}, name)
	return strings.Trim(mapped, "-")
}
