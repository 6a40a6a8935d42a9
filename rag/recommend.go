package rag

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/platewise/platewise"
)

// Recommendation is one scored meal or ingredient suggestion.
type Recommendation struct {
	ID     string
	Name   string
	Score  float64
	Reason string
}

// RecommendMeals searches the meals collection with twice the requested
// budget, boosts candidates by the number of available ingredients their
// description mentions, and returns the topK re-scored results. Scores
// are clamped to 1.
func (p *Pipeline[T]) RecommendMeals(ctx context.Context, query string, available []string, topK int) ([]Recommendation, error) {
	if topK <= 0 {
		topK = p.opts.TopK
	}

	hits, err := p.searchCandidates(ctx, "meals", query, 2*topK)
	if err != nil {
		return nil, err
	}

	recommendations := make([]Recommendation, 0, len(hits))
	for _, hit := range hits {
		name, text := nameAndText(hit)
		matched := matchAvailable(text, available)

		score := hit.Score + float64(len(matched))*p.opts.AvailabilityBonus
		if score > 1 {
			score = 1
		}

		reason := "Similar to what you asked for"
		if len(matched) > 0 {
			reason = fmt.Sprintf("Uses %d ingredient(s) you have: %s", len(matched), strings.Join(matched, ", "))
		}

		recommendations = append(recommendations, Recommendation{
			ID:     hit.ID,
			Name:   name,
			Score:  score,
			Reason: reason,
		})
	}

	return rank(recommendations, topK), nil
}

// RecommendIngredients works like RecommendMeals against the ingredients
// collection, but drops candidates the caller already has.
func (p *Pipeline[T]) RecommendIngredients(ctx context.Context, query string, available []string, topK int) ([]Recommendation, error) {
	if topK <= 0 {
		topK = p.opts.TopK
	}

	hits, err := p.searchCandidates(ctx, "ingredients", query, 2*topK)
	if err != nil {
		return nil, err
	}

	recommendations := make([]Recommendation, 0, len(hits))
	for _, hit := range hits {
		name, text := nameAndText(hit)
		if len(matchAvailable(strings.ToLower(name), available)) > 0 {
			continue
		}

		matched := matchAvailable(text, available)
		score := hit.Score + float64(len(matched))*p.opts.AvailabilityBonus
		if score > 1 {
			score = 1
		}

		reason := "Complements your current ingredients"
		if len(matched) > 0 {
			reason = fmt.Sprintf("Pairs with %s", strings.Join(matched, ", "))
		}

		recommendations = append(recommendations, Recommendation{
			ID:     hit.ID,
			Name:   name,
			Score:  score,
			Reason: reason,
		})
	}

	return rank(recommendations, topK), nil
}

func (p *Pipeline[T]) searchCandidates(ctx context.Context, collection, query string, limit int) ([]platewise.SearchResult[T], error) {
	vector, err := p.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("rag: embed query: %w", err)
	}

	threshold := p.opts.Threshold
	return p.store.Search(ctx, collection, platewise.SearchQuery{
		Vector:    vector,
		TopK:      limit,
		Threshold: &threshold,
	})
}

// nameAndText extracts the display name and the lower-cased searchable
// text (name plus description) of a hit.
func nameAndText[T any](hit platewise.SearchResult[T]) (string, string) {
	name := hit.Document.Metadata["name"].Text()
	if name == "" {
		name = hit.ID
	}
	description := hit.Document.Metadata["description"].Text()
	return name, strings.ToLower(name + " " + description)
}

// matchAvailable returns the available ingredients mentioned in the text.
func matchAvailable(text string, available []string) []string {
	var matched []string
	for _, ingredient := range available {
		needle := strings.ToLower(strings.TrimSpace(ingredient))
		if needle == "" {
			continue
		}
		if strings.Contains(text, needle) {
			matched = append(matched, ingredient)
		}
	}
	return matched
}

func rank(recommendations []Recommendation, topK int) []Recommendation {
	slices.SortStableFunc(recommendations, func(a, b Recommendation) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})
	if len(recommendations) > topK {
		recommendations = recommendations[:topK]
	}
	return recommendations
}
