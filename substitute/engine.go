package substitute

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/platewise/platewise"
	"github.com/platewise/platewise/config"
	"github.com/platewise/platewise/embedding"
)

// ErrEmptyIngredient is returned when a request names no ingredient.
var ErrEmptyIngredient = errors.New("substitute: ingredient name is empty")

const (
	// DefaultMaxSuggestions caps results when a request does not set one.
	DefaultMaxSuggestions = 5

	// DefaultRuleConfidence is assigned to context-rule hits.
	DefaultRuleConfidence = 0.9

	// DefaultSemanticScale scales similarity scores into confidences.
	DefaultSemanticScale = 0.8

	// DefaultAvailabilityBoost multiplies the confidence of suggestions
	// the caller already has on hand.
	DefaultAvailabilityBoost = 1.2
)

// Options configure an Engine. The scale and boost constants are relative
// weightings, not calibrated probabilities; tune them per deployment.
type Options struct {
	// Collection is the ingredient collection searched by the semantic
	// strategy.
	Collection string

	// Graph is the optional knowledge-graph collaborator.
	Graph Graph

	RuleConfidence    float64
	SemanticScale     float64
	AvailabilityBoost float64
}

// Engine merges rule-based, semantic and graph-derived substitution
// candidates into one ranked list.
type Engine[T any] struct {
	store    *platewise.Store[T]
	embedder embedding.Provider
	opts     Options
}

// NewEngine creates a substitution engine over the given store and
// embedding provider.
func NewEngine[T any](store *platewise.Store[T], embedder embedding.Provider, optFns ...func(o *Options)) *Engine[T] {
	opts := Options{
		Collection:        "ingredients",
		RuleConfidence:    DefaultRuleConfidence,
		SemanticScale:     DefaultSemanticScale,
		AvailabilityBoost: DefaultAvailabilityBoost,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Engine[T]{store: store, embedder: embedder, opts: opts}
}

// GetSubstitutions runs all candidate strategies for the requested
// ingredient and post-processes the merged list.
//
// The strategies are additive and independent: a failing strategy is
// reported as a warning and does not abort the others. Post-processing
// order is fixed: dietary filtering, availability boosting, quantity
// adjustment, dedup by substitute name keeping the highest confidence,
// descending sort, truncation.
func (e *Engine[T]) GetSubstitutions(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.Ingredient) == "" {
		return Result{}, ErrEmptyIngredient
	}

	max := req.MaxSuggestions
	if max <= 0 {
		max = DefaultMaxSuggestions
	}

	result := Result{Original: req.Ingredient}

	var candidates []Suggestion
	if req.Context != nil && req.Context.IngredientRole != "" {
		candidates = append(candidates, rulesForRole(req.Context.IngredientRole, req.Ingredient, e.opts.RuleConfidence)...)
	}

	semantic, err := e.semanticCandidates(ctx, req.Ingredient, 2*max)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("semantic search unavailable: %v", err))
	}
	candidates = append(candidates, semantic...)

	if e.opts.Graph != nil {
		graphHits, err := e.opts.Graph.GetSubstitutions(ctx, req.Ingredient)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("graph lookup unavailable: %v", err))
		}
		for _, hit := range graphHits {
			ratio := hit.Ratio
			if ratio == 0 {
				ratio = 1
			}
			suggestion := Suggestion{
				Substitute: hit.Substitute,
				Confidence: hit.Confidence,
				Ratio:      ratio,
				Reason:     "Known substitution from the knowledge graph",
				Tags:       []string{"graph-based"},
			}
			if hit.Impact != "" {
				suggestion.NutritionalMatch = hit.Impact
			}
			if hit.Notes != "" {
				suggestion.Notes = append(suggestion.Notes, hit.Notes)
			}
			candidates = append(candidates, suggestion)
		}
	}

	// (a) dietary filtering
	if tokens := forbiddenFor(req.DietaryRestrictions); len(tokens) > 0 {
		kept := candidates[:0]
		removed := 0
		for _, candidate := range candidates {
			if violates(candidate.Substitute, tokens) {
				removed++
				continue
			}
			kept = append(kept, candidate)
		}
		candidates = kept
		if removed > 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%d suggestion(s) removed by dietary restrictions", removed))
		}
	}

	// (b) availability boost
	if len(req.AvailableIngredients) > 0 {
		for i := range candidates {
			if available(candidates[i].Substitute, req.AvailableIngredients) {
				candidates[i].Confidence *= e.opts.AvailabilityBoost
				candidates[i].Tags = append(candidates[i].Tags, "available")
			}
		}
	}

	// (c) quantity adjustment
	if req.Quantity > 0 {
		for i := range candidates {
			candidates[i].AdjustedQuantity = req.Quantity * candidates[i].Ratio
		}
	}

	// (d) dedup, (e) sort, (f) truncate
	merged := dedupe(candidates)
	slices.SortStableFunc(merged, func(a, b Suggestion) int {
		switch {
		case a.Confidence > b.Confidence:
			return -1
		case a.Confidence < b.Confidence:
			return 1
		default:
			return 0
		}
	})
	if len(merged) > max {
		merged = merged[:max]
	}

	result.Suggestions = merged
	result.Found = len(merged) > 0
	return result, nil
}

func (e *Engine[T]) semanticCandidates(ctx context.Context, ingredient string, limit int) ([]Suggestion, error) {
	vector, err := e.embedder.Embed(ctx, fmt.Sprintf("substitute for %s in cooking", ingredient))
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	results, err := e.store.Search(ctx, e.opts.Collection, platewise.SearchQuery{
		Vector: vector,
		TopK:   limit,
	})
	if err != nil {
		return nil, err
	}

	lowered := strings.ToLower(ingredient)

	var suggestions []Suggestion
	for _, hit := range results {
		name := hit.Document.Metadata["name"].Text()
		if name == "" {
			name = hit.ID
		}
		if strings.Contains(strings.ToLower(name), lowered) {
			continue
		}
		tags, _ := hit.Document.Metadata["tags"].AsStringSlice()
		suggestions = append(suggestions, Suggestion{
			Substitute:       name,
			Confidence:       hit.Score * e.opts.SemanticScale,
			Ratio:            1,
			Reason:           "Semantically similar ingredient",
			NutritionalMatch: matchTier(hit.Score),
			Notes:            tagNotes(tags),
			Tags:             []string{"semantic"},
		})
	}
	return suggestions, nil
}

// dedupe merges candidates by lower-cased substitute name, keeping the
// highest-confidence instance (ties keep the first seen) and clamping
// boosted confidences back into [0,1].
func dedupe(candidates []Suggestion) []Suggestion {
	index := make(map[string]int, len(candidates))
	merged := make([]Suggestion, 0, len(candidates))

	for _, candidate := range candidates {
		if candidate.Confidence > 1 {
			candidate.Confidence = 1
		}
		key := strings.ToLower(candidate.Substitute)
		if at, ok := index[key]; ok {
			if candidate.Confidence > merged[at].Confidence {
				merged[at] = candidate
			}
			continue
		}
		index[key] = len(merged)
		merged = append(merged, candidate)
	}
	return merged
}

func available(substitute string, haveList []string) bool {
	lowered := strings.ToLower(substitute)
	for _, have := range haveList {
		have = strings.ToLower(strings.TrimSpace(have))
		if have == "" {
			continue
		}
		if strings.Contains(lowered, have) || strings.Contains(have, lowered) {
			return true
		}
	}
	return false
}

func matchTier(score float64) string {
	switch {
	case score >= config.ThresholdHigh:
		return "high"
	case score >= config.ThresholdMedium:
		return "medium"
	default:
		return "low"
	}
}

func tagNotes(tags []string) []string {
	var notes []string
	for _, tag := range tags {
		switch tag {
		case "plant":
			notes = append(notes, "Plant-based alternative")
		case "quick-cooking":
			notes = append(notes, "Faster to prepare")
		case "batch-prep":
			notes = append(notes, "Good for batch cooking")
		}
	}
	return notes
}
