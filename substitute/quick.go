package substitute

import "strings"

// quickTable covers the handful of substitutions cooks ask for constantly.
// Lookup is a case-insensitive exact match, independent of the full engine
// pipeline.
var quickTable = map[string]Suggestion{
	"buttermilk": {
		Substitute: "milk + 1 tbsp lemon juice",
		Confidence: 0.9,
		Ratio:      1,
		Reason:     "Acidified milk curdles like buttermilk",
		Notes:      []string{"Let sit 5 minutes before using"},
	},
	"sour cream": {
		Substitute: "Greek yogurt",
		Confidence: 0.9,
		Ratio:      1,
		Reason:     "Same tang and texture",
	},
	"heavy cream": {
		Substitute: "evaporated milk",
		Confidence: 0.8,
		Ratio:      1,
		Reason:     "Works in sauces and soups",
		Notes:      []string{"Will not whip"},
	},
	"fresh herbs": {
		Substitute: "dried herbs",
		Confidence: 0.85,
		Ratio:      0.33,
		Reason:     "Dried herbs are more concentrated",
	},
	"tomato sauce": {
		Substitute: "tomato paste + water (1:1)",
		Confidence: 0.85,
		Ratio:      1,
		Reason:     "Dilute paste to sauce consistency",
	},
	"brown sugar": {
		Substitute: "white sugar + molasses (1 cup : 1 tbsp)",
		Confidence: 0.9,
		Ratio:      1,
		Reason:     "Brown sugar is white sugar with molasses",
	},
	"cornstarch": {
		Substitute: "all-purpose flour",
		Confidence: 0.8,
		Ratio:      2,
		Reason:     "Flour thickens at double the quantity",
	},
}

// QuickSubstitution returns the single static substitution for a common
// ingredient, or nil when none is known. It is an O(1) fallback that
// bypasses the engine pipeline entirely.
func QuickSubstitution(ingredient string) *Suggestion {
	suggestion, ok := quickTable[strings.ToLower(strings.TrimSpace(ingredient))]
	if !ok {
		return nil
	}
	return &suggestion
}
