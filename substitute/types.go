package substitute

// Role is the cooking function an ingredient plays in a dish. Context
// rules are keyed by role.
type Role string

const (
	RoleBinding   Role = "binding"
	RoleFat       Role = "fat"
	RoleSweetener Role = "sweetener"
	RoleProtein   Role = "protein"
	RoleLeavening Role = "leavening"
)

// CookingContext narrows substitution candidates to the dish at hand.
type CookingContext struct {
	IngredientRole Role
	DishType       string
	CookingMethod  string
}

// Request describes one substitution lookup.
type Request struct {
	// Ingredient is the name of the ingredient to replace.
	Ingredient string

	// Quantity and Unit describe how much of it the recipe calls for.
	// When Quantity is positive, suggestions carry an adjusted quantity.
	Quantity float64
	Unit     string

	// DietaryRestrictions removes suggestions containing forbidden
	// ingredient tokens (see Restrictions).
	DietaryRestrictions []string

	// AvailableIngredients boosts suggestions the caller already has.
	AvailableIngredients []string

	// Context narrows candidates by cooking role.
	Context *CookingContext

	// MaxSuggestions caps the result list. Defaults to DefaultMaxSuggestions.
	MaxSuggestions int
}

// Suggestion is one ranked substitution candidate.
type Suggestion struct {
	Substitute       string
	Confidence       float64
	Ratio            float64
	Reason           string
	NutritionalMatch string
	AdjustedQuantity float64
	Notes            []string
	Tags             []string
}

// Result is the outcome of a substitution lookup. Found reports whether
// any suggestion survived post-processing; Warnings carry non-fatal
// pipeline events such as dietary removals or a strategy that errored.
type Result struct {
	Original    string
	Suggestions []Suggestion
	Found       bool
	Warnings    []string
}
