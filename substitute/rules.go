package substitute

import "strings"

// contextRule maps an ingredient-name substring to a role-appropriate
// substitute.
type contextRule struct {
	match      string
	substitute string
	ratio      float64
	note       string
}

// contextRules are keyed by cooking role. Matching is a substring test on
// the lower-cased ingredient name; every hit becomes a suggestion with
// RuleConfidence.
var contextRules = map[Role][]contextRule{
	RoleBinding: {
		{match: "egg", substitute: "flax egg (1 tbsp ground flax + 3 tbsp water)", ratio: 1, note: "Let sit 5 minutes to thicken"},
		{match: "egg", substitute: "mashed banana", ratio: 0.5, note: "Adds sweetness; best in baked goods"},
		{match: "breadcrumb", substitute: "rolled oats", ratio: 1, note: "Pulse briefly for finer texture"},
	},
	RoleFat: {
		{match: "butter", substitute: "coconut oil", ratio: 1, note: "Solid at room temperature like butter"},
		{match: "butter", substitute: "olive oil", ratio: 0.75, note: "Use for savory dishes"},
		{match: "oil", substitute: "unsweetened applesauce", ratio: 0.5, note: "Baking only; reduces fat"},
	},
	RoleSweetener: {
		{match: "sugar", substitute: "honey", ratio: 0.75, note: "Reduce other liquids slightly"},
		{match: "sugar", substitute: "maple syrup", ratio: 0.75, note: "Adds maple flavor"},
		{match: "honey", substitute: "maple syrup", ratio: 1, note: "Closest texture match"},
	},
	RoleProtein: {
		{match: "chicken", substitute: "firm tofu", ratio: 1, note: "Press and marinate before cooking"},
		{match: "chicken", substitute: "chickpeas", ratio: 1, note: "Works in curries and salads"},
		{match: "beef", substitute: "lentils", ratio: 1, note: "Best in sauces and stews"},
		{match: "ground beef", substitute: "crumbled tempeh", ratio: 1, note: "Browns like ground meat"},
	},
	RoleLeavening: {
		{match: "baking powder", substitute: "baking soda + cream of tartar (1:2)", ratio: 1, note: "Mix fresh per batch"},
		{match: "yeast", substitute: "baking powder", ratio: 1, note: "No rise time; denser result"},
	},
}

// rulesForRole returns the suggestions generated by the role table for the
// given ingredient name.
func rulesForRole(role Role, ingredient string, confidence float64) []Suggestion {
	lowered := strings.ToLower(ingredient)

	var suggestions []Suggestion
	for _, rule := range contextRules[role] {
		if !strings.Contains(lowered, rule.match) {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Substitute: rule.substitute,
			Confidence: confidence,
			Ratio:      rule.ratio,
			Reason:     "Matches the " + string(role) + " role in this dish",
			Notes:      []string{rule.note},
			Tags:       []string{"context-rule"},
		})
	}
	return suggestions
}
