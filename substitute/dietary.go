package substitute

import "strings"

// forbiddenTokens maps a dietary restriction to ingredient-name tokens it
// rules out. A suggestion is removed when its lower-cased substitute name
// contains any forbidden token from any requested restriction.
var forbiddenTokens = map[string][]string{
	"vegan": {
		"meat", "chicken", "beef", "pork", "fish", "shrimp", "bacon",
		"milk", "cheese", "yogurt", "butter", "cream", "dairy",
		"egg", "honey", "gelatin",
	},
	"vegetarian": {
		"meat", "chicken", "beef", "pork", "fish", "shrimp", "bacon", "gelatin",
	},
	"dairy-free": {
		"milk", "cheese", "yogurt", "butter", "cream", "dairy", "whey", "ghee",
	},
	"gluten-free": {
		"wheat", "flour", "bread", "breadcrumb", "pasta", "barley", "rye", "seitan", "couscous",
	},
	"nut-free": {
		"nut", "almond", "peanut", "cashew", "pecan", "pistachio", "hazelnut",
	},
	"egg-free": {
		"egg",
	},
}

// forbiddenFor unions the token sets of all requested restrictions.
// Unknown restrictions contribute nothing.
func forbiddenFor(restrictions []string) []string {
	var tokens []string
	for _, restriction := range restrictions {
		tokens = append(tokens, forbiddenTokens[strings.ToLower(strings.TrimSpace(restriction))]...)
	}
	return tokens
}

// violates reports whether the substitute name contains any forbidden token.
func violates(substitute string, tokens []string) bool {
	lowered := strings.ToLower(substitute)
	for _, token := range tokens {
		if strings.Contains(lowered, token) {
			return true
		}
	}
	return false
}
