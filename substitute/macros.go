package substitute

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Nutrition holds per-portion macro values.
type Nutrition struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
}

// Ingredient is one entry in the static ingredient database used by the
// macro suggester and the seeding tools.
type Ingredient struct {
	Name        string
	Category    string
	PortionSize string
	Nutrition   Nutrition
	Tags        []string
}

// MacroSuggestion is an ingredient ranked by closeness to a macro target.
// Lower Score is better.
type MacroSuggestion struct {
	Ingredient Ingredient
	Score      float64
	Notes      []string
}

// MacroTarget is the desired per-portion calorie and protein content.
type MacroTarget struct {
	Calories float64
	Protein  float64

	// Category optionally restricts candidates to one category.
	Category string
}

// SuggestForMacros ranks ingredients by weighted distance to the target:
// calorie difference counts per 100 kcal, protein difference per 10 g, so
// protein proximity dominates. Results are sorted ascending by score and
// truncated to topK.
func SuggestForMacros(ingredients []Ingredient, target MacroTarget, topK int) []MacroSuggestion {
	if topK <= 0 {
		topK = DefaultMaxSuggestions
	}

	var scored []MacroSuggestion
	for _, ingredient := range ingredients {
		if target.Category != "" && !strings.EqualFold(ingredient.Category, target.Category) {
			continue
		}
		calDiff := ingredient.Nutrition.Calories - target.Calories
		proteinDiff := ingredient.Nutrition.Protein - target.Protein
		scored = append(scored, MacroSuggestion{
			Ingredient: ingredient,
			Score:      math.Abs(calDiff)/100 + math.Abs(proteinDiff)/10,
			Notes:      macroNotes(calDiff, proteinDiff, ingredient.Tags),
		})
	}

	slices.SortStableFunc(scored, func(a, b MacroSuggestion) int {
		switch {
		case a.Score < b.Score:
			return -1
		case a.Score > b.Score:
			return 1
		default:
			return 0
		}
	})
	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}

func macroNotes(calDiff, proteinDiff float64, tags []string) []string {
	var notes []string

	switch {
	case math.Abs(calDiff) < 20:
		notes = append(notes, "Nearly identical calories")
	case calDiff > 0:
		notes = append(notes, fmt.Sprintf("+%.0f calories vs target", calDiff))
	default:
		notes = append(notes, fmt.Sprintf("%.0f calories vs target", calDiff))
	}

	switch {
	case math.Abs(proteinDiff) < 5:
		notes = append(notes, "Similar protein content")
	case proteinDiff > 0:
		notes = append(notes, fmt.Sprintf("+%.0fg protein (good for protein goals)", proteinDiff))
	default:
		notes = append(notes, fmt.Sprintf("%.0fg protein", proteinDiff))
	}

	notes = append(notes, tagNotes(tags)...)
	return notes
}

// DefaultIngredients returns the built-in ingredient database covering the
// standard proteins, carbs, fruits, vegetables and fats of the meal system.
func DefaultIngredients() []Ingredient {
	return []Ingredient{
		// Proteins
		{Name: "Chicken Breast (6oz)", Category: "protein", PortionSize: "6 oz", Nutrition: Nutrition{Calories: 280, Protein: 52, Carbs: 0, Fat: 6}, Tags: []string{"lean", "batch-prep"}},
		{Name: "Cod/Tilapia (6oz)", Category: "protein", PortionSize: "6 oz", Nutrition: Nutrition{Calories: 260, Protein: 48, Carbs: 0, Fat: 4}, Tags: []string{"lean", "fish", "quick-cooking"}},
		{Name: "Egg Whites (4) + Whole Egg (1)", Category: "protein", PortionSize: "5 eggs", Nutrition: Nutrition{Calories: 250, Protein: 30, Carbs: 2, Fat: 10}, Tags: []string{"breakfast", "versatile"}},
		{Name: "Shrimp (6oz)", Category: "protein", PortionSize: "6 oz", Nutrition: Nutrition{Calories: 250, Protein: 48, Carbs: 0, Fat: 2}, Tags: []string{"lean", "seafood", "quick-cooking"}},
		{Name: "Salmon (6oz)", Category: "protein", PortionSize: "6 oz", Nutrition: Nutrition{Calories: 300, Protein: 42, Carbs: 0, Fat: 14}, Tags: []string{"omega-3", "fish"}},
		{Name: "Beef Sirloin (5oz)", Category: "protein", PortionSize: "5 oz", Nutrition: Nutrition{Calories: 290, Protein: 46, Carbs: 0, Fat: 10}, Tags: []string{"iron", "red-meat"}},
		{Name: "Pork Belly (4oz)", Category: "protein", PortionSize: "4 oz", Nutrition: Nutrition{Calories: 320, Protein: 20, Carbs: 0, Fat: 28}, Tags: []string{"high-fat", "special-occasion"}},
		{Name: "Black Beans (1 can)", Category: "protein", PortionSize: "1 can", Nutrition: Nutrition{Calories: 385, Protein: 25, Carbs: 65, Fat: 2, Fiber: 25}, Tags: []string{"plant", "fiber", "mexican"}},
		{Name: "Greek Yogurt + Protein Powder", Category: "protein", PortionSize: "1.5 cups", Nutrition: Nutrition{Calories: 350, Protein: 45, Carbs: 25, Fat: 5}, Tags: []string{"quick", "dairy"}},
		{Name: "Eggs (3)", Category: "protein", PortionSize: "3 eggs", Nutrition: Nutrition{Calories: 210, Protein: 18, Carbs: 2, Fat: 15}, Tags: []string{"breakfast", "versatile"}},
		{Name: "Dal/Lentils (1 cup)", Category: "protein", PortionSize: "1 cup cooked", Nutrition: Nutrition{Calories: 230, Protein: 16, Carbs: 40, Fat: 1, Fiber: 16}, Tags: []string{"plant", "indian", "fiber"}},

		// Carbs
		{Name: "Basmati Rice", Category: "carb", PortionSize: "1 cup cooked", Nutrition: Nutrition{Calories: 210, Protein: 4, Carbs: 45, Fat: 0.5}, Tags: []string{"grain", "aromatic"}},
		{Name: "Sweet Brown Rice", Category: "carb", PortionSize: "1 cup cooked", Nutrition: Nutrition{Calories: 220, Protein: 5, Carbs: 46, Fat: 1.5}, Tags: []string{"grain", "nutty", "sticky"}},
		{Name: "Sushi Rice", Category: "carb", PortionSize: "1 cup cooked", Nutrition: Nutrition{Calories: 240, Protein: 4, Carbs: 53, Fat: 0.5}, Tags: []string{"grain", "sticky", "mild"}},
		{Name: "Arepas (2 small)", Category: "carb", PortionSize: "2 small", Nutrition: Nutrition{Calories: 200, Protein: 4, Carbs: 40, Fat: 2}, Tags: []string{"corn", "latin", "make-fresh"}},
		{Name: "Quinoa", Category: "carb", PortionSize: "1 cup cooked", Nutrition: Nutrition{Calories: 222, Protein: 8, Carbs: 39, Fat: 3.5}, Tags: []string{"grain", "complete-protein"}},

		// Fruits
		{Name: "Orange", Category: "fruit", PortionSize: "1 medium", Nutrition: Nutrition{Calories: 65, Protein: 1, Carbs: 16, Fiber: 3}, Tags: []string{"citrus", "vitamin-c"}},
		{Name: "Banana", Category: "fruit", PortionSize: "1 medium", Nutrition: Nutrition{Calories: 105, Protein: 1, Carbs: 27, Fiber: 3}, Tags: []string{"potassium", "energy"}},
		{Name: "Pineapple (fresh)", Category: "fruit", PortionSize: "1 cup", Nutrition: Nutrition{Calories: 82, Protein: 1, Carbs: 22, Fiber: 2}, Tags: []string{"tropical", "bromelain"}},
		{Name: "Baked Apple", Category: "fruit", PortionSize: "1 medium", Nutrition: Nutrition{Calories: 95, Carbs: 25, Fiber: 4}, Tags: []string{"dessert", "warm"}},
		{Name: "Grapes", Category: "fruit", PortionSize: "1 cup", Nutrition: Nutrition{Calories: 62, Protein: 1, Carbs: 16, Fiber: 1}, Tags: []string{"snack", "platter"}},
		{Name: "Melon Cubes", Category: "fruit", PortionSize: "1 cup", Nutrition: Nutrition{Calories: 54, Protein: 1, Carbs: 13, Fiber: 1}, Tags: []string{"light", "hydrating"}},

		// Vegetables
		{Name: "Leafy Greens", Category: "vegetable", PortionSize: "2 cups", Nutrition: Nutrition{Calories: 20, Protein: 2, Carbs: 3, Fiber: 2}, Tags: []string{"raw", "high-volume"}},
		{Name: "Cucumber Slices", Category: "vegetable", PortionSize: "1 cup", Nutrition: Nutrition{Calories: 16, Protein: 1, Carbs: 4, Fiber: 1}, Tags: []string{"raw", "hydrating"}},
		{Name: "Bell Pepper Strips", Category: "vegetable", PortionSize: "1 cup", Nutrition: Nutrition{Calories: 30, Protein: 1, Carbs: 7, Fiber: 2}, Tags: []string{"raw", "vitamin-c"}},
		{Name: "Cherry Tomatoes", Category: "vegetable", PortionSize: "1 cup", Nutrition: Nutrition{Calories: 27, Protein: 1, Carbs: 6, Fiber: 2}, Tags: []string{"raw", "lycopene"}},
		{Name: "Steamed Vegetables + Butter", Category: "vegetable", PortionSize: "2 cups", Nutrition: Nutrition{Calories: 250, Protein: 4, Carbs: 15, Fat: 18}, Tags: []string{"cooked", "comfort"}},
		{Name: "Roasted Vegetables + Oil", Category: "vegetable", PortionSize: "2 cups", Nutrition: Nutrition{Calories: 280, Protein: 4, Carbs: 18, Fat: 20}, Tags: []string{"cooked", "caramelized"}},
		{Name: "Stir-Fried Vegetables", Category: "vegetable", PortionSize: "2 cups", Nutrition: Nutrition{Calories: 220, Protein: 4, Carbs: 12, Fat: 16}, Tags: []string{"cooked", "asian"}},

		// Fats
		{Name: "Shredded Cheese", Category: "fat", PortionSize: "1/4 cup", Nutrition: Nutrition{Calories: 100, Protein: 7, Carbs: 1, Fat: 8}, Tags: []string{"dairy", "melting"}},
		{Name: "Feta Crumbles", Category: "fat", PortionSize: "1/4 cup", Nutrition: Nutrition{Calories: 100, Protein: 5, Carbs: 1, Fat: 8}, Tags: []string{"dairy", "tangy"}},
		{Name: "Fresh Mozzarella", Category: "fat", PortionSize: "1/4 cup", Nutrition: Nutrition{Calories: 100, Protein: 6, Carbs: 1, Fat: 8}, Tags: []string{"dairy", "mild"}},
		{Name: "Avocado", Category: "fat", PortionSize: "1/2 medium", Nutrition: Nutrition{Calories: 120, Protein: 1.5, Carbs: 6, Fat: 11, Fiber: 5}, Tags: []string{"plant", "healthy-fat"}},
		{Name: "Nuts/Seeds", Category: "fat", PortionSize: "2 tbsp", Nutrition: Nutrition{Calories: 100, Protein: 4, Carbs: 4, Fat: 9}, Tags: []string{"plant", "crunchy"}},
		{Name: "Hummus", Category: "fat", PortionSize: "2 tbsp", Nutrition: Nutrition{Calories: 70, Protein: 2, Carbs: 6, Fat: 4}, Tags: []string{"plant", "dip"}},
	}
}
