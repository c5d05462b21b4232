package entity

// Ingredient is a named ingredient shared across recipes. Names are unique and
// compared case-sensitively on insert.
type Ingredient struct {
	ID   int64
	Name string
}

// UsedIngredient associates one ingredient to one recipe with a free-form quantity.
// A recipe references a given ingredient at most once.
type UsedIngredient struct {
	RecipeID     int64
	IngredientID int64
	Quantity     string // e.g. "2 cups"
}

// RecipeIngredient is a used ingredient joined with the ingredient name.
type RecipeIngredient struct {
	IngredientID int64
	Name         string
	Quantity     string
}
