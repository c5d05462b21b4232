package model

// All returns every persistence model in migration order.
func All() []any {
	return []any{
		&RecipeModel{},
		&IngredientModel{},
		&UsedIngredientModel{},
		&FavoriteModel{},
		&CommentModel{},
		&UserModel{},
	}
}
