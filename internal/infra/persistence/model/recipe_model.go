// Package model holds the GORM persistence models. They are exported so the
// GORM Gen tool in cmd/gen can build typed query builders from them.
package model

import "time"

// RecipeModel mirrors the 'recipes' table.
type RecipeModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(255);not null;uniqueIndex:idx_recipes_name"`
	Description string `gorm:"type:text"`
	Method      string `gorm:"type:text"`
	OwnerUserID string `gorm:"type:varchar(128);index"`
	Type        string `gorm:"type:varchar(64);index"`
	Calories    int    `gorm:"not null;default:0"`
	ImageRef    string `gorm:"type:varchar(1024)"`
	CreatedAt   time.Time

	UsedIngredients []UsedIngredientModel `gorm:"foreignKey:RecipeID"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}

// IngredientModel mirrors the 'ingredients' table. Name uniqueness is case-sensitive.
type IngredientModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(255);not null;uniqueIndex:idx_ingredients_name"`
}

// TableName explicitly sets the table name for GORM.
func (IngredientModel) TableName() string {
	return "ingredients"
}

// UsedIngredientModel mirrors the 'used_ingredients' join table keyed by (recipe_id, ingredient_id).
type UsedIngredientModel struct {
	RecipeID     int64  `gorm:"primaryKey;autoIncrement:false"`
	IngredientID int64  `gorm:"primaryKey;autoIncrement:false;index"`
	Quantity     string `gorm:"type:varchar(255)"`

	Ingredient *IngredientModel `gorm:"foreignKey:IngredientID"`
}

// TableName explicitly sets the table name for GORM.
func (UsedIngredientModel) TableName() string {
	return "used_ingredients"
}
