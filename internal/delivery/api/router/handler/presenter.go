// Package handler contains the HTTP handlers of the JSON API.
package handler

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"recipefinder/internal/domain/entity"
	domainerrors "recipefinder/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// RecipeResponse is the JSON view of a recipe.
type RecipeResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Method      string    `json:"method"`
	OwnerUserID string    `json:"owner_user_id"`
	Type        string    `json:"type"`
	Icon        string    `json:"icon,omitempty"`
	Calories    int       `json:"calories"`
	ImageRef    string    `json:"image_ref"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecipeSummaryResponse is a recipe with its aggregates.
type RecipeSummaryResponse struct {
	RecipeResponse
	AverageRating float64 `json:"average_rating"`
	FavoriteCount int64   `json:"favorite_count"`
}

// RecipeIngredientResponse is one ingredient line of a recipe.
type RecipeIngredientResponse struct {
	IngredientID int64  `json:"ingredient_id"`
	Name         string `json:"name"`
	Quantity     string `json:"quantity"`
}

// RecipeDetailResponse is everything the recipe screen shows.
type RecipeDetailResponse struct {
	RecipeSummaryResponse
	Ingredients []RecipeIngredientResponse `json:"ingredients"`
	Favorited   bool                       `json:"favorited"`
}

// IngredientResponse is the JSON view of an ingredient.
type IngredientResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CommentResponse is the JSON view of a comment.
type CommentResponse struct {
	ID        int64     `json:"id"`
	Rating    float64   `json:"rating"`
	Text      string    `json:"text"`
	UserID    string    `json:"user_id"`
	RecipeID  int64     `json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}

// UserResponse is the JSON view of a profile.
type UserResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Nickname  string    `json:"nickname"`
	Email     string    `json:"email"`
	ImageRef  string    `json:"image_ref"`
	CreatedAt time.Time `json:"created_at"`
}

func toRecipeResponse(r *entity.Recipe) RecipeResponse {
	icon, _ := entity.FoodTypeIcon(r.Type)

	return RecipeResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Method:      r.Method,
		OwnerUserID: r.OwnerUserID,
		Type:        r.Type,
		Icon:        icon,
		Calories:    r.Calories,
		ImageRef:    r.ImageRef,
		CreatedAt:   r.CreatedAt,
	}
}

func toRecipeResponses(recipes []*entity.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, toRecipeResponse(r))
	}

	return out
}

func toSummaryResponse(s *entity.RecipeSummary) RecipeSummaryResponse {
	return RecipeSummaryResponse{
		RecipeResponse: toRecipeResponse(s.Recipe),
		AverageRating:  s.AverageRating,
		FavoriteCount:  s.FavoriteCount,
	}
}

func toSummaryResponses(summaries []*entity.RecipeSummary) []RecipeSummaryResponse {
	out := make([]RecipeSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, toSummaryResponse(s))
	}

	return out
}

func toDetailResponse(d *entity.RecipeDetail) RecipeDetailResponse {
	ingredients := make([]RecipeIngredientResponse, 0, len(d.Ingredients))
	for _, i := range d.Ingredients {
		ingredients = append(ingredients, toRecipeIngredientResponse(i))
	}

	return RecipeDetailResponse{
		RecipeSummaryResponse: toSummaryResponse(&d.RecipeSummary),
		Ingredients:           ingredients,
		Favorited:             d.Favorited,
	}
}

func toRecipeIngredientResponse(i *entity.RecipeIngredient) RecipeIngredientResponse {
	return RecipeIngredientResponse{
		IngredientID: i.IngredientID,
		Name:         i.Name,
		Quantity:     i.Quantity,
	}
}

func toIngredientResponses(ingredients []*entity.Ingredient) []IngredientResponse {
	out := make([]IngredientResponse, 0, len(ingredients))
	for _, i := range ingredients {
		out = append(out, IngredientResponse{ID: i.ID, Name: i.Name})
	}

	return out
}

func toCommentResponses(comments []*entity.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentResponse(c))
	}

	return out
}

func toCommentResponse(c *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Rating:    c.Rating,
		Text:      c.Text,
		UserID:    c.UserID,
		RecipeID:  c.RecipeID,
		CreatedAt: c.CreatedAt,
	}
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ExternalID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Nickname:  u.Nickname,
		Email:     u.Email,
		ImageRef:  u.ImageRef,
		CreatedAt: u.CreatedAt,
	}
}

// parseRecipeID parses the :id path parameter as a positive recipe ID.
func parseRecipeID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("recipe id must be a positive integer")
	}

	return id, nil
}

// pathText returns a decoded, trimmed path parameter.
func pathText(c echo.Context, name string) string {
	raw := c.Param(name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		raw = decoded
	}

	return strings.TrimSpace(raw)
}
