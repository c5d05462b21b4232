package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"recipefinder/internal/delivery/api/middleware"
	"recipefinder/internal/delivery/api/response"
	"recipefinder/internal/domain/entity"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RecipeHandlerParams holds dependencies for RecipeHandler, injected by Fx.
type RecipeHandlerParams struct {
	fx.In

	RecipeUC   usecase.RecipeUsecase
	FavoriteUC usecase.FavoriteUsecase
	CommentUC  usecase.CommentUsecase
	Logger     *slog.Logger
}

// RecipeHandler serves recipe queries and mutations.
type RecipeHandler struct {
	recipeUC   usecase.RecipeUsecase
	favoriteUC usecase.FavoriteUsecase
	commentUC  usecase.CommentUsecase
	logger     *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler
func NewRecipeHandler(params RecipeHandlerParams) *RecipeHandler {
	return &RecipeHandler{
		recipeUC:   params.RecipeUC,
		favoriteUC: params.FavoriteUC,
		commentUC:  params.CommentUC,
		logger:     params.Logger,
	}
}

// CreateRecipeRequest represents the request body for publishing a recipe
type CreateRecipeRequest struct {
	Name        string                   `json:"name" validate:"required,max=255"`
	Description string                   `json:"description" validate:"max=2000"`
	Method      string                   `json:"method" validate:"max=20000"`
	Type        string                   `json:"type" validate:"required,max=100"`
	Calories    int                      `json:"calories" validate:"gte=0"`
	ImageRef    string                   `json:"image_ref" validate:"max=1024"`
	Ingredients []usecase.IngredientLine `json:"ingredients" validate:"dive"`
}

// AddIngredientRequest represents the request body for attaching an ingredient
type AddIngredientRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Quantity string `json:"quantity" validate:"max=255"`
}

// AddCommentRequest represents the request body for commenting on a recipe
type AddCommentRequest struct {
	Rating float64 `json:"rating" validate:"gte=1,lte=5"`
	Text   string  `json:"text" validate:"required,max=2000"`
}

// FavoriteResponse is the state of a favorite after a toggle
type FavoriteResponse struct {
	RecipeID      int64                `json:"recipe_id"`
	State         entity.FavoriteState `json:"state"`
	Favorited     bool                 `json:"favorited"`
	FavoriteCount int64                `json:"favorite_count"`
}

// FilterRecipes handles GET /recipes with the name, type, maxCalories and ingredient predicates
func (h *RecipeHandler) FilterRecipes(c echo.Context) error {
	query := c.QueryParams()

	filter := entity.RecipeFilter{
		Name:                strings.TrimSpace(query.Get("name")),
		Types:               query["type"],
		IngredientFragments: query["ingredient"],
	}

	if raw := strings.TrimSpace(query.Get("maxCalories")); raw != "" {
		maxCalories, err := strconv.Atoi(raw)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrInvalidFilter.WithDetails("maxCalories must be an integer"))
		}
		filter.MaxCalories = maxCalories
	}

	summaries, err := h.recipeUC.FilterRecipeSummaries(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSummaryResponses(summaries))
}

// SearchRecipe handles GET /recipes/search?q=, returning one recipe whose name contains q
func (h *RecipeHandler) SearchRecipe(c echo.Context) error {
	fragment := strings.TrimSpace(c.QueryParam("q"))
	if fragment == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter q is required")
	}

	recipe, err := h.recipeUC.SearchByName(c.Request().Context(), fragment)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRecipeResponse(recipe))
}

// GetRecipeByName handles GET /recipes/by-name/:name
func (h *RecipeHandler) GetRecipeByName(c echo.Context) error {
	recipe, err := h.recipeUC.FindByName(c.Request().Context(), pathText(c, "name"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRecipeResponse(recipe))
}

// ListRecipesByType handles GET /recipes/types/:type
func (h *RecipeHandler) ListRecipesByType(c echo.Context) error {
	recipes, err := h.recipeUC.ListByType(c.Request().Context(), pathText(c, "type"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRecipeResponses(recipes))
}

// GetRecipe handles GET /recipes/:id
func (h *RecipeHandler) GetRecipe(c echo.Context) error {
	recipeID, err := parseRecipeID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	callerID, _ := middleware.GetUserID(c)

	detail, err := h.recipeUC.GetRecipe(c.Request().Context(), recipeID, callerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDetailResponse(detail))
}

// ShareQRCode handles GET /recipes/:id/qr and answers with a PNG
func (h *RecipeHandler) ShareQRCode(c echo.Context) error {
	recipeID, err := parseRecipeID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.recipeUC.ShareQRCode(c.Request().Context(), recipeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CreateRecipe handles POST /recipes
func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req CreateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	recipe := &entity.Recipe{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Method:      req.Method,
		OwnerUserID: userID,
		Type:        strings.TrimSpace(req.Type),
		Calories:    req.Calories,
		ImageRef:    req.ImageRef,
	}

	recipeID, err := h.recipeUC.CreateRecipe(c.Request().Context(), recipe, req.Ingredients)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	recipe.ID = recipeID

	return response.Success(c, http.StatusCreated, toRecipeResponse(recipe))
}

// AddIngredient handles POST /recipes/:id/ingredients
func (h *RecipeHandler) AddIngredient(c echo.Context) error {
	recipeID, err := parseRecipeID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddIngredientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ingredient input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	line, err := h.recipeUC.AddUsedIngredient(c.Request().Context(), recipeID, req.Name, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toRecipeIngredientResponse(line))
}

// ToggleFavorite handles POST /recipes/:id/favorite
func (h *RecipeHandler) ToggleFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	recipeID, err := parseRecipeID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()

	state, err := h.favoriteUC.ToggleFavorite(ctx, userID, recipeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	count, err := h.favoriteUC.FavoriteCount(ctx, recipeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, FavoriteResponse{
		RecipeID:      recipeID,
		State:         state,
		Favorited:     state.IsFavorited(),
		FavoriteCount: count,
	})
}

// ListComments handles GET /recipes/:id/comments
func (h *RecipeHandler) ListComments(c echo.Context) error {
	recipeID, err := parseRecipeID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	comments, err := h.commentUC.ListByRecipe(c.Request().Context(), recipeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCommentResponses(comments))
}

// AddComment handles POST /recipes/:id/comments
func (h *RecipeHandler) AddComment(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	recipeID, err := parseRecipeID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	comment := &entity.Comment{
		Rating:   req.Rating,
		Text:     req.Text,
		UserID:   userID,
		RecipeID: recipeID,
	}

	if err := h.commentUC.AddComment(c.Request().Context(), comment); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCommentResponse(comment))
}
