package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"recipefinder/internal/delivery/api/response"
	"recipefinder/internal/usecase"

	"github.com/labstack/echo/v4"
)

// IngredientHandler serves ingredient lookups.
type IngredientHandler struct {
	ingredientUC usecase.IngredientUsecase
	logger       *slog.Logger
}

// NewIngredientHandler is the constructor for IngredientHandler
func NewIngredientHandler(ingredientUC usecase.IngredientUsecase, logger *slog.Logger) *IngredientHandler {
	return &IngredientHandler{
		ingredientUC: ingredientUC,
		logger:       logger,
	}
}

// ListIngredients handles GET /ingredients, narrowed to a name fragment when q is set
func (h *IngredientHandler) ListIngredients(c echo.Context) error {
	ctx := c.Request().Context()

	fragment := strings.TrimSpace(c.QueryParam("q"))
	if fragment == "" {
		ingredients, err := h.ingredientUC.ListIngredients(ctx)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, toIngredientResponses(ingredients))
	}

	ingredients, err := h.ingredientUC.SearchByNameFragment(ctx, fragment)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toIngredientResponses(ingredients))
}

// GetIngredientByName handles GET /ingredients/by-name/:name
func (h *IngredientHandler) GetIngredientByName(c echo.Context) error {
	ingredient, err := h.ingredientUC.FindByExactName(c.Request().Context(), pathText(c, "name"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, IngredientResponse{ID: ingredient.ID, Name: ingredient.Name})
}
