package handler

import (
	"net/http"

	"recipefinder/internal/delivery/api/response"
	"recipefinder/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// ListFoodTypes handles GET /vocabulary/food-types
func ListFoodTypes(c echo.Context) error {
	return response.Success(c, http.StatusOK, entity.FoodTypes)
}

// ListProfileImages handles GET /vocabulary/profile-images
func ListProfileImages(c echo.Context) error {
	return response.Success(c, http.StatusOK, entity.ProfileImages)
}
