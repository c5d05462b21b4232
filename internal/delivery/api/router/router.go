// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"recipefinder/config"
	"recipefinder/internal/delivery/api/middleware"
	"recipefinder/internal/delivery/api/router/handler"
	"recipefinder/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RecipeHandler     *handler.RecipeHandler
	IngredientHandler *handler.IngredientHandler
	UserHandler       *handler.UserHandler
	ImageHandler      *handler.ImageHandler
	HealthHandler     *handler.HealthHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Registry          *prometheus.Registry
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	recipeHandler     *handler.RecipeHandler
	ingredientHandler *handler.IngredientHandler
	userHandler       *handler.UserHandler
	imageHandler      *handler.ImageHandler
	healthHandler     *handler.HealthHandler
	authMiddleware    *middleware.AuthMiddleware
	registry          *prometheus.Registry
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		recipeHandler:     params.RecipeHandler,
		ingredientHandler: params.IngredientHandler,
		userHandler:       params.UserHandler,
		imageHandler:      params.ImageHandler,
		healthHandler:     params.HealthHandler,
		authMiddleware:    params.AuthMiddleware,
		registry:          params.Registry,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(metrics.Handler(r.registry)))
	}

	apiV1 := e.Group("/api/v1")

	// Stored images are public and content-addressed
	apiV1.GET("/images/*", r.imageHandler.Serve)

	// Everything else resolves the caller when a bearer token is sent
	api := apiV1.Group("", r.authMiddleware.Identify)
	requireUser := r.authMiddleware.RequireUser

	recipesGroup := api.Group("/recipes")
	{
		recipesGroup.GET("", r.recipeHandler.FilterRecipes)
		recipesGroup.GET("/search", r.recipeHandler.SearchRecipe)
		recipesGroup.GET("/by-name/:name", r.recipeHandler.GetRecipeByName)
		recipesGroup.GET("/types/:type", r.recipeHandler.ListRecipesByType)
		recipesGroup.GET("/:id", r.recipeHandler.GetRecipe)
		recipesGroup.GET("/:id/qr", r.recipeHandler.ShareQRCode)
		recipesGroup.GET("/:id/comments", r.recipeHandler.ListComments)

		recipesGroup.POST("", r.recipeHandler.CreateRecipe, requireUser)
		recipesGroup.POST("/:id/ingredients", r.recipeHandler.AddIngredient, requireUser)
		recipesGroup.POST("/:id/favorite", r.recipeHandler.ToggleFavorite, requireUser)
		recipesGroup.POST("/:id/comments", r.recipeHandler.AddComment, requireUser)
	}

	ingredientsGroup := api.Group("/ingredients")
	{
		ingredientsGroup.GET("", r.ingredientHandler.ListIngredients)
		ingredientsGroup.GET("/by-name/:name", r.ingredientHandler.GetIngredientByName)
	}

	vocabularyGroup := api.Group("/vocabulary")
	{
		vocabularyGroup.GET("/food-types", handler.ListFoodTypes)
		vocabularyGroup.GET("/profile-images", handler.ListProfileImages)
	}

	usersGroup := api.Group("/users", requireUser)
	{
		usersGroup.POST("", r.userHandler.Register)
		usersGroup.GET("/me", r.userHandler.GetMe)
		usersGroup.GET("/me/recipes", r.userHandler.ListMyRecipes)
		usersGroup.GET("/me/favorites", r.userHandler.ListMyFavorites)
		usersGroup.GET("/me/comments", r.userHandler.ListMyComments)
		usersGroup.PUT("/me/image", r.userHandler.UpdateImage)
		usersGroup.GET("/by-email", r.userHandler.FindByEmail)
	}

	api.POST("/images", r.imageHandler.Upload, requireUser)
}
