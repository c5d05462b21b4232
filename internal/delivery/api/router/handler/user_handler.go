package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"recipefinder/internal/delivery/api/middleware"
	"recipefinder/internal/delivery/api/response"
	"recipefinder/internal/domain/entity"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	RecipeUC  usecase.RecipeUsecase
	CommentUC usecase.CommentUsecase
	Logger    *slog.Logger
}

// UserHandler serves the identified caller's profile and data.
type UserHandler struct {
	profileUC usecase.ProfileUsecase
	recipeUC  usecase.RecipeUsecase
	commentUC usecase.CommentUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		profileUC: params.ProfileUC,
		recipeUC:  params.RecipeUC,
		commentUC: params.CommentUC,
		logger:    params.Logger,
	}
}

// UpdateImageRequest represents the request body for changing the profile image
type UpdateImageRequest struct {
	ImageRef string `json:"image_ref" validate:"required,max=1024"`
}

// FindByEmailRequest carries the by-email lookup query
type FindByEmailRequest struct {
	Email string `query:"email" json:"email" validate:"required,email"`
}

// Register handles POST /users, creating the caller's profile
func (h *UserHandler) Register(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var input usecase.RegisterProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&input); err != nil {
		return response.ValidationError(c, err)
	}

	if input.ImageRef != "" && !isProfileImageRef(input.ImageRef) {
		return response.BadRequest(c, "INVALID_IMAGE_REF", "image_ref must be a built-in profile image or an http(s) URL")
	}

	user, err := h.profileUC.Register(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user))
}

// GetMe handles GET /users/me
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// ListMyRecipes handles GET /users/me/recipes
func (h *UserHandler) ListMyRecipes(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	recipes, err := h.recipeUC.ListByOwner(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRecipeResponses(recipes))
}

// ListMyFavorites handles GET /users/me/favorites
func (h *UserHandler) ListMyFavorites(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	recipes, err := h.recipeUC.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRecipeResponses(recipes))
}

// ListMyComments handles GET /users/me/comments
func (h *UserHandler) ListMyComments(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	comments, err := h.commentUC.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCommentResponses(comments))
}

// UpdateImage handles PUT /users/me/image
func (h *UserHandler) UpdateImage(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req UpdateImageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid image input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if !isProfileImageRef(req.ImageRef) {
		return response.BadRequest(c, "INVALID_IMAGE_REF", "image_ref must be a built-in profile image or an http(s) URL")
	}

	if err := h.profileUC.UpdateImage(c.Request().Context(), userID, req.ImageRef); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"image_ref": req.ImageRef})
}

// FindByEmail handles GET /users/by-email?email=
func (h *UserHandler) FindByEmail(c echo.Context) error {
	var req FindByEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email query")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	user, err := h.profileUC.FindByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// isProfileImageRef accepts the built-in profile keys and absolute http(s) URLs.
func isProfileImageRef(ref string) bool {
	if entity.IsBuiltinProfileImage(ref) {
		return true
	}

	u, err := url.Parse(ref)
	if err != nil || u.Host == "" {
		return false
	}

	scheme := strings.ToLower(u.Scheme)

	return scheme == "http" || scheme == "https"
}
