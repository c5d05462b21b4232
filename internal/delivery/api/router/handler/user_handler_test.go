package handler

import (
	"net/http"
	"testing"

	"recipefinder/internal/domain/entity"
	domainerrors "recipefinder/internal/domain/errors"
	mockusecase "recipefinder/internal/mocks/usecase"
	"recipefinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userFixture struct {
	e         *echo.Echo
	profileUC *mockusecase.MockProfileUsecase
	recipeUC  *mockusecase.MockRecipeUsecase
	commentUC *mockusecase.MockCommentUsecase
}

func newUserFixture(t *testing.T, callerID string) *userFixture {
	t.Helper()

	f := &userFixture{
		e:         newTestEcho(),
		profileUC: mockusecase.NewMockProfileUsecase(t),
		recipeUC:  mockusecase.NewMockRecipeUsecase(t),
		commentUC: mockusecase.NewMockCommentUsecase(t),
	}

	h := NewUserHandler(UserHandlerParams{
		ProfileUC: f.profileUC,
		RecipeUC:  f.recipeUC,
		CommentUC: f.commentUC,
		Logger:    discardLogger(),
	})

	g := f.e.Group("/users")
	if callerID != "" {
		g.Use(asUser(callerID))
	}

	g.POST("", h.Register)
	g.GET("/me", h.GetMe)
	g.GET("/me/recipes", h.ListMyRecipes)
	g.GET("/me/favorites", h.ListMyFavorites)
	g.GET("/me/comments", h.ListMyComments)
	g.PUT("/me/image", h.UpdateImage)
	g.GET("/by-email", h.FindByEmail)

	return f
}

func TestRegister(t *testing.T) {
	t.Run("creates the caller's profile", func(t *testing.T) {
		f := newUserFixture(t, "ext-1")
		f.profileUC.EXPECT().Register(mock.Anything, "ext-1", &usecase.RegisterProfileInput{
			FirstName: "Ana",
			Email:     "ana@example.com",
		}).Return(&entity.User{ExternalID: "ext-1", FirstName: "Ana", Email: "ana@example.com", ImageRef: "profile1"}, nil)

		rec := doRequest(f.e, http.MethodPost, "/users", `{"first_name":"Ana","email":"ana@example.com"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decode[UserResponse](t, rec)
		assert.Equal(t, "ext-1", body.Data.ID)
		assert.Equal(t, "profile1", body.Data.ImageRef)
	})

	t.Run("already registered", func(t *testing.T) {
		f := newUserFixture(t, "ext-1")
		f.profileUC.EXPECT().Register(mock.Anything, "ext-1", mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

		rec := doRequest(f.e, http.MethodPost, "/users", `{"first_name":"Ana","email":"ana@example.com"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		f := newUserFixture(t, "ext-1")

		rec := doRequest(f.e, http.MethodPost, "/users", `{"first_name":"Ana","email":"not-an-email"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doRequest(f.e, http.MethodPost, "/users", `{"first_name":"Ana","email":"ana@example.com","image_ref":"profile99"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_IMAGE_REF", decode[any](t, rec).Error.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		f := newUserFixture(t, "")

		rec := doRequest(f.e, http.MethodPost, "/users", `{"first_name":"Ana","email":"ana@example.com"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetMe(t *testing.T) {
	f := newUserFixture(t, "ext-1")
	f.profileUC.EXPECT().GetProfile(mock.Anything, "ext-1").Return(nil, domainerrors.ErrUserNotFound)

	rec := doRequest(f.e, http.MethodGet, "/users/me", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", decode[any](t, rec).Error.Code)
}

func TestCallerCollections(t *testing.T) {
	f := newUserFixture(t, "ext-1")
	f.recipeUC.EXPECT().ListByOwner(mock.Anything, "ext-1").Return([]*entity.Recipe{{ID: 1, Name: "Mine"}}, nil)
	f.recipeUC.EXPECT().ListFavorites(mock.Anything, "ext-1").Return([]*entity.Recipe{{ID: 2, Name: "Loved"}, {ID: 3, Name: "Liked"}}, nil)
	f.commentUC.EXPECT().ListByUser(mock.Anything, "ext-1").Return(nil, nil)

	rec := doRequest(f.e, http.MethodGet, "/users/me/recipes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]RecipeResponse](t, rec).Data, 1)

	rec = doRequest(f.e, http.MethodGet, "/users/me/favorites", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]RecipeResponse](t, rec).Data, 2)

	rec = doRequest(f.e, http.MethodGet, "/users/me/comments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(mustRawData(t, rec)))
}

func TestUpdateImage(t *testing.T) {
	tests := []struct {
		name     string
		imageRef string
		wantCode int
	}{
		{name: "built-in key", imageRef: "profile7", wantCode: http.StatusOK},
		{name: "uploaded URL", imageRef: "https://cdn.example.com/images/abc.png", wantCode: http.StatusOK},
		{name: "unknown key", imageRef: "profile0", wantCode: http.StatusBadRequest},
		{name: "non http URL", imageRef: "ftp://example.com/a.png", wantCode: http.StatusBadRequest},
		{name: "empty", imageRef: "", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserFixture(t, "ext-1")
			if tt.wantCode == http.StatusOK {
				f.profileUC.EXPECT().UpdateImage(mock.Anything, "ext-1", tt.imageRef).Return(nil)
			}

			rec := doRequest(f.e, http.MethodPut, "/users/me/image", `{"image_ref":"`+tt.imageRef+`"}`)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestFindByEmail(t *testing.T) {
	f := newUserFixture(t, "ext-1")
	f.profileUC.EXPECT().FindByEmail(mock.Anything, "ana@example.com").Return(&entity.User{ExternalID: "ext-2", Email: "ana@example.com"}, nil)

	rec := doRequest(f.e, http.MethodGet, "/users/by-email?email=ana@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ext-2", decode[UserResponse](t, rec).Data.ID)

	rec = doRequest(f.e, http.MethodGet, "/users/by-email?email=nope", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
