package handler

import (
	"net/http"
	"testing"

	"recipefinder/internal/domain/entity"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/errors"
	mockusecase "recipefinder/internal/mocks/usecase"
	"recipefinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recipeFixture struct {
	e          *echo.Echo
	recipeUC   *mockusecase.MockRecipeUsecase
	favoriteUC *mockusecase.MockFavoriteUsecase
	commentUC  *mockusecase.MockCommentUsecase
}

func newRecipeFixture(t *testing.T, callerID string) *recipeFixture {
	t.Helper()

	f := &recipeFixture{
		e:          newTestEcho(),
		recipeUC:   mockusecase.NewMockRecipeUsecase(t),
		favoriteUC: mockusecase.NewMockFavoriteUsecase(t),
		commentUC:  mockusecase.NewMockCommentUsecase(t),
	}

	h := NewRecipeHandler(RecipeHandlerParams{
		RecipeUC:   f.recipeUC,
		FavoriteUC: f.favoriteUC,
		CommentUC:  f.commentUC,
		Logger:     discardLogger(),
	})

	g := f.e.Group("")
	if callerID != "" {
		g.Use(asUser(callerID))
	}

	g.GET("/recipes", h.FilterRecipes)
	g.GET("/recipes/search", h.SearchRecipe)
	g.GET("/recipes/by-name/:name", h.GetRecipeByName)
	g.GET("/recipes/types/:type", h.ListRecipesByType)
	g.GET("/recipes/:id", h.GetRecipe)
	g.GET("/recipes/:id/qr", h.ShareQRCode)
	g.GET("/recipes/:id/comments", h.ListComments)
	g.POST("/recipes", h.CreateRecipe)
	g.POST("/recipes/:id/ingredients", h.AddIngredient)
	g.POST("/recipes/:id/favorite", h.ToggleFavorite)
	g.POST("/recipes/:id/comments", h.AddComment)

	return f
}

func TestFilterRecipes_ParsesQuery(t *testing.T) {
	f := newRecipeFixture(t, "")

	want := entity.RecipeFilter{
		Name:                "Pas",
		Types:               []string{"Italiana", "Mexicana"},
		MaxCalories:         500,
		IngredientFragments: []string{"tom", "chees"},
	}
	f.recipeUC.EXPECT().FilterRecipeSummaries(mock.Anything, want).Return([]*entity.RecipeSummary{
		{Recipe: &entity.Recipe{ID: 1, Name: "Pasta", Type: "Italiana", Calories: 450}, AverageRating: 4.5, FavoriteCount: 2},
	}, nil)

	rec := doRequest(f.e, http.MethodGet,
		"/recipes?name=Pas&type=Italiana&type=Mexicana&maxCalories=500&ingredient=tom&ingredient=chees", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[[]RecipeSummaryResponse](t, rec)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Pasta", body.Data[0].Name)
	assert.Equal(t, "italiana", body.Data[0].Icon)
	assert.InDelta(t, 4.5, body.Data[0].AverageRating, 0.0001)
	assert.Equal(t, int64(2), body.Data[0].FavoriteCount)
}

func TestFilterRecipes_NoMatchIsEmptyList(t *testing.T) {
	f := newRecipeFixture(t, "")
	f.recipeUC.EXPECT().FilterRecipeSummaries(mock.Anything, entity.RecipeFilter{}).Return([]*entity.RecipeSummary{}, nil)

	rec := doRequest(f.e, http.MethodGet, "/recipes", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(mustRawData(t, rec)))
}

func TestFilterRecipes_Errors(t *testing.T) {
	t.Run("non numeric maxCalories", func(t *testing.T) {
		f := newRecipeFixture(t, "")

		rec := doRequest(f.e, http.MethodGet, "/recipes?maxCalories=lots", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_FILTER", decode[any](t, rec).Error.Code)
	})

	t.Run("query failure hides store details", func(t *testing.T) {
		f := newRecipeFixture(t, "")
		f.recipeUC.EXPECT().FilterRecipeSummaries(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.NewQueryFailure(errors.New("disk I/O error"), "filter recipes"), "failed to filter recipes"))

		rec := doRequest(f.e, http.MethodGet, "/recipes?name=x", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decode[any](t, rec)
		assert.Equal(t, "QUERY_FAILED", body.Error.Code)
		assert.Nil(t, body.Error.Details)
		assert.NotContains(t, rec.Body.String(), "disk")
	})
}

func TestSearchRecipe(t *testing.T) {
	f := newRecipeFixture(t, "")
	f.recipeUC.EXPECT().SearchByName(mock.Anything, "bake").Return(&entity.Recipe{ID: 3, Name: "Pasta Bake"}, nil)

	rec := doRequest(f.e, http.MethodGet, "/recipes/search?q=bake", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), decode[RecipeResponse](t, rec).Data.ID)

	rec = doRequest(f.e, http.MethodGet, "/recipes/search?q=%20", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRecipeByName_DecodesPath(t *testing.T) {
	f := newRecipeFixture(t, "")
	f.recipeUC.EXPECT().FindByName(mock.Anything, "Pasta Bake").Return(&entity.Recipe{ID: 3, Name: "Pasta Bake"}, nil)
	f.recipeUC.EXPECT().FindByName(mock.Anything, "Missing").Return(nil, domainerrors.ErrRecipeNotFound)

	rec := doRequest(f.e, http.MethodGet, "/recipes/by-name/Pasta%20Bake", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(f.e, http.MethodGet, "/recipes/by-name/Missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "RECIPE_NOT_FOUND", decode[any](t, rec).Error.Code)
}

func TestListRecipesByType(t *testing.T) {
	f := newRecipeFixture(t, "")
	f.recipeUC.EXPECT().ListByType(mock.Anything, "Low Carb").Return([]*entity.Recipe{{ID: 9, Name: "Salad", Type: "Low Carb"}}, nil)

	rec := doRequest(f.e, http.MethodGet, "/recipes/types/Low%20Carb", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[[]RecipeResponse](t, rec)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "low_carb", body.Data[0].Icon)
}

func TestGetRecipe(t *testing.T) {
	detail := &entity.RecipeDetail{
		RecipeSummary: entity.RecipeSummary{
			Recipe:        &entity.Recipe{ID: 7, Name: "Pasta"},
			AverageRating: 4,
			FavoriteCount: 1,
		},
		Ingredients: []*entity.RecipeIngredient{{IngredientID: 2, Name: "tomato", Quantity: "2"}},
		Favorited:   true,
	}

	t.Run("identified caller", func(t *testing.T) {
		f := newRecipeFixture(t, "user-1")
		f.recipeUC.EXPECT().GetRecipe(mock.Anything, int64(7), "user-1").Return(detail, nil)

		rec := doRequest(f.e, http.MethodGet, "/recipes/7", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[RecipeDetailResponse](t, rec)
		assert.True(t, body.Data.Favorited)
		assert.Equal(t, []RecipeIngredientResponse{{IngredientID: 2, Name: "tomato", Quantity: "2"}}, body.Data.Ingredients)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		f := newRecipeFixture(t, "")
		f.recipeUC.EXPECT().GetRecipe(mock.Anything, int64(7), "").Return(detail, nil)

		rec := doRequest(f.e, http.MethodGet, "/recipes/7", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		f := newRecipeFixture(t, "")

		rec := doRequest(f.e, http.MethodGet, "/recipes/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode[any](t, rec).Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		f := newRecipeFixture(t, "")
		f.recipeUC.EXPECT().GetRecipe(mock.Anything, int64(99), "").Return(nil, errors.Wrap(domainerrors.ErrRecipeNotFound, "failed to get recipe"))

		rec := doRequest(f.e, http.MethodGet, "/recipes/99", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestShareQRCode(t *testing.T) {
	f := newRecipeFixture(t, "")
	f.recipeUC.EXPECT().ShareQRCode(mock.Anything, int64(7)).Return([]byte("\x89PNG"), nil)

	rec := doRequest(f.e, http.MethodGet, "/recipes/7/qr", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestCreateRecipe(t *testing.T) {
	t.Run("owner is the caller", func(t *testing.T) {
		f := newRecipeFixture(t, "user-1")
		f.recipeUC.EXPECT().CreateRecipe(mock.Anything,
			mock.MatchedBy(func(r *entity.Recipe) bool {
				return r.Name == "Pasta" && r.OwnerUserID == "user-1" && r.Type == "Italiana" && r.Calories == 450
			}),
			[]usecase.IngredientLine{{Name: "tomato", Quantity: "2"}},
		).Return(42, nil)

		rec := doRequest(f.e, http.MethodPost, "/recipes",
			`{"name":" Pasta ","type":"Italiana","calories":450,"ingredients":[{"name":"tomato","quantity":"2"}]}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decode[RecipeResponse](t, rec)
		assert.Equal(t, int64(42), body.Data.ID)
		assert.Equal(t, "user-1", body.Data.OwnerUserID)
	})

	t.Run("anonymous", func(t *testing.T) {
		f := newRecipeFixture(t, "")

		rec := doRequest(f.e, http.MethodPost, "/recipes", `{"name":"Pasta","type":"Italiana"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("validation", func(t *testing.T) {
		f := newRecipeFixture(t, "user-1")

		rec := doRequest(f.e, http.MethodPost, "/recipes", `{"type":"Italiana","calories":-1,"ingredients":[{"quantity":"1"}]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode[any](t, rec)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		assert.Contains(t, body.Error.Message, "name is required")
		assert.Contains(t, body.Error.Message, "calories must be greater than or equal to 0")
	})

	t.Run("duplicate name", func(t *testing.T) {
		f := newRecipeFixture(t, "user-1")
		f.recipeUC.EXPECT().CreateRecipe(mock.Anything, mock.Anything, mock.Anything).
			Return(0, errors.Wrap(domainerrors.ErrRecipeNameTaken, "failed to create recipe"))

		rec := doRequest(f.e, http.MethodPost, "/recipes", `{"name":"Pasta","type":"Italiana"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "RECIPE_NAME_TAKEN", decode[any](t, rec).Error.Code)
	})
}

func TestAddIngredient(t *testing.T) {
	f := newRecipeFixture(t, "user-1")
	f.recipeUC.EXPECT().AddUsedIngredient(mock.Anything, int64(7), "basil", "1 leaf").
		Return(&entity.RecipeIngredient{IngredientID: 5, Name: "basil", Quantity: "1 leaf"}, nil)
	f.recipeUC.EXPECT().AddUsedIngredient(mock.Anything, int64(7), "tomato", "").
		Return(nil, domainerrors.ErrIngredientAlreadyUsed)

	rec := doRequest(f.e, http.MethodPost, "/recipes/7/ingredients", `{"name":"basil","quantity":"1 leaf"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(5), decode[RecipeIngredientResponse](t, rec).Data.IngredientID)

	rec = doRequest(f.e, http.MethodPost, "/recipes/7/ingredients", `{"name":"tomato"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestToggleFavorite(t *testing.T) {
	f := newRecipeFixture(t, "user-1")
	f.favoriteUC.EXPECT().ToggleFavorite(mock.Anything, "user-1", int64(7)).Return(entity.FavoriteStateFavorited, nil)
	f.favoriteUC.EXPECT().FavoriteCount(mock.Anything, int64(7)).Return(3, nil)

	rec := doRequest(f.e, http.MethodPost, "/recipes/7/favorite", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, FavoriteResponse{
		RecipeID:      7,
		State:         entity.FavoriteStateFavorited,
		Favorited:     true,
		FavoriteCount: 3,
	}, decode[FavoriteResponse](t, rec).Data)
}

func TestComments(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		f := newRecipeFixture(t, "")
		f.commentUC.EXPECT().ListByRecipe(mock.Anything, int64(7)).Return([]*entity.Comment{
			{ID: 1, Rating: 5, Text: "great", UserID: "user-2", RecipeID: 7},
		}, nil)

		rec := doRequest(f.e, http.MethodGet, "/recipes/7/comments", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[[]CommentResponse](t, rec)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "great", body.Data[0].Text)
	})

	t.Run("add", func(t *testing.T) {
		f := newRecipeFixture(t, "user-1")
		f.commentUC.EXPECT().AddComment(mock.Anything, &entity.Comment{
			Rating: 4, Text: "nice", UserID: "user-1", RecipeID: 7,
		}).Return(nil)

		rec := doRequest(f.e, http.MethodPost, "/recipes/7/comments", `{"rating":4,"text":"nice"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("rating out of range", func(t *testing.T) {
		f := newRecipeFixture(t, "user-1")

		rec := doRequest(f.e, http.MethodPost, "/recipes/7/comments", `{"rating":6,"text":"too good"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode[any](t, rec).Error.Message, "rating must be less than or equal to 5")
	})
}
