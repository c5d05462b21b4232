package impl

import (
	"context"
	"testing"

	"recipefinder/internal/domain/entity"
	domainerrors "recipefinder/internal/domain/errors"
	mockRepo "recipefinder/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIngredientService_FindOrCreate_Existing(t *testing.T) {
	repo := mockRepo.NewMockIngredientRepository(t)
	svc := NewIngredientService(repo, newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().FindByName(ctx, "Salt").Return(&entity.Ingredient{ID: 7, Name: "Salt"}, nil).Once()

	id, err := svc.FindOrCreate(ctx, "Salt")

	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestIngredientService_FindOrCreate_CreatesWhenAbsent(t *testing.T) {
	repo := mockRepo.NewMockIngredientRepository(t)
	svc := NewIngredientService(repo, newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().FindByName(ctx, "Salt").Return(nil, domainerrors.ErrIngredientNotFound).Once()
	repo.EXPECT().Create(ctx, mock.MatchedBy(func(i *entity.Ingredient) bool {
		return i.Name == "Salt"
	})).RunAndReturn(func(_ context.Context, i *entity.Ingredient) error {
		i.ID = 11

		return nil
	}).Once()

	id, err := svc.FindOrCreate(ctx, "  Salt ")

	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
}

func TestIngredientService_FindOrCreate_RecoversFromLostRace(t *testing.T) {
	repo := mockRepo.NewMockIngredientRepository(t)
	svc := NewIngredientService(repo, newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().FindByName(ctx, "Salt").Return(nil, domainerrors.ErrIngredientNotFound).Once()
	repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Ingredient")).
		Return(domainerrors.ErrIngredientNameTaken.WithDetails("failed to create ingredient")).Once()
	repo.EXPECT().FindByName(ctx, "Salt").Return(&entity.Ingredient{ID: 3, Name: "Salt"}, nil).Once()

	id, err := svc.FindOrCreate(ctx, "Salt")

	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestIngredientService_FindOrCreate_Errors(t *testing.T) {
	ctx := context.Background()
	storeDown := domainerrors.NewQueryFailure(errors.New("disk I/O error"), "failed to find ingredient")

	tests := []struct {
		name      string
		input     string
		setup     func(repo *mockRepo.MockIngredientRepository)
		checkKind domainerrors.Kind
	}{
		{
			name:      "blank name",
			input:     "   ",
			setup:     func(*mockRepo.MockIngredientRepository) {},
			checkKind: domainerrors.KindInvalidInput,
		},
		{
			name:  "lookup failure propagates",
			input: "Salt",
			setup: func(repo *mockRepo.MockIngredientRepository) {
				repo.EXPECT().FindByName(ctx, "Salt").Return(nil, storeDown).Once()
			},
			checkKind: domainerrors.KindQueryFailure,
		},
		{
			name:  "re-read failure gives up after one retry",
			input: "Salt",
			setup: func(repo *mockRepo.MockIngredientRepository) {
				repo.EXPECT().FindByName(ctx, "Salt").Return(nil, domainerrors.ErrIngredientNotFound).Once()
				repo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrIngredientNameTaken).Once()
				repo.EXPECT().FindByName(ctx, "Salt").Return(nil, storeDown).Once()
			},
			checkKind: domainerrors.KindQueryFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockIngredientRepository(t)
			tt.setup(repo)
			svc := NewIngredientService(repo, newDiscardLogger())

			_, err := svc.FindOrCreate(ctx, tt.input)

			require.Error(t, err)
			assert.Equal(t, tt.checkKind, domainerrors.KindOf(err))
		})
	}
}

func TestIngredientService_ResolveFragments(t *testing.T) {
	repo := mockRepo.NewMockIngredientRepository(t)
	svc := NewIngredientService(repo, newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().SearchByFragment(ctx, "tom").Return([]*entity.Ingredient{
		{ID: 1, Name: "Tomato"},
		{ID: 2, Name: "Tomato Paste"},
	}, nil).Once()
	repo.EXPECT().SearchByFragment(ctx, "paste").Return([]*entity.Ingredient{
		{ID: 2, Name: "Tomato Paste"},
		{ID: 3, Name: "Garlic Paste"},
	}, nil).Once()
	repo.EXPECT().SearchByFragment(ctx, "xyz").Return([]*entity.Ingredient{}, nil).Once()

	names, err := svc.ResolveFragments(ctx, []string{"tom", "", "  ", "paste", "xyz"})

	require.NoError(t, err)
	assert.Equal(t, []string{"Garlic Paste", "Tomato", "Tomato Paste"}, names)
}

func TestIngredientService_ResolveFragments_Empty(t *testing.T) {
	repo := mockRepo.NewMockIngredientRepository(t)
	svc := NewIngredientService(repo, newDiscardLogger())

	names, err := svc.ResolveFragments(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestIngredientService_ResolveFragments_Failure(t *testing.T) {
	repo := mockRepo.NewMockIngredientRepository(t)
	svc := NewIngredientService(repo, newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().SearchByFragment(ctx, "tom").
		Return(nil, domainerrors.NewQueryFailure(errors.New("boom"), "failed to search ingredients")).Once()

	_, err := svc.ResolveFragments(ctx, []string{"tom"})

	require.Error(t, err)
	assert.True(t, domainerrors.IsQueryFailure(err))
}
