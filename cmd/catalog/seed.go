package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"recipefinder/config"
	"recipefinder/internal/domain/entity"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/errors"
	logs "recipefinder/internal/infra/log"
	"recipefinder/internal/infra/metrics"
	"recipefinder/internal/infra/persistence/sqlstore"
	"recipefinder/internal/infra/pubsub"
	"recipefinder/internal/infra/qrcode"
	"recipefinder/internal/usecase"
	"recipefinder/internal/usecase/impl"
	"recipefinder/internal/util"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

// seedFile is the YAML document accepted by the seed subcommand.
type seedFile struct {
	Recipes []seedRecipe `yaml:"recipes"`
}

type seedRecipe struct {
	Name        string                   `yaml:"name"`
	Description string                   `yaml:"description"`
	Method      string                   `yaml:"method"`
	Owner       string                   `yaml:"owner"`
	Type        string                   `yaml:"type"`
	Calories    int                      `yaml:"calories"`
	ImageRef    string                   `yaml:"imageRef"`
	Ingredients []usecase.IngredientLine `yaml:"ingredients"`
}

// seedResult counts what a seed run did.
type seedResult struct {
	Created int
	Skipped int
}

const defaultSeedOwner = "catalog-seed"

// seedCommand creates the seed subcommand
func seedCommand(loadConfig configLoader) *cobra.Command {
	var path string

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Create recipes from a YAML file, skipping names that already exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}

			logger, err := logs.NewWithWriter(cfg, cmd.ErrOrStderr())
			if err != nil {
				return errors.Wrap(err, "failed to create logger")
			}

			file, err := loadSeedFile(path)
			if err != nil {
				return err
			}

			checksum, err := util.CalculateFileChecksum(path)
			if err != nil {
				return errors.Wrap(err, "failed to checksum seed file")
			}
			logger.Info("Seeding recipes",
				slog.String("file", path),
				slog.String("sha256", checksum),
				slog.Int("recipes", len(file.Recipes)),
			)

			return withRecipeUsecase(cmd.Context(), cfg, logger, func(recipes usecase.RecipeUsecase) error {
				result, err := seedRecipes(cmd.Context(), recipes, file, logger)
				logger.Info("Seeding finished",
					slog.Int("created", result.Created),
					slog.Int("skipped", result.Skipped),
				)

				return err
			})
		},
	}

	seedCmd.Flags().StringVar(&path, "file", "", "Path of the YAML seed file")
	_ = seedCmd.MarkFlagRequired("file")

	return seedCmd
}

// loadSeedFile parses a seed document, rejecting unknown keys.
func loadSeedFile(path string) (*seedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open seed file")
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)

	var file seedFile
	if err := decoder.Decode(&file); err != nil {
		return nil, errors.Wrapf(err, "failed to parse seed file %s", path)
	}

	for i, r := range file.Recipes {
		if strings.TrimSpace(r.Name) == "" {
			return nil, errors.Errorf("recipe #%d has no name", i+1)
		}
	}

	return &file, nil
}

// seedRecipes creates every recipe of file through the mutation API. Names that
// already exist are skipped; any other failure stops the run.
func seedRecipes(ctx context.Context, recipes usecase.RecipeUsecase, file *seedFile, logger *slog.Logger) (seedResult, error) {
	var result seedResult

	for _, r := range file.Recipes {
		owner := r.Owner
		if owner == "" {
			owner = defaultSeedOwner
		}

		recipe := &entity.Recipe{
			Name:        strings.TrimSpace(r.Name),
			Description: r.Description,
			Method:      r.Method,
			OwnerUserID: owner,
			Type:        r.Type,
			Calories:    r.Calories,
			ImageRef:    r.ImageRef,
		}
		if recipe.ImageRef == "" {
			recipe.ImageRef = r.Type
		}

		id, err := recipes.CreateRecipe(ctx, recipe, r.Ingredients)
		if errors.Is(err, domainerrors.ErrRecipeNameTaken) {
			logger.Info("Recipe exists, skipping", slog.String("name", recipe.Name))
			result.Skipped++

			continue
		}
		if err != nil {
			return result, errors.Wrapf(err, "failed to seed recipe %q", recipe.Name)
		}

		logger.Debug("Recipe seeded", slog.Int64("recipe_id", id), slog.String("name", recipe.Name))
		result.Created++
	}

	return result, nil
}

// withRecipeUsecase assembles the store-backed recipe usecase, runs fn and tears everything down.
func withRecipeUsecase(ctx context.Context, cfg *config.Config, logger *slog.Logger, fn func(usecase.RecipeUsecase) error) error {
	var recipes usecase.RecipeUsecase

	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg, logger),
		fx.Provide(
			context.Background,
			sqlstore.New,
			sqlstore.NewRecipeRepository,
			sqlstore.NewIngredientRepository,
			sqlstore.NewUsedIngredientRepository,
			sqlstore.NewFavoriteRepository,
			sqlstore.NewCommentRepository,
			sqlstore.NewTransactionManager,
			metrics.NewRegistry,
			metrics.NewMetrics,
			qrcode.NewQRCodeServiceFromConfig,
			impl.NewIngredientService,
			impl.NewRecipeService,
		),
		pubsub.Module,
		fx.Populate(&recipes),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to assemble catalog")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start catalog")
	}

	runErr := fn(recipes)

	if err := app.Stop(context.WithoutCancel(ctx)); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop catalog")
	}

	return runErr
}
