package service

import (
	"context"
	"fmt"

	"aperture/config"
	"aperture/infras/otel"
	"aperture/internal/domains/recipe/model"
	"aperture/internal/domains/recipe/model/dto"
	"aperture/internal/domains/recipe/repository"
	"aperture/shared"
	"aperture/shared/cache"
	"aperture/shared/constant"
	gDto "aperture/shared/dto"
	"aperture/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRecipe    = "recipe:get"
	cacheGetAllRecipe = "recipe:get_all"
)

type Recipe interface {
	Create(ctx context.Context, req dto.CreateRecipeRequest) (dto.RecipeResponse, error)
	GetAll(ctx context.Context) (dto.GetRecipesResponse, error)
	Get(ctx context.Context, id string) (dto.RecipeResponse, error)
	Delete(ctx context.Context, id string) error
	DeriveStyle(req dto.DeriveStyleRequest) dto.StyleResponse
}

type serviceImpl struct {
	repo  repository.Recipe
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Recipe, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Recipe {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRecipeRequest) (res dto.RecipeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	recipe := req.ToModel()

	if err = s.repo.Insert(ctx, recipe); err != nil {
		log.Error().Err(err).Msg("failed to create recipe")

		return res, fmt.Errorf("failed to create recipe: %w", err)
	}

	res.FromModel(recipe)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRecipe)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRecipesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllRecipe)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for recipes")

		return res, nil
	}

	params := gDto.QueryParams{
		SortBy:  constant.FieldTimestamp,
		SortDir: gDto.SortDirDesc,
	}

	recipes, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get recipes")

		return res, fmt.Errorf("failed to get recipes: %w", err)
	}

	res.FromModels(recipes, len(recipes))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save recipes to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RecipeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRecipe, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for recipe")

		return res, nil
	}

	recipe, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get recipe")

		return res, fmt.Errorf("failed to get recipe: %w", err)
	}

	if recipe.ID == constant.Empty {
		return res, failure.NotFound("recipe not found")
	}

	res.FromModel(recipe)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save recipe to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	recipe, err := s.repo.Get(ctx, filter, model.FieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get recipe for deletion")

		return fmt.Errorf("failed to get recipe: %w", err)
	}

	if recipe.ID == constant.Empty {
		log.Error().Msg("recipe not found")

		return failure.NotFound("recipe not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete recipe")

		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRecipe, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete recipe cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRecipe)
	}()

	return nil
}

// DeriveStyle never touches storage, so it carries no context or error.
func (s *serviceImpl) DeriveStyle(req dto.DeriveStyleRequest) dto.StyleResponse {
	var res dto.StyleResponse

	res.FromStyle(model.DeriveStyle(req.Settings))

	return res
}
