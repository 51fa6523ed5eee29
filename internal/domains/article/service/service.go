package service

import (
	"context"
	"fmt"

	"aperture/config"
	"aperture/infras/otel"
	"aperture/internal/domains/article/model"
	"aperture/internal/domains/article/model/dto"
	"aperture/internal/domains/article/repository"
	"aperture/shared"
	"aperture/shared/cache"
	"aperture/shared/constant"
	gDto "aperture/shared/dto"
	"aperture/shared/failure"
	"aperture/shared/markdown"
	"aperture/shared/slug"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetArticle    = "article:get"
	cacheGetAllArticle = "article:get_all"
	cacheCountArticle  = "article:count"
	cacheTagsArticle   = "article:tags"
)

type Article interface {
	Create(ctx context.Context, req dto.CreateArticleRequest) (dto.ArticleResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetArticlesResponse, error)
	Get(ctx context.Context, id string) (dto.ArticleResponse, error)
	GetBySlug(ctx context.Context, slugValue string) (dto.ArticleResponse, error)
	Tags(ctx context.Context) (dto.GetTagsResponse, error)
	Update(ctx context.Context, req dto.UpdateArticleRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Article
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Article, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Article {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func filterBySlug(slugValue string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldSlug,
				Operator: gDto.FilterOperatorEq,
				Value:    slugValue,
				Table:    model.TableName,
			},
		},
	}
}

// Create stores a new article. A missing slug is derived from the title;
// slug collisions are rejected with a conflict.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateArticleRequest) (res dto.ArticleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	slugValue := req.Slug
	if slugValue == constant.Empty {
		slugValue = slug.Make(req.Title)
	} else if !slug.IsValid(slugValue) {
		return res, failure.BadRequestFromString("article slug must contain only lowercase letters, digits and single hyphens")
	}

	if slugValue == constant.Empty {
		return res, failure.BadRequestFromString("article slug cannot be derived from an empty title")
	}

	exist, err := s.repo.Exist(ctx, filterBySlug(slugValue))
	if err != nil {
		log.Error().Err(err).Msg("failed to check slug uniqueness")

		return res, err
	}

	if exist {
		return res, failure.Conflict("article slug already in use")
	}

	article := req.ToModel(slugValue)

	if err = s.repo.Insert(ctx, article); err != nil {
		log.Error().Err(err).Msg("failed to create article")

		return res, fmt.Errorf("failed to create article: %w", err)
	}

	res.FromModel(article)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllArticle)
		shared.InvalidateCaches(c, s.cache, cacheCountArticle)
		shared.InvalidateCaches(c, s.cache, cacheTagsArticle)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetArticlesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllArticle, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for articles")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count articles")

		return res, err
	}

	articles, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get articles")

		return res, err
	}

	res.FromModels(articles, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save articles to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountArticle, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		return total, fmt.Errorf("failed to count articles: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save article count to cache")
		}
	}()

	return total, nil
}

// Get returns an article by id with its raw markdown body, as the admin edit
// form needs it.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ArticleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	article, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get article")

		return res, fmt.Errorf("failed to get article: %w", err)
	}

	if article.ID == constant.Empty {
		return res, failure.NotFound("article not found")
	}

	res.FromModel(article)

	return res, nil
}

// GetBySlug returns a published article along with its rendered HTML body.
func (s *serviceImpl) GetBySlug(ctx context.Context, slugValue string) (res dto.ArticleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBySlug")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetArticle, slugValue)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for article")

		return res, nil
	}

	article, err := s.repo.Get(ctx, filterBySlug(slugValue))
	if err != nil {
		log.Error().Err(err).Msg("failed to get article by slug")

		return res, fmt.Errorf("failed to get article: %w", err)
	}

	if article.ID == constant.Empty || !article.IsPublished {
		return res, failure.NotFound("article not found")
	}

	res.FromModel(article)
	res.ContentHTML = markdown.Render(article.Content)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save article to cache")
		}
	}()

	return res, nil
}

// Tags returns per-tag counts over published articles, cached in redis.
func (s *serviceImpl) Tags(ctx context.Context) (res dto.GetTagsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Tags")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheTagsArticle, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheTagsArticle).Msg("cache hit for article tags")

		return res, nil
	}

	publishedFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsPublished,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	counts, err := s.repo.CountGrouped(ctx, fmt.Sprintf("unnest(%s)", model.FieldTags), publishedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count article tags")

		return res, fmt.Errorf("failed to count article tags: %w", err)
	}

	res.FromCounts(counts)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheTagsArticle, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save article tags to cache")
		}
	}()

	return res, nil
}

// Update patches the provided fields. The slug is only touched when the
// request carries one explicitly; it is never re-derived from the title.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateArticleRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	article, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get article for update")

		return err
	}

	if article.ID == constant.Empty {
		return failure.NotFound("article not found")
	}

	if req.Slug != constant.Empty && !slug.IsValid(req.Slug) {
		return failure.BadRequestFromString("article slug must contain only lowercase letters, digits and single hyphens")
	}

	if req.Slug != constant.Empty && req.Slug != article.Slug {
		taken, err := s.repo.Exist(ctx, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldSlug,
					Operator: gDto.FilterOperatorEq,
					Value:    req.Slug,
					Table:    model.TableName,
				},
				gDto.Filter{
					ArgName:  "other_id",
					Field:    model.FieldID,
					Operator: gDto.FilterOperatorNotEq,
					Value:    id,
					Table:    model.TableName,
				},
			},
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to check slug uniqueness")

			return err
		}

		if taken {
			return failure.Conflict("article slug already in use")
		}
	}

	updatedFields := shared.TransformFields(req)
	if len(updatedFields) == 0 {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update article")

		return fmt.Errorf("failed to update article: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetArticle, article.Slug)); err != nil {
			log.Error().Err(err).Msg("failed to delete article cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllArticle)
		shared.InvalidateCaches(c, s.cache, cacheTagsArticle)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	article, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get article for deletion")

		return fmt.Errorf("failed to get article: %w", err)
	}

	if article.ID == constant.Empty {
		return failure.NotFound("article not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete article")

		return fmt.Errorf("failed to delete article: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetArticle, article.Slug)); err != nil {
			log.Error().Err(err).Msg("failed to delete article cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllArticle)
		shared.InvalidateCaches(c, s.cache, cacheCountArticle)
		shared.InvalidateCaches(c, s.cache, cacheTagsArticle)
	}()

	return nil
}
