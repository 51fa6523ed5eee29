package service

import (
	"context"
	"fmt"

	"aperture/config"
	"aperture/infras/otel"
	"aperture/internal/domains/settings/model"
	"aperture/internal/domains/settings/model/dto"
	"aperture/internal/domains/settings/repository"
	"aperture/shared"
	"aperture/shared/cache"
	"aperture/shared/constant"
	"aperture/shared/failure"
	"aperture/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetPortfolioSettings = "settings:portfolio"
	cacheGetSEOSettings       = "settings:seo"
)

type Settings interface {
	GetPortfolio(ctx context.Context) (dto.PortfolioSettingsResponse, error)
	UpdatePortfolio(ctx context.Context, req dto.UpdatePortfolioSettingsRequest) (dto.PortfolioSettingsResponse, error)
	AddEquipment(ctx context.Context, req dto.AddEquipmentRequest) (dto.PortfolioSettingsResponse, error)
	DeleteEquipment(ctx context.Context, itemID string) (dto.PortfolioSettingsResponse, error)
	GetSEO(ctx context.Context) (dto.SEOSettingsResponse, error)
	UpdateSEO(ctx context.Context, req dto.UpdateSEOSettingsRequest) (dto.SEOSettingsResponse, error)
}

type serviceImpl struct {
	portfolioRepo repository.Portfolio
	seoRepo       repository.SEO
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(portfolioRepo repository.Portfolio, seoRepo repository.SEO, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Settings {
	return &serviceImpl{
		portfolioRepo: portfolioRepo,
		seoRepo:       seoRepo,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

func (s *serviceImpl) GetPortfolio(ctx context.Context) (res dto.PortfolioSettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPortfolio")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPortfolioSettings)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for portfolio settings")

		return res, nil
	}

	settings, err := s.loadPortfolio(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(settings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save portfolio settings to cache")
		}
	}()

	return res, nil
}

// loadPortfolio reads the singleton row, falling back to the default document
// when it has never been saved.
func (s *serviceImpl) loadPortfolio(ctx context.Context) (model.PortfolioSettings, error) {
	settings, err := s.portfolioRepo.Get(ctx, shared.FilterByID(model.SingletonID, model.FieldID, model.PortfolioTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get portfolio settings")

		return settings, fmt.Errorf("failed to get portfolio settings: %w", err)
	}

	if settings.ID == constant.Empty {
		return model.DefaultPortfolioSettings(), nil
	}

	return settings, nil
}

func (s *serviceImpl) UpdatePortfolio(ctx context.Context, req dto.UpdatePortfolioSettingsRequest) (res dto.PortfolioSettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePortfolio")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings := req.ToModel()

	if err = s.savePortfolio(ctx, settings); err != nil {
		return res, err
	}

	res.FromModel(settings)

	s.invalidatePortfolio(ctx)

	return res, nil
}

func (s *serviceImpl) AddEquipment(ctx context.Context, req dto.AddEquipmentRequest) (res dto.PortfolioSettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddEquipment")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := s.loadPortfolio(ctx)
	if err != nil {
		return res, err
	}

	settings.EquipmentItems = append(settings.EquipmentItems, req.ToItem())
	settings.UpdatedAt = timezone.Now()

	if err = s.savePortfolio(ctx, settings); err != nil {
		return res, err
	}

	res.FromModel(settings)

	s.invalidatePortfolio(ctx)

	return res, nil
}

func (s *serviceImpl) DeleteEquipment(ctx context.Context, itemID string) (res dto.PortfolioSettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteEquipment")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := s.loadPortfolio(ctx)
	if err != nil {
		return res, err
	}

	items := make(model.EquipmentItems, 0, len(settings.EquipmentItems))
	for _, item := range settings.EquipmentItems {
		if item.ID != itemID {
			items = append(items, item)
		}
	}

	if len(items) == len(settings.EquipmentItems) {
		return res, failure.NotFound("equipment item not found")
	}

	settings.EquipmentItems = items
	settings.UpdatedAt = timezone.Now()

	if err = s.savePortfolio(ctx, settings); err != nil {
		return res, err
	}

	res.FromModel(settings)

	s.invalidatePortfolio(ctx)

	return res, nil
}

// savePortfolio replaces the singleton row wholesale, keeping the original
// creation timestamp when one exists.
func (s *serviceImpl) savePortfolio(ctx context.Context, settings model.PortfolioSettings) error {
	filter := shared.FilterByID(model.SingletonID, model.FieldID, model.PortfolioTableName)

	existing, err := s.portfolioRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get portfolio settings")

		return fmt.Errorf("failed to get portfolio settings: %w", err)
	}

	if existing.ID != constant.Empty {
		settings.Timestamp = existing.Timestamp

		if err = s.portfolioRepo.Delete(ctx, filter); err != nil {
			log.Error().Err(err).Msg("failed to replace portfolio settings")

			return fmt.Errorf("failed to replace portfolio settings: %w", err)
		}
	}

	if err = s.portfolioRepo.Insert(ctx, settings); err != nil {
		log.Error().Err(err).Msg("failed to save portfolio settings")

		return fmt.Errorf("failed to save portfolio settings: %w", err)
	}

	return nil
}

func (s *serviceImpl) invalidatePortfolio(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPortfolioSettings)); err != nil {
			log.Error().Err(err).Msg("failed to delete portfolio settings cache")
		}
	}()
}

func (s *serviceImpl) GetSEO(ctx context.Context) (res dto.SEOSettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSEO")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSEOSettings)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for seo settings")

		return res, nil
	}

	settings, err := s.seoRepo.Get(ctx, shared.FilterByID(model.SingletonID, model.FieldID, model.SEOTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get seo settings")

		return res, fmt.Errorf("failed to get seo settings: %w", err)
	}

	if settings.ID == constant.Empty {
		settings = model.DefaultSEOSettings()
	}

	res.FromModel(settings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save seo settings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateSEO(ctx context.Context, req dto.UpdateSEOSettingsRequest) (res dto.SEOSettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateSEO")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(model.SingletonID, model.FieldID, model.SEOTableName)

	settings := req.ToModel()

	existing, err := s.seoRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get seo settings")

		return res, fmt.Errorf("failed to get seo settings: %w", err)
	}

	if existing.ID != constant.Empty {
		settings.Timestamp = existing.Timestamp

		if err = s.seoRepo.Delete(ctx, filter); err != nil {
			log.Error().Err(err).Msg("failed to replace seo settings")

			return res, fmt.Errorf("failed to replace seo settings: %w", err)
		}
	}

	if err = s.seoRepo.Insert(ctx, settings); err != nil {
		log.Error().Err(err).Msg("failed to save seo settings")

		return res, fmt.Errorf("failed to save seo settings: %w", err)
	}

	res.FromModel(settings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSEOSettings)); err != nil {
			log.Error().Err(err).Msg("failed to delete seo settings cache")
		}
	}()

	return res, nil
}
