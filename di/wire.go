//go:build wireinject
// +build wireinject

package di

import (
	"aperture/config"
	"aperture/infras/jwt"
	"aperture/infras/otel"
	"aperture/infras/postgres"
	"aperture/infras/redis"
	"aperture/infras/s3"
	"aperture/shared/cache"
	"aperture/transport/http"
	"aperture/transport/http/middleware"
	"aperture/transport/http/router"

	articleRepository "aperture/internal/domains/article/repository"
	articleService "aperture/internal/domains/article/service"
	authService "aperture/internal/domains/auth/service"
	commentRepository "aperture/internal/domains/comment/repository"
	commentService "aperture/internal/domains/comment/service"
	galleryRepository "aperture/internal/domains/gallery/repository"
	galleryService "aperture/internal/domains/gallery/service"
	photoRepository "aperture/internal/domains/photo/repository"
	photoService "aperture/internal/domains/photo/service"
	recipeRepository "aperture/internal/domains/recipe/repository"
	recipeService "aperture/internal/domains/recipe/service"
	seedService "aperture/internal/domains/seed/service"
	settingsRepository "aperture/internal/domains/settings/repository"
	settingsService "aperture/internal/domains/settings/service"
	statusRepository "aperture/internal/domains/status/repository"
	statusService "aperture/internal/domains/status/service"

	articleHandler "aperture/internal/handlers/article"
	authHandler "aperture/internal/handlers/auth"
	galleryHandler "aperture/internal/handlers/gallery"
	photoHandler "aperture/internal/handlers/photo"
	recipeHandler "aperture/internal/handlers/recipe"
	seedHandler "aperture/internal/handlers/seed"
	settingsHandler "aperture/internal/handlers/settings"
	statusHandler "aperture/internal/handlers/status"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var photoDomain = wire.NewSet(
	photoRepository.New,
	photoService.New,
)

var commentDomain = wire.NewSet(
	commentRepository.New,
	commentService.New,
)

var galleryDomain = wire.NewSet(
	galleryRepository.New,
	galleryService.New,
)

var articleDomain = wire.NewSet(
	articleRepository.New,
	articleService.New,
)

var recipeDomain = wire.NewSet(
	recipeRepository.New,
	recipeService.New,
)

var settingsDomain = wire.NewSet(
	settingsRepository.NewPortfolio,
	settingsRepository.NewSEO,
	settingsService.New,
)

var statusDomain = wire.NewSet(
	statusRepository.New,
	statusService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var seedDomain = wire.NewSet(
	seedService.New,
)

var domains = wire.NewSet(
	photoDomain,
	commentDomain,
	galleryDomain,
	articleDomain,
	recipeDomain,
	settingsDomain,
	statusDomain,
	authDomain,
	seedDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	photoHandler.New,
	galleryHandler.New,
	articleHandler.New,
	recipeHandler.New,
	settingsHandler.New,
	statusHandler.New,
	seedHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
