package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"aperture/infras/otel"
	"aperture/infras/postgres"
	"aperture/internal/domains/settings/model"
	gDto "aperture/shared/dto"
	gRepo "aperture/shared/repository"
)

type Portfolio interface {
	Insert(ctx context.Context, model model.PortfolioSettings) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PortfolioSettings, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type SEO interface {
	Insert(ctx context.Context, model model.SEOSettings) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SEOSettings, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type portfolioImpl struct {
	gRepo.Repository[model.PortfolioSettings]
	db   *postgres.Connection
	otel otel.Otel
}

func NewPortfolio(db *postgres.Connection, otel otel.Otel) Portfolio {
	return &portfolioImpl{
		Repository: gRepo.NewRepository[model.PortfolioSettings](model.PortfolioEntityName, model.PortfolioTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type seoImpl struct {
	gRepo.Repository[model.SEOSettings]
	db   *postgres.Connection
	otel otel.Otel
}

func NewSEO(db *postgres.Connection, otel otel.Otel) SEO {
	return &seoImpl{
		Repository: gRepo.NewRepository[model.SEOSettings](model.SEOEntityName, model.SEOTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
