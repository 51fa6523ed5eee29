package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"aperture/infras/otel"
	"aperture/infras/postgres"
	"aperture/internal/domains/article/model"
	gDto "aperture/shared/dto"
	gRepo "aperture/shared/repository"
)

type Article interface {
	Insert(ctx context.Context, model model.Article) error
	InsertBulk(ctx context.Context, models []model.Article) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Article, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Article, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CountGrouped(ctx context.Context, groupColumn string, filter gDto.FilterGroup) (map[string]int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Article]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Article {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Article](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
